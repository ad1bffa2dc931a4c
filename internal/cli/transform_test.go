package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/transpose/pkg/errors"
	"github.com/matzehuels/transpose/pkg/observability"
)

func TestTransformCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name:  "default transpose joins with tab",
			stdin: "a b c\n1 2 3\n",
			want:  "a\t1\nb\t2\nc\t3\n",
		},
		{
			name:  "comma separator keeps comma",
			stdin: "a,b\nc,d\n",
			args:  []string{"-t", ","},
			want:  "a,c\nb,d\n",
		},
		{
			name:  "explicit output separator",
			stdin: "a,b\nc,d\n",
			args:  []string{"-t", ",", "-o", " | "},
			want:  "a | c\nb | d\n",
		},
		{
			name:  "xflip",
			stdin: "one two\nthree\n",
			args:  []string{"-x"},
			want:  "three\none two\n",
		},
		{
			name:  "tac alias",
			stdin: "1\n2\n3\n",
			args:  []string{"--tac"},
			want:  "3\n2\n1\n",
		},
		{
			name:  "yflip",
			stdin: "a b c\nd e\n",
			args:  []string{"-y"},
			want:  "c\tb\ta\ne\td\n",
		},
		{
			name:  "rotate counterclockwise shorthand",
			stdin: "a b\nc d\n",
			args:  []string{"+90"},
			want:  "b\td\na\tc\n",
		},
		{
			name:  "rotate clockwise shorthand",
			stdin: "a b\nc d\n",
			args:  []string{"-90"},
			want:  "c\ta\nd\tb\n",
		},
		{
			name:  "rotate flag with separate value",
			stdin: "a b\nc d\n",
			args:  []string{"--rotate", "180"},
			want:  "d\tc\nb\ta\n",
		},
		{
			name:  "diamond",
			stdin: "a\tb\nc\td\n",
			args:  []string{"-45"},
			want:  "\ta\t\nc\t\tb\n\td\t\n",
		},
		{
			name:  "skew",
			stdin: "a\tb\nc\td\n",
			args:  []string{"+45", "--skew"},
			want:  "b\t\na\td\n\tc\n",
		},
		{
			name:  "json output",
			stdin: "a b\n",
			args:  []string{"-f", "json"},
			want:  "{\n  \"rows\": [\n    [\n      \"a\"\n    ],\n    [\n      \"b\"\n    ]\n  ]\n}\n",
		},
		{
			name:  "fixed width",
			stdin: "abcdef\n",
			args:  []string{"-w", "2,2", "-o", "|"},
			want:  "ab\ncd\nef\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			got, _, err := execute(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("execute(%q): %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("execute(%q) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestTransformCommandFiles(t *testing.T) {
	dir := isolate(t)
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(a, []byte("1 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("3 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, _, err := execute(t, "", a, b)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := "==> " + a + " <==\n1\n2\n==> " + b + " <==\n3\n4\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTransformCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing file", []string{"/nonexistent/grid.txt"}, errors.ErrCodeFileNotFound},
		{"bad angle", []string{"--rotate", "30"}, errors.ErrCodeInvalidAngle},
		{"bad pattern", []string{"-p", "("}, errors.ErrCodeInvalidPattern},
		{"bad format", []string{"-f", "xml"}, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, _, err := execute(t, "a b\n", tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestTransformCommandExclusiveFlags(t *testing.T) {
	isolate(t)
	if _, _, err := execute(t, "a\n", "-x", "-y"); err == nil {
		t.Error("-x with -y should fail")
	}
}

func TestTransformCommandConfig(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, "xdg-config", "transpose")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg := "separator = \",\"\noutput_separator = \";\"\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	got, _, err := execute(t, "a,b\nc,d\n")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if want := "a;c\nb;d\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got, _, err = execute(t, "a,b\nc,d\n", "-o", "+")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if want := "a+c\nb+d\n"; got != want {
		t.Errorf("flag should override config: got %q, want %q", got, want)
	}
}

func TestTransformCommandConfigSplitter(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, "xdg-config", "transpose")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg := "pattern = '\\w+'\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	got, _, err := execute(t, "a b;c d\n")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if want := "a\nb\nc\nd\n"; got != want {
		t.Errorf("config pattern: got %q, want %q", got, want)
	}

	got, _, err = execute(t, "a b;c d\n", "-t", ";")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if want := "a b\nc d\n"; got != want {
		t.Errorf("-t should replace the config pattern: got %q, want %q", got, want)
	}
}

func TestConfigFlagMissingFile(t *testing.T) {
	dir := isolate(t)
	missing := filepath.Join(dir, "missing.toml")
	for _, args := range [][]string{
		{"--config", missing},
		{"--config", missing, "cache", "path"},
		{"--config", missing, "cache", "clear"},
		{"--config", missing, "view"},
	} {
		t.Run(strings.Join(args[2:], " "), func(t *testing.T) {
			_, _, err := execute(t, "a b\n", args...)
			if !errors.Is(err, errors.ErrCodeFileNotFound) {
				t.Errorf("got %v, want %s", err, errors.ErrCodeFileNotFound)
			}
		})
	}
}

func TestTransformCommandCache(t *testing.T) {
	dir := isolate(t)
	cacheDir := filepath.Join(dir, "results")

	for i := 0; i < 2; i++ {
		got, _, err := execute(t, "a b\n", "--cache-dir", cacheDir)
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if got != "a\nb\n" {
			t.Errorf("run %d = %q", i, got)
		}
	}
	entries, err := os.ReadDir(cacheDir)
	if err != nil || len(entries) == 0 {
		t.Errorf("cache dir has no entries (err=%v)", err)
	}
}

func TestTransformCommandVerbose(t *testing.T) {
	isolate(t)
	t.Cleanup(observability.Reset)
	_, stderr, err := execute(t, "a b\n", "-v", "+90")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"parsed", "transformed", "rotate90ccw"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("verbose log missing %q:\n%s", want, stderr)
		}
	}
}
