package columns

import (
	"reflect"
	"testing"

	"github.com/matzehuels/transpose/pkg/errors"
)

func TestQuotedSplit(t *testing.T) {
	tests := []struct {
		name    string
		doubled bool
		line    string
		want    []string
	}{
		{"plain", false, `a,b,c`, []string{"a", "b", "c"}},
		{"double quoted", false, `a,"b",c`, []string{"a", `"b"`, "c"}},
		{"separator inside double", false, `a,"b,x,y",c`, []string{"a", `"b,x,y"`, "c"}},
		{"escape inside double", false, `a,"b,\n",c`, []string{"a", `"b,\n"`, "c"}},
		{"newline inside double", false, "a,\"b\nd\",c", []string{"a", "\"b\nd\"", "c"}},
		{"single inside double", false, `a,"b'd",c`, []string{"a", `"b'd"`, "c"}},
		{"escaped double", false, `a,"b\"d",c`, []string{"a", `"b\"d"`, "c"}},
		{"single quoted", false, `a,'b',c`, []string{"a", `'b'`, "c"}},
		{"separator inside single", false, `a,'b,x,y',c`, []string{"a", `'b,x,y'`, "c"}},
		{"escape inside single", false, `a,'b,\n',c`, []string{"a", `'b,\n'`, "c"}},
		{"double inside single", false, `a,'b"d',c`, []string{"a", `'b"d'`, "c"}},
		{"escaped single", false, `a,'b\'d',c`, []string{"a", `'b\'d'`, "c"}},
		{"hex escape", false, `"\x41,",z`, []string{`"\x41,"`, "z"}},
		{"doubled plain", true, `a,b,c`, []string{"a", "b", "c"}},
		{"doubled single", true, `a,'b',c`, []string{"a", `'b'`, "c"}},
		{"doubled separator inside", true, `a,'b,x,y',c`, []string{"a", `'b,x,y'`, "c"}},
		{"doubled quote", true, `a,'b''y',c`, []string{"a", `'b''y'`, "c"}},
		{"doubled double quote", true, `"x"",y",z`, []string{`"x"",y"`, "z"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewQuoted(",", tt.doubled)
			if err != nil {
				t.Fatalf("NewQuoted() error = %v", err)
			}
			got, err := q.Split(tt.line)
			if err != nil {
				t.Fatalf("Split() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestQuotedMissingSeparator(t *testing.T) {
	q, err := NewQuoted(",", false)
	if err != nil {
		t.Fatalf("NewQuoted() error = %v", err)
	}
	_, err = q.Split(`"a"b,c`)
	if !errors.Is(err, errors.ErrCodeInvalidQuoting) {
		t.Fatalf("Split() error = %v, want INVALID_QUOTING", err)
	}
	if want := "expected separator at pos 3 in \"a\"b,c"; errors.UserMessage(err) != want {
		t.Errorf("UserMessage() = %q, want %q", errors.UserMessage(err), want)
	}
}

func TestQuotedInvalidSeparator(t *testing.T) {
	if _, err := NewQuoted("[", false); !errors.Is(err, errors.ErrCodeInvalidPattern) {
		t.Errorf("NewQuoted(\"[\") error = %v, want INVALID_PATTERN", err)
	}
}
