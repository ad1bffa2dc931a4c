package pipeline

import (
	"testing"

	"github.com/matzehuels/transpose/pkg/columns"
	"github.com/matzehuels/transpose/pkg/errors"
	"github.com/matzehuels/transpose/pkg/rotate"
)

func TestOptionsDefaults(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantSep string
	}{
		{"default separator becomes tab", Options{}, "\t"},
		{"single char separator is reused", Options{Columns: columns.Options{Separator: ";", SeparatorSet: true}}, ";"},
		{"width has no output separator", Options{Columns: columns.Options{Width: "3"}}, ""},
		{"explicit output separator wins", Options{OutputSeparator: " | ", OutputSeparatorSet: true}, " | "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			opts.SetDefaults()
			if opts.OutputSeparator != tt.wantSep {
				t.Errorf("OutputSeparator = %q, want %q", opts.OutputSeparator, tt.wantSep)
			}
			if opts.Format != FormatText || opts.InputFormat != FormatText {
				t.Errorf("formats = %q/%q, want text/text", opts.InputFormat, opts.Format)
			}
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"valid", Options{}, ""},
		{"json upper case", Options{Format: "JSON"}, ""},
		{"bad angle", Options{Request: rotate.Angle(30, false)}, errors.ErrCodeInvalidAngle},
		{"bad format", Options{Format: "xml"}, errors.ErrCodeInvalidFormat},
		{"bad input format", Options{InputFormat: "csv"}, errors.ErrCodeInvalidFormat},
		{"newline separator", Options{OutputSeparator: "\n", OutputSeparatorSet: true}, errors.ErrCodeInvalidInput},
		{"negative max size", Options{MaxSize: -1}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			opts.SetDefaults()
			err := opts.Validate()
			if tt.code == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Validate() error = %v, want %s", err, tt.code)
			}
		})
	}
}
