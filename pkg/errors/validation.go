package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateAngle checks that deg is a whole multiple of 45 degrees.
// Angles of any magnitude and sign are accepted; they are reduced modulo
// 360 by the rotation planner.
func ValidateAngle(deg int) error {
	if deg%45 != 0 {
		return New(ErrCodeInvalidAngle, "rotation %d is not a multiple of 45 degrees", deg)
	}
	return nil
}

// ValidatePattern compiles expr and reports a coded error if it is not a
// valid regular expression. The flag name is used in the message so users
// know which option to fix.
func ValidatePattern(flag, expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, Wrap(ErrCodeInvalidPattern, err, "invalid --%s expression %q", flag, expr)
	}
	return re, nil
}

// ValidateOutputSeparator rejects separators that would corrupt the
// line-oriented output: newlines and other control characters besides tab.
func ValidateOutputSeparator(sep string) error {
	for _, r := range sep {
		if r == '\t' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output separator contains control character %q", r)
		}
	}
	return nil
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"text": true, "json": true}

// ValidateFormat checks that format names a supported output format.
func ValidateFormat(format string) error {
	if !validFormats[strings.ToLower(format)] {
		return New(ErrCodeInvalidFormat, "invalid format: %s (must be 'text' or 'json')", format)
	}
	return nil
}
