package columns

import (
	"fmt"
	"regexp"

	"github.com/matzehuels/transpose/pkg/errors"
)

// escape matches a backslash escape: \xHH, \uHHHH, \UHHHHHHHH, \u{H+} or
// any other escaped character.
const escape = `\\(?:x\w{2}|u\w{4}|U\w{8}|u\{\w+\}|[^xuU])`

// Quoted splits on a separator but keeps quoted strings, including their
// quotes, as single cells even when they contain the separator.
type Quoted struct {
	sep       *regexp.Regexp // search anywhere
	sepPrefix *regexp.Regexp // anchored at the current position
	double    *regexp.Regexp
	single    *regexp.Regexp
}

// NewQuoted builds a quote-aware splitter around the separator expression.
// With doubled set, a repeated quote character inside a string stands for
// the quote itself, SQL style.
func NewQuoted(sep string, doubled bool) (*Quoted, error) {
	re, err := errors.ValidatePattern("separator", sep)
	if err != nil {
		return nil, err
	}
	prefix, err := errors.ValidatePattern("separator", `^(?:`+sep+`)`)
	if err != nil {
		return nil, err
	}
	dq, sq := "", ""
	if doubled {
		dq, sq = `|""`, `|''`
	}
	return &Quoted{
		sep:       re,
		sepPrefix: prefix,
		double:    regexp.MustCompile(fmt.Sprintf(`^"(?:[^"\\]|%s%s)*"`, escape, dq)),
		single:    regexp.MustCompile(fmt.Sprintf(`^'(?:[^'\\]|%s%s)*'`, escape, sq)),
	}, nil
}

// Split implements Splitter.
func (q *Quoted) Split(line string) ([]string, error) {
	var fields []string
	o := 0
	needSep := false
	for o < len(line) {
		rest := line[o:]
		if needSep {
			m := q.sepPrefix.FindStringIndex(rest)
			if m == nil {
				return nil, errors.New(errors.ErrCodeInvalidQuoting, "expected separator at pos %d in %s", o, line)
			}
			o += m[1]
			needSep = false
			continue
		}
		if m := q.double.FindString(rest); m != "" {
			fields = append(fields, m)
			o += len(m)
			needSep = true
			continue
		}
		if m := q.single.FindString(rest); m != "" {
			fields = append(fields, m)
			o += len(m)
			needSep = true
			continue
		}
		m := q.sep.FindStringIndex(rest)
		if m == nil || m[1] == 0 {
			fields = append(fields, rest)
			break
		}
		fields = append(fields, rest[:m[0]])
		o += m[1]
	}
	return fields, nil
}
