package columns

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/matzehuels/transpose/pkg/errors"
	"github.com/matzehuels/transpose/pkg/grid"
)

// DefaultSeparator splits on a tab, a comma with optional trailing
// whitespace, or a run of spaces.
const DefaultSeparator = `\t|,\s*| +`

// Splitter splits one line into cells.
type Splitter interface {
	Split(line string) ([]string, error)
}

// Options selects and configures a Splitter.
type Options struct {
	Separator    string // regular expression between columns
	SeparatorSet bool   // Separator was given explicitly, even if empty
	Pattern      string // regular expression matching a column
	Width        string // fixed width spec
	KeepSpaces   bool   // keep leading whitespace on each line
	Quoted       bool   // quoted strings with backslash escapes
	DQuoted      bool   // quoted strings with doubled-quote escapes
}

// SetDefaults fills in the separator when none was given and turns on
// KeepSpaces for pattern matching, where leading whitespace is usually
// part of the pattern.
func (o *Options) SetDefaults() {
	if !o.SeparatorSet {
		if o.Width != "" || o.Pattern != "" {
			o.Separator = ""
		} else {
			o.Separator = DefaultSeparator
		}
		o.SeparatorSet = true
	}
	if o.Pattern != "" {
		o.KeepSpaces = true
	}
}

// NewSplitter builds the Splitter described by o. Call SetDefaults first.
func NewSplitter(o Options) (Splitter, error) {
	switch {
	case o.Width != "":
		return NewFixedWidth(o.Width)
	case o.Quoted || o.DQuoted:
		return NewQuoted(o.Separator, o.DQuoted)
	case o.Pattern != "":
		return NewPattern(o.Pattern)
	case o.Separator != "":
		return NewSeparator(o.Separator)
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "don't know how to split lines into columns: give a separator, pattern or width")
}

// Parser turns lines into grid rows.
type Parser struct {
	splitter   Splitter
	keepSpaces bool
}

// NewParser applies defaults to o and builds a Parser.
func NewParser(o Options) (*Parser, error) {
	o.SetDefaults()
	s, err := NewSplitter(o)
	if err != nil {
		return nil, err
	}
	return &Parser{splitter: s, keepSpaces: o.KeepSpaces}, nil
}

// Line splits a single line. Trailing CR and LF are removed first.
func (p *Parser) Line(line string) ([]string, error) {
	line = strings.TrimRight(line, "\r\n")
	if !p.keepSpaces {
		line = strings.TrimLeftFunc(line, unicode.IsSpace)
	}
	return p.splitter.Split(line)
}

// Parse splits every line and returns the (possibly ragged) grid.
func (p *Parser) Parse(lines []string) (grid.Grid, error) {
	g := make(grid.Grid, 0, len(lines))
	for i, line := range lines {
		row, err := p.Line(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		g = append(g, row)
	}
	return g, nil
}

// OutputSeparator returns the string used to join cells for output.
func OutputSeparator(sep string) string {
	if len([]rune(sep)) <= 1 {
		return sep
	}
	return "\t"
}

// Separator splits on matches of a regular expression.
type Separator struct {
	re *regexp.Regexp
}

// NewSeparator compiles expr.
func NewSeparator(expr string) (*Separator, error) {
	re, err := errors.ValidatePattern("separator", expr)
	if err != nil {
		return nil, err
	}
	return &Separator{re: re}, nil
}

// Split implements Splitter.
func (s *Separator) Split(line string) ([]string, error) {
	return s.re.Split(line, -1), nil
}

// Pattern returns every match of a regular expression. If the expression
// has exactly one capturing group, the group's text is the cell.
type Pattern struct {
	re *regexp.Regexp
}

// NewPattern compiles expr.
func NewPattern(expr string) (*Pattern, error) {
	re, err := errors.ValidatePattern("pattern", expr)
	if err != nil {
		return nil, err
	}
	return &Pattern{re: re}, nil
}

// Split implements Splitter.
func (p *Pattern) Split(line string) ([]string, error) {
	out := []string{}
	if p.re.NumSubexp() == 1 {
		for _, m := range p.re.FindAllStringSubmatch(line, -1) {
			out = append(out, m[1])
		}
		return out, nil
	}
	return append(out, p.re.FindAllString(line, -1)...), nil
}
