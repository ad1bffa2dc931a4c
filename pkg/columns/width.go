package columns

import (
	"strconv"
	"strings"

	"github.com/matzehuels/transpose/pkg/errors"
)

// FixedWidth cuts lines into columns of fixed character counts.
type FixedWidth struct {
	widths []int // per-column widths; the rest of the line follows
}

// NewFixedWidth parses a width spec; see the package documentation.
func NewFixedWidth(spec string) (*FixedWidth, error) {
	var (
		widths     []int
		defaultW   = -1
		unassigned = -1
	)
	for _, item := range strings.Split(spec, ",") {
		col, w, err := parseWidthItem(item)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidWidth, err, "invalid width spec %q", spec)
		}
		switch {
		case col == -1:
			widths = append(widths, w)
			defaultW = w
		case col == -2:
			defaultW = w
		default:
			for len(widths) <= col {
				widths = append(widths, unassigned)
			}
			widths[col] = w
		}
	}
	for i, w := range widths {
		if w != unassigned {
			continue
		}
		if defaultW < 0 {
			return nil, errors.New(errors.ErrCodeInvalidWidth, "invalid width spec %q: column %d has no width and there is no default", spec, i)
		}
		widths[i] = defaultW
	}
	return &FixedWidth{widths: widths}, nil
}

// parseWidthItem parses "w", "c:w" or "*:w". col is -1 for a bare width
// and -2 for the default.
func parseWidthItem(item string) (col, w int, err error) {
	parts := strings.Split(strings.TrimSpace(item), ":")
	switch len(parts) {
	case 1:
		w, err = parseCount(parts[0])
		return -1, w, err
	case 2:
		if w, err = parseCount(parts[1]); err != nil {
			return 0, 0, err
		}
		if parts[0] == "*" {
			return -2, w, nil
		}
		col, err = parseCount(parts[0])
		return col, w, err
	}
	return 0, 0, errors.New(errors.ErrCodeInvalidWidth, "too many ':' in %q", item)
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.New(errors.ErrCodeInvalidWidth, "negative value %d", n)
	}
	return n, nil
}

// Widths returns the resolved column widths.
func (f *FixedWidth) Widths() []int {
	return append([]int(nil), f.widths...)
}

// Split implements Splitter. Widths count characters, not bytes. Columns
// past the end of the line are empty.
func (f *FixedWidth) Split(line string) ([]string, error) {
	r := []rune(line)
	out := make([]string, 0, len(f.widths)+1)
	o := 0
	for _, w := range f.widths {
		end := min(o+w, len(r))
		start := min(o, len(r))
		out = append(out, string(r[start:end]))
		o += w
	}
	out = append(out, string(r[min(o, len(r)):]))
	return out, nil
}
