package io

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/transpose/pkg/columns"
	"github.com/matzehuels/transpose/pkg/grid"
)

// ReadLines reads r to the end and returns its lines without trailing
// "\n" or "\r\n". A final line without a newline is kept.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read: %w", err)
		}
	}
}

// ReadText reads r and splits every line with p.
func ReadText(r io.Reader, p *columns.Parser) (grid.Grid, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return p.Parse(lines)
}

// WriteText writes each row of g joined by sep and followed by a newline.
func WriteText(w io.Writer, g grid.Grid, sep string) error {
	bw := bufio.NewWriter(w)
	for _, row := range g {
		if _, err := bw.WriteString(strings.Join(row, sep)); err != nil {
			return fmt.Errorf("write: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
