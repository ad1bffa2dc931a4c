package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/transpose/pkg/errors"
	"github.com/matzehuels/transpose/pkg/grid"
)

type document struct {
	Rows [][]*string `json:"rows"`
}

// WriteJSON encodes g as {"rows": [...]}.
func WriteJSON(w io.Writer, g grid.Grid) error {
	rows := make([][]string, len(g))
	for i, row := range g {
		rows[i] = row
		if rows[i] == nil {
			rows[i] = []string{}
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(struct {
		Rows [][]string `json:"rows"`
	}{rows}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a grid written by WriteJSON. A missing "rows" key
// decodes to an empty grid.
func ReadJSON(r io.Reader) (grid.Grid, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode grid")
	}
	g := make(grid.Grid, len(doc.Rows))
	for i, row := range doc.Rows {
		g[i] = make([]string, len(row))
		for j, cell := range row {
			if cell != nil {
				g[i][j] = *cell
			}
		}
	}
	return g, nil
}

// ImportJSON reads a grid from the JSON file at path.
func ImportJSON(path string) (grid.Grid, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "%s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// ExportJSON writes g to a JSON file at path.
func ExportJSON(g grid.Grid, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
