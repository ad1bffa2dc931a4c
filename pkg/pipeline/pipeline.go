// Package pipeline runs the read → split → transform → format sequence for
// one or more inputs.
//
// # Architecture
//
// Each input goes through three stages:
//
//  1. Parse: read lines and split them into cells with [columns.Parser]
//     (or decode a JSON grid)
//  2. Transform: run the [rotate.Plan] for the requested operation
//  3. Format: join cells with the output separator, or encode JSON
//
// Two requests take shortcuts. FlipX never splits lines: every line is a
// one-cell row, so `--tac` works on input that no separator describes.
// FlipY reverses each row where it stands and tolerates ragged input.
//
// Stage events go to [observability.Pipeline]. A [Runner] with a cache
// stores the formatted output of each input keyed by its bytes and the
// options, and replays it on a hit.
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, logger)
//	opts := pipeline.Options{Request: rotate.Angle(-90, false)}
//	res, err := runner.Run(ctx, []pipeline.Input{{Name: "-", R: os.Stdin}}, os.Stdout, opts)
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/matzehuels/transpose/pkg/columns"
	"github.com/matzehuels/transpose/pkg/errors"
	"github.com/matzehuels/transpose/pkg/grid"
	"github.com/matzehuels/transpose/pkg/rotate"
)

// Format constants for input and output.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// StdinName is the input name used for standard input.
const StdinName = "-"

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a pipeline run. It is JSON-serializable so it can be
// part of a cache key or an HTTP request.
type Options struct {
	Columns columns.Options `json:"columns"`
	Request rotate.Request  `json:"request"`

	// OutputSeparator joins cells on output. When OutputSeparatorSet is
	// false it is derived from the input separator.
	OutputSeparator    string `json:"output_separator,omitempty"`
	OutputSeparatorSet bool   `json:"output_separator_set,omitempty"`

	InputFormat string `json:"input_format,omitempty"`
	Format      string `json:"format,omitempty"`

	// Refresh skips cache lookups but still stores results.
	Refresh bool `json:"-"`

	// MaxSize rejects inputs whose row count or widest row exceeds it.
	// Zero means no limit.
	MaxSize int `json:"-"`
}

// SetDefaults fills in column defaults, the output separator and formats.
func (o *Options) SetDefaults() {
	o.Columns.SetDefaults()
	if !o.OutputSeparatorSet {
		o.OutputSeparator = columns.OutputSeparator(o.Columns.Separator)
		o.OutputSeparatorSet = true
	}
	if o.InputFormat == "" {
		o.InputFormat = FormatText
	}
	if o.Format == "" {
		o.Format = FormatText
	}
	o.InputFormat = strings.ToLower(o.InputFormat)
	o.Format = strings.ToLower(o.Format)
}

// Validate checks the request, formats and output separator.
func (o *Options) Validate() error {
	if o.MaxSize < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max size %d is negative", o.MaxSize)
	}
	if err := o.Request.Validate(); err != nil {
		return err
	}
	if err := errors.ValidateFormat(o.InputFormat); err != nil {
		return err
	}
	if err := errors.ValidateFormat(o.Format); err != nil {
		return err
	}
	return errors.ValidateOutputSeparator(o.OutputSeparator)
}

// CheckSize rejects g when its side length exceeds limit. A limit of zero
// accepts every grid.
func CheckSize(g grid.Grid, limit int) error {
	if limit > 0 && g.Size() > limit {
		return errors.New(errors.ErrCodeInvalidInput,
			"grid is %d×%d, larger than the limit of %d per side", g.Height(), g.Width(), limit)
	}
	return nil
}

// =============================================================================
// Inputs and Results
// =============================================================================

// Input is one named source of lines.
type Input struct {
	Name string
	R    io.Reader
}

// Result describes a pipeline run.
type Result struct {
	RunID string
	Files []FileResult
}

// FileResult holds the statistics for one input.
type FileResult struct {
	Name  string
	Plan  string
	Stats Stats
}

// Stats contains per-input shapes and timings.
type Stats struct {
	InputRows, InputCols   int
	OutputRows, OutputCols int
	Bytes                  int
	CacheHit               bool
	ParseTime              time.Duration
	TransformTime          time.Duration
	FormatTime             time.Duration
}
