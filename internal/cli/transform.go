package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/transpose/internal/config"
	"github.com/matzehuels/transpose/pkg/errors"
	"github.com/matzehuels/transpose/pkg/pipeline"
	"github.com/matzehuels/transpose/pkg/rotate"
)

// columnFlags are the options that describe how input lines split into
// cells. They are shared by every command that reads a grid.
type columnFlags struct {
	separator   string
	pattern     string
	width       string
	keepSpaces  bool
	quoted      bool
	dquoted     bool
	inputFormat string
}

func (f *columnFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.separator, "separator", "t", "", `input separator regex (default "\t|,\s*| +")`)
	fs.StringVarP(&f.pattern, "pattern", "p", "", "regex matching the cells themselves")
	fs.StringVarP(&f.width, "width", "w", "", `fixed column widths, e.g. "3,5" or "2:4,*:8"`)
	fs.BoolVarP(&f.keepSpaces, "keepspaces", "l", false, "keep leading whitespace on each line")
	fs.BoolVarP(&f.quoted, "quoted", "q", false, "cells may be quoted with ' or \"")
	fs.BoolVarP(&f.dquoted, "dquoted", "Q", false, "like --quoted, and a doubled quote escapes itself")
	fs.StringVar(&f.inputFormat, "input-format", "", "input format: text or json")
}

// options builds pipeline options from the flags of cmd.
func (f *columnFlags) options(cmd *cobra.Command) pipeline.Options {
	var o pipeline.Options
	o.Columns.Separator = f.separator
	o.Columns.SeparatorSet = cmd.Flags().Changed("separator")
	o.Columns.Pattern = f.pattern
	o.Columns.Width = f.width
	o.Columns.KeepSpaces = f.keepSpaces
	o.Columns.Quoted = f.quoted
	o.Columns.DQuoted = f.dquoted
	o.InputFormat = f.inputFormat
	return o
}

// transformFlags holds the root command's own flags.
type transformFlags struct {
	xflip, yflip, tac bool
	rotate            string
	skew              bool
	outputSeparator   string
	format            string
	cache             cacheFlags
}

// transformCommand creates the command that reads grids and writes them
// transposed, flipped or rotated.
func (c *CLI) transformCommand() *cobra.Command {
	var f transformFlags

	cmd := &cobra.Command{
		Use:   "transpose [flags] [file...]",
		Args:  cobra.ArbitraryArgs,
		Short: "Transpose, flip and rotate text tables",
		Long: `Read a text table from each file (or stdin) and write it transposed.

Rows are split into cells by --separator, --pattern or --width. With
-x the row order is reversed; with -y every row is reversed; with
--rotate (or the shorthands +90, -90, +45, -45, 180) the table turns
by a multiple of 45 degrees. Odd multiples of 45 lay the table out as a
diamond, or as a skewed parallelogram with --skew.`,
		Example: `  # Swap rows and columns of a CSV file
  transpose -t , -o , data.csv

  # Rotate a quarter turn clockwise
  ps aux | transpose -90

  # Print lines in reverse order
  transpose --tac log.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTransform(cmd, args, &f)
		},
	}

	fl := cmd.Flags()
	fl.BoolVarP(&f.xflip, "xflip", "x", false, "reverse the order of rows")
	fl.BoolVarP(&f.yflip, "yflip", "y", false, "reverse the cells of every row")
	fl.BoolVar(&f.tac, "tac", false, "alias for --xflip")
	fl.StringVar(&f.rotate, "rotate", "", "rotate by a multiple of 45 degrees, positive is counterclockwise")
	fl.BoolVar(&f.skew, "skew", false, "lay out 45 degree rotations as a parallelogram")
	fl.StringVarP(&f.outputSeparator, "output-separator", "o", "", "output separator (default derived from the input separator)")
	fl.StringVarP(&f.format, "format", "f", "", "output format: text or json")
	fl.BoolVar(&f.cache.enabled, "cache", false, "cache results in the user cache directory")
	fl.StringVar(&f.cache.dir, "cache-dir", "", "cache results in this directory")
	fl.StringVar(&f.cache.redis, "redis", "", "cache results in redis at this URL")
	fl.BoolVar(&f.cache.noCache, "no-cache", false, "disable caching even if configured")
	fl.BoolVar(&f.cache.refresh, "refresh", false, "recompute cached results")
	_ = fl.MarkHidden("tac")
	cmd.MarkFlagsMutuallyExclusive("xflip", "yflip", "rotate")
	cmd.MarkFlagsMutuallyExclusive("tac", "yflip", "rotate")
	cmd.MarkFlagsMutuallyExclusive("cache-dir", "redis", "no-cache")

	return cmd
}

func (c *CLI) runTransform(cmd *cobra.Command, args []string, f *transformFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if cfg.Path != "" {
		logger.Debug("loaded config", "path", cfg.Path)
	}

	opts, err := f.options(cmd, c.columns.options(cmd))
	if err != nil {
		return err
	}
	cfg.Apply(&opts, cmd.Flags().Changed)

	runner, err := c.newRunner(f.cache, cfg)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	inputs, closeAll, err := openInputs(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer closeAll()

	prog := newProgress(logger)
	res, err := runner.Run(ctx, inputs, cmd.OutOrStdout(), opts)
	if err != nil {
		return err
	}
	hits := 0
	for _, fr := range res.Files {
		if fr.Stats.CacheHit {
			hits++
		}
	}
	prog.done(fmt.Sprintf("Transformed %d inputs, %d cached", len(res.Files), hits))
	return nil
}

// options completes o with the transform request and output settings.
func (f *transformFlags) options(cmd *cobra.Command, o pipeline.Options) (pipeline.Options, error) {
	switch {
	case f.xflip || f.tac:
		o.Request = rotate.FlipX()
	case f.yflip:
		o.Request = rotate.FlipY()
	case cmd.Flags().Changed("rotate"):
		deg, err := rotate.ParseAngle(f.rotate)
		if err != nil {
			return o, err
		}
		o.Request = rotate.Angle(deg, f.skew)
	default:
		o.Request = rotate.Transpose()
	}
	if cmd.Flags().Changed("output-separator") {
		o.OutputSeparator = f.outputSeparator
		o.OutputSeparatorSet = true
	}
	o.Format = f.format
	o.Refresh = f.cache.refresh
	return o, nil
}

// openInputs opens every named file, or stdin when there are none. A name
// of "-" also reads stdin.
func openInputs(names []string, stdin io.Reader) ([]pipeline.Input, func(), error) {
	if len(names) == 0 {
		names = []string{pipeline.StdinName}
	}
	var files []*os.File
	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}
	inputs := make([]pipeline.Input, 0, len(names))
	for _, name := range names {
		if name == pipeline.StdinName {
			inputs = append(inputs, pipeline.Input{Name: name, R: stdin})
			continue
		}
		f, err := os.Open(name)
		if err != nil {
			closeAll()
			if os.IsNotExist(err) {
				return nil, nil, errors.New(errors.ErrCodeFileNotFound, "%s: no such file", name)
			}
			return nil, nil, err
		}
		files = append(files, f)
		inputs = append(inputs, pipeline.Input{Name: name, R: f})
	}
	return inputs, closeAll, nil
}

// loadedConfig returns the config for cmd. A broken default file is
// ignored; a file named by --config is not.
func (c *CLI) loadedConfig() (*config.Config, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		if c.configPath != "" {
			return nil, err
		}
		return &config.Config{}, nil
	}
	return cfg, nil
}
