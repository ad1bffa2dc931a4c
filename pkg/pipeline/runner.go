package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/transpose/pkg/cache"
	"github.com/matzehuels/transpose/pkg/columns"
	"github.com/matzehuels/transpose/pkg/grid"
	"github.com/matzehuels/transpose/pkg/grid/transform"
	pio "github.com/matzehuels/transpose/pkg/io"
	"github.com/matzehuels/transpose/pkg/observability"
	"github.com/matzehuels/transpose/pkg/rotate"
)

// Runner executes pipelines. It holds no per-run state, so one Runner may
// serve concurrent calls with different options.
type Runner struct {
	Cache     cache.Cache
	CacheName string // backend label for cache hooks
	Logger    *log.Logger
}

// NewRunner returns a runner. A nil cache disables caching and a nil
// logger discards output.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Cache: c, CacheName: cacheName(c), Logger: logger}
}

func cacheName(c cache.Cache) string {
	switch c.(type) {
	case *cache.FileCache:
		return "file"
	case *cache.RedisCache:
		return "redis"
	}
	return "null"
}

// Run processes every input in order and writes the results to w. With
// more than one input each result is preceded by a "==> name <==" line.
func (r *Runner) Run(ctx context.Context, inputs []Input, w io.Writer, opts Options) (*Result, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	res := &Result{RunID: uuid.NewString()}
	logger := r.Logger.With("run", res.RunID[:8])
	logger.Debug("starting", "inputs", len(inputs), "request", opts.Request.String())

	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if len(inputs) > 1 {
			if _, err := fmt.Fprintf(w, "==> %s <==\n", in.Name); err != nil {
				return res, err
			}
		}
		fr, err := r.runOne(ctx, logger, in, w, opts)
		if err != nil {
			return res, fmt.Errorf("%s: %w", in.Name, err)
		}
		res.Files = append(res.Files, fr)
	}
	return res, nil
}

func (r *Runner) runOne(ctx context.Context, logger *log.Logger, in Input, w io.Writer, opts Options) (FileResult, error) {
	fr := FileResult{Name: in.Name}
	raw, err := io.ReadAll(in.R)
	if err != nil {
		return fr, fmt.Errorf("read: %w", err)
	}

	key := cache.Key(raw, opts)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, r.CacheName)
			logger.Debug("cache hit", "input", in.Name, "bytes", len(data))
			fr.Stats.CacheHit = true
			fr.Stats.Bytes = len(data)
			_, err := w.Write(data)
			return fr, err
		}
		observability.Cache().OnCacheMiss(ctx, r.CacheName)
	}

	g, err := r.parse(ctx, in.Name, raw, opts, &fr.Stats)
	if err != nil {
		return fr, fmt.Errorf("parse: %w", err)
	}
	if err := CheckSize(g, opts.MaxSize); err != nil {
		return fr, err
	}
	if err := ctx.Err(); err != nil {
		return fr, err
	}

	plan, out, err := r.transform(ctx, g, opts.Request, &fr.Stats)
	if err != nil {
		return fr, fmt.Errorf("transform: %w", err)
	}
	fr.Plan = plan
	logger.Debug("transformed", "input", in.Name, "plan", plan,
		"rows", fr.Stats.OutputRows, "cols", fr.Stats.OutputCols,
		"duration", fr.Stats.TransformTime)
	if err := ctx.Err(); err != nil {
		return fr, err
	}

	data, err := r.format(ctx, out, opts, &fr.Stats)
	if err != nil {
		return fr, fmt.Errorf("format: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fr, err
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLResult); err != nil {
		logger.Warn("cache write failed", "input", in.Name, "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, r.CacheName, len(data))
	}
	return fr, nil
}

// parse turns raw input into a grid. FlipX keeps each line whole.
func (r *Runner) parse(ctx context.Context, name string, raw []byte, opts Options, st *Stats) (g grid.Grid, err error) {
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, name)
	start := time.Now()
	defer func() {
		st.ParseTime = time.Since(start)
		hooks.OnParseComplete(ctx, name, len(g), st.ParseTime, err)
	}()

	if opts.InputFormat == FormatJSON {
		g, err = pio.ReadJSON(bytes.NewReader(raw))
	} else {
		g, err = parseText(raw, opts)
	}
	if err != nil {
		return nil, err
	}
	st.InputRows, st.InputCols = g.Height(), g.Width()
	return g, nil
}

func parseText(raw []byte, opts Options) (grid.Grid, error) {
	lines, err := pio.ReadLines(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	if opts.Request.Mode == rotate.ModeFlipX {
		g := make(grid.Grid, len(lines))
		for i, l := range lines {
			g[i] = []string{l}
		}
		return g, nil
	}
	p, err := columns.NewParser(opts.Columns)
	if err != nil {
		return nil, err
	}
	return p.Parse(lines)
}

func (r *Runner) transform(ctx context.Context, g grid.Grid, req rotate.Request, st *Stats) (string, grid.Grid, error) {
	plan, err := rotate.NewPlan(req)
	if err != nil {
		return "", nil, err
	}
	name := plan.String()
	hooks := observability.Pipeline()
	hooks.OnTransformStart(ctx, name, g.Height(), g.Width())
	start := time.Now()
	out, err := r.Transform(ctx, g, req)
	st.TransformTime = time.Since(start)
	hooks.OnTransformComplete(ctx, name, st.TransformTime, err)
	if err != nil {
		return name, nil, err
	}
	st.OutputRows, st.OutputCols = out.Height(), out.Width()
	return name, out, nil
}

// Transform applies req to g. Row reversal (FlipX) and per-row reversal
// (FlipY) accept ragged grids; everything else goes through the rotation
// planner.
func (r *Runner) Transform(ctx context.Context, g grid.Grid, req rotate.Request) (grid.Grid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch req.Mode {
	case rotate.ModeFlipX:
		return transform.FlipV(g), nil
	case rotate.ModeFlipY:
		return transform.FlipH(g), nil
	}
	return rotate.Rotate(req, g)
}

func (r *Runner) format(ctx context.Context, g grid.Grid, opts Options, st *Stats) (data []byte, err error) {
	hooks := observability.Pipeline()
	hooks.OnFormatStart(ctx, opts.Format)
	start := time.Now()
	defer func() {
		st.FormatTime = time.Since(start)
		st.Bytes = len(data)
		hooks.OnFormatComplete(ctx, opts.Format, len(data), st.FormatTime, err)
	}()

	var buf bytes.Buffer
	if opts.Format == FormatJSON {
		err = pio.WriteJSON(&buf, g)
	} else {
		err = pio.WriteText(&buf, g, opts.OutputSeparator)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
