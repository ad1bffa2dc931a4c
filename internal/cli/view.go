package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/transpose/pkg/columns"
	"github.com/matzehuels/transpose/pkg/errors"
	"github.com/matzehuels/transpose/pkg/grid"
	"github.com/matzehuels/transpose/pkg/grid/transform"
	pio "github.com/matzehuels/transpose/pkg/io"
	"github.com/matzehuels/transpose/pkg/pipeline"
	"github.com/matzehuels/transpose/pkg/rotate"
)

// viewCommand creates the interactive grid viewer.
func (c *CLI) viewCommand() *cobra.Command {
	var skew bool

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Rotate and flip a table interactively",
		Long: `Show a table in the terminal and transform it with the keyboard.

  ←/→  rotate 45° counterclockwise / clockwise
  x    flip rows        y    flip columns
  t    transpose        s    toggle skew
  r    reset            q    quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.columns.options(cmd)
			cfg, err := c.loadedConfig()
			if err != nil {
				return err
			}
			cfg.Apply(&opts, cmd.Flags().Changed)
			opts.SetDefaults()

			inputs, closeAll, err := openInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer closeAll()
			g, err := readGrid(inputs[0], opts)
			if err != nil {
				return err
			}

			m := newViewModel(g)
			m.skew = skew || opts.Request.Skew
			popts := []tea.ProgramOption{
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen(),
			}
			if inputs[0].Name == pipeline.StdinName {
				popts = append(popts, tea.WithInputTTY())
			}
			_, err = tea.NewProgram(m, popts...).Run()
			return err
		},
	}
	cmd.Flags().BoolVar(&skew, "skew", false, "start with skewed 45 degree layout")
	return cmd
}

// readGrid parses one input the way the pipeline does.
func readGrid(in pipeline.Input, opts pipeline.Options) (grid.Grid, error) {
	if err := errors.ValidateFormat(opts.InputFormat); err != nil {
		return nil, err
	}
	if opts.InputFormat == pipeline.FormatJSON {
		return pio.ReadJSON(in.R)
	}
	p, err := columns.NewParser(opts.Columns)
	if err != nil {
		return nil, err
	}
	return pio.ReadText(in.R, p)
}

// =============================================================================
// viewModel - Interactive transform state
// =============================================================================

// viewModel holds the flipped base grid and the rotation applied on top.
type viewModel struct {
	orig  grid.Grid
	base  grid.Grid
	angle int // degrees counterclockwise, in [0, 360)
	skew  bool

	out grid.Grid
	err error
}

func newViewModel(g grid.Grid) viewModel {
	m := viewModel{orig: g, base: g}
	m.render()
	return m
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		m.angle = (m.angle + 45) % 360
	case "right", "l":
		m.angle = (m.angle + 315) % 360
	case "x":
		m.base = transform.FlipV(m.base)
	case "y":
		m.base = transform.FlipH(m.base)
	case "t":
		if t, err := transform.Transpose(grid.Rectangularize(m.base)); err == nil {
			m.base = t
		}
	case "s":
		m.skew = !m.skew
	case "r":
		m.base, m.angle, m.skew = m.orig, 0, false
	default:
		return m, nil
	}
	m.render()
	return m, nil
}

// render recomputes the displayed grid.
func (m *viewModel) render() {
	if m.angle == 0 {
		m.out, m.err = grid.Rectangularize(m.base), nil
		return
	}
	m.out, m.err = rotate.Rotate(rotate.Angle(m.signedAngle(), m.skew), m.base)
}

// signedAngle maps the angle into (-180, 180].
func (m viewModel) signedAngle() int {
	if m.angle > 180 {
		return m.angle - 360
	}
	return m.angle
}

func (m viewModel) status() string {
	layout := "diamond"
	if m.skew {
		layout = "skew"
	}
	return fmt.Sprintf("%+d°  %s  %d×%d", m.signedAngle(), layout, m.out.Height(), m.out.Width())
}

func (m viewModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("transpose"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(m.status()))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(styleIconError.Render(iconError) + " " + m.err.Error())
	case m.out.Height() == 0:
		b.WriteString(StyleDim.Render("(empty)"))
	default:
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(styleBorder).
			BorderRow(true).
			Rows(m.out...).
			StyleFunc(func(row, col int) lipgloss.Style { return styleCell })
		b.WriteString(t.Render())
	}

	b.WriteString("\n\n")
	b.WriteString(styleHelp.Render("←/→ rotate  x/y flip  t transpose  s skew  r reset  q quit"))
	b.WriteString("\n")
	return b.String()
}

var _ tea.Model = viewModel{}
