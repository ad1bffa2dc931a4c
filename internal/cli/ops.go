package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/matzehuels/transpose/pkg/errors"
	"github.com/matzehuels/transpose/pkg/grid/symmetry"
)

// maxOpsDim bounds --dim; 6×6 already has 46080 matrices.
const maxOpsDim = 4

// opsCommand creates the command that lists the grid symmetries.
func (c *CLI) opsCommand() *cobra.Command {
	var (
		dim int
		raw bool
	)

	cmd := &cobra.Command{
		Use:   "ops",
		Short: "List the symmetries of a square grid",
		Long: `List the eight symmetries of a square grid with their matrices.

With --dim n every n×n signed permutation matrix is listed instead, in
generation order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dim < 1 || dim > maxOpsDim {
				return errors.New(errors.ErrCodeInvalidInput, "--dim must be between 1 and %d", maxOpsDim)
			}
			var md string
			if dim == 2 {
				md = opsMarkdown()
			} else {
				md = matricesMarkdown(dim)
			}
			out := cmd.OutOrStdout()
			if raw || !isTerminal(out) {
				_, err := io.WriteString(out, md)
				return err
			}
			r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
			if err != nil {
				return err
			}
			rendered, err := r.Render(md)
			if err != nil {
				return err
			}
			_, err = io.WriteString(out, rendered)
			return err
		},
	}
	cmd.Flags().IntVar(&dim, "dim", 2, "matrix dimension")
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without rendering")
	return cmd
}

// opsMarkdown returns a table of the named 2×2 symmetries.
func opsMarkdown() string {
	var b strings.Builder
	b.WriteString("| op | matrix | inverse | det |\n")
	b.WriteString("|----|--------|---------|-----|\n")
	for _, op := range symmetry.Ops() {
		m := op.Matrix()
		fmt.Fprintf(&b, "| %s | `%s` | %s | %+d |\n", op, m, op.Inverse(), m.Det())
	}
	return b.String()
}

// matricesMarkdown lists Generate(n) with each matrix as a block.
func matricesMarkdown(n int) string {
	ms := symmetry.Generate(n)
	var b strings.Builder
	fmt.Fprintf(&b, "# %d×%d signed permutations (%d)\n\n", n, n, len(ms))
	for i, m := range ms {
		fmt.Fprintf(&b, "%d. det %+d\n\n", i+1, m.Det())
		fmt.Fprintf(&b, "```\n%v\n```\n\n", mat.Formatted(m.Dense(), mat.Squeeze()))
	}
	return b.String()
}
