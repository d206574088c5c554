package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/svgkit/pkg/diag"
	"github.com/matzehuels/svgkit/pkg/errors"
	pkgio "github.com/matzehuels/svgkit/pkg/io"
)

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check <scene>...",
		Short: "Build scenes without writing and summarize their diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total := 0
			for _, input := range args {
				n, err := c.runCheck(cmd.Context(), input)
				if err != nil {
					return err
				}
				total += n
			}
			if strict && total > 0 {
				return errors.New(errors.ErrCodeInvalidScene, "%d diagnostics in strict mode", total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail if any scene reports a diagnostic")

	return cmd
}

// runCheck builds one scene and prints its diagnostic summary. It returns
// the number of diagnostics.
func (c *CLI) runCheck(ctx context.Context, input string) (int, error) {
	format, err := errors.ValidateSceneFilename(input)
	if err != nil {
		return 0, err
	}
	src, err := pkgio.ReadFile(input)
	if err != nil {
		return 0, err
	}
	_, elements, rec, err := c.build(ctx, input, src, format, "")
	if err != nil {
		return 0, err
	}

	fmt.Fprintln(c.out, StyleTitle.Render(input))
	if rec.Count() == 0 {
		printSuccess(c.out, "No diagnostics (%d elements)", elements)
		return 0, nil
	}
	printWarning(c.out, "%d diagnostics (%d elements)", rec.Count(), elements)
	fmt.Fprintln(c.out, diagnosticTable(rec.All()))
	return rec.Count(), nil
}

// kindsCommand lists the diagnostic catalogue.
func (c *CLI) kindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the diagnostic kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(c.out, kindsTable())
			printDetail(c.out, "%d kinds", len(diag.Kinds()))
			return nil
		},
	}
}
