package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/queryforge/queryforge"
)

// RenderResult holds the rendered statement for JSON output.
type RenderResult struct {
	SQL string `json:"sql"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <document>",
		Short: "Render a query document to SQL",
		Long: `Render a query document (JSON or YAML) to its SQL statement.

Rendering never fails on incomplete configurations; use the validate and
lint commands to check the result.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runRender(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	q, err := loadQuery(path)
	if err != nil {
		_ = formatter.Error(err.Error(), nil)
		return WrapExitError(ExitCommandError, "render failed", err)
	}

	sql := queryforge.Render(q)
	formatter.VerboseLog("Rendered %d bytes from %s", len(sql), path)

	if formatter.Format == "json" {
		return formatter.Success(RenderResult{SQL: sql})
	}
	fmt.Fprintln(formatter.Writer, sql)
	return nil
}
