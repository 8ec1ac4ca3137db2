package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/queryforge/queryforge"
)

// DescribeResult holds narrative output for JSON mode.
type DescribeResult struct {
	Text string `json:"text"`
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(rootOpts *RootOptions) *cobra.Command {
	var requirements bool

	cmd := &cobra.Command{
		Use:   "describe <document>",
		Short: "Explain a query document in plain language",
		Long: `Produce a prose summary of what the query does, derived from the
document alone.

With --requirements the output is phrased as a requirements transcript
suitable for handing to another tool or person.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(rootOpts, args[0], requirements, cmd)
		},
	}

	cmd.Flags().BoolVar(&requirements, "requirements", false, "emit a requirements transcript instead of prose")

	return cmd
}

func runDescribe(opts *RootOptions, path string, requirements bool, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	q, err := loadQuery(path)
	if err != nil {
		_ = formatter.Error(err.Error(), nil)
		return WrapExitError(ExitCommandError, "describe failed", err)
	}

	text := queryforge.Describe(q)
	if requirements {
		text = queryforge.Requirements(q)
	}

	if formatter.Format == "json" {
		return formatter.Success(DescribeResult{Text: text})
	}
	fmt.Fprintln(formatter.Writer, text)
	return nil
}
