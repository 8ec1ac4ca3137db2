package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/queryforge/queryforge"
)

// LintProblem is one reported defect for JSON output.
type LintProblem struct {
	Kind    string `json:"kind"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// LintResult holds lint results for JSON output.
type LintResult struct {
	Clean    bool          `json:"clean"`
	Problems []LintProblem `json:"problems,omitempty"`
}

// NewLintCommand creates the lint command.
func NewLintCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint <document>",
		Short: "Report configuration defects rendering would tolerate",
		Long: `Check a query document for configuration defects: missing driving
table, empty select list, duplicate or unknown aliases, operand shapes
that do not match their operator, and negative limit settings.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runLint(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	q, err := loadQuery(path)
	if err != nil {
		_ = formatter.Error(err.Error(), nil)
		return WrapExitError(ExitCommandError, "lint failed", err)
	}

	problems := queryforge.Lint(q)

	if formatter.Format == "json" {
		result := LintResult{Clean: len(problems) == 0}
		for _, p := range problems {
			result.Problems = append(result.Problems, LintProblem{
				Kind:    string(p.Kind),
				Subject: p.Subject,
				Message: p.Message,
			})
		}
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		if len(problems) == 0 {
			fmt.Fprintln(formatter.Writer, "clean")
		}
		for _, p := range problems {
			fmt.Fprintln(formatter.Writer, p.String())
		}
	}

	if len(problems) > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("lint found %d problem(s)", len(problems)))
	}
	return nil
}
