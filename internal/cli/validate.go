package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/queryforge/queryforge"
)

// ValidateResult holds validation results for JSON output.
type ValidateResult struct {
	Valid     bool     `json:"valid"`
	Formatted string   `json:"formatted,omitempty"`
	Errors    []string `json:"errors,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	var rawSQL bool

	cmd := &cobra.Command{
		Use:   "validate <document|sql-file>",
		Short: "Validate the SQL a document renders to",
		Long: `Render a query document and validate the resulting SQL: statement kind,
parenthesis balance, quote balance, and a reformatted copy.

With --sql the argument is read as raw SQL text instead of a document.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], rawSQL, cmd)
		},
	}

	cmd.Flags().BoolVar(&rawSQL, "sql", false, "treat the argument as a file of raw SQL text")

	return cmd
}

func runValidate(opts *RootOptions, path string, rawSQL bool, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	var report queryforge.ValidationReport
	if rawSQL {
		data, err := os.ReadFile(path)
		if err != nil {
			_ = formatter.Error(err.Error(), nil)
			return WrapExitError(ExitCommandError, "validate failed", err)
		}
		report = queryforge.ValidateSQL(string(data))
	} else {
		q, err := loadQuery(path)
		if err != nil {
			_ = formatter.Error(err.Error(), nil)
			return WrapExitError(ExitCommandError, "validate failed", err)
		}
		report = queryforge.Validate(q)
	}

	return outputReport(formatter, report)
}

func outputReport(formatter *OutputFormatter, report queryforge.ValidationReport) error {
	if formatter.Format == "json" {
		result := ValidateResult{
			Valid:     report.Valid,
			Formatted: report.Formatted,
			Errors:    report.Errors,
			Warnings:  report.Warnings,
		}
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		if report.Valid {
			fmt.Fprintln(formatter.Writer, "valid")
		} else {
			fmt.Fprintln(formatter.Writer, "invalid")
		}
		for _, e := range report.Errors {
			fmt.Fprintf(formatter.Writer, "  error: %s\n", e)
		}
		for _, w := range report.Warnings {
			fmt.Fprintf(formatter.Writer, "  warning: %s\n", w)
		}
		if formatter.Verbose && report.Formatted != "" {
			fmt.Fprintln(formatter.Writer)
			fmt.Fprintln(formatter.Writer, report.Formatted)
		}
	}

	if !report.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(report.Errors)))
	}
	return nil
}
