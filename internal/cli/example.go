package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/queryforge/queryforge"
)

// NewExampleCommand creates the example command.
func NewExampleCommand(rootOpts *RootOptions) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print a sample query document",
		Long: `Print a ready-made query document joining a products table to its
categories, with a price filter, sorting, and a row limit. Useful as a
starting point for your own documents:

  queryforge example > query.json
  queryforge render query.json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExample(rootOpts, asYAML, cmd)
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the document as YAML")

	return cmd
}

func runExample(opts *RootOptions, asYAML bool, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	doc := queryforge.Snapshot(exampleQuery())

	var data []byte
	var err error
	if asYAML {
		data, err = doc.YAML()
	} else {
		data, err = doc.JSON()
	}
	if err != nil {
		_ = formatter.Error(err.Error(), nil)
		return WrapExitError(ExitCommandError, "example failed", err)
	}

	fmt.Fprintln(formatter.Writer, string(data))
	return nil
}

func exampleQuery() *queryforge.Query {
	q := queryforge.NewQuery()
	q.AddTable("products", "p", []string{"product_id", "product_name", "price"})
	q.AddJoin("p", "categories", "c", "category_id", "category_id", queryforge.LeftJoin, []string{"category_name"})
	q.AddFilter("p", "price", queryforge.GreaterThan, 100, queryforge.And)
	q.AddOrderBy("p", "price", queryforge.Descending)
	q.SetLimit(10, 0)
	return q
}
