package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/queryforge/queryforge"
	"github.com/queryforge/queryforge/providers/fsstore"
	"github.com/queryforge/queryforge/providers/sqlitestore"
)

// templateOptions selects the backing template store.
type templateOptions struct {
	backend string // "fs" | "sqlite"
	dir     string // fs store directory
	db      string // sqlite store path
}

// TemplateEntry is one listed template for JSON output.
type TemplateEntry struct {
	Name string `json:"name"`
}

// NewTemplateCommand creates the template command group.
func NewTemplateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &templateOptions{}

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage stored query templates",
		Long: `Save, load, list, and delete named query documents.

Templates live in a directory of JSON files by default; --backend sqlite
switches to a single SQLite database. The default location honors
QUERYFORGE_HOME and falls back to ~/.queryforge.`,
	}

	cmd.PersistentFlags().StringVar(&opts.backend, "backend", "fs", "template storage backend (fs|sqlite)")
	cmd.PersistentFlags().StringVar(&opts.dir, "dir", "", "template directory for the fs backend")
	cmd.PersistentFlags().StringVar(&opts.db, "db", "", "database path for the sqlite backend")

	cmd.AddCommand(newTemplateSaveCommand(rootOpts, opts))
	cmd.AddCommand(newTemplateShowCommand(rootOpts, opts))
	cmd.AddCommand(newTemplateListCommand(rootOpts, opts))
	cmd.AddCommand(newTemplateDeleteCommand(rootOpts, opts))

	return cmd
}

func newTemplateSaveCommand(rootOpts *RootOptions, opts *templateOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "save <name> <document>",
		Short:         "Store a query document under a name",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			doc, err := loadDocument(args[1])
			if err != nil {
				_ = formatter.Error(err.Error(), nil)
				return WrapExitError(ExitCommandError, "template save failed", err)
			}

			store, closeStore, err := openStore(opts)
			if err != nil {
				_ = formatter.Error(err.Error(), nil)
				return WrapExitError(ExitCommandError, "template save failed", err)
			}
			defer closeStore()

			if err := store.Put(args[0], doc); err != nil {
				_ = formatter.Error(err.Error(), nil)
				return WrapExitError(ExitCommandError, "template save failed", err)
			}

			return formatter.Success(fmt.Sprintf("saved %q", args[0]))
		},
	}
}

func newTemplateShowCommand(rootOpts *RootOptions, opts *templateOptions) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:           "show <name>",
		Short:         "Print a stored query document",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			store, closeStore, err := openStore(opts)
			if err != nil {
				_ = formatter.Error(err.Error(), nil)
				return WrapExitError(ExitCommandError, "template show failed", err)
			}
			defer closeStore()

			doc, err := store.Get(args[0])
			if err != nil {
				_ = formatter.Error(err.Error(), nil)
				return WrapExitError(ExitCommandError, "template show failed", err)
			}

			var data []byte
			if asYAML {
				data, err = doc.YAML()
			} else {
				data, err = doc.JSON()
			}
			if err != nil {
				_ = formatter.Error(err.Error(), nil)
				return WrapExitError(ExitCommandError, "template show failed", err)
			}

			fmt.Fprintln(formatter.Writer, string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the document as YAML")

	return cmd
}

func newTemplateListCommand(rootOpts *RootOptions, opts *templateOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List stored templates",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			formatter := newFormatter(rootOpts, cmd)

			store, closeStore, err := openStore(opts)
			if err != nil {
				_ = formatter.Error(err.Error(), nil)
				return WrapExitError(ExitCommandError, "template list failed", err)
			}
			defer closeStore()

			infos, err := store.List()
			if err != nil {
				_ = formatter.Error(err.Error(), nil)
				return WrapExitError(ExitCommandError, "template list failed", err)
			}

			if formatter.Format == "json" {
				entries := make([]TemplateEntry, 0, len(infos))
				for _, info := range infos {
					entries = append(entries, TemplateEntry{Name: info.Name})
				}
				return formatter.Success(entries)
			}

			for _, info := range infos {
				fmt.Fprintln(formatter.Writer, info.Name)
			}
			return nil
		},
	}
}

func newTemplateDeleteCommand(rootOpts *RootOptions, opts *templateOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <name>",
		Short:         "Delete a stored template",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			store, closeStore, err := openStore(opts)
			if err != nil {
				_ = formatter.Error(err.Error(), nil)
				return WrapExitError(ExitCommandError, "template delete failed", err)
			}
			defer closeStore()

			existed, err := store.Delete(args[0])
			if err != nil {
				_ = formatter.Error(err.Error(), nil)
				return WrapExitError(ExitCommandError, "template delete failed", err)
			}
			if !existed {
				_ = formatter.Error(fmt.Sprintf("template %q not found", args[0]), nil)
				return NewExitError(ExitFailure, fmt.Sprintf("template %q not found", args[0]))
			}

			return formatter.Success(fmt.Sprintf("deleted %q", args[0]))
		},
	}
}

// openStore builds the selected template store. The returned closer is a
// no-op for the fs backend.
func openStore(opts *templateOptions) (queryforge.TemplateStore, func() error, error) {
	switch opts.backend {
	case "fs":
		dir := opts.dir
		if dir == "" {
			dir = filepath.Join(defaultHome(), "templates")
		}
		store, err := fsstore.New(dir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() error { return nil }, nil

	case "sqlite":
		path := opts.db
		if path == "" {
			path = filepath.Join(defaultHome(), "templates.db")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating store directory: %w", err)
		}
		store, err := sqlitestore.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown backend %q: must be fs or sqlite", opts.backend)
	}
}

// defaultHome resolves the queryforge data directory: QUERYFORGE_HOME wins,
// then ~/.queryforge, then a relative fallback when no home is known.
func defaultHome() string {
	if home := os.Getenv("QUERYFORGE_HOME"); home != "" {
		return home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".queryforge"
	}
	return filepath.Join(home, ".queryforge")
}
