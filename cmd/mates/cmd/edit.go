package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vdirtools/mates/internal/editor"
	"github.com/vdirtools/mates/internal/index"
)

var editCmd = &cobra.Command{
	Use:   "edit <file-or-query>",
	Short: "Open a contact in your editor",
	Long: `Open a contact in the configured editor.

The argument is either a filename directly under the contact directory
or a search query; a query must match exactly one contact. Clearing the
file removes the contact.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		editorCmd, err := cfg.RequireEditor()
		if err != nil {
			return err
		}

		lookup := func(query string) ([]string, error) {
			results, err := index.Query(cmd.Context(), cfg.Data.IndexFile, query, cfg.FilterArgv())
			if err != nil {
				return nil, err
			}
			return index.FilePaths(results), nil
		}

		outcome, err := editor.Edit(cmd.Context(), cfg.Data.ContactsDir, args[0], editorCmd, editor.Options{
			Lookup: lookup,
			Logger: logger,
		})
		if err != nil {
			return err
		}
		if outcome == editor.Removed {
			fmt.Fprintln(cmd.ErrOrStderr(), "Contact emptied, file removed.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
