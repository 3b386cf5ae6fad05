package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vdirtools/mates/internal/index"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rewrite the contact index",
	Long: `Rebuild the index file from the contact directory.

The index is a disposable cache: it is rewritten from scratch on every
run, one "email<TAB>name<TAB>path" line per contact address. Contacts
that fail to parse or have no name are reported and skipped without
failing the rebuild.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("rebuilding index", "index", cfg.Data.IndexFile, "contacts", cfg.Data.ContactsDir)
		return index.Build(cfg.Data.ContactsDir, cfg.Data.IndexFile, logger)
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
