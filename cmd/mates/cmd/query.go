package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vdirtools/mates/internal/index"
)

// runQuery executes one query against the index and prints the chosen
// projection of the results to the command's stdout.
func runQuery(cmd *cobra.Command, query string, project func([]index.Result) []string) error {
	results, err := index.Query(cmd.Context(), cfg.Data.IndexFile, query, cfg.FilterArgv())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, line := range project(results) {
		fmt.Fprintln(out, line)
	}
	return nil
}

var muttQueryCmd = &cobra.Command{
	Use:   "mutt-query <query>",
	Short: "Search contacts, output for mutt's query_command",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// mutt expects one line of preamble before the matches.
		fmt.Fprintln(cmd.OutOrStdout())
		return runQuery(cmd, args[0], index.MuttLines)
	},
}

var fileQueryCmd = &cobra.Command{
	Use:   "file-query <query>",
	Short: "Search contacts, output just the filenames",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, args[0], index.FilePaths)
	},
}

var emailQueryCmd = &cobra.Command{
	Use:   "email-query <query>",
	Short: `Search contacts, output "name <email>"`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, args[0], index.EmailLines)
	},
}

func init() {
	rootCmd.AddCommand(muttQueryCmd)
	rootCmd.AddCommand(fileQueryCmd)
	rootCmd.AddCommand(emailQueryCmd)
}
