package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vdirtools/mates/internal/contact"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Read a mail from stdin, add its sender to the contacts",
	Long: `Read one raw email message from stdin, extract the sender from its
From header and write a new contact file. The created file's path is
printed on stdout.

Example:
  mutt users pipe an open message to it:  | mates add`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := contact.Create(cfg.Data.ContactsDir, cmd.InOrStdin(), logger)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
