// admin.go - maintenance commands for the session draft cache
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var draftsCmd = &cobra.Command{
	Use:   "drafts",
	Short: "Manage cached contact form drafts",
}

// Expired drafts are purged hourly by the server; this runs the same cleanup
// on demand, e.g. from cron when the server is down.
var draftsPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete drafts older than DRAFT_TTL",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, store, closeDB, err := setup()
		if err != nil {
			return err
		}
		defer closeDB()

		n, err := store.Purge(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %d drafts older than %s\n", n, cfg.DraftTTL)
		return nil
	},
}

func init() {
	draftsCmd.AddCommand(draftsPurgeCmd)
}
