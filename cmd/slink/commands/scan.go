package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/slink/internal/app"
)

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Resolve settings links for every installed plugin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noCache, _ := cmd.Flags().GetBool("no-cache")
			asJSON, _ := cmd.Flags().GetBool("json")

			report, err := c.app.Scan(cmd.Context(), app.ScanOptions{NoCache: noCache})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				payload, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(out, string(payload))
				return nil
			}

			newPrinter(out).scanReport(report)
			return nil
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the caches and rescan menus and plugins")
	cmd.Flags().Bool("json", false, "Print the report as JSON")
	return cmd
}
