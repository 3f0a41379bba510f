package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newOverridesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overrides",
		Short: "Manage manual settings-URL overrides",
	}
	cmd.AddCommand(c.newOverridesListCmd())
	cmd.AddCommand(c.newOverridesSetCmd())
	cmd.AddCommand(c.newOverridesRemoveCmd())
	return cmd
}

func (c *CLI) newOverridesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the stored overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides, err := c.app.ListOverrides(cmd.Context())
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).overrides(overrides)
			return nil
		},
	}
}

func (c *CLI) newOverridesSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <basename> <urls>",
		Short: "Store override URLs for a plugin basename",
		Long: `Store override URLs for a plugin basename.

URLs are given as a comma-separated list. Only same-host absolute URLs and
relative admin.php?page=<slug> links are accepted; everything else is
rejected and reported. Rejecting every URL removes the entry.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			added, rejected, err := c.app.SetOverrides(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).overrideSet(args[0], added, rejected)
			return nil
		},
	}
}

func (c *CLI) newOverridesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <basename>",
		Short: "Remove the override entry for a plugin basename",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.RemoveOverride(cmd.Context(), args[0]); err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).ok("Override removed")
			return nil
		},
	}
}
