package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCategoriesCommand creates the categories command
func NewCategoriesCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List event categories and their service packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			styles := NewStyles(out)
			for _, entry := range container.App.Catalog.Entries() {
				fmt.Fprintf(out, "%s %s\n", styles.Banner.Render(fmt.Sprintf("%-11s", entry.Category)), entry.Services)
			}
			return nil
		},
	}
}
