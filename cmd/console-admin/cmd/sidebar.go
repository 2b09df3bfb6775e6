package cmd

import (
	"github.com/spf13/cobra"

	"github.com/secposture/console-api/pkg/domain/navigation"
)

var sidebarCmd = &cobra.Command{
	Use:   "sidebar",
	Short: "Work with sidebar catalog files",
}

var sidebarValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a YAML sidebar definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := navigation.LoadFile(args[0])
		if err != nil {
			return err
		}

		items := 0
		for _, g := range tree.Groups {
			items += countItems(g.Items)
		}
		cmd.Printf("valid: %d groups, %d items\n", len(tree.Groups), items)
		return nil
	},
}

func countItems(items []navigation.Item) int {
	n := len(items)
	for _, item := range items {
		n += countItems(item.Children)
	}
	return n
}

func init() {
	sidebarCmd.AddCommand(sidebarValidateCmd)
}
