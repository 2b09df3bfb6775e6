package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "Manage the module catalog and tenant overrides",
}

var modulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the module catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		repo, cleanup, err := connectModuleRepo()
		if err != nil {
			return err
		}
		defer cleanup()

		modules, err := repo.ListModules(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tACTIVE\tSTATUS")
		for _, m := range modules {
			fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n", m.ID, m.Name, m.Category, m.Active, m.ReleaseStatus)
		}
		return w.Flush()
	},
}

var modulesEntitlementsCmd = &cobra.Command{
	Use:   "entitlements <tenant-id>",
	Short: "Show a tenant's resolved module entitlements",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, cleanup, err := connectModuleRepo()
		if err != nil {
			return err
		}
		defer cleanup()

		entitlements, err := repo.GetTenantEntitlements(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MODULE\tIN PLAN\tACTIVE\tSTATUS")
		for _, e := range entitlements {
			fmt.Fprintf(w, "%s\t%t\t%t\t%s\n", e.ModuleID, e.IncludedInPlan, e.Active, e.ReleaseStatus)
		}
		return w.Flush()
	},
}

var (
	flagOverrideEnable  bool
	flagOverrideDisable bool
)

var modulesOverrideCmd = &cobra.Command{
	Use:   "override <tenant-id> <module-id>",
	Short: "Set or clear a per-tenant module override",
	Long: `Grants or revokes a module for one tenant independent of its plan.
With neither --enable nor --disable, the override is cleared and plan
entitlement applies again.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagOverrideEnable && flagOverrideDisable {
			return fmt.Errorf("--enable and --disable are mutually exclusive")
		}

		repo, cleanup, err := connectModuleRepo()
		if err != nil {
			return err
		}
		defer cleanup()

		tenantID, moduleID := args[0], args[1]
		if _, err := repo.GetModuleByID(cmd.Context(), moduleID); err != nil {
			return err
		}

		switch {
		case flagOverrideEnable:
			err = repo.SetTenantOverride(cmd.Context(), tenantID, moduleID, true)
		case flagOverrideDisable:
			err = repo.SetTenantOverride(cmd.Context(), tenantID, moduleID, false)
		default:
			err = repo.ClearTenantOverride(cmd.Context(), tenantID, moduleID)
		}
		if err != nil {
			return err
		}

		cmd.Printf("override updated for %s/%s\n", tenantID, moduleID)
		return nil
	},
}

func init() {
	modulesOverrideCmd.Flags().BoolVar(&flagOverrideEnable, "enable", false, "Enable the module for the tenant")
	modulesOverrideCmd.Flags().BoolVar(&flagOverrideDisable, "disable", false, "Disable the module for the tenant")

	modulesCmd.AddCommand(modulesListCmd)
	modulesCmd.AddCommand(modulesEntitlementsCmd)
	modulesCmd.AddCommand(modulesOverrideCmd)
}
