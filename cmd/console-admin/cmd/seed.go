package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/secposture/console-api/internal/config"
	"github.com/secposture/console-api/internal/infra/postgres"
	"github.com/secposture/console-api/pkg/domain/module"
)

// defaultCatalog is the module catalog seeded into fresh databases.
var defaultCatalog = []*module.Module{
	{ID: module.ModuleDashboard, Slug: "dashboard", Name: "Dashboard", Category: module.CategoryCore, DisplayOrder: 10, Active: true, ReleaseStatus: module.ReleaseStatusReleased},
	{ID: module.ModuleAssets, Slug: "assets", Name: "Assets", Category: module.CategorySecurity, DisplayOrder: 20, Active: true, ReleaseStatus: module.ReleaseStatusReleased},
	{ID: module.ModuleScope, Slug: "scope", Name: "Scope", Category: module.CategorySecurity, DisplayOrder: 30, Active: true, ReleaseStatus: module.ReleaseStatusReleased},
	{ID: module.ModuleFindings, Slug: "findings", Name: "Findings", Category: module.CategorySecurity, DisplayOrder: 40, Active: true, ReleaseStatus: module.ReleaseStatusReleased},
	{ID: module.ModuleCredentials, Slug: "credentials", Name: "Leaked Credentials", Category: module.CategorySecurity, DisplayOrder: 50, Active: true, ReleaseStatus: module.ReleaseStatusBeta},
	{ID: module.ModuleRemediation, Slug: "remediation", Name: "Remediation", Category: module.CategorySecurity, DisplayOrder: 60, Active: true, ReleaseStatus: module.ReleaseStatusReleased},
	{ID: module.ModuleScans, Slug: "scans", Name: "Scans", Category: module.CategorySecurity, DisplayOrder: 70, Active: true, ReleaseStatus: module.ReleaseStatusReleased},
	{ID: module.ModuleReports, Slug: "reports", Name: "Reports", Category: module.CategoryInsights, DisplayOrder: 80, Active: true, ReleaseStatus: module.ReleaseStatusComingSoon},
	{ID: module.ModuleAudit, Slug: "audit", Name: "Audit Log", Category: module.CategoryPlatform, DisplayOrder: 90, Active: true, ReleaseStatus: module.ReleaseStatusReleased},
	{ID: module.ModuleTeam, Slug: "team", Name: "Team", Category: module.CategoryPlatform, DisplayOrder: 100, Active: true, ReleaseStatus: module.ReleaseStatusReleased},
	{ID: module.ModuleIntegrations, Slug: "integrations", Name: "Integrations", Category: module.CategoryPlatform, DisplayOrder: 110, Active: true, ReleaseStatus: module.ReleaseStatusReleased},
	{ID: module.ModuleBilling, Slug: "billing", Name: "Billing", Category: module.CategoryPlatform, DisplayOrder: 120, Active: true, ReleaseStatus: module.ReleaseStatusReleased},
}

// defaultPlans maps plan IDs to names and the modules each plan includes.
var defaultPlans = []struct {
	ID      string
	Name    string
	Modules []string
}{
	{
		ID:   "starter",
		Name: "Starter",
		Modules: []string{
			module.ModuleDashboard, module.ModuleAssets, module.ModuleScope,
			module.ModuleFindings, module.ModuleTeam, module.ModuleBilling,
		},
	},
	{
		ID:   "professional",
		Name: "Professional",
		Modules: []string{
			module.ModuleDashboard, module.ModuleAssets, module.ModuleScope,
			module.ModuleFindings, module.ModuleCredentials, module.ModuleRemediation,
			module.ModuleScans, module.ModuleTeam, module.ModuleIntegrations,
			module.ModuleBilling,
		},
	},
	{
		ID:   "enterprise",
		Name: "Enterprise",
		Modules: []string{
			module.ModuleDashboard, module.ModuleAssets, module.ModuleScope,
			module.ModuleFindings, module.ModuleCredentials, module.ModuleRemediation,
			module.ModuleScans, module.ModuleReports, module.ModuleAudit,
			module.ModuleTeam, module.ModuleIntegrations, module.ModuleBilling,
		},
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the module catalog and plans",
	Long:  "Upserts the built-in module catalog and subscription plans into the database. Existing rows are updated in place.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		repo, cleanup, err := connectModuleRepo()
		if err != nil {
			return err
		}
		defer cleanup()

		for _, m := range defaultCatalog {
			if err := repo.UpsertModule(cmd.Context(), m); err != nil {
				return err
			}
			cmd.Printf("seeded module %s (%s)\n", m.ID, m.ReleaseStatus)
		}

		for _, p := range defaultPlans {
			if err := repo.UpsertPlan(cmd.Context(), p.ID, p.Name, p.Modules); err != nil {
				return err
			}
			cmd.Printf("seeded plan %s (%d modules)\n", p.ID, len(p.Modules))
		}

		cmd.Printf("%d modules, %d plans seeded\n", len(defaultCatalog), len(defaultPlans))
		return nil
	},
}

// connectModuleRepo opens a database connection from the environment.
func connectModuleRepo() (*postgres.ModuleRepository, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	db, err := postgres.New(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	return postgres.NewModuleRepository(db), func() { _ = db.Close() }, nil
}
