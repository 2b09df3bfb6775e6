package navigation

import (
	"github.com/secposture/console-api/pkg/domain/module"
	"github.com/secposture/console-api/pkg/domain/permission"
	"github.com/secposture/console-api/pkg/domain/tenant"
)

// DefaultTree is the compiled-in sidebar used when no external definition is
// configured. Deployments override it with a YAML file (config SIDEBAR_PATH).
func DefaultTree() Tree {
	return Tree{
		Groups: []Group{
			{
				Title: "Overview",
				Items: []Item{
					{
						Title: "Dashboard",
						URL:   "/",
						Icon:  "layout-dashboard",
						Rule:  Rule{Permissions: []permission.Permission{permission.DashboardRead}},
					},
				},
			},
			{
				Title: "Attack Surface",
				Items: []Item{
					{
						Title: "Scope Targets",
						URL:   "/scope",
						Icon:  "crosshair",
						Rule: Rule{
							Module:      module.ModuleScope,
							Permissions: []permission.Permission{permission.ScopeRead},
						},
					},
					{
						Title: "Assets",
						URL:   "/assets",
						Icon:  "server",
						Rule: Rule{
							Module:      module.ModuleAssets,
							Permissions: []permission.Permission{permission.AssetsRead},
						},
					},
					{
						Title: "Scans",
						Icon:  "radar",
						Rule:  Rule{Module: module.ModuleScans},
						Children: []Item{
							{
								Title: "Scan Runs",
								URL:   "/scans",
								Rule:  Rule{Permissions: []permission.Permission{permission.ScansRead}},
							},
							{
								Title: "Launch Scan",
								URL:   "/scans/new",
								Rule:  Rule{Permissions: []permission.Permission{permission.ScansExecute}},
							},
						},
					},
				},
			},
			{
				Title: "Findings",
				Items: []Item{
					{
						Title: "Findings",
						URL:   "/findings",
						Icon:  "shield-alert",
						Rule: Rule{
							Module:      module.ModuleFindings,
							Permissions: []permission.Permission{permission.FindingsRead},
						},
					},
					{
						Title: "Leaked Credentials",
						URL:   "/credentials",
						Icon:  "key-round",
						Rule: Rule{
							Module:      module.ModuleCredentials,
							Permissions: []permission.Permission{permission.CredentialsRead},
						},
					},
					{
						Title: "Remediation",
						URL:   "/remediation",
						Icon:  "wrench",
						Rule: Rule{
							Module:      module.ModuleRemediation,
							Permissions: []permission.Permission{permission.RemediationRead},
						},
					},
				},
			},
			{
				Title: "Insights",
				Items: []Item{
					{
						Title: "Reports",
						URL:   "/reports",
						Icon:  "file-text",
						Rule: Rule{
							Module:      module.ModuleReports,
							Permissions: []permission.Permission{permission.ReportsRead},
						},
					},
					{
						Title: "Audit Log",
						URL:   "/audit",
						Icon:  "scroll-text",
						Rule: Rule{
							Module:      module.ModuleAudit,
							Permissions: []permission.Permission{permission.AuditRead},
							MinRole:     tenant.RoleAdmin,
						},
					},
				},
			},
			{
				Title: "Organization",
				Items: []Item{
					{
						Title: "Team",
						Icon:  "users",
						Rule:  Rule{Module: module.ModuleTeam},
						Children: []Item{
							{
								Title: "Members",
								URL:   "/team/members",
								Rule:  Rule{Permissions: []permission.Permission{permission.MembersRead}},
							},
							{
								Title: "Roles",
								URL:   "/team/roles",
								Rule:  Rule{Permissions: []permission.Permission{permission.RolesRead}},
							},
							{
								Title: "Invitations",
								URL:   "/team/invitations",
								Rule:  Rule{Permissions: []permission.Permission{permission.MembersInvite}},
							},
						},
					},
					{
						Title: "Integrations",
						URL:   "/integrations",
						Icon:  "plug",
						Rule: Rule{
							Module:      module.ModuleIntegrations,
							Permissions: []permission.Permission{permission.IntegrationsRead},
						},
					},
					{
						Title: "Billing",
						URL:   "/settings/billing",
						Icon:  "credit-card",
						Rule: Rule{
							Module:      module.ModuleBilling,
							Permissions: []permission.Permission{permission.BillingRead},
							Roles:       []tenant.Role{tenant.RoleOwner, tenant.RoleAdmin},
						},
					},
					{
						Title: "Danger Zone",
						URL:   "/settings/danger",
						Icon:  "triangle-alert",
						Rule: Rule{
							MinRole:     tenant.RoleOwner,
							Permissions: []permission.Permission{permission.TeamDelete},
						},
					},
				},
			},
		},
	}
}
