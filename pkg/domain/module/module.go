// Package module defines the licensable feature modules of the console, the
// per-tenant entitlement snapshot, and the visibility resolution rules for
// module-gated navigation.
package module

// ReleaseStatus represents the product lifecycle status of a module.
type ReleaseStatus string

const (
	// ReleaseStatusReleased means the module is generally available.
	ReleaseStatusReleased ReleaseStatus = "released"
	// ReleaseStatusComingSoon means the module is not released yet; it is
	// shown as a disabled preview regardless of entitlement.
	ReleaseStatusComingSoon ReleaseStatus = "coming_soon"
	// ReleaseStatusBeta means the module is in beta testing; shown as a
	// badged preview regardless of entitlement.
	ReleaseStatusBeta ReleaseStatus = "beta"
	// ReleaseStatusDeprecated means the module is being phased out but is
	// still usable by entitled tenants.
	ReleaseStatusDeprecated ReleaseStatus = "deprecated"
)

// IsValid checks if the release status is a known value.
func (s ReleaseStatus) IsValid() bool {
	switch s {
	case ReleaseStatusReleased, ReleaseStatusComingSoon, ReleaseStatusBeta, ReleaseStatusDeprecated:
		return true
	}
	return false
}

// IsPreview reports whether the status makes a module visible as a preview
// regardless of plan entitlement.
func (s ReleaseStatus) IsPreview() bool {
	return s == ReleaseStatusComingSoon || s == ReleaseStatusBeta
}

// String returns the string representation of the release status.
func (s ReleaseStatus) String() string {
	return string(s)
}

// Module represents an entry in the feature-module catalog.
type Module struct {
	ID            string
	Slug          string
	Name          string
	Description   string
	Category      string
	DisplayOrder  int
	Active        bool
	ReleaseStatus ReleaseStatus
}

// Module category constants.
const (
	CategoryCore     = "core"
	CategorySecurity = "security"
	CategoryPlatform = "platform"
	CategoryInsights = "insights"
)

// Well-known module IDs.
const (
	ModuleDashboard    = "dashboard"
	ModuleAssets       = "assets"
	ModuleScope        = "scope"
	ModuleFindings     = "findings"
	ModuleCredentials  = "credentials"
	ModuleRemediation  = "remediation"
	ModuleScans        = "scans"
	ModuleReports      = "reports"
	ModuleAudit        = "audit"
	ModuleTeam         = "team"
	ModuleIntegrations = "integrations"
	ModuleBilling      = "billing"
)
