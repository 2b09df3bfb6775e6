// Package navigation defines the console's sidebar tree and filters it down
// to what a session is allowed to see.
//
// The tree itself is externally authored data (see catalog.go for the YAML
// form); this package only consumes it. All filtering is pure and
// synchronous: the async inputs (role, explicit permissions, entitlements)
// are resolved by the caller and threaded in as an Access value.
package navigation

import (
	"github.com/secposture/console-api/pkg/domain/module"
	"github.com/secposture/console-api/pkg/domain/permission"
	"github.com/secposture/console-api/pkg/domain/tenant"
)

// Rule is a node's declared access requirements. All set dimensions must
// pass (AND); within a list dimension any match suffices (OR). The zero
// value places no requirement on the node.
type Rule struct {
	// Module gates the node on a licensable module's visibility.
	Module string `yaml:"module,omitempty" json:"module,omitempty"`

	// Permissions: the session needs any one of these.
	Permissions []permission.Permission `yaml:"permission,omitempty" json:"permission,omitempty"`

	// Roles: the session's role must exactly match one of these.
	Roles []tenant.Role `yaml:"role,omitempty" json:"role,omitempty"`

	// MinRole: the session's role must rank at least this high in the
	// predefined hierarchy. Custom roles never satisfy it.
	MinRole tenant.Role `yaml:"min_role,omitempty" json:"min_role,omitempty"`
}

// IsZero reports whether the rule places no requirement.
func (r Rule) IsZero() bool {
	return r.Module == "" && len(r.Permissions) == 0 && len(r.Roles) == 0 && r.MinRole == ""
}

// Item is a navigation node: a link when it has a URL and no children, a
// collapsible when it has children.
type Item struct {
	Title string `yaml:"title" json:"title"`
	URL   string `yaml:"url,omitempty" json:"url,omitempty"`
	Icon  string `yaml:"icon,omitempty" json:"icon,omitempty"`
	Badge string `yaml:"badge,omitempty" json:"badge,omitempty"`

	Rule Rule `yaml:"access,omitempty" json:"access,omitempty"`

	Children []Item `yaml:"children,omitempty" json:"children,omitempty"`

	// ReleaseStatus is populated by the filter on module-gated nodes that
	// survive as previews (coming_soon/beta), so the rendering layer can
	// badge or disable them. It is output-only; authored trees leave it
	// empty.
	ReleaseStatus module.ReleaseStatus `yaml:"-" json:"release_status,omitempty"`
}

// IsCollapsible reports whether the item holds child items.
func (i Item) IsCollapsible() bool {
	return len(i.Children) > 0
}

// Group is a titled section of the sidebar.
type Group struct {
	Title string `yaml:"title" json:"title"`
	Items []Item `yaml:"items" json:"items"`
}

// Tree is the whole sidebar definition.
type Tree struct {
	Groups []Group `yaml:"groups" json:"groups"`
}
