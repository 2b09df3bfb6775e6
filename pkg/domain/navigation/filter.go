package navigation

import "github.com/secposture/console-api/pkg/domain/module"

// Filter walks the tree once and returns the subtree the session may see.
//
// For each leaf the node's own rule decides. For each collapsible the
// children are filtered first; the collapsible is dropped when its own rule
// fails or no child survives. Groups with zero surviving items disappear:
// denied sections are silently absent, never rendered empty.
//
// The input tree is never mutated: authored trees are shared across requests
// and renders, so every surviving node is a fresh copy. Filtering is
// idempotent for fixed inputs.
func Filter(t Tree, a Access) Tree {
	out := Tree{}
	for _, g := range t.Groups {
		items := filterItems(g.Items, a, "")
		if len(items) == 0 {
			continue
		}
		out.Groups = append(out.Groups, Group{Title: g.Title, Items: items})
	}
	return out
}

func filterItems(items []Item, a Access, inherited module.ReleaseStatus) []Item {
	var out []Item
	for _, item := range items {
		if filtered, ok := filterItem(item, a, inherited); ok {
			out = append(out, filtered)
		}
	}
	return out
}

func filterItem(item Item, a Access, inherited module.ReleaseStatus) (Item, bool) {
	status := a.ModuleStatus(item.Rule)
	if !status.Visible {
		return Item{}, false
	}

	// A module-gated node carries its own computed status; otherwise it
	// inherits whatever its nearest module-gated ancestor resolved to.
	release := inherited
	if item.Rule.Module != "" {
		release = previewStatus(status.ReleaseStatus)
	}

	if !a.allowsIdentity(item.Rule) {
		return Item{}, false
	}

	filtered := item
	filtered.ReleaseStatus = release
	filtered.Children = nil

	if item.IsCollapsible() {
		children := filterItems(item.Children, a, release)
		if len(children) == 0 {
			return Item{}, false
		}
		filtered.Children = children
	}

	return filtered, true
}

// previewStatus keeps only the statuses the rendering layer acts on;
// released/deprecated nodes render as plain entries.
func previewStatus(s module.ReleaseStatus) module.ReleaseStatus {
	if s.IsPreview() {
		return s
	}
	return ""
}
