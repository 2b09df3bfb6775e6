package navigation

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/secposture/console-api/pkg/domain/permission"
	"github.com/secposture/console-api/pkg/domain/tenant"
)

// ErrEmptyTree is returned when a sidebar definition contains no groups.
var ErrEmptyTree = errors.New("sidebar definition has no groups")

// UnmarshalYAML accepts both the scalar and the list form for the
// permission and role dimensions, so authors can write
//
//	access:
//	  permission: assets:read
//
// as well as
//
//	access:
//	  permission: [assets:read, assets:write]
func (r *Rule) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Module     string    `yaml:"module"`
		Permission yaml.Node `yaml:"permission"`
		Role       yaml.Node `yaml:"role"`
		MinRole    string    `yaml:"min_role"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	r.Module = raw.Module
	r.MinRole = tenant.Role(raw.MinRole)

	perms, err := scalarOrList(&raw.Permission)
	if err != nil {
		return fmt.Errorf("permission: %w", err)
	}
	r.Permissions = permission.FromStrings(perms)

	roles, err := scalarOrList(&raw.Role)
	if err != nil {
		return fmt.Errorf("role: %w", err)
	}
	r.Roles = nil
	for _, s := range roles {
		r.Roles = append(r.Roles, tenant.Role(s))
	}

	return nil
}

func scalarOrList(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case 0: // absent
		return nil, nil
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return nil, err
		}
		if s == "" {
			return nil, nil
		}
		return []string{s}, nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return nil, err
		}
		return list, nil
	default:
		return nil, fmt.Errorf("expected string or list, got yaml kind %d", node.Kind)
	}
}

// Load parses a sidebar definition from YAML and validates it.
func Load(r io.Reader) (Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Tree{}, fmt.Errorf("read sidebar definition: %w", err)
	}

	var tree Tree
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return Tree{}, fmt.Errorf("parse sidebar definition: %w", err)
	}

	if err := Validate(tree); err != nil {
		return Tree{}, err
	}
	return tree, nil
}

// LoadFile parses and validates a sidebar definition file.
func LoadFile(path string) (Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return Tree{}, fmt.Errorf("open sidebar definition: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks the structural invariants of an authored tree. Permission
// strings and module IDs are deliberately not checked against the catalogs
// (both are forward compatible), but a min_role outside the predefined
// hierarchy is always an authoring mistake: no session could ever satisfy it.
func Validate(tree Tree) error {
	if len(tree.Groups) == 0 {
		return ErrEmptyTree
	}
	for gi, g := range tree.Groups {
		if g.Title == "" {
			return fmt.Errorf("group %d: title is required", gi)
		}
		if len(g.Items) == 0 {
			return fmt.Errorf("group %q: at least one item is required", g.Title)
		}
		for _, item := range g.Items {
			if err := validateItem(g.Title, item); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateItem(group string, item Item) error {
	if item.Title == "" {
		return fmt.Errorf("group %q: item title is required", group)
	}
	if item.URL == "" && len(item.Children) == 0 {
		return fmt.Errorf("group %q, item %q: needs a url or children", group, item.Title)
	}
	if item.Rule.MinRole != "" && !item.Rule.MinRole.IsValid() {
		return fmt.Errorf("group %q, item %q: min_role %q is not a predefined role",
			group, item.Title, item.Rule.MinRole)
	}
	for _, child := range item.Children {
		if err := validateItem(group, child); err != nil {
			return err
		}
	}
	return nil
}
