package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/secposture/console-api/pkg/domain/module"
)

// ErrModuleNotFound is returned when a catalog module does not exist.
var ErrModuleNotFound = errors.New("module not found")

// ModuleRepository handles database operations for the module catalog and
// per-tenant entitlements.
type ModuleRepository struct {
	db *DB
}

// NewModuleRepository creates a new ModuleRepository.
func NewModuleRepository(db *DB) *ModuleRepository {
	return &ModuleRepository{db: db}
}

// ListModules returns the full module catalog ordered for display.
func (r *ModuleRepository) ListModules(ctx context.Context) ([]*module.Module, error) {
	query := `
		SELECT id, slug, name, description, category, display_order, is_active, release_status
		FROM modules
		ORDER BY display_order ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}
	defer rows.Close()

	modules := make([]*module.Module, 0)
	for rows.Next() {
		var (
			m           module.Module
			description sql.NullString
			status      string
		)
		if err := rows.Scan(
			&m.ID, &m.Slug, &m.Name, &description,
			&m.Category, &m.DisplayOrder, &m.Active, &status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan module: %w", err)
		}
		m.Description = description.String
		m.ReleaseStatus = module.ReleaseStatus(status)
		modules = append(modules, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate modules: %w", err)
	}
	return modules, nil
}

// GetModuleByID retrieves a single catalog module.
func (r *ModuleRepository) GetModuleByID(ctx context.Context, id string) (*module.Module, error) {
	query := `
		SELECT id, slug, name, description, category, display_order, is_active, release_status
		FROM modules
		WHERE id = $1
	`

	var (
		m           module.Module
		description sql.NullString
		status      string
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.Slug, &m.Name, &description,
		&m.Category, &m.DisplayOrder, &m.Active, &status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrModuleNotFound, id)
		}
		return nil, fmt.Errorf("failed to get module: %w", err)
	}
	m.Description = description.String
	m.ReleaseStatus = module.ReleaseStatus(status)
	return &m, nil
}

// GetTenantEntitlements returns one entitlement record per catalog module
// for the tenant. Plan inclusion comes from the tenant's active
// subscription; per-module overrides can both grant modules outside the
// plan and disable modules inside it.
func (r *ModuleRepository) GetTenantEntitlements(ctx context.Context, tenantID string) ([]module.Entitlement, error) {
	query := `
		SELECT
			m.id,
			m.release_status,
			(pm.module_id IS NOT NULL OR COALESCE(o.enabled, FALSE)) AS included_in_plan,
			(m.is_active AND COALESCE(o.enabled, TRUE)) AS active
		FROM modules m
		LEFT JOIN tenant_subscriptions ts
			ON ts.tenant_id = $1 AND ts.status = 'active'
		LEFT JOIN plan_modules pm
			ON pm.plan_id = ts.plan_id AND pm.module_id = m.id
		LEFT JOIN tenant_module_overrides o
			ON o.tenant_id = $1 AND o.module_id = m.id
		ORDER BY m.display_order ASC, m.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entitlements: %w", err)
	}
	defer rows.Close()

	entitlements := make([]module.Entitlement, 0)
	for rows.Next() {
		var (
			e      module.Entitlement
			status string
		)
		if err := rows.Scan(&e.ModuleID, &status, &e.IncludedInPlan, &e.Active); err != nil {
			return nil, fmt.Errorf("failed to scan entitlement: %w", err)
		}
		e.ReleaseStatus = module.ReleaseStatus(status)
		entitlements = append(entitlements, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entitlements: %w", err)
	}
	return entitlements, nil
}

// ListActiveTenantIDs returns the tenants with an active subscription.
// The background refresh sweep uses this to warm snapshot caches.
func (r *ModuleRepository) ListActiveTenantIDs(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT tenant_id
		FROM tenant_subscriptions
		WHERE status = 'active'
		ORDER BY tenant_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan tenant id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tenants: %w", err)
	}
	return ids, nil
}

// UpsertModule inserts or updates a catalog module. Used by the admin CLI
// to seed and maintain the catalog.
func (r *ModuleRepository) UpsertModule(ctx context.Context, m *module.Module) error {
	query := `
		INSERT INTO modules (id, slug, name, description, category, display_order, is_active, release_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			slug = EXCLUDED.slug,
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			display_order = EXCLUDED.display_order,
			is_active = EXCLUDED.is_active,
			release_status = EXCLUDED.release_status,
			updated_at = NOW()
	`

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.Slug, m.Name, m.Description,
		m.Category, m.DisplayOrder, m.Active, string(m.ReleaseStatus),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert module %s: %w", m.ID, err)
	}
	return nil
}

// UpsertPlan inserts or updates a subscription plan and replaces its
// module set atomically.
func (r *ModuleRepository) UpsertPlan(ctx context.Context, planID, name string, moduleIDs []string) error {
	return r.db.Transaction(ctx, func(tx *sql.Tx) error {
		planQuery := `
			INSERT INTO plans (id, name)
			VALUES ($1, $2)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
		`
		if _, err := tx.ExecContext(ctx, planQuery, planID, name); err != nil {
			return fmt.Errorf("failed to upsert plan %s: %w", planID, err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM plan_modules WHERE plan_id = $1`, planID); err != nil {
			return fmt.Errorf("failed to clear plan modules for %s: %w", planID, err)
		}

		memberQuery := `INSERT INTO plan_modules (plan_id, module_id) VALUES ($1, $2)`
		for _, moduleID := range moduleIDs {
			if _, err := tx.ExecContext(ctx, memberQuery, planID, moduleID); err != nil {
				return fmt.Errorf("failed to add %s to plan %s: %w", moduleID, planID, err)
			}
		}
		return nil
	})
}

// SetTenantOverride enables or disables a module for one tenant,
// independent of the plan.
func (r *ModuleRepository) SetTenantOverride(ctx context.Context, tenantID, moduleID string, enabled bool) error {
	query := `
		INSERT INTO tenant_module_overrides (tenant_id, module_id, enabled)
		VALUES ($1, $2, $3)
		ON CONFLICT (tenant_id, module_id) DO UPDATE SET
			enabled = EXCLUDED.enabled,
			updated_at = NOW()
	`

	if _, err := r.db.ExecContext(ctx, query, tenantID, moduleID, enabled); err != nil {
		return fmt.Errorf("failed to set override for %s/%s: %w", tenantID, moduleID, err)
	}
	return nil
}

// ClearTenantOverride removes a per-tenant module override.
func (r *ModuleRepository) ClearTenantOverride(ctx context.Context, tenantID, moduleID string) error {
	query := `DELETE FROM tenant_module_overrides WHERE tenant_id = $1 AND module_id = $2`

	if _, err := r.db.ExecContext(ctx, query, tenantID, moduleID); err != nil {
		return fmt.Errorf("failed to clear override for %s/%s: %w", tenantID, moduleID, err)
	}
	return nil
}
