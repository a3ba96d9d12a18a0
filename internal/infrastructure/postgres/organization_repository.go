package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/robobooks/robobooks-api/internal/domain"
	"github.com/robobooks/robobooks-api/internal/domain/entity"
	"github.com/robobooks/robobooks-api/internal/domain/repository"
)

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo PostgreSQL implementation (usable with pool or tx).
type OrganizationRepo struct {
	q Querier
}

// NewOrganizationRepository builds the adapter. Pass pool or tx (Querier).
func NewOrganizationRepository(q Querier) *OrganizationRepo {
	return &OrganizationRepo{q: q}
}

// Create persists a new organization.
func (r *OrganizationRepo) Create(org *entity.Organization) error {
	query := `
		INSERT INTO organizations (id, name, gstin, address, phone, email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		org.ID, org.Name, org.GSTIN, org.Address, org.Phone, org.Email, org.Status,
		org.CreatedAt, org.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

// GetByID fetches an organization by ID.
func (r *OrganizationRepo) GetByID(id string) (*entity.Organization, error) {
	query := `
		SELECT id, name, gstin, address, phone, email, status, created_at, updated_at
		FROM organizations WHERE id = $1`
	var o entity.Organization
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Name, &o.GSTIN, &o.Address, &o.Phone, &o.Email, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return &o, nil
}

// List pages over organizations ordered by name.
func (r *OrganizationRepo) List(limit, offset int) ([]*entity.Organization, error) {
	query := `
		SELECT id, name, gstin, address, phone, email, status, created_at, updated_at
		FROM organizations ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Organization
	for rows.Next() {
		var o entity.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.GSTIN, &o.Address, &o.Phone, &o.Email, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Update modifies an organization.
func (r *OrganizationRepo) Update(org *entity.Organization) error {
	query := `
		UPDATE organizations SET name = $2, gstin = $3, address = $4, phone = $5, email = $6, status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		org.ID, org.Name, org.GSTIN, org.Address, org.Phone, org.Email, org.Status, org.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update organization: %w", err)
	}
	return nil
}

// HasActiveModule reports whether the org has the module enabled and not
// expired.
func (r *OrganizationRepo) HasActiveModule(ctx context.Context, orgID, moduleName string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM org_modules
			WHERE org_id = $1 AND module_name = $2 AND is_active
			  AND (expires_at IS NULL OR expires_at > NOW())
		)`
	var active bool
	if err := r.q.QueryRow(ctx, query, orgID, moduleName).Scan(&active); err != nil {
		return false, fmt.Errorf("check module: %w", err)
	}
	return active, nil
}
