package repository

import (
	"context"

	"github.com/robobooks/robobooks-api/internal/domain/entity"
)

// OrganizationRepository defines the persistence port for tenants.
type OrganizationRepository interface {
	Create(org *entity.Organization) error
	GetByID(id string) (*entity.Organization, error)
	List(limit, offset int) ([]*entity.Organization, error)
	Update(org *entity.Organization) error
	// HasActiveModule reports whether the org has the module active and
	// not expired.
	HasActiveModule(ctx context.Context, orgID, moduleName string) (bool, error)
}
