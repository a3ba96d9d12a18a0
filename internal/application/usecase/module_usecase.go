package usecase

import (
	"context"

	"github.com/robobooks/robobooks-api/internal/domain/repository"
)

// ModuleService answers whether a SaaS module is enabled for an org. Used by
// the module gate middleware in front of the billing routes.
type ModuleService struct {
	orgs repository.OrganizationRepository
}

// NewModuleService builds the service.
func NewModuleService(orgs repository.OrganizationRepository) *ModuleService {
	return &ModuleService{orgs: orgs}
}

// HasActiveModule reports whether the org has the named module active and
// not expired.
func (s *ModuleService) HasActiveModule(ctx context.Context, orgID, moduleName string) (bool, error) {
	return s.orgs.HasActiveModule(ctx, orgID, moduleName)
}
