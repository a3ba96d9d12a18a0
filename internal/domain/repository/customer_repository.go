package repository

import "github.com/robobooks/robobooks-api/internal/domain/entity"

// CustomerRepository defines the persistence port for customers.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByOrgAndTaxID(orgID, taxID string) (*entity.Customer, error)
	ListByOrg(orgID string, limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
