package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/robobooks/robobooks-api/internal/application/dto"
	"github.com/robobooks/robobooks-api/internal/domain"
	"github.com/robobooks/robobooks-api/internal/domain/entity"
	"github.com/robobooks/robobooks-api/internal/domain/repository"
)

// CustomerUseCase customer operations for the billing module.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create registers a new customer. Tax id must be unique within the org.
func (uc *CustomerUseCase) Create(orgID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.TaxID == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByOrgAndTaxID(orgID, in.TaxID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		OrgID:     orgID,
		Name:      in.Name,
		TaxID:     in.TaxID,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   toAddress(in.Address),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID fetches one customer of the org.
func (uc *CustomerUseCase) GetByID(orgID, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if c.OrgID != orgID {
		return nil, domain.ErrForbidden
	}
	return toCustomerResponse(c), nil
}

// List lists the org's customers.
func (uc *CustomerUseCase) List(orgID string, limit, offset int) ([]*dto.CustomerResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListByOrg(orgID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update modifies an existing customer of the org.
func (uc *CustomerUseCase) Update(orgID, id string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.TaxID == "" {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if c.OrgID != orgID {
		return nil, domain.ErrForbidden
	}
	c.Name = in.Name
	c.TaxID = in.TaxID
	c.Email = in.Email
	c.Phone = in.Phone
	c.Address = toAddress(in.Address)
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

func toAddress(a dto.AddressDTO) entity.Address {
	return entity.Address{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		Country: a.Country,
		Zip:     a.Zip,
	}
}

func toAddressDTO(a entity.Address) dto.AddressDTO {
	return dto.AddressDTO{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		Country: a.Country,
		Zip:     a.Zip,
	}
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:      c.ID,
		OrgID:   c.OrgID,
		Name:    c.Name,
		TaxID:   c.TaxID,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: toAddressDTO(c.Address),
	}
}
