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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo PostgreSQL implementation (usable with pool or tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository builds the adapter. Pass pool or tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persists a new customer.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, org_id, name, tax_id, email, phone,
			addr_street, addr_city, addr_state, addr_country, addr_zip,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	a := customer.Address
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.OrgID, customer.Name, customer.TaxID, customer.Email, customer.Phone,
		a.Street, a.City, a.State, a.Country, a.Zip,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID fetches a customer by ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := customerSelect + ` WHERE id = $1`
	return scanCustomer(r.q.QueryRow(context.Background(), query, id))
}

// GetByOrgAndTaxID fetches a customer by org and tax id.
func (r *CustomerRepo) GetByOrgAndTaxID(orgID, taxID string) (*entity.Customer, error) {
	query := customerSelect + ` WHERE org_id = $1 AND tax_id = $2`
	return scanCustomer(r.q.QueryRow(context.Background(), query, orgID, taxID))
}

// ListByOrg pages over the org's customers ordered by name.
func (r *CustomerRepo) ListByOrg(orgID string, limit, offset int) ([]*entity.Customer, error) {
	query := customerSelect + ` WHERE org_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update modifies a customer.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, tax_id = $3, email = $4, phone = $5,
			addr_street = $6, addr_city = $7, addr_state = $8, addr_country = $9, addr_zip = $10,
			updated_at = $11
		WHERE id = $1`
	a := customer.Address
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.TaxID, customer.Email, customer.Phone,
		a.Street, a.City, a.State, a.Country, a.Zip,
		customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete removes a customer by ID.
func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

const customerSelect = `
	SELECT id, org_id, name, tax_id, email, phone,
		addr_street, addr_city, addr_state, addr_country, addr_zip,
		created_at, updated_at
	FROM customers`

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.OrgID, &c.Name, &c.TaxID, &c.Email, &c.Phone,
		&c.Address.Street, &c.Address.City, &c.Address.State, &c.Address.Country, &c.Address.Zip,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}
