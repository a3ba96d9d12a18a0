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

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo PostgreSQL implementation (usable with pool or tx).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository builds the adapter. Pass pool or tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Create persists the document header. Items go through CreateItem inside
// the same transaction.
func (r *DocumentRepo) Create(doc *entity.BillingDocument) error {
	query := `
		INSERT INTO billing_documents (id, org_id, customer_id, doc_type, number, date, reference_number,
			party_name, party_street, party_city, party_state, party_country, party_zip,
			sub_total, discount, discount_type, discount_amount, adjustment, grand_total,
			notes, terms, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`
	a := doc.PartyAddress
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.OrgID, doc.CustomerID, doc.DocType, doc.Number, doc.Date, doc.ReferenceNumber,
		doc.PartyName, a.Street, a.City, a.State, a.Country, a.Zip,
		doc.SubTotal, doc.Discount, doc.DiscountType, doc.DiscountAmount, doc.Adjustment, doc.GrandTotal,
		doc.Notes, doc.Terms, doc.Status, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// CreateItem persists one document line. Position preserves the order the
// lines were entered in.
func (r *DocumentRepo) CreateItem(item *entity.DocumentItem) error {
	query := `
		INSERT INTO document_items (id, document_id, name, quantity, unit, rate, amount, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7,
			COALESCE((SELECT MAX(position) + 1 FROM document_items WHERE document_id = $2), 1))`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.DocumentID, item.Name, item.Quantity, item.Unit, item.Rate, item.Amount,
	)
	if err != nil {
		return fmt.Errorf("insert document item: %w", err)
	}
	return nil
}

// GetByID fetches a document header by ID.
func (r *DocumentRepo) GetByID(id string) (*entity.BillingDocument, error) {
	query := documentSelect + ` WHERE id = $1`
	return scanDocument(r.q.QueryRow(context.Background(), query, id))
}

// GetItemsByDocumentID fetches the document's lines in entry order.
func (r *DocumentRepo) GetItemsByDocumentID(documentID string) ([]*entity.DocumentItem, error) {
	query := `
		SELECT id, document_id, name, quantity, unit, rate, amount
		FROM document_items WHERE document_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, documentID)
	if err != nil {
		return nil, fmt.Errorf("list document items: %w", err)
	}
	defer rows.Close()
	var items []*entity.DocumentItem
	for rows.Next() {
		var it entity.DocumentItem
		if err := rows.Scan(&it.ID, &it.DocumentID, &it.Name, &it.Quantity, &it.Unit, &it.Rate, &it.Amount); err != nil {
			return nil, fmt.Errorf("scan document item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// ListByOrg pages over the org's document headers, newest first. docType
// filters by category when non-empty.
func (r *DocumentRepo) ListByOrg(orgID, docType string, limit, offset int) ([]*entity.BillingDocument, error) {
	query := documentSelect + ` WHERE org_id = $1 AND ($2 = '' OR doc_type = $2)
		ORDER BY date DESC, created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, orgID, docType, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.BillingDocument
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, doc)
	}
	return list, rows.Err()
}

// UpdateStatus persists a status change already validated by the caller.
func (r *DocumentRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE billing_documents SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update document status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const documentSelect = `
	SELECT id, org_id, customer_id, doc_type, number, date, reference_number,
		party_name, party_street, party_city, party_state, party_country, party_zip,
		sub_total, discount, discount_type, discount_amount, adjustment, grand_total,
		notes, terms, status, created_at, updated_at
	FROM billing_documents`

func scanDocument(row pgx.Row) (*entity.BillingDocument, error) {
	var d entity.BillingDocument
	a := &d.PartyAddress
	err := row.Scan(
		&d.ID, &d.OrgID, &d.CustomerID, &d.DocType, &d.Number, &d.Date, &d.ReferenceNumber,
		&d.PartyName, &a.Street, &a.City, &a.State, &a.Country, &a.Zip,
		&d.SubTotal, &d.Discount, &d.DiscountType, &d.DiscountAmount, &d.Adjustment, &d.GrandTotal,
		&d.Notes, &d.Terms, &d.Status, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &d, nil
}
