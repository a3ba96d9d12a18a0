package repository

import "github.com/robobooks/robobooks-api/internal/domain/entity"

// DocumentRepository defines the persistence port for billing documents.
// Create persists only the header; items go through CreateItem so both can
// share a transaction (see the postgres tx runner).
type DocumentRepository interface {
	Create(doc *entity.BillingDocument) error
	CreateItem(item *entity.DocumentItem) error
	GetByID(id string) (*entity.BillingDocument, error)
	GetItemsByDocumentID(documentID string) ([]*entity.DocumentItem, error)
	// ListByOrg lists document headers for the org, newest first.
	// docType filters by category when non-empty.
	ListByOrg(orgID, docType string, limit, offset int) ([]*entity.BillingDocument, error)
	// UpdateStatus persists a status change already validated by the caller.
	UpdateStatus(id, status string) error
}
