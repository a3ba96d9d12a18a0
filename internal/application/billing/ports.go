package billing

import (
	"context"

	"github.com/robobooks/robobooks-api/internal/domain/entity"
	"github.com/robobooks/robobooks-api/internal/domain/repository"
)

// DocumentPDFGenerator renders the printable representation of a billing
// document. Implemented by internal/infrastructure/pdf.
type DocumentPDFGenerator interface {
	GenerateDocumentPDF(ctx context.Context, org *entity.Organization, doc *entity.BillingDocument) ([]byte, error)
}

// TxRunner executes a callback with document repositories bound to one
// database transaction, so a document header and its items commit or roll
// back together.
type TxRunner interface {
	RunDocument(ctx context.Context, fn func(docRepo repository.DocumentRepository) error) error
}
