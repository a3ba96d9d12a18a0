package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/robobooks/robobooks-api/internal/domain"
	"github.com/robobooks/robobooks-api/internal/domain/repository"
)

// PDFUseCase renders a stored document to PDF.
type PDFUseCase struct {
	docs repository.DocumentRepository
	orgs repository.OrganizationRepository
	gen  DocumentPDFGenerator
}

// NewPDFUseCase builds the use case.
func NewPDFUseCase(docs repository.DocumentRepository, orgs repository.OrganizationRepository, gen DocumentPDFGenerator) *PDFUseCase {
	return &PDFUseCase{docs: docs, orgs: orgs, gen: gen}
}

// Render loads the document with its items and the issuing org, renders the
// PDF and returns the bytes plus a download filename like
// "invoice_INV-2024-0042.pdf".
func (uc *PDFUseCase) Render(ctx context.Context, orgID, docID string) ([]byte, string, error) {
	doc, err := uc.docs.GetByID(docID)
	if err != nil {
		return nil, "", err
	}
	if doc == nil {
		return nil, "", domain.ErrNotFound
	}
	if doc.OrgID != orgID {
		return nil, "", domain.ErrForbidden
	}

	items, err := uc.docs.GetItemsByDocumentID(doc.ID)
	if err != nil {
		return nil, "", err
	}
	doc.Items = doc.Items[:0]
	for _, it := range items {
		doc.Items = append(doc.Items, *it)
	}

	org, err := uc.orgs.GetByID(orgID)
	if err != nil {
		return nil, "", err
	}
	if org == nil {
		return nil, "", domain.ErrNotFound
	}

	data, err := uc.gen.GenerateDocumentPDF(ctx, org, doc)
	if err != nil {
		return nil, "", err
	}
	return data, downloadName(doc.DocType, doc.Number), nil
}

// downloadName builds a safe attachment filename from the doc type and
// number, e.g. "credit_note_CN-17.pdf".
func downloadName(docType, number string) string {
	kind := strings.ToLower(strings.ReplaceAll(docType, " ", "_"))
	num := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, number)
	return fmt.Sprintf("%s_%s.pdf", kind, num)
}
