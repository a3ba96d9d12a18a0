package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/robobooks/robobooks-api/internal/application/dto"
	"github.com/robobooks/robobooks-api/internal/domain"
	"github.com/robobooks/robobooks-api/internal/domain/document"
	"github.com/robobooks/robobooks-api/internal/domain/entity"
	"github.com/robobooks/robobooks-api/internal/domain/repository"
)

// DocumentUseCase creation and retrieval of billing documents.
type DocumentUseCase struct {
	docs      repository.DocumentRepository
	customers repository.CustomerRepository
	tx        TxRunner
}

// NewDocumentUseCase builds the use case.
func NewDocumentUseCase(docs repository.DocumentRepository, customers repository.CustomerRepository, tx TxRunner) *DocumentUseCase {
	return &DocumentUseCase{docs: docs, customers: customers, tx: tx}
}

// Create persists a new document. Line amounts and all totals are computed
// here, never trusted from the client; header and items are written in one
// transaction.
func (uc *DocumentUseCase) Create(ctx context.Context, orgID string, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	if in.CustomerID == "" || in.Number == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	switch in.DocType {
	case entity.DocTypeInvoice, entity.DocTypeCreditNote, entity.DocTypeDeliveryChallan:
	default:
		return nil, domain.ErrInvalidInput
	}
	switch in.DiscountType {
	case "", entity.DiscountTypePercent, entity.DiscountTypeAmount:
	default:
		return nil, domain.ErrInvalidInput
	}

	customer, err := uc.customers.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.OrgID != orgID {
		return nil, domain.ErrForbidden
	}

	docID := uuid.New().String()
	items := make([]entity.DocumentItem, 0, len(in.Items))
	subTotal := decimal.Zero
	for _, line := range in.Items {
		if line.Name == "" || line.Quantity.IsNegative() || line.Rate.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		amount := line.Quantity.Mul(line.Rate).Round(2)
		items = append(items, entity.DocumentItem{
			ID:         uuid.New().String(),
			DocumentID: docID,
			Name:       line.Name,
			Quantity:   line.Quantity,
			Unit:       line.Unit,
			Rate:       line.Rate,
			Amount:     amount,
		})
		subTotal = subTotal.Add(amount)
	}
	subTotal = subTotal.Round(2)

	discountAmount := discountOf(subTotal, in.Discount, in.DiscountType)
	grandTotal := subTotal.Sub(discountAmount).Add(in.Adjustment).Round(2)
	if grandTotal.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	doc := &entity.BillingDocument{
		ID:              docID,
		OrgID:           orgID,
		CustomerID:      customer.ID,
		DocType:         in.DocType,
		Number:          in.Number,
		Date:            date,
		ReferenceNumber: in.ReferenceNumber,
		PartyName:       customer.Name,
		PartyAddress:    customer.Address,
		Items:           items,
		SubTotal:        subTotal,
		Discount:        in.Discount,
		DiscountType:    in.DiscountType,
		DiscountAmount:  discountAmount,
		Adjustment:      in.Adjustment,
		GrandTotal:      grandTotal,
		Notes:           in.Notes,
		Terms:           in.Terms,
		Status:          document.StatusDraft,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = uc.tx.RunDocument(ctx, func(repo repository.DocumentRepository) error {
		if err := repo.Create(doc); err != nil {
			return err
		}
		for i := range doc.Items {
			if err := repo.CreateItem(&doc.Items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDocumentResponse(doc, doc.Items), nil
}

// GetByID fetches a document with its items.
func (uc *DocumentUseCase) GetByID(orgID, id string) (*dto.DocumentResponse, error) {
	doc, err := uc.loadOwned(orgID, id)
	if err != nil {
		return nil, err
	}
	items, err := uc.docs.GetItemsByDocumentID(doc.ID)
	if err != nil {
		return nil, err
	}
	flat := make([]entity.DocumentItem, 0, len(items))
	for _, it := range items {
		flat = append(flat, *it)
	}
	return toDocumentResponse(doc, flat), nil
}

// List pages over the org's document headers, optionally filtered by type.
func (uc *DocumentUseCase) List(orgID, docType string, limit, offset int) ([]*dto.DocumentResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	switch docType {
	case "", entity.DocTypeInvoice, entity.DocTypeCreditNote, entity.DocTypeDeliveryChallan:
	default:
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.docs.ListByOrg(orgID, docType, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DocumentResponse, 0, len(list))
	for _, doc := range list {
		out = append(out, toDocumentResponse(doc, nil))
	}
	return out, nil
}

func (uc *DocumentUseCase) loadOwned(orgID, id string) (*entity.BillingDocument, error) {
	doc, err := uc.docs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if doc.OrgID != orgID {
		return nil, domain.ErrForbidden
	}
	return doc, nil
}

// discountOf resolves the discount discriminator: a percentage of the
// subtotal ("P") or a flat amount ("A"). Empty type means no discount.
func discountOf(subTotal, discount decimal.Decimal, discountType string) decimal.Decimal {
	switch discountType {
	case entity.DiscountTypePercent:
		return subTotal.Mul(discount).Div(decimal.NewFromInt(100)).Round(2)
	case entity.DiscountTypeAmount:
		return discount.Round(2)
	default:
		return decimal.Zero
	}
}

func toDocumentResponse(doc *entity.BillingDocument, items []entity.DocumentItem) *dto.DocumentResponse {
	resp := &dto.DocumentResponse{
		ID:              doc.ID,
		OrgID:           doc.OrgID,
		CustomerID:      doc.CustomerID,
		DocType:         doc.DocType,
		Number:          doc.Number,
		Date:            doc.Date.Format("2006-01-02"),
		ReferenceNumber: doc.ReferenceNumber,
		PartyName:       doc.PartyName,
		SubTotal:        doc.SubTotal,
		Discount:        doc.Discount,
		DiscountType:    doc.DiscountType,
		DiscountAmount:  doc.DiscountAmount,
		Adjustment:      doc.Adjustment,
		GrandTotal:      doc.GrandTotal,
		Notes:           doc.Notes,
		Terms:           doc.Terms,
		Status:          doc.Status,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.DocumentItemResponse{
			ID:       it.ID,
			Name:     it.Name,
			Quantity: it.Quantity,
			Unit:     it.Unit,
			Rate:     it.Rate,
			Amount:   it.Amount,
		})
	}
	return resp
}
