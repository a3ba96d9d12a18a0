package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robobooks/robobooks-api/internal/application/billing"
	"github.com/robobooks/robobooks-api/internal/application/dto"
	"github.com/robobooks/robobooks-api/internal/domain"
	"github.com/robobooks/robobooks-api/internal/domain/document"
	"github.com/robobooks/robobooks-api/internal/domain/entity"
	"github.com/robobooks/robobooks-api/internal/domain/repository"
)

// fakeDocumentRepo in-memory DocumentRepository.
type fakeDocumentRepo struct {
	docs  map[string]*entity.BillingDocument
	items map[string][]*entity.DocumentItem
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{
		docs:  map[string]*entity.BillingDocument{},
		items: map[string][]*entity.DocumentItem{},
	}
}

func (f *fakeDocumentRepo) Create(doc *entity.BillingDocument) error {
	cp := *doc
	f.docs[doc.ID] = &cp
	return nil
}

func (f *fakeDocumentRepo) CreateItem(item *entity.DocumentItem) error {
	cp := *item
	f.items[item.DocumentID] = append(f.items[item.DocumentID], &cp)
	return nil
}

func (f *fakeDocumentRepo) GetByID(id string) (*entity.BillingDocument, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, nil
	}
	cp := *doc
	return &cp, nil
}

func (f *fakeDocumentRepo) GetItemsByDocumentID(documentID string) ([]*entity.DocumentItem, error) {
	return f.items[documentID], nil
}

func (f *fakeDocumentRepo) ListByOrg(orgID, docType string, limit, offset int) ([]*entity.BillingDocument, error) {
	var out []*entity.BillingDocument
	for _, d := range f.docs {
		if d.OrgID == orgID && (docType == "" || d.DocType == docType) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDocumentRepo) UpdateStatus(id, status string) error {
	doc, ok := f.docs[id]
	if !ok {
		return domain.ErrNotFound
	}
	doc.Status = status
	return nil
}

// fakeCustomerRepo in-memory CustomerRepository.
type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error { f.customers[c.ID] = c; return nil }
func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return f.customers[id], nil
}
func (f *fakeCustomerRepo) GetByOrgAndTaxID(orgID, taxID string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.OrgID == orgID && c.TaxID == taxID {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeCustomerRepo) ListByOrg(orgID string, limit, offset int) ([]*entity.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) Update(c *entity.Customer) error { return nil }
func (f *fakeCustomerRepo) Delete(id string) error          { return nil }

// fakeTxRunner runs the callback directly against the fake repo.
type fakeTxRunner struct {
	repo repository.DocumentRepository
}

func (f *fakeTxRunner) RunDocument(_ context.Context, fn func(repository.DocumentRepository) error) error {
	return fn(f.repo)
}

const (
	orgA = "org-a"
	orgB = "org-b"
)

func fixtureUseCase() (*billing.DocumentUseCase, *fakeDocumentRepo) {
	docRepo := newFakeDocumentRepo()
	custRepo := &fakeCustomerRepo{customers: map[string]*entity.Customer{
		"cust-1": {
			ID:    "cust-1",
			OrgID: orgA,
			Name:  "Acme Traders",
			TaxID: "29ABCDE1234F1Z5",
			Address: entity.Address{
				Street: "12 MG Road", City: "Bengaluru", State: "Karnataka", Country: "India", Zip: "560001",
			},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}}
	uc := billing.NewDocumentUseCase(docRepo, custRepo, &fakeTxRunner{repo: docRepo})
	return uc, docRepo
}

func createRequest() dto.CreateDocumentRequest {
	return dto.CreateDocumentRequest{
		CustomerID: "cust-1",
		DocType:    entity.DocTypeInvoice,
		Number:     "INV-2026-0001",
		Date:       time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Items: []dto.DocumentItemInput{
			{Name: "Widget", Quantity: decimal.NewFromInt(3), Unit: "pcs", Rate: decimal.RequireFromString("99.99")},
			{Name: "Gadget", Quantity: decimal.RequireFromString("1.5"), Unit: "kg", Rate: decimal.NewFromInt(200)},
		},
		Discount:     decimal.NewFromInt(10),
		DiscountType: entity.DiscountTypePercent,
		Adjustment:   decimal.RequireFromString("-0.47"),
	}
}

func TestCreateDocument_ComputesTotalsServerSide(t *testing.T) {
	uc, repo := fixtureUseCase()

	doc, err := uc.Create(context.Background(), orgA, createRequest())
	require.NoError(t, err)

	// 3 x 99.99 = 299.97, 1.5 x 200 = 300.00 -> subtotal 599.97
	assert.True(t, doc.SubTotal.Equal(decimal.RequireFromString("599.97")), "subtotal = %s", doc.SubTotal)
	// 10% of 599.97 = 60.00 (rounded)
	assert.True(t, doc.DiscountAmount.Equal(decimal.RequireFromString("60")), "discount = %s", doc.DiscountAmount)
	// 599.97 - 60.00 - 0.47 = 539.50
	assert.True(t, doc.GrandTotal.Equal(decimal.RequireFromString("539.5")), "grand = %s", doc.GrandTotal)

	assert.Equal(t, document.StatusDraft, doc.Status)
	assert.Equal(t, "Acme Traders", doc.PartyName)
	require.Len(t, doc.Items, 2)
	assert.True(t, doc.Items[0].Amount.Equal(decimal.RequireFromString("299.97")))
	assert.True(t, doc.Items[1].Amount.Equal(decimal.RequireFromString("300")))

	// Header and items landed in the repo.
	stored, err := repo.GetByID(doc.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.TotalsConsistent())
	items, _ := repo.GetItemsByDocumentID(doc.ID)
	assert.Len(t, items, 2)
}

func TestCreateDocument_FlatDiscount(t *testing.T) {
	uc, _ := fixtureUseCase()

	in := createRequest()
	in.Discount = decimal.RequireFromString("25.50")
	in.DiscountType = entity.DiscountTypeAmount
	in.Adjustment = decimal.Zero

	doc, err := uc.Create(context.Background(), orgA, in)
	require.NoError(t, err)
	assert.True(t, doc.DiscountAmount.Equal(decimal.RequireFromString("25.50")))
	assert.True(t, doc.GrandTotal.Equal(decimal.RequireFromString("574.47")), "grand = %s", doc.GrandTotal)
}

func TestCreateDocument_RejectsUnknownDocType(t *testing.T) {
	uc, _ := fixtureUseCase()

	in := createRequest()
	in.DocType = "Quotation"

	_, err := uc.Create(context.Background(), orgA, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateDocument_RejectsNegativeGrandTotal(t *testing.T) {
	uc, _ := fixtureUseCase()

	in := createRequest()
	in.Discount = decimal.NewFromInt(10000)
	in.DiscountType = entity.DiscountTypeAmount

	_, err := uc.Create(context.Background(), orgA, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateDocument_RejectsForeignCustomer(t *testing.T) {
	uc, _ := fixtureUseCase()

	_, err := uc.Create(context.Background(), orgB, createRequest())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateDocument_RejectsEmptyItems(t *testing.T) {
	uc, _ := fixtureUseCase()

	in := createRequest()
	in.Items = nil

	_, err := uc.Create(context.Background(), orgA, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetByID_EnforcesOwnership(t *testing.T) {
	uc, _ := fixtureUseCase()

	doc, err := uc.Create(context.Background(), orgA, createRequest())
	require.NoError(t, err)

	got, err := uc.GetByID(orgA, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
	assert.Len(t, got.Items, 2)

	_, err = uc.GetByID(orgB, doc.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.GetByID(orgA, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_FiltersByType(t *testing.T) {
	uc, _ := fixtureUseCase()

	inv := createRequest()
	_, err := uc.Create(context.Background(), orgA, inv)
	require.NoError(t, err)

	cn := createRequest()
	cn.DocType = entity.DocTypeCreditNote
	cn.Number = "CN-2026-0001"
	_, err = uc.Create(context.Background(), orgA, cn)
	require.NoError(t, err)

	all, err := uc.List(orgA, "", 20, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	invoices, err := uc.List(orgA, entity.DocTypeInvoice, 20, 0)
	require.NoError(t, err)
	assert.Len(t, invoices, 1)

	_, err = uc.List(orgA, "Quotation", 20, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
