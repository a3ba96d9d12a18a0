package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robobooks/robobooks-api/internal/application/billing"
	"github.com/robobooks/robobooks-api/internal/domain"
	"github.com/robobooks/robobooks-api/internal/domain/document"
)

func fixtureWithDocument(t *testing.T) (*billing.StatusUseCase, *fakeDocumentRepo, string) {
	t.Helper()
	uc, repo := fixtureUseCase()
	doc, err := uc.Create(context.Background(), orgA, createRequest())
	require.NoError(t, err)
	return billing.NewStatusUseCase(repo), repo, doc.ID
}

func TestChangeStatus_LegalTransitionPersists(t *testing.T) {
	uc, repo, docID := fixtureWithDocument(t)

	out, err := uc.Change(orgA, docID, document.StatusSent)
	require.NoError(t, err)
	assert.Equal(t, document.StatusSent, out.Status)
	assert.ElementsMatch(t, []string{
		document.StatusPaid, document.StatusUnpaid, document.StatusOverdue, document.StatusPartiallyPaid,
	}, out.AllowedNext)

	stored, _ := repo.GetByID(docID)
	assert.Equal(t, document.StatusSent, stored.Status)
}

func TestChangeStatus_IllegalTransitionRejected(t *testing.T) {
	uc, repo, docID := fixtureWithDocument(t)

	// Draft cannot jump straight to Paid.
	_, err := uc.Change(orgA, docID, document.StatusPaid)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	stored, _ := repo.GetByID(docID)
	assert.Equal(t, document.StatusDraft, stored.Status)
}

func TestChangeStatus_CancelledIsTerminal(t *testing.T) {
	uc, _, docID := fixtureWithDocument(t)

	out, err := uc.Change(orgA, docID, document.StatusCancelled)
	require.NoError(t, err)
	assert.Empty(t, out.AllowedNext)

	_, err = uc.Change(orgA, docID, document.StatusSent)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestChangeStatus_OwnershipAndExistence(t *testing.T) {
	uc, _, docID := fixtureWithDocument(t)

	_, err := uc.Change(orgB, docID, document.StatusSent)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Change(orgA, "missing", document.StatusSent)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Change(orgA, docID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
