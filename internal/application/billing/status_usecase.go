package billing

import (
	"github.com/robobooks/robobooks-api/internal/application/dto"
	"github.com/robobooks/robobooks-api/internal/domain"
	"github.com/robobooks/robobooks-api/internal/domain/document"
	"github.com/robobooks/robobooks-api/internal/domain/repository"
)

// StatusUseCase moves documents through their lifecycle.
type StatusUseCase struct {
	docs repository.DocumentRepository
}

// NewStatusUseCase builds the use case.
func NewStatusUseCase(docs repository.DocumentRepository) *StatusUseCase {
	return &StatusUseCase{docs: docs}
}

// Change validates the transition against the lifecycle table and persists
// it. Illegal moves return ErrInvalidTransition without touching the row.
func (uc *StatusUseCase) Change(orgID, docID, target string) (*dto.StatusResponse, error) {
	if target == "" {
		return nil, domain.ErrInvalidInput
	}
	doc, err := uc.docs.GetByID(docID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if doc.OrgID != orgID {
		return nil, domain.ErrForbidden
	}
	if !document.CanTransition(doc.Status, target) {
		return nil, domain.ErrInvalidTransition
	}
	if err := uc.docs.UpdateStatus(doc.ID, target); err != nil {
		return nil, err
	}
	return &dto.StatusResponse{
		ID:          doc.ID,
		Status:      target,
		AllowedNext: document.AllowedNext(target),
	}, nil
}
