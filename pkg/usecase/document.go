package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/qmsboard/pkg/domain/interfaces"
	"github.com/secmon-lab/qmsboard/pkg/domain/model"
	"github.com/secmon-lab/qmsboard/pkg/domain/types"
)

// Document implements interfaces.Document
type Document struct {
	repo interfaces.Repository
}

// NewDocument creates a new Document use case
func NewDocument(repo interfaces.Repository) *Document {
	return &Document{repo: repo}
}

// SearchDocuments returns documents passing the filter in listing order
func (u *Document) SearchDocuments(ctx context.Context, filter model.DocumentFilter) ([]*model.Document, error) {
	if err := filter.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid document filter")
	}

	docs, err := u.repo.ListDocuments(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list documents")
	}
	return model.FilterDocuments(docs, filter), nil
}

// GetDocument returns a document by ID
func (u *Document) GetDocument(ctx context.Context, id types.DocumentID) (*model.Document, error) {
	if id == "" {
		return nil, goerr.Wrap(model.ErrValidation, "document ID is required")
	}

	doc, err := u.repo.GetDocument(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get document", goerr.V("id", id))
	}
	return doc, nil
}
