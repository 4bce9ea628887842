package model

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/qmsboard/pkg/domain/types"
)

// Document represents a controlled quality document (policy, procedure, ...)
type Document struct {
	ID             types.DocumentID     `json:"id" yaml:"id" firestore:"id"`
	Title          string               `json:"title" yaml:"title" firestore:"title"`
	DocumentNumber string               `json:"documentNumber" yaml:"document_number" firestore:"document_number"`
	Version        string               `json:"version" yaml:"version" firestore:"version"`
	Status         types.DocumentStatus `json:"status" yaml:"status" firestore:"status"`
	Type           types.DocumentType   `json:"type" yaml:"type" firestore:"type"`
	Department     string               `json:"department" yaml:"department" firestore:"department"`
	Owner          types.UserID         `json:"owner" yaml:"owner" firestore:"owner"`
	Tags           []string             `json:"tags,omitempty" yaml:"tags,omitempty" firestore:"tags"`
	CreatedAt      time.Time            `json:"createdAt" yaml:"created_at" firestore:"created_at"`
	UpdatedAt      time.Time            `json:"updatedAt,omitempty" yaml:"updated_at,omitempty" firestore:"updated_at"`
	ExpiryDate     time.Time            `json:"expiryDate,omitempty" yaml:"expiry_date,omitempty" firestore:"expiry_date"`
}

// Validate validates the document
func (d *Document) Validate() error {
	if d.ID == "" {
		return goerr.New("document ID is required")
	}
	if d.Title == "" {
		return goerr.New("document title is required", goerr.V("id", d.ID))
	}
	if !d.Status.IsValid() {
		return goerr.Wrap(types.ErrInvalidEnumValue, "invalid document status",
			goerr.V("id", d.ID),
			goerr.V("status", d.Status))
	}
	if !d.Type.IsValid() {
		return goerr.Wrap(types.ErrInvalidEnumValue, "invalid document type",
			goerr.V("id", d.ID),
			goerr.V("type", d.Type))
	}
	return nil
}

// DocumentFilter is the document grid search. Empty Type/Status, or "all",
// disable that criterion.
type DocumentFilter struct {
	Query  string
	Type   string
	Status string
}

// Validate rejects unknown type and status criteria
func (f DocumentFilter) Validate() error {
	if f.Type != "" && f.Type != "all" && !types.DocumentType(f.Type).IsValid() {
		return goerr.Wrap(types.ErrInvalidEnumValue, "invalid document type filter",
			goerr.V("type", f.Type))
	}
	if f.Status != "" && f.Status != "all" && !types.DocumentStatus(f.Status).IsValid() {
		return goerr.Wrap(types.ErrInvalidEnumValue, "invalid document status filter",
			goerr.V("status", f.Status))
	}
	return nil
}

// Match reports whether the document passes every criterion
func (f DocumentFilter) Match(d *Document) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(d.DocumentNumber), q) &&
			!strings.Contains(strings.ToLower(d.Title), q) {
			return false
		}
	}
	if f.Type != "" && f.Type != "all" && string(d.Type) != f.Type {
		return false
	}
	if f.Status != "" && f.Status != "all" && string(d.Status) != f.Status {
		return false
	}
	return true
}

// FilterDocuments returns the matching documents in input order
func FilterDocuments(docs []*Document, filter DocumentFilter) []*Document {
	result := []*Document{}
	for _, d := range docs {
		if filter.Match(d) {
			result = append(result, d)
		}
	}
	return result
}
