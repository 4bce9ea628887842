package types

import (
	"github.com/google/uuid"
)

// RiskID represents a risk identifier
type RiskID string

// String returns the string representation
func (id RiskID) String() string {
	return string(id)
}

// NewRiskID creates a new RiskID
func NewRiskID() RiskID {
	return RiskID(uuid.New().String())
}

// KPIID represents a KPI identifier
type KPIID string

// String returns the string representation
func (id KPIID) String() string {
	return string(id)
}

// NewKPIID creates a new KPIID
func NewKPIID() KPIID {
	return KPIID(uuid.New().String())
}

// DocumentID represents a controlled document identifier
type DocumentID string

// String returns the string representation
func (id DocumentID) String() string {
	return string(id)
}

// NewDocumentID creates a new DocumentID
func NewDocumentID() DocumentID {
	return DocumentID(uuid.New().String())
}

// UserID represents a user identifier
type UserID string

// String returns the string representation
func (id UserID) String() string {
	return string(id)
}

// RequestID represents an HTTP request identifier
type RequestID string

// String returns the string representation
func (id RequestID) String() string {
	return string(id)
}

// NewRequestID creates a new RequestID using UUID v7
func NewRequestID() (RequestID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return RequestID(id.String()), nil
}
