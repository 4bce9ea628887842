package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// KPIStatus represents how a KPI is tracking against its target
type KPIStatus string

const (
	KPIStatusOnTrack    KPIStatus = "onTrack"
	KPIStatusAtRisk     KPIStatus = "atRisk"
	KPIStatusOffTrack   KPIStatus = "offTrack"
	KPIStatusNotStarted KPIStatus = "notStarted"
	KPIStatusCompleted  KPIStatus = "completed"
)

// KPIStatuses returns all KPI statuses
func KPIStatuses() []KPIStatus {
	return []KPIStatus{KPIStatusOnTrack, KPIStatusAtRisk, KPIStatusOffTrack, KPIStatusNotStarted, KPIStatusCompleted}
}

// IsValid checks if the status is valid
func (s KPIStatus) IsValid() bool {
	switch s {
	case KPIStatusOnTrack, KPIStatusAtRisk, KPIStatusOffTrack, KPIStatusNotStarted, KPIStatusCompleted:
		return true
	default:
		return false
	}
}

// UnmarshalText rejects unknown status values at decode time
func (s *KPIStatus) UnmarshalText(text []byte) error {
	v := KPIStatus(text)
	if !v.IsValid() {
		return goerr.Wrap(ErrInvalidEnumValue, "unknown KPI status",
			goerr.V("status", string(text)))
	}
	*s = v
	return nil
}

// KPIFrequency is the measurement cadence of a KPI
type KPIFrequency string

const (
	KPIFrequencyDaily     KPIFrequency = "daily"
	KPIFrequencyWeekly    KPIFrequency = "weekly"
	KPIFrequencyMonthly   KPIFrequency = "monthly"
	KPIFrequencyQuarterly KPIFrequency = "quarterly"
	KPIFrequencyYearly    KPIFrequency = "yearly"
)

// IsValid checks if the frequency is valid
func (f KPIFrequency) IsValid() bool {
	switch f {
	case KPIFrequencyDaily, KPIFrequencyWeekly, KPIFrequencyMonthly, KPIFrequencyQuarterly, KPIFrequencyYearly:
		return true
	default:
		return false
	}
}

// Trend is the direction of the most recent KPI movement
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// IsValid checks if the trend is valid
func (t Trend) IsValid() bool {
	switch t {
	case TrendUp, TrendDown, TrendStable:
		return true
	default:
		return false
	}
}

// DocumentStatus is the approval state of a controlled document
type DocumentStatus string

const (
	DocumentStatusDraft     DocumentStatus = "draft"
	DocumentStatusReview    DocumentStatus = "review"
	DocumentStatusApproved  DocumentStatus = "approved"
	DocumentStatusPublished DocumentStatus = "published"
	DocumentStatusArchived  DocumentStatus = "archived"
)

// DocumentStatuses returns all document statuses
func DocumentStatuses() []DocumentStatus {
	return []DocumentStatus{DocumentStatusDraft, DocumentStatusReview, DocumentStatusApproved, DocumentStatusPublished, DocumentStatusArchived}
}

// IsValid checks if the status is valid
func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusDraft, DocumentStatusReview, DocumentStatusApproved, DocumentStatusPublished, DocumentStatusArchived:
		return true
	default:
		return false
	}
}

// UnmarshalText rejects unknown status values at decode time
func (s *DocumentStatus) UnmarshalText(text []byte) error {
	v := DocumentStatus(text)
	if !v.IsValid() {
		return goerr.Wrap(ErrInvalidEnumValue, "unknown document status",
			goerr.V("status", string(text)))
	}
	*s = v
	return nil
}

// DocumentType is the kind of controlled document
type DocumentType string

const (
	DocumentTypePolicy    DocumentType = "policy"
	DocumentTypeProcedure DocumentType = "procedure"
	DocumentTypeForm      DocumentType = "form"
	DocumentTypeRecord    DocumentType = "record"
	DocumentTypeManual    DocumentType = "manual"
	DocumentTypeGuideline DocumentType = "guideline"
)

// IsValid checks if the type is valid
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypePolicy, DocumentTypeProcedure, DocumentTypeForm, DocumentTypeRecord, DocumentTypeManual, DocumentTypeGuideline:
		return true
	default:
		return false
	}
}

// UnmarshalText rejects unknown type values at decode time
func (t *DocumentType) UnmarshalText(text []byte) error {
	v := DocumentType(text)
	if !v.IsValid() {
		return goerr.Wrap(ErrInvalidEnumValue, "unknown document type",
			goerr.V("type", string(text)))
	}
	*t = v
	return nil
}

// Role is the dashboard role of the acting user
type Role string

const (
	RoleCEO          Role = "ceo"
	RoleQualityAdmin Role = "qualityAdmin"
	RoleHOD          Role = "hod"
	RoleStaff        Role = "staff"
)

// String returns the string representation
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleCEO, RoleQualityAdmin, RoleHOD, RoleStaff:
		return true
	default:
		return false
	}
}

// ParseRole parses a string into a Role
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", goerr.Wrap(ErrInvalidEnumValue, "unknown role",
			goerr.V("role", s))
	}
	return r, nil
}
