package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/qmsboard/pkg/domain/types"
)

// Risk represents an entry in the hospital risk register
type Risk struct {
	ID               types.RiskID           `json:"id" yaml:"id" firestore:"id"`
	Title            string                 `json:"title" yaml:"title" firestore:"title"`
	Description      string                 `json:"description" yaml:"description" firestore:"description"`
	Department       string                 `json:"department" yaml:"department" firestore:"department"`
	Owner            types.UserID           `json:"owner" yaml:"owner" firestore:"owner"`
	Likelihood       types.Likelihood       `json:"likelihood" yaml:"likelihood" firestore:"likelihood"`
	Severity         types.Severity         `json:"severity" yaml:"severity" firestore:"severity"`
	Status           types.RiskStatus       `json:"status" yaml:"status" firestore:"status"`
	MitigationPlan   string                 `json:"mitigationPlan,omitempty" yaml:"mitigation_plan,omitempty" firestore:"mitigation_plan"`
	MitigationStatus types.MitigationStatus `json:"mitigationStatus,omitempty" yaml:"mitigation_status,omitempty" firestore:"mitigation_status"`
	IdentifiedAt     time.Time              `json:"identifiedAt" yaml:"identified_at" firestore:"identified_at"`
	UpdatedAt        time.Time              `json:"updatedAt,omitempty" yaml:"updated_at,omitempty" firestore:"updated_at"`
	ReviewDate       time.Time              `json:"reviewDate,omitempty" yaml:"review_date,omitempty" firestore:"review_date"`
}

// NewRisk creates a new risk with a generated ID in identified status
func NewRisk(title, department string, owner types.UserID, likelihood types.Likelihood, severity types.Severity) (*Risk, error) {
	now := time.Now()
	risk := &Risk{
		ID:           types.NewRiskID(),
		Title:        title,
		Department:   department,
		Owner:        owner,
		Likelihood:   likelihood,
		Severity:     severity,
		Status:       types.RiskStatusIdentified,
		IdentifiedAt: now,
		UpdatedAt:    now,
	}

	if err := risk.Validate(); err != nil {
		return nil, err
	}
	return risk, nil
}

// Validate validates the risk
func (r *Risk) Validate() error {
	if r.ID == "" {
		return goerr.New("risk ID is required")
	}
	if r.Title == "" {
		return goerr.New("risk title is required", goerr.V("id", r.ID))
	}
	if !r.Likelihood.IsValid() {
		return goerr.Wrap(types.ErrInvalidEnumValue, "invalid likelihood",
			goerr.V("id", r.ID),
			goerr.V("likelihood", r.Likelihood))
	}
	if !r.Severity.IsValid() {
		return goerr.Wrap(types.ErrInvalidEnumValue, "invalid severity",
			goerr.V("id", r.ID),
			goerr.V("severity", r.Severity))
	}
	if !r.Status.IsValid() {
		return goerr.Wrap(types.ErrInvalidEnumValue, "invalid risk status",
			goerr.V("id", r.ID),
			goerr.V("status", r.Status))
	}
	if !r.MitigationStatus.IsValid() {
		return goerr.Wrap(types.ErrInvalidEnumValue, "invalid mitigation status",
			goerr.V("id", r.ID),
			goerr.V("mitigationStatus", r.MitigationStatus))
	}
	return nil
}

// Score returns the likelihood x severity score of the risk
func (r *Risk) Score() (int, error) {
	return RiskScore(r.Likelihood, r.Severity)
}

// RiskFilter narrows a risk listing. Empty fields match everything.
type RiskFilter struct {
	Department string
	Status     types.RiskStatus
}

// Normalize maps the "all" choice of the grid selectors to the empty filter
func (f RiskFilter) Normalize() RiskFilter {
	if f.Department == "all" {
		f.Department = ""
	}
	if f.Status == "all" {
		f.Status = ""
	}
	return f
}

// Match reports whether the risk passes the filter
func (f RiskFilter) Match(r *Risk) bool {
	f = f.Normalize()
	if f.Department != "" && r.Department != f.Department {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	return true
}
