package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/qmsboard/pkg/domain/types"
)

// CreateRiskRequest is the payload for registering a new risk
type CreateRiskRequest struct {
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Department     string           `json:"department"`
	Owner          types.UserID     `json:"owner"`
	Likelihood     types.Likelihood `json:"likelihood"`
	Severity       types.Severity   `json:"severity"`
	MitigationPlan string           `json:"mitigationPlan"`
}

// Validate validates the request
func (r *CreateRiskRequest) Validate() error {
	if r.Title == "" {
		return goerr.Wrap(ErrValidation, "title is required")
	}
	if r.Department == "" {
		return goerr.Wrap(ErrValidation, "department is required")
	}
	if !r.Likelihood.IsValid() {
		return goerr.Wrap(types.ErrInvalidEnumValue, "invalid likelihood",
			goerr.V("likelihood", r.Likelihood))
	}
	if !r.Severity.IsValid() {
		return goerr.Wrap(types.ErrInvalidEnumValue, "invalid severity",
			goerr.V("severity", r.Severity))
	}
	return nil
}

// ToRisk converts the request into a new risk
func (r *CreateRiskRequest) ToRisk() (*Risk, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	risk, err := NewRisk(r.Title, r.Department, r.Owner, r.Likelihood, r.Severity)
	if err != nil {
		return nil, err
	}
	risk.Description = r.Description
	if r.MitigationPlan != "" {
		risk.MitigationPlan = r.MitigationPlan
		risk.MitigationStatus = types.MitigationNotStarted
	}
	return risk, nil
}
