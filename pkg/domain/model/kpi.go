package model

import (
	"math"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/qmsboard/pkg/domain/types"
)

// KPIPoint is a single historical measurement
type KPIPoint struct {
	Date  time.Time `json:"date" yaml:"date" firestore:"date"`
	Value float64   `json:"value" yaml:"value" firestore:"value"`
}

// KPI represents a key performance indicator tracked by a department
type KPI struct {
	ID          types.KPIID        `json:"id" yaml:"id" firestore:"id"`
	Name        string             `json:"name" yaml:"name" firestore:"name"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty" firestore:"description"`
	Owner       types.UserID       `json:"owner" yaml:"owner" firestore:"owner"`
	Department  string             `json:"department" yaml:"department" firestore:"department"`
	Target      float64            `json:"target" yaml:"target" firestore:"target"`
	Actual      float64            `json:"actual" yaml:"actual" firestore:"actual"`
	Unit        string             `json:"unit" yaml:"unit" firestore:"unit"`
	Frequency   types.KPIFrequency `json:"frequency" yaml:"frequency" firestore:"frequency"`
	Status      types.KPIStatus    `json:"status" yaml:"status" firestore:"status"`
	Trend       types.Trend        `json:"trend" yaml:"trend" firestore:"trend"`
	StartDate   time.Time          `json:"startDate" yaml:"start_date" firestore:"start_date"`
	History     []KPIPoint         `json:"history,omitempty" yaml:"history,omitempty" firestore:"history"`
}

// Validate validates the KPI
func (k *KPI) Validate() error {
	if k.ID == "" {
		return goerr.New("KPI ID is required")
	}
	if k.Name == "" {
		return goerr.New("KPI name is required", goerr.V("id", k.ID))
	}
	if !k.Status.IsValid() {
		return goerr.Wrap(types.ErrInvalidEnumValue, "invalid KPI status",
			goerr.V("id", k.ID),
			goerr.V("status", k.Status))
	}
	if k.Frequency != "" && !k.Frequency.IsValid() {
		return goerr.Wrap(types.ErrInvalidEnumValue, "invalid KPI frequency",
			goerr.V("id", k.ID),
			goerr.V("frequency", k.Frequency))
	}
	if k.Trend != "" && !k.Trend.IsValid() {
		return goerr.Wrap(types.ErrInvalidEnumValue, "invalid KPI trend",
			goerr.V("id", k.ID),
			goerr.V("trend", k.Trend))
	}
	return nil
}

// Progress returns actual/target as a whole percentage capped at 100.
// A non-positive target has no meaningful progress and yields 0.
func (k *KPI) Progress() int {
	if k.Target <= 0 {
		return 0
	}
	p := int(math.Round(k.Actual / k.Target * 100))
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

// KPIView is a KPI with its derived progress, as served to clients
type KPIView struct {
	*KPI
	Progress int `json:"progress"`
}

// NewKPIView wraps a KPI with its progress
func NewKPIView(k *KPI) *KPIView {
	return &KPIView{KPI: k, Progress: k.Progress()}
}

// FilterKPIsByDepartment returns KPIs of the department in input order.
// Empty or "all" disables the filter.
func FilterKPIsByDepartment(kpis []*KPI, department string) []*KPI {
	if department == "" || department == "all" {
		return kpis
	}
	result := []*KPI{}
	for _, k := range kpis {
		if k.Department == department {
			result = append(result, k)
		}
	}
	return result
}
