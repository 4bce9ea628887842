package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/qmsboard/pkg/domain/interfaces"
	"github.com/secmon-lab/qmsboard/pkg/domain/model"
	"github.com/secmon-lab/qmsboard/pkg/domain/types"
)

// KPI implements interfaces.KPI
type KPI struct {
	repo interfaces.Repository
}

// NewKPI creates a new KPI use case
func NewKPI(repo interfaces.Repository) *KPI {
	return &KPI{repo: repo}
}

// ListKPIs returns KPIs of a department with progress. Empty or "all"
// returns every KPI.
func (u *KPI) ListKPIs(ctx context.Context, department string) ([]*model.KPIView, error) {
	kpis, err := u.repo.ListKPIs(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list KPIs")
	}

	filtered := model.FilterKPIsByDepartment(kpis, department)
	views := make([]*model.KPIView, 0, len(filtered))
	for _, k := range filtered {
		views = append(views, model.NewKPIView(k))
	}
	return views, nil
}

// GetKPI returns a KPI by ID with progress
func (u *KPI) GetKPI(ctx context.Context, id types.KPIID) (*model.KPIView, error) {
	if id == "" {
		return nil, goerr.Wrap(model.ErrValidation, "KPI ID is required")
	}

	kpi, err := u.repo.GetKPI(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get KPI", goerr.V("id", id))
	}
	return model.NewKPIView(kpi), nil
}
