package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/qmsboard/pkg/domain/interfaces"
	"github.com/secmon-lab/qmsboard/pkg/domain/model"
	"golang.org/x/sync/errgroup"
)

// Dashboard implements interfaces.Dashboard
type Dashboard struct {
	repo       interfaces.Repository
	thresholds model.Thresholds
}

// NewDashboard creates a new Dashboard use case
func NewDashboard(repo interfaces.Repository, thresholds model.Thresholds) *Dashboard {
	return &Dashboard{
		repo:       repo,
		thresholds: thresholds,
	}
}

// Summary loads risks, KPIs and documents concurrently and tallies them
func (u *Dashboard) Summary(ctx context.Context) (*model.DashboardSummary, error) {
	var (
		risks []*model.Risk
		kpis  []*model.KPI
		docs  []*model.Document
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		if risks, err = u.repo.ListRisks(ctx); err != nil {
			return goerr.Wrap(err, "failed to list risks")
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		if kpis, err = u.repo.ListKPIs(ctx); err != nil {
			return goerr.Wrap(err, "failed to list KPIs")
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		if docs, err = u.repo.ListDocuments(ctx); err != nil {
			return goerr.Wrap(err, "failed to list documents")
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	matrix, err := model.BuildMatrix(risks, u.thresholds)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build risk matrix")
	}

	summary := &model.DashboardSummary{
		TotalRisks:   matrix.Total(),
		RisksByLevel: matrix.LevelCounts(),
	}
	summary.CountKPIs(kpis)
	summary.CountDocuments(docs)

	return summary, nil
}
