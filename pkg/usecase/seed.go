package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/qmsboard/pkg/domain/interfaces"
	"github.com/secmon-lab/qmsboard/pkg/domain/model"
)

// Seed validates the data set and writes every record into the repository
func Seed(ctx context.Context, repo interfaces.Repository, cfg *model.Config) error {
	if cfg == nil {
		return goerr.New("seed config is nil")
	}
	if err := cfg.Validate(); err != nil {
		return goerr.Wrap(err, "invalid seed data")
	}

	for _, r := range cfg.Risks {
		if err := repo.PutRisk(ctx, r); err != nil {
			return goerr.Wrap(err, "failed to seed risk", goerr.V("id", r.ID))
		}
	}
	for _, k := range cfg.KPIs {
		if err := repo.PutKPI(ctx, k); err != nil {
			return goerr.Wrap(err, "failed to seed KPI", goerr.V("id", k.ID))
		}
	}
	for _, d := range cfg.Documents {
		if err := repo.PutDocument(ctx, d); err != nil {
			return goerr.Wrap(err, "failed to seed document", goerr.V("id", d.ID))
		}
	}

	ctxlog.From(ctx).Info("Seed data loaded",
		"risks", len(cfg.Risks),
		"kpis", len(cfg.KPIs),
		"documents", len(cfg.Documents),
	)
	return nil
}
