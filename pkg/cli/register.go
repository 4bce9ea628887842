package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/qmsboard/pkg/cli/config"
	"github.com/secmon-lab/qmsboard/pkg/domain/interfaces"
	"github.com/secmon-lab/qmsboard/pkg/domain/model"
	"github.com/secmon-lab/qmsboard/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

// registerSource is the storage and seed configuration shared by commands
// reading the risk register
type registerSource struct {
	firestore config.Firestore
	seed      config.Seed
}

func (s *registerSource) Flags() []cli.Flag {
	return joinFlags(s.firestore.Flags(), s.seed.Flags())
}

func (s registerSource) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("firestore", s.firestore),
		slog.Any("seed", s.seed),
	)
}

// Open returns the repository and the seed configuration. Memory storage is
// always seeded. Firestore is written only when writeSeed is set and a seed
// file was given.
func (s *registerSource) Open(ctx context.Context, writeSeed bool) (interfaces.Repository, *model.Config, error) {
	repo, err := s.firestore.Configure(ctx)
	if err != nil {
		return nil, nil, err
	}

	seed, err := s.seed.Configure(ctx)
	if err != nil {
		_ = repo.Close()
		return nil, nil, err
	}

	if !s.firestore.IsConfigured() || (writeSeed && s.seed.IsConfigured()) {
		if err := usecase.Seed(ctx, repo, seed); err != nil {
			_ = repo.Close()
			return nil, nil, goerr.Wrap(err, "failed to load seed data")
		}
		ctxlog.From(ctx).Debug("Risk register seeded",
			"backend", s.firestore.Backend(),
			"risks", len(seed.Risks),
			"kpis", len(seed.KPIs),
			"documents", len(seed.Documents),
		)
	}

	return repo, seed, nil
}
