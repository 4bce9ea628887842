package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/qmsboard/pkg/domain/interfaces"
	"github.com/secmon-lab/qmsboard/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Firestore selects where the risk register, KPIs and documents live
type Firestore struct {
	ProjectID  string
	DatabaseID string
}

// Flags returns CLI flags for Firestore configuration
func (f *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project ID holding the risk register. In-memory storage when empty",
			Category:    "Firestore",
			Sources:     cli.EnvVars("QMSBOARD_FIRESTORE_PROJECT"),
			Destination: &f.ProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Value:       "(default)",
			Sources:     cli.EnvVars("QMSBOARD_FIRESTORE_DATABASE"),
			Destination: &f.DatabaseID,
		},
	}
}

// Backend names the storage Configure returns
func (f *Firestore) Backend() string {
	if f.IsConfigured() {
		return "firestore"
	}
	return "memory"
}

// Configure returns the register repository. Without a project the register
// is kept in memory and rebuilt from seed data on every start.
func (f *Firestore) Configure(ctx context.Context) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	if !f.IsConfigured() {
		logger.Warn("Risk register is kept in memory; changes are lost on shutdown",
			"backend", f.Backend())
		return repository.NewMemory(), nil
	}

	repo, err := repository.NewFirestore(ctx, f.ProjectID, f.DatabaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open risk register on firestore",
			goerr.V("project", f.ProjectID),
			goerr.V("database", f.DatabaseID),
			goerr.V("collections", repository.Collections()),
		)
	}

	logger.Info("Risk register opened",
		"backend", f.Backend(),
		"collections", repository.Collections(),
	)
	return repo, nil
}

// IsConfigured checks if Firestore is properly configured
func (f *Firestore) IsConfigured() bool {
	return f.ProjectID != ""
}

// LogValue returns structured log value
func (f Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", f.Backend()),
		slog.String("project", f.ProjectID),
		slog.String("database", f.DatabaseID),
	)
}
