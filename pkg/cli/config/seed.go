package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/qmsboard/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Seed holds the seed data file configuration
type Seed struct {
	Path string
}

// Flags returns CLI flags for Seed configuration
func (s *Seed) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "seed",
			Usage:       "YAML file with risks, KPIs, documents and thresholds (built-in sample data if not set)",
			Category:    "Data",
			Sources:     cli.EnvVars("QMSBOARD_SEED"),
			Destination: &s.Path,
		},
	}
}

// Configure loads the seed file, or the sample data set if no path is set
func (s *Seed) Configure(ctx context.Context) (*model.Config, error) {
	if !s.IsConfigured() {
		ctxlog.From(ctx).Info("No seed file given, using sample data")
		return model.SampleConfig(), nil
	}
	return LoadSeedFromFile(s.Path)
}

// IsConfigured checks if a seed file is given
func (s *Seed) IsConfigured() bool {
	return s.Path != ""
}

// LogValue returns structured log value
func (s Seed) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", s.Path),
	)
}

// LoadSeedFromFile loads seed data from YAML file
func LoadSeedFromFile(path string) (*model.Config, error) {
	if path == "" {
		return nil, goerr.New("seed file path is required")
	}

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "seed file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read seed file",
			goerr.V("path", path))
	}

	// Parse YAML
	var config model.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML seed file",
			goerr.V("path", path))
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid seed data",
			goerr.V("path", path))
	}

	return &config, nil
}
