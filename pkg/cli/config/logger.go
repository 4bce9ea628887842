package config

import (
	"io"
	"log/slog"

	"github.com/secmon-lab/qmsboard/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ServiceName is attached to every log record
const ServiceName = "qmsboard"

// Logger holds logger configuration
type Logger struct {
	Level  string
	Format string
}

// Flags returns CLI flags for Logger configuration
func (l *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Category:    "Logging",
			Value:       "info",
			Sources:     cli.EnvVars("QMSBOARD_LOG_LEVEL"),
			Destination: &l.Level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console, json, auto)",
			Category:    "Logging",
			Value:       "auto",
			Sources:     cli.EnvVars("QMSBOARD_LOG_FORMAT"),
			Destination: &l.Format,
		},
	}
}

// Configure builds the service logger writing to w. Records carry the
// service name and the given version.
func (l *Logger) Configure(w io.Writer, version string) (*slog.Logger, error) {
	level, err := logging.ParseLevel(l.Level)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(l.Format)
	if err != nil {
		return nil, err
	}

	return logging.New(logging.Options{
		Level:   level,
		Format:  format,
		Writer:  w,
		Service: ServiceName,
		Version: version,
	}), nil
}

// LogValue returns structured log value
func (l Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", l.Level),
		slog.String("format", l.Format),
	)
}

// Validate validates the logger configuration
func (l *Logger) Validate() error {
	if _, err := logging.ParseLevel(l.Level); err != nil {
		return err
	}
	if _, err := logging.ParseFormat(l.Format); err != nil {
		return err
	}
	return nil
}
