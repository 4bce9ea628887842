package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/qmsboard/pkg/domain/interfaces"
	slackSvc "github.com/secmon-lab/qmsboard/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack notification configuration
type Slack struct {
	OAuthToken string
	ChannelID  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for posting notifications",
			Category:    "Slack",
			Sources:     cli.EnvVars("QMSBOARD_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID receiving risk matrix notifications",
			Category:    "Slack",
			Sources:     cli.EnvVars("QMSBOARD_SLACK_CHANNEL"),
			Destination: &s.ChannelID,
		},
	}
}

// Configure creates a notifier with the given client. The client is
// replaceable for testing.
func (s *Slack) Configure(ctx context.Context, client interfaces.SlackClient) (*slackSvc.Notifier, error) {
	if s.ChannelID == "" {
		return nil, goerr.New("Slack channel is required when Slack token is set")
	}

	notifier := slackSvc.NewNotifier(client, s.ChannelID)
	if err := notifier.Verify(ctx); err != nil {
		return nil, goerr.Wrap(err, "failed to configure Slack notifier",
			goerr.V("channel", s.ChannelID))
	}
	return notifier, nil
}

// ConfigureOptional creates a notifier if configured, returns nil if not
func (s *Slack) ConfigureOptional(ctx context.Context) (*slackSvc.Notifier, error) {
	if !s.IsConfigured() {
		ctxlog.From(ctx).Warn("Slack not configured - matrix notifications are disabled")
		return nil, nil
	}

	ctxlog.From(ctx).Info("Configuring Slack notifier")
	return s.Configure(ctx, slackSvc.New(s.OAuthToken))
}

// IsConfigured checks if Slack is configured
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.ChannelID),
	)
}
