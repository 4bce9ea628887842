package slack

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/qmsboard/pkg/domain/interfaces"
	"github.com/secmon-lab/qmsboard/pkg/domain/model"
	"github.com/secmon-lab/qmsboard/pkg/domain/types"
	"github.com/secmon-lab/qmsboard/pkg/utils/async"
	"github.com/slack-go/slack"
)

// New creates a Slack API client
func New(token string) interfaces.SlackClient {
	return slack.New(token)
}

// Notifier posts risk matrix events to a Slack channel
type Notifier struct {
	client    interfaces.SlackClient
	channelID string
	builder   *BlockBuilder
}

// NewNotifier creates a new Notifier
func NewNotifier(client interfaces.SlackClient, channelID string) *Notifier {
	return &Notifier{
		client:    client,
		channelID: channelID,
		builder:   NewBlockBuilder(),
	}
}

// Verify checks the token by calling auth.test
func (n *Notifier) Verify(ctx context.Context) error {
	resp, err := n.client.AuthTestContext(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to verify Slack token")
	}
	ctxlog.From(ctx).Info("Slack notifier ready",
		"botUser", resp.User,
		"channel", n.channelID,
	)
	return nil
}

// NotifyCellSelected posts the selected cell and its member risks
func (n *Notifier) NotifyCellSelected(ctx context.Context, cell *model.MatrixCell) error {
	if cell == nil {
		return goerr.New("cell is nil")
	}

	fallback := fmt.Sprintf("Risk matrix %s/%s: %s (%d risks)",
		cell.Likelihood, cell.Severity, cell.Level, cell.Count())

	_, _, err := n.client.PostMessageContext(ctx, n.channelID,
		slack.MsgOptionText(fallback, false),
		slack.MsgOptionBlocks(n.builder.BuildCellSelectedBlocks(cell)...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post cell selection to Slack",
			goerr.V("channel", n.channelID),
			goerr.V("likelihood", cell.Likelihood),
			goerr.V("severity", cell.Severity))
	}
	return nil
}

// CellSelectedFunc returns a callback that posts selected cells in the
// background so the caller is not blocked by the Slack API
func (n *Notifier) CellSelectedFunc(ctx context.Context, thresholds model.Thresholds) model.CellSelectedFunc {
	return func(likelihood types.Likelihood, severity types.Severity, members []*model.Risk) {
		cell, err := model.NewMatrixCell(members, likelihood, severity, thresholds)
		if err != nil {
			ctxlog.From(ctx).Warn("Skip Slack notification for invalid cell",
				"likelihood", likelihood,
				"severity", severity,
				"error", err,
			)
			return
		}
		async.Dispatch(ctx, func(ctx context.Context) error {
			return n.NotifyCellSelected(ctx, cell)
		})
	}
}

// PostMatrixSummary posts per-level counts of the matrix
func (n *Notifier) PostMatrixSummary(ctx context.Context, matrix *model.RiskMatrix) error {
	if matrix == nil {
		return goerr.New("matrix is nil")
	}

	_, _, err := n.client.PostMessageContext(ctx, n.channelID,
		slack.MsgOptionText(fmt.Sprintf("Risk register: %d risks", matrix.Total()), false),
		slack.MsgOptionBlocks(n.builder.BuildMatrixSummaryBlocks(matrix)...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post matrix summary to Slack",
			goerr.V("channel", n.channelID))
	}
	return nil
}
