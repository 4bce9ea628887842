package slack_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/qmsboard/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/qmsboard/pkg/domain/model"
	"github.com/secmon-lab/qmsboard/pkg/domain/types"
	slackSvc "github.com/secmon-lab/qmsboard/pkg/service/slack"
	"github.com/slack-go/slack"
)

func TestGetRiskLevelEmoji(t *testing.T) {
	testCases := []struct {
		level    types.RiskLevel
		expected string
	}{
		{types.RiskLevelCritical, "🚨"},
		{types.RiskLevelHigh, "🔴"},
		{types.RiskLevelMedium, "🟠"},
		{types.RiskLevelLow, "🟢"},
		{types.RiskLevel("other"), "❓"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.level), func(t *testing.T) {
			gt.Equal(t, tc.expected, slackSvc.GetRiskLevelEmoji(tc.level))
		})
	}
}

func newCell(t *testing.T, n int) *model.MatrixCell {
	risks := make([]*model.Risk, 0, n)
	for i := 0; i < n; i++ {
		risks = append(risks, &model.Risk{
			ID:         types.RiskID(fmt.Sprintf("r%d", i)),
			Title:      fmt.Sprintf("Risk %d", i),
			Department: "Nursing",
			Likelihood: types.LikelihoodPossible,
			Severity:   types.SeverityHigh,
			Status:     types.RiskStatusAssessed,
		})
	}
	cell, err := model.NewMatrixCell(risks, types.LikelihoodPossible, types.SeverityHigh, model.DefaultThresholds)
	gt.NoError(t, err)
	return cell
}

func TestBuildCellSelectedBlocks(t *testing.T) {
	builder := slackSvc.NewBlockBuilder()

	t.Run("cell with risks", func(t *testing.T) {
		blocks := builder.BuildCellSelectedBlocks(newCell(t, 2))
		gt.A(t, blocks).Length(4)

		header, ok := blocks[0].(*slack.HeaderBlock)
		gt.True(t, ok)
		gt.Equal(t, "Risk matrix: possible / high", header.Text.Text)

		fields, ok := blocks[1].(*slack.SectionBlock)
		gt.True(t, ok)
		gt.A(t, fields.Fields).Length(3)
		gt.True(t, strings.Contains(fields.Fields[0].Text, "high"))
		gt.True(t, strings.Contains(fields.Fields[1].Text, "9"))
		gt.True(t, strings.Contains(fields.Fields[2].Text, "2"))

		list, ok := blocks[3].(*slack.SectionBlock)
		gt.True(t, ok)
		gt.True(t, strings.Contains(list.Text.Text, "Risk 0"))
		gt.True(t, strings.Contains(list.Text.Text, "Risk 1"))
	})

	t.Run("empty cell", func(t *testing.T) {
		blocks := builder.BuildCellSelectedBlocks(newCell(t, 0))
		gt.A(t, blocks).Length(4)
		_, ok := blocks[3].(*slack.ContextBlock)
		gt.True(t, ok)
	})

	t.Run("long list is truncated", func(t *testing.T) {
		blocks := builder.BuildCellSelectedBlocks(newCell(t, 12))
		gt.A(t, blocks).Length(5)

		list := blocks[3].(*slack.SectionBlock)
		gt.Equal(t, 10, strings.Count(list.Text.Text, "•"))

		more := blocks[4].(*slack.ContextBlock)
		text := more.ContextElements.Elements[0].(*slack.TextBlockObject)
		gt.Equal(t, "and 2 more", text.Text)
	})
}

func TestBuildMatrixSummaryBlocks(t *testing.T) {
	matrix, err := model.BuildMatrix(model.SampleConfig().Risks, model.DefaultThresholds)
	gt.NoError(t, err)

	blocks := slackSvc.NewBlockBuilder().BuildMatrixSummaryBlocks(matrix)
	gt.A(t, blocks).Length(2)

	header := blocks[0].(*slack.HeaderBlock)
	gt.Equal(t, "Risk register: 5 risks", header.Text.Text)

	section := blocks[1].(*slack.SectionBlock)
	gt.A(t, section.Fields).Length(4)
}

func TestNotifier(t *testing.T) {
	ctx := context.Background()

	t.Run("posts cell selection to configured channel", func(t *testing.T) {
		client := &mocks.SlackClientMock{
			PostMessageContextFunc: func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
				return channelID, "1234567890.123456", nil
			},
		}

		notifier := slackSvc.NewNotifier(client, "C_RISK")
		gt.NoError(t, notifier.NotifyCellSelected(ctx, newCell(t, 1)))

		calls := client.PostMessageContextCalls()
		gt.A(t, calls).Length(1)
		gt.Equal(t, "C_RISK", calls[0].ChannelID)
		gt.A(t, calls[0].Options).Length(2)
	})

	t.Run("propagates Slack errors", func(t *testing.T) {
		client := &mocks.SlackClientMock{
			PostMessageContextFunc: func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
				return "", "", goerr.New("channel_not_found")
			},
		}

		notifier := slackSvc.NewNotifier(client, "C_MISSING")
		gt.Error(t, notifier.NotifyCellSelected(ctx, newCell(t, 1)))
	})

	t.Run("nil cell is rejected", func(t *testing.T) {
		notifier := slackSvc.NewNotifier(&mocks.SlackClientMock{}, "C_RISK")
		gt.Error(t, notifier.NotifyCellSelected(ctx, nil))
	})

	t.Run("verify uses auth test", func(t *testing.T) {
		client := &mocks.SlackClientMock{
			AuthTestContextFunc: func(ctx context.Context) (*slack.AuthTestResponse, error) {
				return &slack.AuthTestResponse{UserID: "U_BOT", User: "qmsboard"}, nil
			},
		}
		notifier := slackSvc.NewNotifier(client, "C_RISK")
		gt.NoError(t, notifier.Verify(ctx))
		gt.A(t, client.AuthTestContextCalls()).Length(1)
	})

	t.Run("posts matrix summary", func(t *testing.T) {
		client := &mocks.SlackClientMock{
			PostMessageContextFunc: func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
				return channelID, "1", nil
			},
		}
		matrix, err := model.BuildMatrix(nil, model.DefaultThresholds)
		gt.NoError(t, err)

		notifier := slackSvc.NewNotifier(client, "C_RISK")
		gt.NoError(t, notifier.PostMatrixSummary(ctx, matrix))
		gt.Error(t, notifier.PostMatrixSummary(ctx, nil))
		gt.A(t, client.PostMessageContextCalls()).Length(1)
	})
}

func TestNotifier_CellSelectedFunc(t *testing.T) {
	ctx := context.Background()
	posted := make(chan string, 1)
	client := &mocks.SlackClientMock{
		PostMessageContextFunc: func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
			posted <- channelID
			return channelID, "1", nil
		},
	}

	fn := slackSvc.NewNotifier(client, "C_RISK").CellSelectedFunc(ctx, model.DefaultThresholds)

	t.Run("posts asynchronously", func(t *testing.T) {
		fn(types.LikelihoodPossible, types.SeverityHigh, newCell(t, 1).Risks)

		select {
		case ch := <-posted:
			gt.Equal(t, "C_RISK", ch)
		case <-time.After(time.Second):
			t.Fatal("notification was not posted")
		}
	})

	t.Run("invalid cell is not posted", func(t *testing.T) {
		fn(types.Likelihood("never"), types.SeverityHigh, nil)

		select {
		case <-posted:
			t.Fatal("unexpected notification")
		case <-time.After(50 * time.Millisecond):
		}
	})
}
