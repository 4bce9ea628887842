package slack

import (
	"fmt"
	"strings"

	"github.com/secmon-lab/qmsboard/pkg/domain/model"
	"github.com/secmon-lab/qmsboard/pkg/domain/types"
	"github.com/slack-go/slack"
)

// maxListedRisks caps the risk list in one message to stay under Block Kit limits
const maxListedRisks = 10

// GetRiskLevelEmoji returns emoji based on risk level
func GetRiskLevelEmoji(level types.RiskLevel) string {
	switch level {
	case types.RiskLevelCritical:
		return "🚨"
	case types.RiskLevelHigh:
		return "🔴"
	case types.RiskLevelMedium:
		return "🟠"
	case types.RiskLevelLow:
		return "🟢"
	default:
		return "❓"
	}
}

// BlockBuilder provides methods to build Slack message blocks
type BlockBuilder struct{}

// NewBlockBuilder creates a new BlockBuilder instance
func NewBlockBuilder() *BlockBuilder {
	return &BlockBuilder{}
}

// BuildCellSelectedBlocks renders a selected matrix cell and its risks
func (b *BlockBuilder) BuildCellSelectedBlocks(cell *model.MatrixCell) []slack.Block {
	levelText := fmt.Sprintf("%s %s", GetRiskLevelEmoji(cell.Level), cell.Level)

	blocks := []slack.Block{
		&slack.HeaderBlock{
			Type: slack.MBTHeader,
			Text: &slack.TextBlockObject{
				Type: slack.PlainTextType,
				Text: fmt.Sprintf("Risk matrix: %s / %s", cell.Likelihood, cell.Severity),
			},
		},
		&slack.SectionBlock{
			Type: slack.MBTSection,
			Fields: []*slack.TextBlockObject{
				{
					Type: slack.MarkdownType,
					Text: "*Level:*\n" + levelText,
				},
				{
					Type: slack.MarkdownType,
					Text: fmt.Sprintf("*Score:*\n%d", cell.Score),
				},
				{
					Type: slack.MarkdownType,
					Text: fmt.Sprintf("*Risks:*\n%d", cell.Count()),
				},
			},
		},
		&slack.DividerBlock{
			Type: slack.MBTDivider,
		},
	}

	if cell.Count() == 0 {
		return append(blocks, b.BuildContextBlocks("No risks registered in this cell")...)
	}

	lines := make([]string, 0, maxListedRisks)
	for i, r := range cell.Risks {
		if i == maxListedRisks {
			break
		}
		lines = append(lines, fmt.Sprintf("• *%s* (%s, %s)", r.Title, r.Department, r.Status))
	}

	blocks = append(blocks, &slack.SectionBlock{
		Type: slack.MBTSection,
		Text: &slack.TextBlockObject{
			Type: slack.MarkdownType,
			Text: strings.Join(lines, "\n"),
		},
	})

	if rest := cell.Count() - maxListedRisks; rest > 0 {
		blocks = append(blocks, b.BuildContextBlocks(fmt.Sprintf("and %d more", rest))...)
	}

	return blocks
}

// BuildMatrixSummaryBlocks renders the number of risks per level
func (b *BlockBuilder) BuildMatrixSummaryBlocks(matrix *model.RiskMatrix) []slack.Block {
	counts := matrix.LevelCounts()

	fields := make([]*slack.TextBlockObject, 0, len(types.RiskLevels()))
	for _, level := range types.RiskLevels() {
		fields = append(fields, &slack.TextBlockObject{
			Type: slack.MarkdownType,
			Text: fmt.Sprintf("*%s %s:*\n%d", GetRiskLevelEmoji(level), level, counts[level]),
		})
	}

	return []slack.Block{
		&slack.HeaderBlock{
			Type: slack.MBTHeader,
			Text: &slack.TextBlockObject{
				Type: slack.PlainTextType,
				Text: fmt.Sprintf("Risk register: %d risks", matrix.Total()),
			},
		},
		&slack.SectionBlock{
			Type:   slack.MBTSection,
			Fields: fields,
		},
	}
}

// BuildContextBlocks creates a context block with a message
func (b *BlockBuilder) BuildContextBlocks(message string) []slack.Block {
	return []slack.Block{
		&slack.ContextBlock{
			Type: slack.MBTContext,
			ContextElements: slack.ContextElements{
				Elements: []slack.MixedElement{
					&slack.TextBlockObject{
						Type: slack.MarkdownType,
						Text: message,
					},
				},
			},
		},
	}
}
