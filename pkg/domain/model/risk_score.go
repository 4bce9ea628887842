package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/qmsboard/pkg/domain/types"
)

// Thresholds is the bucketing policy that maps a score to a risk level.
// A score is low up to Low, medium up to Medium, high up to High, and
// critical above High.
type Thresholds struct {
	Low    int `yaml:"low" json:"low"`
	Medium int `yaml:"medium" json:"medium"`
	High   int `yaml:"high" json:"high"`
}

// DefaultThresholds is the standard 5x4 hospital matrix policy
var DefaultThresholds = Thresholds{Low: 3, Medium: 8, High: 12}

// Validate checks that thresholds are positive and strictly increasing
func (t Thresholds) Validate() error {
	if t.Low < 1 || t.Medium <= t.Low || t.High <= t.Medium {
		return goerr.New("thresholds must satisfy 1 <= low < medium < high",
			goerr.V("low", t.Low),
			goerr.V("medium", t.Medium),
			goerr.V("high", t.High))
	}
	return nil
}

// BucketFor maps a score to a risk level. Anything above High is critical,
// including scores outside the 1..20 matrix range.
func (t Thresholds) BucketFor(score int) types.RiskLevel {
	switch {
	case score <= t.Low:
		return types.RiskLevelLow
	case score <= t.Medium:
		return types.RiskLevelMedium
	case score <= t.High:
		return types.RiskLevelHigh
	default:
		return types.RiskLevelCritical
	}
}

// BucketFor maps a score to a risk level using DefaultThresholds
func BucketFor(score int) types.RiskLevel {
	return DefaultThresholds.BucketFor(score)
}

// RiskScore returns rank(likelihood) * rank(severity)
func RiskScore(likelihood types.Likelihood, severity types.Severity) (int, error) {
	l, err := likelihood.Rank()
	if err != nil {
		return 0, err
	}
	s, err := severity.Rank()
	if err != nil {
		return 0, err
	}
	return l * s, nil
}

// CellMembers returns the risks whose likelihood and severity both equal the
// given pair, in input order
func CellMembers(risks []*Risk, likelihood types.Likelihood, severity types.Severity) []*Risk {
	members := []*Risk{}
	for _, r := range risks {
		if r.Likelihood == likelihood && r.Severity == severity {
			members = append(members, r)
		}
	}
	return members
}

// CellSelectedFunc is notified when a consumer selects a matrix cell
type CellSelectedFunc func(likelihood types.Likelihood, severity types.Severity, members []*Risk)

// MatrixCell is one likelihood x severity cell of the risk matrix
type MatrixCell struct {
	Likelihood types.Likelihood `json:"likelihood"`
	Severity   types.Severity   `json:"severity"`
	Score      int              `json:"score"`
	Level      types.RiskLevel  `json:"level"`
	Risks      []*Risk          `json:"risks"`
}

// Count returns the number of risks in the cell
func (c *MatrixCell) Count() int {
	return len(c.Risks)
}

// RiskMatrix is the full grid, rows ordered by likelihood and columns by
// severity
type RiskMatrix struct {
	Likelihoods []types.Likelihood `json:"likelihoods"`
	Severities  []types.Severity   `json:"severities"`
	Rows        [][]*MatrixCell    `json:"rows"`
}

// NewMatrixCell builds a single cell from the full risk list
func NewMatrixCell(risks []*Risk, likelihood types.Likelihood, severity types.Severity, thresholds Thresholds) (*MatrixCell, error) {
	score, err := RiskScore(likelihood, severity)
	if err != nil {
		return nil, err
	}
	return &MatrixCell{
		Likelihood: likelihood,
		Severity:   severity,
		Score:      score,
		Level:      thresholds.BucketFor(score),
		Risks:      CellMembers(risks, likelihood, severity),
	}, nil
}

// BuildMatrix computes every cell of the matrix. Cell levels depend only on
// coordinates, so an empty risk list still yields a complete grid.
func BuildMatrix(risks []*Risk, thresholds Thresholds) (*RiskMatrix, error) {
	likelihoods := types.Likelihoods()
	severities := types.Severities()

	matrix := &RiskMatrix{
		Likelihoods: likelihoods,
		Severities:  severities,
		Rows:        make([][]*MatrixCell, 0, len(likelihoods)),
	}

	for _, l := range likelihoods {
		row := make([]*MatrixCell, 0, len(severities))
		for _, s := range severities {
			cell, err := NewMatrixCell(risks, l, s, thresholds)
			if err != nil {
				return nil, goerr.Wrap(err, "failed to build matrix cell")
			}
			row = append(row, cell)
		}
		matrix.Rows = append(matrix.Rows, row)
	}

	return matrix, nil
}

// Cell returns the cell at the given coordinates, or nil if either value is
// not part of the matrix
func (m *RiskMatrix) Cell(likelihood types.Likelihood, severity types.Severity) *MatrixCell {
	for _, row := range m.Rows {
		for _, cell := range row {
			if cell.Likelihood == likelihood && cell.Severity == severity {
				return cell
			}
		}
	}
	return nil
}

// LevelCounts returns how many risks fall in each risk level
func (m *RiskMatrix) LevelCounts() map[types.RiskLevel]int {
	counts := make(map[types.RiskLevel]int, len(types.RiskLevels()))
	for _, level := range types.RiskLevels() {
		counts[level] = 0
	}
	for _, row := range m.Rows {
		for _, cell := range row {
			counts[cell.Level] += cell.Count()
		}
	}
	return counts
}

// Total returns the number of risks placed on the matrix
func (m *RiskMatrix) Total() int {
	total := 0
	for _, row := range m.Rows {
		for _, cell := range row {
			total += cell.Count()
		}
	}
	return total
}
