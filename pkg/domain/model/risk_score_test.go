package model_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/qmsboard/pkg/domain/model"
	"github.com/secmon-lab/qmsboard/pkg/domain/types"
)

func TestRiskScore(t *testing.T) {
	t.Run("corner cells", func(t *testing.T) {
		score, err := model.RiskScore(types.LikelihoodRare, types.SeverityLow)
		gt.NoError(t, err)
		gt.Equal(t, 1, score)

		score, err = model.RiskScore(types.LikelihoodAlmostCertain, types.SeverityCritical)
		gt.NoError(t, err)
		gt.Equal(t, 20, score)
	})

	t.Run("product of ranks for every pair", func(t *testing.T) {
		for li, l := range types.Likelihoods() {
			for si, s := range types.Severities() {
				score, err := model.RiskScore(l, s)
				gt.NoError(t, err)
				gt.Equal(t, (li+1)*(si+1), score)
			}
		}
	})

	t.Run("unknown likelihood is rejected", func(t *testing.T) {
		_, err := model.RiskScore(types.Likelihood("frequent"), types.SeverityLow)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidEnumValue))
	})

	t.Run("unknown severity is rejected", func(t *testing.T) {
		_, err := model.RiskScore(types.LikelihoodRare, types.Severity("LOW"))
		gt.True(t, errors.Is(err, types.ErrInvalidEnumValue))
	})

	t.Run("repeated calls agree", func(t *testing.T) {
		a, err := model.RiskScore(types.LikelihoodLikely, types.SeverityMedium)
		gt.NoError(t, err)
		b, err := model.RiskScore(types.LikelihoodLikely, types.SeverityMedium)
		gt.NoError(t, err)
		gt.Equal(t, a, b)
		gt.Equal(t, 8, a)
	})
}

func TestBucketFor(t *testing.T) {
	testCases := []struct {
		score    int
		expected types.RiskLevel
	}{
		{1, types.RiskLevelLow},
		{3, types.RiskLevelLow},
		{4, types.RiskLevelMedium},
		{8, types.RiskLevelMedium},
		{9, types.RiskLevelHigh},
		{12, types.RiskLevelHigh},
		{13, types.RiskLevelCritical},
		{20, types.RiskLevelCritical},
		{0, types.RiskLevelLow},
		{-5, types.RiskLevelLow},
		{21, types.RiskLevelCritical},
		{1000, types.RiskLevelCritical},
	}

	for _, tc := range testCases {
		t.Run(tc.expected.String(), func(t *testing.T) {
			gt.Equal(t, tc.expected, model.BucketFor(tc.score))
			gt.Equal(t, model.BucketFor(tc.score), model.BucketFor(tc.score))
		})
	}
}

func TestThresholds(t *testing.T) {
	t.Run("defaults match fixed boundaries", func(t *testing.T) {
		gt.Equal(t, model.Thresholds{Low: 3, Medium: 8, High: 12}, model.DefaultThresholds)
		gt.NoError(t, model.DefaultThresholds.Validate())
	})

	t.Run("custom policy", func(t *testing.T) {
		th := model.Thresholds{Low: 2, Medium: 6, High: 10}
		gt.NoError(t, th.Validate())
		gt.Equal(t, types.RiskLevelMedium, th.BucketFor(3))
		gt.Equal(t, types.RiskLevelCritical, th.BucketFor(12))
	})

	t.Run("non increasing thresholds are invalid", func(t *testing.T) {
		gt.Error(t, model.Thresholds{Low: 3, Medium: 3, High: 12}.Validate())
		gt.Error(t, model.Thresholds{Low: 0, Medium: 8, High: 12}.Validate())
		gt.Error(t, model.Thresholds{Low: 3, Medium: 8, High: 8}.Validate())
	})
}

func TestCellMembers(t *testing.T) {
	r1 := &model.Risk{ID: "r1", Likelihood: types.LikelihoodPossible, Severity: types.SeverityHigh}
	r2 := &model.Risk{ID: "r2", Likelihood: types.LikelihoodRare, Severity: types.SeverityCritical}
	r3 := &model.Risk{ID: "r3", Likelihood: types.LikelihoodPossible, Severity: types.SeverityHigh}
	r4 := &model.Risk{ID: "r4", Likelihood: types.LikelihoodPossible, Severity: types.SeverityMedium}
	risks := []*model.Risk{r1, r2, r3, r4, r1}

	t.Run("exact pair in input order without dedup", func(t *testing.T) {
		members := model.CellMembers(risks, types.LikelihoodPossible, types.SeverityHigh)
		ids := make([]types.RiskID, 0, len(members))
		for _, m := range members {
			ids = append(ids, m.ID)
		}
		if diff := cmp.Diff([]types.RiskID{"r1", "r3", "r1"}, ids); diff != "" {
			t.Errorf("unexpected members (-want +got):\n%s", diff)
		}
	})

	t.Run("no match returns empty list", func(t *testing.T) {
		members := model.CellMembers(risks, types.LikelihoodAlmostCertain, types.SeverityLow)
		gt.True(t, members != nil)
		gt.A(t, members).Length(0)
	})

	t.Run("nil input", func(t *testing.T) {
		gt.A(t, model.CellMembers(nil, types.LikelihoodRare, types.SeverityLow)).Length(0)
	})
}

func TestBuildMatrix(t *testing.T) {
	t.Run("end to end scenario", func(t *testing.T) {
		risks := []*model.Risk{
			{ID: "a", Likelihood: types.LikelihoodPossible, Severity: types.SeverityHigh},
			{ID: "b", Likelihood: types.LikelihoodPossible, Severity: types.SeverityHigh},
			{ID: "c", Likelihood: types.LikelihoodRare, Severity: types.SeverityCritical},
		}

		matrix, err := model.BuildMatrix(risks, model.DefaultThresholds)
		gt.NoError(t, err)
		gt.A(t, matrix.Rows).Length(5)

		cell := matrix.Cell(types.LikelihoodPossible, types.SeverityHigh)
		gt.V(t, cell).NotNil()
		gt.Equal(t, 9, cell.Score)
		gt.Equal(t, types.RiskLevelHigh, cell.Level)
		gt.Equal(t, 2, cell.Count())

		cell = matrix.Cell(types.LikelihoodRare, types.SeverityCritical)
		gt.V(t, cell).NotNil()
		gt.Equal(t, 4, cell.Score)
		gt.Equal(t, types.RiskLevelMedium, cell.Level)
		gt.Equal(t, 1, cell.Count())

		for _, row := range matrix.Rows {
			gt.A(t, row).Length(4)
			for _, c := range row {
				if (c.Likelihood == types.LikelihoodPossible && c.Severity == types.SeverityHigh) ||
					(c.Likelihood == types.LikelihoodRare && c.Severity == types.SeverityCritical) {
					continue
				}
				gt.Equal(t, 0, c.Count())
			}
		}

		gt.Equal(t, 3, matrix.Total())
		counts := matrix.LevelCounts()
		gt.Equal(t, 2, counts[types.RiskLevelHigh])
		gt.Equal(t, 1, counts[types.RiskLevelMedium])
		gt.Equal(t, 0, counts[types.RiskLevelCritical])
	})

	t.Run("empty list gives a full empty grid", func(t *testing.T) {
		matrix, err := model.BuildMatrix(nil, model.DefaultThresholds)
		gt.NoError(t, err)
		gt.A(t, matrix.Rows).Length(5)
		for _, row := range matrix.Rows {
			gt.A(t, row).Length(4)
			for _, c := range row {
				gt.Equal(t, 0, c.Count())
				gt.True(t, c.Level.IsValid())
			}
		}
		gt.Equal(t, 0, matrix.Total())
	})

	t.Run("levels are intrinsic to coordinates", func(t *testing.T) {
		matrix, err := model.BuildMatrix(nil, model.DefaultThresholds)
		gt.NoError(t, err)
		gt.Equal(t, types.RiskLevelLow, matrix.Cell(types.LikelihoodRare, types.SeverityLow).Level)
		gt.Equal(t, types.RiskLevelCritical, matrix.Cell(types.LikelihoodAlmostCertain, types.SeverityCritical).Level)
		gt.Equal(t, types.RiskLevelCritical, matrix.Cell(types.LikelihoodLikely, types.SeverityCritical).Level)
		gt.Equal(t, types.RiskLevelHigh, matrix.Cell(types.LikelihoodLikely, types.SeverityHigh).Level)
	})

	t.Run("unknown coordinates have no cell", func(t *testing.T) {
		matrix, err := model.BuildMatrix(nil, model.DefaultThresholds)
		gt.NoError(t, err)
		gt.V(t, matrix.Cell(types.Likelihood("never"), types.SeverityLow)).Nil()
	})

	t.Run("rebuilding gives identical output", func(t *testing.T) {
		risks := model.SampleConfig().Risks
		m1, err := model.BuildMatrix(risks, model.DefaultThresholds)
		gt.NoError(t, err)
		m2, err := model.BuildMatrix(risks, model.DefaultThresholds)
		gt.NoError(t, err)
		if diff := cmp.Diff(m1, m2); diff != "" {
			t.Errorf("matrix changed between builds (-first +second):\n%s", diff)
		}
	})
}
