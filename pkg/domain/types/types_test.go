package types_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/qmsboard/pkg/domain/types"
)

func TestLikelihoodRank(t *testing.T) {
	testCases := []struct {
		name       string
		likelihood types.Likelihood
		expected   int
	}{
		{"rare", types.LikelihoodRare, 1},
		{"unlikely", types.LikelihoodUnlikely, 2},
		{"possible", types.LikelihoodPossible, 3},
		{"likely", types.LikelihoodLikely, 4},
		{"almost certain", types.LikelihoodAlmostCertain, 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rank, err := tc.likelihood.Rank()
			gt.NoError(t, err)
			gt.Equal(t, tc.expected, rank)
		})
	}

	t.Run("unknown value is rejected", func(t *testing.T) {
		rank, err := types.Likelihood("sometimes").Rank()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidEnumValue))
		gt.Equal(t, 0, rank)
	})
}

func TestSeverityRank(t *testing.T) {
	testCases := []struct {
		name     string
		severity types.Severity
		expected int
	}{
		{"low", types.SeverityLow, 1},
		{"medium", types.SeverityMedium, 2},
		{"high", types.SeverityHigh, 3},
		{"critical", types.SeverityCritical, 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rank, err := tc.severity.Rank()
			gt.NoError(t, err)
			gt.Equal(t, tc.expected, rank)
		})
	}

	t.Run("empty value is rejected", func(t *testing.T) {
		_, err := types.Severity("").Rank()
		gt.True(t, errors.Is(err, types.ErrInvalidEnumValue))
	})
}

func TestRankIndependentOfDisplayOrder(t *testing.T) {
	// Row order must agree with ranks even though they are declared separately
	for i, l := range types.Likelihoods() {
		rank, err := l.Rank()
		gt.NoError(t, err)
		gt.Equal(t, i+1, rank)
	}
	for i, s := range types.Severities() {
		rank, err := s.Rank()
		gt.NoError(t, err)
		gt.Equal(t, i+1, rank)
	}
}

func TestEnumJSONDecoding(t *testing.T) {
	type payload struct {
		Likelihood types.Likelihood `json:"likelihood"`
		Severity   types.Severity   `json:"severity"`
	}

	t.Run("valid values decode", func(t *testing.T) {
		var p payload
		err := json.Unmarshal([]byte(`{"likelihood":"almostCertain","severity":"critical"}`), &p)
		gt.NoError(t, err)
		gt.Equal(t, types.LikelihoodAlmostCertain, p.Likelihood)
		gt.Equal(t, types.SeverityCritical, p.Severity)
	})

	t.Run("unknown likelihood fails", func(t *testing.T) {
		var p payload
		err := json.Unmarshal([]byte(`{"likelihood":"often","severity":"low"}`), &p)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidEnumValue))
	})

	t.Run("unknown severity fails", func(t *testing.T) {
		var p payload
		err := json.Unmarshal([]byte(`{"likelihood":"rare","severity":"catastrophic"}`), &p)
		gt.Error(t, err)
	})
}

func TestParseRole(t *testing.T) {
	role, err := types.ParseRole("qualityAdmin")
	gt.NoError(t, err)
	gt.Equal(t, types.RoleQualityAdmin, role)

	_, err = types.ParseRole("janitor")
	gt.True(t, errors.Is(err, types.ErrInvalidEnumValue))
}

func TestNewRiskID(t *testing.T) {
	id1 := types.NewRiskID()
	id2 := types.NewRiskID()
	gt.NotEqual(t, id1, id2)
	gt.True(t, id1.String() != "")
}
