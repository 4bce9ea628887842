package repository_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/qmsboard/pkg/domain/interfaces"
	"github.com/secmon-lab/qmsboard/pkg/domain/model"
	"github.com/secmon-lab/qmsboard/pkg/domain/types"
	"github.com/secmon-lab/qmsboard/pkg/repository"
)

func newTestRisk(title string, identifiedAt time.Time) *model.Risk {
	return &model.Risk{
		ID:           types.NewRiskID(),
		Title:        title,
		Department:   "Nursing",
		Owner:        "8",
		Likelihood:   types.LikelihoodPossible,
		Severity:     types.SeverityHigh,
		Status:       types.RiskStatusIdentified,
		IdentifiedAt: identifiedAt,
	}
}

func testRepository(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Run("PutRisk and GetRisk", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		risk := newTestRisk("Patient Falls", time.Now().Truncate(time.Millisecond))

		gt.NoError(t, repo.PutRisk(ctx, risk))

		retrieved, err := repo.GetRisk(ctx, risk.ID)
		gt.NoError(t, err)
		gt.Equal(t, risk.ID, retrieved.ID)
		gt.Equal(t, risk.Title, retrieved.Title)
		gt.Equal(t, risk.Likelihood, retrieved.Likelihood)
		gt.Equal(t, risk.Severity, retrieved.Severity)
		gt.True(t, risk.IdentifiedAt.Sub(retrieved.IdentifiedAt).Abs() < time.Second)
	})

	t.Run("GetRisk_NotFound", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		nonExistentID := types.RiskID(fmt.Sprintf("risk-non-existent-%d", time.Now().UnixNano()))
		_, err := repo.GetRisk(ctx, nonExistentID)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrRiskNotFound))
	})

	t.Run("PutRisk rejects invalid input", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		gt.Error(t, repo.PutRisk(ctx, nil))
		gt.Error(t, repo.PutRisk(ctx, &model.Risk{}))
	})

	t.Run("PutRisk overwrites", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		risk := newTestRisk("Sharps Injury", time.Now())
		gt.NoError(t, repo.PutRisk(ctx, risk))

		risk.Severity = types.SeverityCritical
		gt.NoError(t, repo.PutRisk(ctx, risk))

		retrieved, err := repo.GetRisk(ctx, risk.ID)
		gt.NoError(t, err)
		gt.Equal(t, types.SeverityCritical, retrieved.Severity)
	})

	t.Run("PutKPI and GetKPI", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		kpi := &model.KPI{
			ID:         types.NewKPIID(),
			Name:       "Hand Hygiene Compliance",
			Department: "Quality Management",
			Target:     95,
			Actual:     96,
			Status:     types.KPIStatusOnTrack,
			History: []model.KPIPoint{
				{Date: time.Date(2022, 1, 31, 0, 0, 0, 0, time.UTC), Value: 94},
			},
		}
		gt.NoError(t, repo.PutKPI(ctx, kpi))

		retrieved, err := repo.GetKPI(ctx, kpi.ID)
		gt.NoError(t, err)
		gt.Equal(t, kpi.Name, retrieved.Name)
		gt.Equal(t, kpi.Target, retrieved.Target)
		gt.A(t, retrieved.History).Length(1)

		_, err = repo.GetKPI(ctx, types.NewKPIID())
		gt.True(t, errors.Is(err, model.ErrKPINotFound))
	})

	t.Run("PutDocument and GetDocument", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		doc := &model.Document{
			ID:             types.NewDocumentID(),
			Title:          "Infection Control Policy",
			DocumentNumber: "POL-IC-001",
			Status:         types.DocumentStatusPublished,
			Type:           types.DocumentTypePolicy,
			Tags:           []string{"infection"},
		}
		gt.NoError(t, repo.PutDocument(ctx, doc))

		retrieved, err := repo.GetDocument(ctx, doc.ID)
		gt.NoError(t, err)
		gt.Equal(t, doc.Title, retrieved.Title)
		gt.Equal(t, doc.Tags, retrieved.Tags)

		_, err = repo.GetDocument(ctx, types.NewDocumentID())
		gt.True(t, errors.Is(err, model.ErrDocumentNotFound))
	})
}

func TestMemoryRepository(t *testing.T) {
	testRepository(t, func(t *testing.T) interfaces.Repository {
		return repository.NewMemory()
	})
}

func TestMemoryRepository_ListOrder(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	base := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	late := newTestRisk("late", base.Add(48*time.Hour))
	early := newTestRisk("early", base)
	middle := newTestRisk("middle", base.Add(24*time.Hour))

	for _, r := range []*model.Risk{late, early, middle} {
		gt.NoError(t, repo.PutRisk(ctx, r))
	}

	risks, err := repo.ListRisks(ctx)
	gt.NoError(t, err)
	gt.A(t, risks).Length(3)
	gt.Equal(t, "early", risks[0].Title)
	gt.Equal(t, "middle", risks[1].Title)
	gt.Equal(t, "late", risks[2].Title)
}

func TestMemoryRepository_CopyIsolation(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	risk := newTestRisk("Patient Falls", time.Now())
	gt.NoError(t, repo.PutRisk(ctx, risk))

	// Mutating caller-owned values must not affect stored data
	risk.Title = "changed"
	retrieved, err := repo.GetRisk(ctx, risk.ID)
	gt.NoError(t, err)
	gt.Equal(t, "Patient Falls", retrieved.Title)

	retrieved.Title = "changed again"
	again, err := repo.GetRisk(ctx, risk.ID)
	gt.NoError(t, err)
	gt.Equal(t, "Patient Falls", again.Title)

	doc := &model.Document{ID: "d1", Title: "x", Tags: []string{"a"}}
	gt.NoError(t, repo.PutDocument(ctx, doc))
	doc.Tags[0] = "b"
	storedDoc, err := repo.GetDocument(ctx, "d1")
	gt.NoError(t, err)
	gt.Equal(t, []string{"a"}, storedDoc.Tags)
}

func TestMemoryRepository_EmptyLists(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	risks, err := repo.ListRisks(ctx)
	gt.NoError(t, err)
	gt.A(t, risks).Length(0)

	kpis, err := repo.ListKPIs(ctx)
	gt.NoError(t, err)
	gt.A(t, kpis).Length(0)

	docs, err := repo.ListDocuments(ctx)
	gt.NoError(t, err)
	gt.A(t, docs).Length(0)
}

func TestFirestoreRepository(t *testing.T) {
	// Skip test if Firestore test environment variables are not set
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE")

	if projectID == "" || databaseID == "" {
		t.Skip("Skipping Firestore test: TEST_FIRESTORE_PROJECT and TEST_FIRESTORE_DATABASE must be set")
	}

	testRepository(t, func(t *testing.T) interfaces.Repository {
		ctx := context.Background()
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		ctx = ctxlog.With(ctx, logger)

		repo, err := repository.NewFirestore(ctx, projectID, databaseID)
		gt.NoError(t, err)
		return repo
	})
}
