package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/secmon-lab/qmsboard/pkg/domain/model"
	"github.com/secmon-lab/qmsboard/pkg/domain/types"
)

// Repository defines the interface for data persistence
type Repository interface {
	// Risk operations
	PutRisk(ctx context.Context, risk *model.Risk) error
	GetRisk(ctx context.Context, id types.RiskID) (*model.Risk, error)
	ListRisks(ctx context.Context) ([]*model.Risk, error)

	// KPI operations
	PutKPI(ctx context.Context, kpi *model.KPI) error
	GetKPI(ctx context.Context, id types.KPIID) (*model.KPI, error)
	ListKPIs(ctx context.Context) ([]*model.KPI, error)

	// Document operations
	PutDocument(ctx context.Context, doc *model.Document) error
	GetDocument(ctx context.Context, id types.DocumentID) (*model.Document, error)
	ListDocuments(ctx context.Context) ([]*model.Document, error)

	// Close closes the repository connection
	Close() error
}
