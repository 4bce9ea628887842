package interfaces

import (
	"context"

	"github.com/secmon-lab/qmsboard/pkg/domain/model"
	"github.com/secmon-lab/qmsboard/pkg/domain/types"
)

// Risk is the risk register and matrix use case
type Risk interface {
	ListRisks(ctx context.Context, filter model.RiskFilter) ([]*model.Risk, error)
	GetRisk(ctx context.Context, id types.RiskID) (*model.Risk, error)
	CreateRisk(ctx context.Context, req *model.CreateRiskRequest) (*model.Risk, error)
	GetMatrix(ctx context.Context, filter model.RiskFilter) (*model.RiskMatrix, error)
	SelectCell(ctx context.Context, likelihood types.Likelihood, severity types.Severity) (*model.MatrixCell, error)
}

// KPI is the KPI dashboard use case
type KPI interface {
	ListKPIs(ctx context.Context, department string) ([]*model.KPIView, error)
	GetKPI(ctx context.Context, id types.KPIID) (*model.KPIView, error)
}

// Document is the document grid use case
type Document interface {
	SearchDocuments(ctx context.Context, filter model.DocumentFilter) ([]*model.Document, error)
	GetDocument(ctx context.Context, id types.DocumentID) (*model.Document, error)
}

// Dashboard is the landing page summary use case
type Dashboard interface {
	Summary(ctx context.Context) (*model.DashboardSummary, error)
}
