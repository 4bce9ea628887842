package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/qmsboard/pkg/domain/interfaces"
	"github.com/secmon-lab/qmsboard/pkg/domain/model"
	"github.com/secmon-lab/qmsboard/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu        sync.RWMutex
	risks     map[types.RiskID]*model.Risk
	kpis      map[types.KPIID]*model.KPI
	documents map[types.DocumentID]*model.Document
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		risks:     make(map[types.RiskID]*model.Risk),
		kpis:      make(map[types.KPIID]*model.KPI),
		documents: make(map[types.DocumentID]*model.Document),
	}
}

// PutRisk creates or replaces a risk
func (m *Memory) PutRisk(ctx context.Context, risk *model.Risk) error {
	if risk == nil {
		return goerr.New("risk is nil")
	}
	if risk.ID == "" {
		return goerr.New("risk ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Deep copy to prevent external modifications
	riskCopy := *risk
	m.risks[risk.ID] = &riskCopy
	return nil
}

// GetRisk retrieves a risk by ID
func (m *Memory) GetRisk(ctx context.Context, id types.RiskID) (*model.Risk, error) {
	if id == "" {
		return nil, goerr.New("risk ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	risk, exists := m.risks[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrRiskNotFound, "failed to get risk", goerr.V("id", id))
	}

	riskCopy := *risk
	return &riskCopy, nil
}

// ListRisks returns all risks ordered by identification date
func (m *Memory) ListRisks(ctx context.Context) ([]*model.Risk, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	risks := make([]*model.Risk, 0, len(m.risks))
	for _, r := range m.risks {
		riskCopy := *r
		risks = append(risks, &riskCopy)
	}
	sortRisks(risks)
	return risks, nil
}

// PutKPI creates or replaces a KPI
func (m *Memory) PutKPI(ctx context.Context, kpi *model.KPI) error {
	if kpi == nil {
		return goerr.New("KPI is nil")
	}
	if kpi.ID == "" {
		return goerr.New("KPI ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	kpiCopy := *kpi
	kpiCopy.History = slices.Clone(kpi.History)
	m.kpis[kpi.ID] = &kpiCopy
	return nil
}

// GetKPI retrieves a KPI by ID
func (m *Memory) GetKPI(ctx context.Context, id types.KPIID) (*model.KPI, error) {
	if id == "" {
		return nil, goerr.New("KPI ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	kpi, exists := m.kpis[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrKPINotFound, "failed to get KPI", goerr.V("id", id))
	}

	kpiCopy := *kpi
	kpiCopy.History = slices.Clone(kpi.History)
	return &kpiCopy, nil
}

// ListKPIs returns all KPIs ordered by ID
func (m *Memory) ListKPIs(ctx context.Context) ([]*model.KPI, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	kpis := make([]*model.KPI, 0, len(m.kpis))
	for _, k := range m.kpis {
		kpiCopy := *k
		kpiCopy.History = slices.Clone(k.History)
		kpis = append(kpis, &kpiCopy)
	}
	sortKPIs(kpis)
	return kpis, nil
}

// PutDocument creates or replaces a document
func (m *Memory) PutDocument(ctx context.Context, doc *model.Document) error {
	if doc == nil {
		return goerr.New("document is nil")
	}
	if doc.ID == "" {
		return goerr.New("document ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	docCopy := *doc
	docCopy.Tags = slices.Clone(doc.Tags)
	m.documents[doc.ID] = &docCopy
	return nil
}

// GetDocument retrieves a document by ID
func (m *Memory) GetDocument(ctx context.Context, id types.DocumentID) (*model.Document, error) {
	if id == "" {
		return nil, goerr.New("document ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, exists := m.documents[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrDocumentNotFound, "failed to get document", goerr.V("id", id))
	}

	docCopy := *doc
	docCopy.Tags = slices.Clone(doc.Tags)
	return &docCopy, nil
}

// ListDocuments returns all documents ordered by document number
func (m *Memory) ListDocuments(ctx context.Context) ([]*model.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := make([]*model.Document, 0, len(m.documents))
	for _, d := range m.documents {
		docCopy := *d
		docCopy.Tags = slices.Clone(d.Tags)
		docs = append(docs, &docCopy)
	}
	sortDocuments(docs)
	return docs, nil
}

// Close is a no-op for memory repository
func (m *Memory) Close() error {
	return nil
}
