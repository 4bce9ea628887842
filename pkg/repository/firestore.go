package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/qmsboard/pkg/domain/interfaces"
	"github.com/secmon-lab/qmsboard/pkg/domain/model"
	"github.com/secmon-lab/qmsboard/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	risksCollection     = "risks"
	kpisCollection      = "kpis"
	documentsCollection = "documents"
)

// Collections lists the Firestore collections holding the register
func Collections() []string {
	return []string{risksCollection, kpisCollection, documentsCollection}
}

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on bad project or missing permissions; an empty collection is fine
	for _, name := range Collections() {
		_, err = client.Collection(name).Limit(1).Documents(ctx).Next()
		if err == nil || err == iterator.Done {
			continue
		}
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("collection", name),
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore probe returned error",
			"collection", name,
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
		"collections", Collections(),
	)

	return &Firestore{
		client: client,
	}, nil
}

// PutRisk creates or replaces a risk
func (f *Firestore) PutRisk(ctx context.Context, risk *model.Risk) error {
	if risk == nil {
		return goerr.New("risk is nil")
	}
	if risk.ID == "" {
		return goerr.New("risk ID is empty")
	}

	_, err := f.client.Collection(risksCollection).Doc(risk.ID.String()).Set(ctx, risk)
	if err != nil {
		return goerr.Wrap(err, "failed to save risk to firestore", goerr.V("id", risk.ID))
	}
	return nil
}

// GetRisk retrieves a risk by ID
func (f *Firestore) GetRisk(ctx context.Context, id types.RiskID) (*model.Risk, error) {
	if id == "" {
		return nil, goerr.New("risk ID is empty")
	}

	var risk model.Risk
	if err := f.getDoc(ctx, risksCollection, id.String(), &risk); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrRiskNotFound, "failed to get risk", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get risk from firestore", goerr.V("id", id))
	}
	return &risk, nil
}

// ListRisks returns all risks ordered by identification date
func (f *Firestore) ListRisks(ctx context.Context) ([]*model.Risk, error) {
	risks, err := listDocs[model.Risk](ctx, f.client.Collection(risksCollection))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list risks")
	}
	sortRisks(risks)
	return risks, nil
}

// PutKPI creates or replaces a KPI
func (f *Firestore) PutKPI(ctx context.Context, kpi *model.KPI) error {
	if kpi == nil {
		return goerr.New("KPI is nil")
	}
	if kpi.ID == "" {
		return goerr.New("KPI ID is empty")
	}

	_, err := f.client.Collection(kpisCollection).Doc(kpi.ID.String()).Set(ctx, kpi)
	if err != nil {
		return goerr.Wrap(err, "failed to save KPI to firestore", goerr.V("id", kpi.ID))
	}
	return nil
}

// GetKPI retrieves a KPI by ID
func (f *Firestore) GetKPI(ctx context.Context, id types.KPIID) (*model.KPI, error) {
	if id == "" {
		return nil, goerr.New("KPI ID is empty")
	}

	var kpi model.KPI
	if err := f.getDoc(ctx, kpisCollection, id.String(), &kpi); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrKPINotFound, "failed to get KPI", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get KPI from firestore", goerr.V("id", id))
	}
	return &kpi, nil
}

// ListKPIs returns all KPIs ordered by ID
func (f *Firestore) ListKPIs(ctx context.Context) ([]*model.KPI, error) {
	kpis, err := listDocs[model.KPI](ctx, f.client.Collection(kpisCollection))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list KPIs")
	}
	sortKPIs(kpis)
	return kpis, nil
}

// PutDocument creates or replaces a document
func (f *Firestore) PutDocument(ctx context.Context, doc *model.Document) error {
	if doc == nil {
		return goerr.New("document is nil")
	}
	if doc.ID == "" {
		return goerr.New("document ID is empty")
	}

	_, err := f.client.Collection(documentsCollection).Doc(doc.ID.String()).Set(ctx, doc)
	if err != nil {
		return goerr.Wrap(err, "failed to save document to firestore", goerr.V("id", doc.ID))
	}
	return nil
}

// GetDocument retrieves a document by ID
func (f *Firestore) GetDocument(ctx context.Context, id types.DocumentID) (*model.Document, error) {
	if id == "" {
		return nil, goerr.New("document ID is empty")
	}

	var doc model.Document
	if err := f.getDoc(ctx, documentsCollection, id.String(), &doc); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrDocumentNotFound, "failed to get document", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get document from firestore", goerr.V("id", id))
	}
	return &doc, nil
}

// ListDocuments returns all documents ordered by document number
func (f *Firestore) ListDocuments(ctx context.Context) ([]*model.Document, error) {
	docs, err := listDocs[model.Document](ctx, f.client.Collection(documentsCollection))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list documents")
	}
	sortDocuments(docs)
	return docs, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	return f.client.Close()
}

func (f *Firestore) getDoc(ctx context.Context, collection, id string, out any) error {
	doc, err := f.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		return err
	}
	if err := doc.DataTo(out); err != nil {
		return goerr.Wrap(err, "failed to decode document",
			goerr.V("collection", collection),
			goerr.V("id", id))
	}
	return nil
}

// listDocs reads every document of the collection. Sorting is done in
// memory to avoid requiring composite indexes.
func listDocs[T any](ctx context.Context, col *firestore.CollectionRef) ([]*T, error) {
	iter := col.Documents(ctx)
	defer iter.Stop()

	var result []*T
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate documents",
				goerr.V("collection", col.ID))
		}

		var v T
		if err := doc.DataTo(&v); err != nil {
			return nil, goerr.Wrap(err, "failed to decode document",
				goerr.V("collection", col.ID),
				goerr.V("id", doc.Ref.ID))
		}
		result = append(result, &v)
	}
	return result, nil
}
