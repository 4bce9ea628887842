package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/qmsboard/pkg/domain/model"
	"github.com/secmon-lab/qmsboard/pkg/domain/types"
	"github.com/secmon-lab/qmsboard/pkg/utils/apperr"
)

// maxBodyBytes limits JSON request bodies
const maxBodyBytes = 1 << 20

type handler struct {
	uc *UseCases
}

type meResponse struct {
	UserID      types.UserID       `json:"userId"`
	Role        types.Role         `json:"role"`
	Permissions []model.Permission `json:"permissions"`
}

type selectCellRequest struct {
	Likelihood types.Likelihood `json:"likelihood"`
	Severity   types.Severity   `json:"severity"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, types.ErrInvalidEnumValue) {
			return goerr.Wrap(err, "invalid request body")
		}
		return goerr.Wrap(model.ErrValidation, "invalid request body", goerr.V("error", err.Error()))
	}
	return nil
}

func (h *handler) getMe(w http.ResponseWriter, r *http.Request) {
	actor := model.ActorFromContext(r.Context())
	writeJSON(w, r, http.StatusOK, &meResponse{
		UserID:      actor.UserID,
		Role:        actor.Role,
		Permissions: model.Permissions(actor.Role),
	})
}

func riskFilterFromQuery(r *http.Request) model.RiskFilter {
	q := r.URL.Query()
	return model.RiskFilter{
		Department: q.Get("department"),
		Status:     types.RiskStatus(q.Get("status")),
	}.Normalize()
}

func (h *handler) listRisks(w http.ResponseWriter, r *http.Request) {
	risks, err := h.uc.risk.ListRisks(r.Context(), riskFilterFromQuery(r))
	if err != nil {
		apperr.HandleHTTP(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, risks)
}

func (h *handler) getRisk(w http.ResponseWriter, r *http.Request) {
	risk, err := h.uc.risk.GetRisk(r.Context(), types.RiskID(chi.URLParam(r, "id")))
	if err != nil {
		apperr.HandleHTTP(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, risk)
}

func (h *handler) createRisk(w http.ResponseWriter, r *http.Request) {
	var req model.CreateRiskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		apperr.HandleHTTP(w, r, err)
		return
	}

	risk, err := h.uc.risk.CreateRisk(r.Context(), &req)
	if err != nil {
		apperr.HandleHTTP(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, risk)
}

func (h *handler) getMatrix(w http.ResponseWriter, r *http.Request) {
	matrix, err := h.uc.risk.GetMatrix(r.Context(), riskFilterFromQuery(r))
	if err != nil {
		apperr.HandleHTTP(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, matrix)
}

func (h *handler) selectCell(w http.ResponseWriter, r *http.Request) {
	var req selectCellRequest
	if err := decodeJSON(w, r, &req); err != nil {
		apperr.HandleHTTP(w, r, err)
		return
	}

	cell, err := h.uc.risk.SelectCell(r.Context(), req.Likelihood, req.Severity)
	if err != nil {
		apperr.HandleHTTP(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, cell)
}

func (h *handler) listKPIs(w http.ResponseWriter, r *http.Request) {
	kpis, err := h.uc.kpi.ListKPIs(r.Context(), r.URL.Query().Get("department"))
	if err != nil {
		apperr.HandleHTTP(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, kpis)
}

func (h *handler) getKPI(w http.ResponseWriter, r *http.Request) {
	kpi, err := h.uc.kpi.GetKPI(r.Context(), types.KPIID(chi.URLParam(r, "id")))
	if err != nil {
		apperr.HandleHTTP(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, kpi)
}

func (h *handler) searchDocuments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	docs, err := h.uc.document.SearchDocuments(r.Context(), model.DocumentFilter{
		Query:  q.Get("q"),
		Type:   q.Get("type"),
		Status: q.Get("status"),
	})
	if err != nil {
		apperr.HandleHTTP(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, docs)
}

func (h *handler) getDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.uc.document.GetDocument(r.Context(), types.DocumentID(chi.URLParam(r, "id")))
	if err != nil {
		apperr.HandleHTTP(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, doc)
}

func (h *handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.uc.dashboard.Summary(r.Context())
	if err != nil {
		apperr.HandleHTTP(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, summary)
}
