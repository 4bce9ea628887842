package apperr_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/qmsboard/pkg/domain/model"
	"github.com/secmon-lab/qmsboard/pkg/domain/types"
	"github.com/secmon-lab/qmsboard/pkg/utils/apperr"
)

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		expect int
	}{
		{"invalid enum", goerr.Wrap(types.ErrInvalidEnumValue, "bad likelihood"), http.StatusBadRequest},
		{"validation", goerr.Wrap(model.ErrValidation, "title is required"), http.StatusBadRequest},
		{"forbidden", goerr.Wrap(model.ErrForbidden, "no"), http.StatusForbidden},
		{"risk not found", goerr.Wrap(goerr.Wrap(model.ErrRiskNotFound, "a"), "b"), http.StatusNotFound},
		{"kpi not found", model.ErrKPINotFound, http.StatusNotFound},
		{"document not found", model.ErrDocumentNotFound, http.StatusNotFound},
		{"other", goerr.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, tc.expect, apperr.StatusCode(tc.err))
		})
	}
}

func TestHandleHTTP(t *testing.T) {
	t.Run("client error exposes message", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/risks/x", nil)
		apperr.HandleHTTP(w, r, goerr.Wrap(model.ErrRiskNotFound, "failed to get risk"))

		gt.Equal(t, http.StatusNotFound, w.Code)
		gt.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var body map[string]string
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		gt.True(t, strings.Contains(body["error"], "risk not found"))
	})

	t.Run("server error hides details", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/risks", nil)
		apperr.HandleHTTP(w, r, goerr.New("firestore: connection refused"))

		gt.Equal(t, http.StatusInternalServerError, w.Code)
		var body map[string]string
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		gt.Equal(t, "Internal Server Error", body["error"])
	})
}
