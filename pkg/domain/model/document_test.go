package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/qmsboard/pkg/domain/model"
	"github.com/secmon-lab/qmsboard/pkg/domain/types"
)

func TestFilterDocuments(t *testing.T) {
	docs := model.SampleConfig().Documents

	testCases := []struct {
		name     string
		filter   model.DocumentFilter
		expected []types.DocumentID
	}{
		{"no criteria", model.DocumentFilter{}, []types.DocumentID{"1", "2", "3", "4"}},
		{"all keyword", model.DocumentFilter{Type: "all", Status: "all"}, []types.DocumentID{"1", "2", "3", "4"}},
		{"title search is case insensitive", model.DocumentFilter{Query: "MEDICATION"}, []types.DocumentID{"2"}},
		{"number search", model.DocumentFilter{Query: "frm-qm"}, []types.DocumentID{"3"}},
		{"type filter", model.DocumentFilter{Type: "policy"}, []types.DocumentID{"1"}},
		{"status filter", model.DocumentFilter{Status: "draft"}, []types.DocumentID{"4"}},
		{"combined criteria", model.DocumentFilter{Query: "p", Status: "published"}, []types.DocumentID{"1"}},
		{"no match", model.DocumentFilter{Query: "radiology"}, []types.DocumentID{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := model.FilterDocuments(docs, tc.filter)
			ids := make([]types.DocumentID, 0, len(result))
			for _, d := range result {
				ids = append(ids, d.ID)
			}
			gt.Equal(t, tc.expected, ids)
		})
	}
}

func TestDocumentFilterValidate(t *testing.T) {
	gt.NoError(t, model.DocumentFilter{Type: "manual", Status: "review"}.Validate())
	gt.NoError(t, model.DocumentFilter{Type: "all"}.Validate())

	err := model.DocumentFilter{Type: "memo"}.Validate()
	gt.True(t, errors.Is(err, types.ErrInvalidEnumValue))

	err = model.DocumentFilter{Status: "lost"}.Validate()
	gt.True(t, errors.Is(err, types.ErrInvalidEnumValue))
}

func TestDocumentValidate(t *testing.T) {
	doc := &model.Document{ID: "1", Title: "Policy", Status: types.DocumentStatusDraft, Type: types.DocumentTypePolicy}
	gt.NoError(t, doc.Validate())

	doc.Type = "memo"
	gt.Error(t, doc.Validate())
}
