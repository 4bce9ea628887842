package repository

import (
	"cmp"
	"slices"

	"github.com/secmon-lab/qmsboard/pkg/domain/model"
)

// Both backends list in the same order so that matrix cells are stable
// regardless of storage.

func sortRisks(risks []*model.Risk) {
	slices.SortStableFunc(risks, func(a, b *model.Risk) int {
		if c := a.IdentifiedAt.Compare(b.IdentifiedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

func sortKPIs(kpis []*model.KPI) {
	slices.SortStableFunc(kpis, func(a, b *model.KPI) int {
		return cmp.Compare(a.ID, b.ID)
	})
}

func sortDocuments(docs []*model.Document) {
	slices.SortStableFunc(docs, func(a, b *model.Document) int {
		if c := cmp.Compare(a.DocumentNumber, b.DocumentNumber); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
