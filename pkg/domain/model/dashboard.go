package model

import "github.com/secmon-lab/qmsboard/pkg/domain/types"

// DashboardSummary holds the counters shown on the landing page
type DashboardSummary struct {
	TotalRisks      int                          `json:"totalRisks"`
	RisksByLevel    map[types.RiskLevel]int      `json:"risksByLevel"`
	TotalKPIs       int                          `json:"totalKpis"`
	KPIsByStatus    map[types.KPIStatus]int      `json:"kpisByStatus"`
	AverageProgress int                          `json:"averageProgress"`
	TotalDocuments  int                          `json:"totalDocuments"`
	DocsByStatus    map[types.DocumentStatus]int `json:"documentsByStatus"`
}

// CountKPIs tallies KPIs per status and their mean progress
func (s *DashboardSummary) CountKPIs(kpis []*KPI) {
	s.TotalKPIs = len(kpis)
	s.KPIsByStatus = make(map[types.KPIStatus]int)
	for _, st := range types.KPIStatuses() {
		s.KPIsByStatus[st] = 0
	}
	if len(kpis) == 0 {
		s.AverageProgress = 0
		return
	}

	sum := 0
	for _, k := range kpis {
		s.KPIsByStatus[k.Status]++
		sum += k.Progress()
	}
	s.AverageProgress = sum / len(kpis)
}

// CountDocuments tallies documents per status
func (s *DashboardSummary) CountDocuments(docs []*Document) {
	s.TotalDocuments = len(docs)
	s.DocsByStatus = make(map[types.DocumentStatus]int)
	for _, st := range types.DocumentStatuses() {
		s.DocsByStatus[st] = 0
	}
	for _, d := range docs {
		s.DocsByStatus[d.Status]++
	}
}
