package model

import (
	"time"

	"github.com/secmon-lab/qmsboard/pkg/domain/types"
)

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

// SampleConfig returns the built-in demonstration data set used when no
// seed file is given
func SampleConfig() *Config {
	return &Config{
		Risks: []*Risk{
			{
				ID: "1", Title: "Medication Administration Errors",
				Description:      "Risk of errors in medication administration leading to patient harm",
				Department:       "Nursing", Owner: "8",
				Likelihood:       types.LikelihoodPossible, Severity: types.SeverityHigh,
				Status:           types.RiskStatusMitigated,
				MitigationPlan:   "Implement double-check protocol and barcode scanning system",
				MitigationStatus: types.MitigationCompleted,
				IdentifiedAt:     date("2022-02-15"), UpdatedAt: date("2022-04-20"), ReviewDate: date("2022-10-15"),
			},
			{
				ID: "2", Title: "Patient Falls",
				Description:      "Risk of patient falls causing injury, particularly among elderly patients",
				Department:       "Nursing", Owner: "8",
				Likelihood:       types.LikelihoodLikely, Severity: types.SeverityHigh,
				Status:           types.RiskStatusMitigated,
				MitigationPlan:   "Implement fall risk assessment and prevention protocols",
				MitigationStatus: types.MitigationInProgress,
				IdentifiedAt:     date("2022-01-10"), UpdatedAt: date("2022-03-15"), ReviewDate: date("2022-09-10"),
			},
			{
				ID: "3", Title: "Data Breach",
				Description:      "Risk of unauthorized access to patient data",
				Department:       "IT Department", Owner: "7",
				Likelihood:       types.LikelihoodUnlikely, Severity: types.SeverityCritical,
				Status:           types.RiskStatusAssessed,
				MitigationPlan:   "Enhance cybersecurity measures and staff training",
				MitigationStatus: types.MitigationInProgress,
				IdentifiedAt:     date("2022-03-20"), UpdatedAt: date("2022-05-25"), ReviewDate: date("2022-11-20"),
			},
			{
				ID: "4", Title: "Equipment Failure",
				Description:      "Risk of critical medical equipment failure during procedures",
				Department:       "Cardiology", Owner: "3",
				Likelihood:       types.LikelihoodRare, Severity: types.SeverityCritical,
				Status:           types.RiskStatusMonitored,
				MitigationPlan:   "Regular preventive maintenance and backup equipment availability",
				MitigationStatus: types.MitigationCompleted,
				IdentifiedAt:     date("2022-04-05"), UpdatedAt: date("2022-06-10"), ReviewDate: date("2022-10-05"),
			},
			{
				ID: "5", Title: "Infection Outbreak",
				Description:      "Risk of hospital-acquired infection outbreak",
				Department:       "Quality Management", Owner: "2",
				Likelihood:       types.LikelihoodPossible, Severity: types.SeverityCritical,
				Status:           types.RiskStatusMitigated,
				MitigationPlan:   "Enhanced infection control protocols and surveillance",
				MitigationStatus: types.MitigationCompleted,
				IdentifiedAt:     date("2022-01-25"), UpdatedAt: date("2022-03-30"), ReviewDate: date("2022-07-25"),
			},
		},
		KPIs: []*KPI{
			{
				ID: "1", Name: "Patient Satisfaction Rate", Owner: "2", Department: "Quality Management",
				Description: "Percentage of patients reporting satisfaction with hospital services",
				Target:      90, Actual: 87, Unit: "%",
				Frequency: types.KPIFrequencyMonthly, Status: types.KPIStatusAtRisk, Trend: types.TrendUp,
				StartDate: date("2022-01-01"),
				History: []KPIPoint{
					{Date: date("2022-01-31"), Value: 82},
					{Date: date("2022-02-28"), Value: 84},
					{Date: date("2022-03-31"), Value: 85},
					{Date: date("2022-04-30"), Value: 86},
					{Date: date("2022-05-31"), Value: 87},
				},
			},
			{
				ID: "2", Name: "Average Wait Time", Owner: "5", Department: "Emergency",
				Description: "Average time patients wait before being seen by a doctor",
				Target:      15, Actual: 22, Unit: "minutes",
				Frequency: types.KPIFrequencyWeekly, Status: types.KPIStatusOffTrack, Trend: types.TrendDown,
				StartDate: date("2022-01-01"),
				History: []KPIPoint{
					{Date: date("2022-06-05"), Value: 25},
					{Date: date("2022-06-12"), Value: 24},
					{Date: date("2022-06-19"), Value: 23},
					{Date: date("2022-06-26"), Value: 22},
				},
			},
			{
				ID: "3", Name: "Hand Hygiene Compliance", Owner: "2", Department: "Quality Management",
				Description: "Percentage of staff complying with hand hygiene protocols",
				Target:      95, Actual: 96, Unit: "%",
				Frequency: types.KPIFrequencyMonthly, Status: types.KPIStatusOnTrack, Trend: types.TrendStable,
				StartDate: date("2022-01-01"),
			},
			{
				ID: "4", Name: "Medication Errors", Owner: "8", Department: "Nursing",
				Description: "Number of medication errors per 1000 prescriptions",
				Target:      2, Actual: 2.5, Unit: "errors/1000 prescriptions",
				Frequency: types.KPIFrequencyMonthly, Status: types.KPIStatusAtRisk, Trend: types.TrendDown,
				StartDate: date("2022-01-01"),
			},
			{
				ID: "5", Name: "Staff Turnover Rate", Owner: "1", Department: "Executive Management",
				Description: "Percentage of staff leaving the organization annually",
				Target:      10, Actual: 12, Unit: "%",
				Frequency: types.KPIFrequencyQuarterly, Status: types.KPIStatusAtRisk, Trend: types.TrendStable,
				StartDate: date("2022-01-01"),
			},
		},
		Documents: []*Document{
			{
				ID: "1", Title: "Infection Control Policy", DocumentNumber: "POL-IC-001", Version: "2.1",
				Status: types.DocumentStatusPublished, Type: types.DocumentTypePolicy,
				Department: "Quality Management", Owner: "2",
				Tags:      []string{"infection", "control", "policy"},
				CreatedAt: date("2022-01-15"), UpdatedAt: date("2022-03-10"), ExpiryDate: date("2023-03-10"),
			},
			{
				ID: "2", Title: "Medication Administration Procedure", DocumentNumber: "PRO-NUR-003", Version: "1.4",
				Status: types.DocumentStatusApproved, Type: types.DocumentTypeProcedure,
				Department: "Nursing", Owner: "8",
				Tags:      []string{"medication", "nursing"},
				CreatedAt: date("2022-02-01"), UpdatedAt: date("2022-05-12"),
			},
			{
				ID: "3", Title: "Incident Reporting Form", DocumentNumber: "FRM-QM-010", Version: "1.0",
				Status: types.DocumentStatusReview, Type: types.DocumentTypeForm,
				Department: "Quality Management", Owner: "2",
				Tags:      []string{"incident", "reporting"},
				CreatedAt: date("2022-04-18"),
			},
			{
				ID: "4", Title: "Patient Discharge Guidelines", DocumentNumber: "GDL-CAR-002", Version: "3.0",
				Status: types.DocumentStatusDraft, Type: types.DocumentTypeGuideline,
				Department: "Cardiology", Owner: "3",
				Tags:      []string{"discharge", "patient", "guidelines"},
				CreatedAt: date("2022-06-20"), UpdatedAt: date("2022-07-25"),
			},
		},
	}
}
