package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// ErrInvalidEnumValue is returned when a value is not a member of its enumeration
var ErrInvalidEnumValue = goerr.New("invalid enum value")

// Likelihood is the qualitative probability of a risk occurring
type Likelihood string

const (
	LikelihoodRare          Likelihood = "rare"
	LikelihoodUnlikely      Likelihood = "unlikely"
	LikelihoodPossible      Likelihood = "possible"
	LikelihoodLikely        Likelihood = "likely"
	LikelihoodAlmostCertain Likelihood = "almostCertain"
)

// likelihoodRanks is the rank table. Display order is kept separately in
// Likelihoods so that reordering one never changes the other.
var likelihoodRanks = map[Likelihood]int{
	LikelihoodRare:          1,
	LikelihoodUnlikely:      2,
	LikelihoodPossible:      3,
	LikelihoodLikely:        4,
	LikelihoodAlmostCertain: 5,
}

// Likelihoods returns all likelihood levels in matrix row order
func Likelihoods() []Likelihood {
	return []Likelihood{
		LikelihoodRare,
		LikelihoodUnlikely,
		LikelihoodPossible,
		LikelihoodLikely,
		LikelihoodAlmostCertain,
	}
}

// String returns the string representation
func (l Likelihood) String() string {
	return string(l)
}

// IsValid checks if the likelihood is a known level
func (l Likelihood) IsValid() bool {
	_, ok := likelihoodRanks[l]
	return ok
}

// Rank returns the 1-based rank of the likelihood
func (l Likelihood) Rank() (int, error) {
	rank, ok := likelihoodRanks[l]
	if !ok {
		return 0, goerr.Wrap(ErrInvalidEnumValue, "unknown likelihood",
			goerr.V("likelihood", string(l)))
	}
	return rank, nil
}

// UnmarshalText rejects unknown likelihood values at decode time
func (l *Likelihood) UnmarshalText(text []byte) error {
	v, err := ParseLikelihood(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// ParseLikelihood parses a string into a Likelihood
func ParseLikelihood(s string) (Likelihood, error) {
	l := Likelihood(s)
	if !l.IsValid() {
		return "", goerr.Wrap(ErrInvalidEnumValue, "unknown likelihood",
			goerr.V("likelihood", s))
	}
	return l, nil
}

// Severity is the qualitative impact of a risk
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityRanks = map[Severity]int{
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// Severities returns all severity levels in matrix column order
func Severities() []Severity {
	return []Severity{
		SeverityLow,
		SeverityMedium,
		SeverityHigh,
		SeverityCritical,
	}
}

// String returns the string representation
func (s Severity) String() string {
	return string(s)
}

// IsValid checks if the severity is a known level
func (s Severity) IsValid() bool {
	_, ok := severityRanks[s]
	return ok
}

// Rank returns the 1-based rank of the severity
func (s Severity) Rank() (int, error) {
	rank, ok := severityRanks[s]
	if !ok {
		return 0, goerr.Wrap(ErrInvalidEnumValue, "unknown severity",
			goerr.V("severity", string(s)))
	}
	return rank, nil
}

// UnmarshalText rejects unknown severity values at decode time
func (s *Severity) UnmarshalText(text []byte) error {
	v, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSeverity parses a string into a Severity
func ParseSeverity(s string) (Severity, error) {
	v := Severity(s)
	if !v.IsValid() {
		return "", goerr.Wrap(ErrInvalidEnumValue, "unknown severity",
			goerr.V("severity", s))
	}
	return v, nil
}

// RiskLevel is the coarse bucket derived from a risk score
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

// RiskLevels returns all risk levels from lowest to highest
func RiskLevels() []RiskLevel {
	return []RiskLevel{
		RiskLevelLow,
		RiskLevelMedium,
		RiskLevelHigh,
		RiskLevelCritical,
	}
}

// String returns the string representation
func (l RiskLevel) String() string {
	return string(l)
}

// IsValid checks if the level is known
func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh, RiskLevelCritical:
		return true
	default:
		return false
	}
}

// RiskStatus represents the lifecycle status of a risk
type RiskStatus string

const (
	RiskStatusIdentified RiskStatus = "identified"
	RiskStatusAssessed   RiskStatus = "assessed"
	RiskStatusMitigated  RiskStatus = "mitigated"
	RiskStatusMonitored  RiskStatus = "monitored"
	RiskStatusClosed     RiskStatus = "closed"
)

// String returns the string representation
func (s RiskStatus) String() string {
	return string(s)
}

// IsValid checks if the status is valid
func (s RiskStatus) IsValid() bool {
	switch s {
	case RiskStatusIdentified, RiskStatusAssessed, RiskStatusMitigated, RiskStatusMonitored, RiskStatusClosed:
		return true
	default:
		return false
	}
}

// UnmarshalText rejects unknown status values at decode time
func (s *RiskStatus) UnmarshalText(text []byte) error {
	v := RiskStatus(text)
	if !v.IsValid() {
		return goerr.Wrap(ErrInvalidEnumValue, "unknown risk status",
			goerr.V("status", string(text)))
	}
	*s = v
	return nil
}

// MitigationStatus represents progress of a mitigation plan
type MitigationStatus string

const (
	MitigationNotStarted MitigationStatus = "notStarted"
	MitigationInProgress MitigationStatus = "inProgress"
	MitigationCompleted  MitigationStatus = "completed"
)

// IsValid checks if the mitigation status is valid. Empty means no plan.
func (s MitigationStatus) IsValid() bool {
	switch s {
	case "", MitigationNotStarted, MitigationInProgress, MitigationCompleted:
		return true
	default:
		return false
	}
}
