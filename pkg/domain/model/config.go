package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/qmsboard/pkg/domain/types"
)

// Config is the seed data set loaded into the repository at startup
type Config struct {
	Thresholds *Thresholds `yaml:"thresholds,omitempty"`
	Risks      []*Risk     `yaml:"risks"`
	KPIs       []*KPI      `yaml:"kpis,omitempty"`
	Documents  []*Document `yaml:"documents,omitempty"`
}

// Validate validates the entire configuration
func (c *Config) Validate() error {
	if c.Thresholds != nil {
		if err := c.Thresholds.Validate(); err != nil {
			return goerr.Wrap(err, "invalid thresholds")
		}
	}

	riskIDs := make(map[types.RiskID]bool)
	for i, r := range c.Risks {
		if r == nil {
			return goerr.New("risk entry is empty", goerr.V("index", i))
		}
		if err := r.Validate(); err != nil {
			return goerr.Wrap(err, "invalid risk at index",
				goerr.V("index", i),
				goerr.V("id", r.ID))
		}
		if riskIDs[r.ID] {
			return goerr.New("duplicate risk ID", goerr.V("id", r.ID))
		}
		riskIDs[r.ID] = true
	}

	kpiIDs := make(map[types.KPIID]bool)
	for i, k := range c.KPIs {
		if k == nil {
			return goerr.New("KPI entry is empty", goerr.V("index", i))
		}
		if err := k.Validate(); err != nil {
			return goerr.Wrap(err, "invalid KPI at index",
				goerr.V("index", i),
				goerr.V("id", k.ID))
		}
		if kpiIDs[k.ID] {
			return goerr.New("duplicate KPI ID", goerr.V("id", k.ID))
		}
		kpiIDs[k.ID] = true
	}

	docIDs := make(map[types.DocumentID]bool)
	for i, d := range c.Documents {
		if d == nil {
			return goerr.New("document entry is empty", goerr.V("index", i))
		}
		if err := d.Validate(); err != nil {
			return goerr.Wrap(err, "invalid document at index",
				goerr.V("index", i),
				goerr.V("id", d.ID))
		}
		if docIDs[d.ID] {
			return goerr.New("duplicate document ID", goerr.V("id", d.ID))
		}
		docIDs[d.ID] = true
	}

	return nil
}

// GetThresholds returns the configured thresholds or the defaults
func (c *Config) GetThresholds() Thresholds {
	if c == nil || c.Thresholds == nil {
		return DefaultThresholds
	}
	return *c.Thresholds
}
