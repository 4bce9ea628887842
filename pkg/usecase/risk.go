package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/qmsboard/pkg/domain/interfaces"
	"github.com/secmon-lab/qmsboard/pkg/domain/model"
	"github.com/secmon-lab/qmsboard/pkg/domain/types"
)

// RiskConfig holds configuration for Risk use case
type RiskConfig struct {
	thresholds    model.Thresholds
	onSelect      []model.CellSelectedFunc
	matrixObserve []func(*model.RiskMatrix)
}

// RiskOption is a functional option for configuring Risk
type RiskOption func(*RiskConfig)

// WithThresholds sets the bucketing policy
func WithThresholds(t model.Thresholds) RiskOption {
	return func(c *RiskConfig) {
		c.thresholds = t
	}
}

// WithCellSelected adds a callback notified on every cell selection
func WithCellSelected(fn model.CellSelectedFunc) RiskOption {
	return func(c *RiskConfig) {
		c.onSelect = append(c.onSelect, fn)
	}
}

// WithMatrixObserver adds a callback receiving every computed full matrix
func WithMatrixObserver(fn func(*model.RiskMatrix)) RiskOption {
	return func(c *RiskConfig) {
		c.matrixObserve = append(c.matrixObserve, fn)
	}
}

// Risk implements interfaces.Risk
type Risk struct {
	repo   interfaces.Repository
	config *RiskConfig
}

// NewRisk creates a new Risk use case
func NewRisk(repo interfaces.Repository, opts ...RiskOption) *Risk {
	config := &RiskConfig{
		thresholds: model.DefaultThresholds,
	}
	for _, opt := range opts {
		opt(config)
	}

	return &Risk{
		repo:   repo,
		config: config,
	}
}

// Thresholds returns the bucketing policy in use
func (u *Risk) Thresholds() model.Thresholds {
	return u.config.thresholds
}

// ListRisks returns risks matching the filter in register order
func (u *Risk) ListRisks(ctx context.Context, filter model.RiskFilter) ([]*model.Risk, error) {
	filter = filter.Normalize()
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, goerr.Wrap(types.ErrInvalidEnumValue, "invalid risk status filter",
			goerr.V("status", filter.Status))
	}

	risks, err := u.repo.ListRisks(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list risks")
	}

	result := make([]*model.Risk, 0, len(risks))
	for _, r := range risks {
		if filter.Match(r) {
			result = append(result, r)
		}
	}
	return result, nil
}

// GetRisk returns a risk by ID
func (u *Risk) GetRisk(ctx context.Context, id types.RiskID) (*model.Risk, error) {
	if id == "" {
		return nil, goerr.Wrap(model.ErrValidation, "risk ID is required")
	}

	risk, err := u.repo.GetRisk(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get risk", goerr.V("id", id))
	}
	return risk, nil
}

// CreateRisk registers a new risk on behalf of the actor in the context
func (u *Risk) CreateRisk(ctx context.Context, req *model.CreateRiskRequest) (*model.Risk, error) {
	if req == nil {
		return nil, goerr.Wrap(model.ErrValidation, "request is required")
	}

	actor := model.ActorFromContext(ctx)
	if !model.HasPermission(actor.Role, model.PermRisksCreate) {
		return nil, goerr.Wrap(model.ErrForbidden, "role cannot create risks",
			goerr.V("role", actor.Role))
	}

	input := *req
	if input.Owner == "" {
		input.Owner = actor.UserID
	}

	risk, err := input.ToRisk()
	if err != nil {
		return nil, goerr.Wrap(err, "invalid risk request")
	}

	if err := u.repo.PutRisk(ctx, risk); err != nil {
		return nil, goerr.Wrap(err, "failed to save risk", goerr.V("id", risk.ID))
	}

	ctxlog.From(ctx).Info("Risk registered",
		"id", risk.ID,
		"department", risk.Department,
		"likelihood", risk.Likelihood,
		"severity", risk.Severity,
		"role", actor.Role,
	)

	return risk, nil
}

// GetMatrix builds the full matrix for risks matching the filter. Observers
// only see the unfiltered matrix.
func (u *Risk) GetMatrix(ctx context.Context, filter model.RiskFilter) (*model.RiskMatrix, error) {
	filter = filter.Normalize()
	risks, err := u.ListRisks(ctx, filter)
	if err != nil {
		return nil, err
	}

	matrix, err := model.BuildMatrix(risks, u.config.thresholds)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build risk matrix")
	}

	if filter == (model.RiskFilter{}) {
		for _, observe := range u.config.matrixObserve {
			observe(matrix)
		}
	}

	return matrix, nil
}

// SelectCell computes one cell over the whole register and notifies every
// registered callback with its members
func (u *Risk) SelectCell(ctx context.Context, likelihood types.Likelihood, severity types.Severity) (*model.MatrixCell, error) {
	if !likelihood.IsValid() {
		return nil, goerr.Wrap(types.ErrInvalidEnumValue, "invalid likelihood",
			goerr.V("likelihood", likelihood))
	}
	if !severity.IsValid() {
		return nil, goerr.Wrap(types.ErrInvalidEnumValue, "invalid severity",
			goerr.V("severity", severity))
	}

	risks, err := u.repo.ListRisks(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list risks")
	}

	cell, err := model.NewMatrixCell(risks, likelihood, severity, u.config.thresholds)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build matrix cell")
	}

	for _, fn := range u.config.onSelect {
		fn(likelihood, severity, cell.Risks)
	}

	return cell, nil
}

// LogCellSelected returns a callback that logs cell selections
func LogCellSelected(ctx context.Context) model.CellSelectedFunc {
	return func(likelihood types.Likelihood, severity types.Severity, members []*model.Risk) {
		ctxlog.From(ctx).Info("Risk matrix cell selected",
			"likelihood", likelihood,
			"severity", severity,
			"count", len(members),
		)
	}
}
