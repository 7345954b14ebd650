package usecase

import (
	"study-copilot/internal/capability"
	"study-copilot/internal/intent"
	"study-copilot/internal/metering"
	"study-copilot/internal/snapshot"
	pkgLog "study-copilot/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	registry *capability.Registry
	builder  *snapshot.Builder
	budget   metering.BudgetOracle
	oracle   intent.Oracle
	recorder *metering.Recorder
	estimate int64
}

// New creates the intent classification UseCase.
func New(
	l pkgLog.Logger,
	registry *capability.Registry,
	builder *snapshot.Builder,
	budget metering.BudgetOracle,
	oracle intent.Oracle,
	recorder *metering.Recorder,
	estimate int64,
) *implUseCase {
	if estimate <= 0 {
		estimate = defaultEstimateTokens
	}
	return &implUseCase{
		l:        l,
		registry: registry,
		builder:  builder,
		budget:   budget,
		oracle:   oracle,
		recorder: recorder,
		estimate: estimate,
	}
}
