package intent

import (
	"context"

	"study-copilot/internal/model"
	"study-copilot/pkg/llmprovider"
)

// UseCase classifies a free-form message into exactly one capability or the
// none sentinel. ErrBudgetExceeded is the only non-Result outcome.
type UseCase interface {
	Classify(ctx context.Context, sc model.Scope, input ClassifyInput) (Result, error)
}

// Oracle is the external structured-selection collaborator. One call per
// classification; the implementation owns its own timeout.
type Oracle interface {
	Select(ctx context.Context, prompt string, tools []llmprovider.Tool) (OracleResult, error)
}
