package usecase

import (
	"context"
	"strings"

	"study-copilot/internal/intent"
	"study-copilot/internal/model"
	"study-copilot/internal/snapshot"
)

// Classify maps one free-form message onto exactly one capability or the
// none sentinel. ErrBudgetExceeded is the only failure the caller must
// distinguish; everything else terminates in a well-formed Result.
func (uc *implUseCase) Classify(ctx context.Context, sc model.Scope, input intent.ClassifyInput) (intent.Result, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return noneResult(0, reasoningEmptyMessage), nil
	}

	snap, err := uc.builder.Build(ctx, sc.UserID, pageFacts(input.Page), references(input.Mentions))
	if err != nil {
		return intent.Result{}, err
	}

	decision, err := uc.budget.CheckBudget(ctx, sc.UserID, uc.estimate)
	if err != nil {
		// The budget authority being down is an accounting problem, not a
		// classification one. Log and proceed.
		uc.l.Warnf(ctx, "intent.Classify.CheckBudget: %v", err)
	} else if !decision.Allowed {
		uc.l.Infof(ctx, "intent.Classify: budget exhausted for user=%s remaining=%d limit=%d",
			sc.UserID, decision.Remaining, decision.Limit)
		return intent.Result{}, intent.ErrBudgetExceeded
	}

	oracleRes, err := uc.oracle.Select(ctx, uc.buildPrompt(message, snap), uc.registry.Manifest())
	if err != nil {
		// Unreachable or timed out. One attempt is the contract; treat as no
		// selection rather than failing the request.
		uc.l.Warnf(ctx, "intent.Classify.Select: %v", err)
		return uc.finish(ctx, sc, snap, noneResult(confidenceNone, reasoningOracleUnavailable)), nil
	}

	uc.recorder.Record(ctx, sc.UserID, oracleRes.Cost)

	var result intent.Result
	switch oracleRes.Kind {
	case intent.OracleSelection:
		result = uc.postprocess(ctx, snap, *oracleRes.Selection, message)
	case intent.OracleMalformed:
		result = uc.recover(ctx, message, snap)
	default:
		result = noneResult(confidenceNone, reasoningNoMatch)
	}

	return uc.finish(ctx, sc, snap, result), nil
}

// finish applies the final precondition gate and logs the outcome.
func (uc *implUseCase) finish(ctx context.Context, sc model.Scope, snap snapshot.Snapshot, result intent.Result) intent.Result {
	result = uc.validate(result, snap)
	uc.l.Infof(ctx, "intent.Classify: user=%s intent=%s confidence=%d", sc.UserID, result.Intent, result.Confidence)
	return result
}

func noneResult(confidence int, reasoning string) intent.Result {
	return intent.Result{
		Intent:     intent.IntentNone,
		Confidence: confidence,
		Reasoning:  reasoning,
	}
}

func pageFacts(p intent.PageContext) snapshot.PageFacts {
	return snapshot.PageFacts{CurrentView: p.CurrentView, ViewItemID: p.ViewItemID}
}

func references(mentions []intent.Mention) []snapshot.Reference {
	if len(mentions) == 0 {
		return nil
	}
	refs := make([]snapshot.Reference, len(mentions))
	for i, m := range mentions {
		refs[i] = snapshot.Reference{ID: m.ID, DisplayName: m.DisplayName}
	}
	return refs
}
