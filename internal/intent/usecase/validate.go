package usecase

import (
	"study-copilot/internal/capability"
	"study-copilot/internal/intent"
	"study-copilot/internal/snapshot"
)

// validate is the final precondition gate, applied to every non-none result
// regardless of which path produced it. Intentionally redundant with the
// per-path checks so a capability added with new preconditions cannot slip
// through a stale path.
func (uc *implUseCase) validate(result intent.Result, snap snapshot.Snapshot) intent.Result {
	if result.Intent == intent.IntentNone {
		return result
	}

	c, ok := uc.registry.Get(result.Intent)
	if !ok {
		return noneResult(confidenceNone, reasoningUnknownCapability)
	}

	for _, req := range c.RequiredContext {
		switch req {
		case capability.RequireContentRef:
			if !contentRefSatisfied(c, snap) {
				return noneResult(confidenceNone, missingRefReasoning(c))
			}
		default:
			// A requirement this gate does not know how to check fails
			// closed rather than silently passing.
			return noneResult(confidenceNone, reasoningUnknownRequirement)
		}
	}

	return result
}
