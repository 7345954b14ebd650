package usecase

import (
	"context"
	"fmt"
	"strings"

	"study-copilot/internal/capability"
	"study-copilot/internal/intent"
	"study-copilot/internal/snapshot"
)

// recover is the deterministic fallback for unreadable selection responses.
// No network access: a capability is recovered only when one of its keywords
// and an action verb both appear in the message and its required context is
// independently satisfied. Ties between capabilities go to registration
// order, a deliberate simplification.
func (uc *implUseCase) recover(ctx context.Context, message string, snap snapshot.Snapshot) intent.Result {
	lower := strings.ToLower(message)

	if !containsAny(lower, actionVerbs) {
		return noneResult(confidenceNone, reasoningNotRecovered)
	}

	for _, c := range uc.registry.List() {
		if !containsAny(lower, c.Keywords) {
			continue
		}
		if c.RequiresContentRef() && !contentRefSatisfied(c, snap) {
			continue
		}

		uc.l.Infof(ctx, "intent.recover: recovered %s from keywords", c.ID)
		return intent.Result{
			Intent:     c.ID,
			Confidence: confidenceRecovered,
			Reasoning:  fmt.Sprintf("recovered %s by keyword matching after an unreadable selection response", c.ID),
			Parameters: recoveredParams(c, snap, message),
		}
	}

	return noneResult(confidenceNone, reasoningNotRecovered)
}

// recoveredParams fills what context can supply without a model: the note id
// from mentions or the open page, and the raw message for required free-text
// arguments so search-style capabilities still get their input.
func recoveredParams(c capability.Capability, snap snapshot.Snapshot, message string) map[string]string {
	params := make(map[string]string)
	fillNoteID(c, snap, params)
	for _, p := range c.Parameters {
		if p.Required && p.Type == "string" && params[p.Name] == "" {
			params[p.Name] = strings.TrimSpace(message)
		}
	}
	return params
}

// containsAny reports whether any needle occurs in haystack as a whole word
// or phrase. Plain substring matching would let "test" match "latest".
func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if containsWord(haystack, n) {
			return true
		}
	}
	return false
}

func containsWord(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	for from := 0; ; {
		i := strings.Index(haystack[from:], needle)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(needle)
		if (start == 0 || !isWordChar(haystack[start-1])) &&
			(end == len(haystack) || !isWordChar(haystack[end])) {
			return true
		}
		from = start + 1
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
