package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"study-copilot/internal/capability"
	"study-copilot/internal/intent"
	"study-copilot/internal/snapshot"
)

// postprocess turns a structured oracle selection into a Result: normalize
// arguments against the capability's schema, derive the note id from context
// where the model omitted it, and downgrade to none when a required piece is
// missing. Declining beats guessing a subject.
func (uc *implUseCase) postprocess(ctx context.Context, snap snapshot.Snapshot, sel intent.Selection, message string) intent.Result {
	c, ok := uc.registry.Get(sel.CapabilityID)
	if !ok {
		// The manifest only offered registered capabilities, so an unknown
		// name is a broken selection. Try recovery before giving up.
		uc.l.Warnf(ctx, "intent.postprocess: oracle selected unknown capability %q", sel.CapabilityID)
		return uc.recover(ctx, message, snap)
	}

	if c.RequiresContentRef() && !contentRefSatisfied(c, snap) {
		return noneResult(confidenceNone, missingRefReasoning(c))
	}

	params := normalizeArgs(c, sel.Args)
	fillNoteID(c, snap, params)

	for _, p := range c.Parameters {
		if p.Required && params[p.Name] == "" {
			return noneResult(confidenceNone,
				fmt.Sprintf("selection for %s omitted required argument %q", c.ID, p.Name))
		}
	}

	return intent.Result{
		Intent:     c.ID,
		Confidence: confidenceSelection,
		Reasoning:  fmt.Sprintf("model selected %s", c.ID),
		Parameters: params,
	}
}

// contentRefSatisfied implements the shared required-context rule: an
// explicit mention or a compatible open view identifies the subject.
func contentRefSatisfied(c capability.Capability, snap snapshot.Snapshot) bool {
	if snap.HasRefs() {
		return true
	}
	return snap.Page.CurrentView != "" && c.ViewCompatible(snap.Page.CurrentView)
}

func missingRefReasoning(c capability.Capability) string {
	return fmt.Sprintf("%s needs an identified note, but none was referenced or open", c.ID)
}

// fillNoteID derives the note argument when the model omitted it. An explicit
// mention wins over the open page.
func fillNoteID(c capability.Capability, snap snapshot.Snapshot, params map[string]string) {
	if _, declared := c.Param(noteIDParam); !declared || params[noteIDParam] != "" {
		return
	}
	if ref, ok := snap.FirstRef(); ok {
		params[noteIDParam] = ref.ID
		return
	}
	if snap.Page.ViewItemID != "" && c.ViewCompatible(snap.Page.CurrentView) {
		params[noteIDParam] = snap.Page.ViewItemID
	}
}

// normalizeArgs keeps only declared parameters and renders them as trimmed
// strings. Missing optionals stay absent rather than null-filled.
func normalizeArgs(c capability.Capability, raw map[string]interface{}) map[string]string {
	params := make(map[string]string, len(raw))
	for _, p := range c.Parameters {
		v, ok := raw[p.Name]
		if !ok {
			continue
		}
		if s := stringify(v); s != "" {
			params[p.Name] = s
		}
	}
	return params
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
