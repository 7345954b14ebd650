package usecase

import (
	"fmt"
	"strings"

	"study-copilot/internal/snapshot"
)

// buildPrompt renders the single instruction prompt for the selection oracle:
// the raw message, the compact context facts, and a decision rule per
// capability that needs an identified content item.
func (uc *implUseCase) buildPrompt(message string, snap snapshot.Snapshot) string {
	var b strings.Builder

	b.WriteString("User request:\n")
	b.WriteString(message)
	b.WriteString("\n\nContext:\n")

	fmt.Fprintf(&b, "- plan: %s\n", snap.User.Plan)
	if snap.Page.CurrentView != "" {
		fmt.Fprintf(&b, "- current view: %s", snap.Page.CurrentView)
		if snap.Page.ViewItemID != "" {
			fmt.Fprintf(&b, " (item id %s)", snap.Page.ViewItemID)
		}
		b.WriteString("\n")
	}
	if len(snap.Refs) == 0 {
		b.WriteString("- referenced items: none\n")
	} else {
		b.WriteString("- referenced items:\n")
		for _, r := range snap.Refs {
			fmt.Fprintf(&b, "  - %s (id %s)\n", r.DisplayName, r.ID)
		}
	}

	b.WriteString("\nDecision rules:\n")
	for _, c := range uc.registry.List() {
		if !c.RequiresContentRef() {
			continue
		}
		fmt.Fprintf(&b,
			"- If the request asks for content derived from a note AND a referenced item exists OR the current view shows a note, you MUST select %s when it matches the request. Without either, do not select %s.\n",
			c.ID, c.ID)
	}
	b.WriteString("- Select at most one function. When nothing matches, select nothing.\n")

	return b.String()
}
