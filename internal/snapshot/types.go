package snapshot

import "context"

// NamePlaceholder marks a reference whose display name could not be resolved
// by the caller. The id is still dispatchable.
const NamePlaceholder = "unresolved"

// Reference is one explicitly mentioned content item, exactly as the caller
// supplied it. The builder never performs its own content lookups.
type Reference struct {
	ID          string
	DisplayName string
}

// UserFacts carries read-only plan and budget information for prompt
// rendering. It is informational: budget authority stays with the metering
// ledger, never with these fields.
type UserFacts struct {
	Plan            string
	RemainingTokens int64

	// Degraded is set when the profile lookup failed and the facts fell back
	// to defaults. Classification still proceeds.
	Degraded bool
}

// PageFacts describes where the user currently is in the UI, if known.
type PageFacts struct {
	CurrentView string
	ViewItemID  string
}

// Snapshot is the per-request context handed to the classifier. Built once,
// never mutated afterwards.
type Snapshot struct {
	User UserFacts
	Page PageFacts
	Refs []Reference
}

// HasRefs reports whether the caller supplied at least one explicit mention.
func (s Snapshot) HasRefs() bool {
	return len(s.Refs) > 0
}

// FirstRef returns the first explicit mention. Mentions keep caller order, so
// this is the one the user named first.
func (s Snapshot) FirstRef() (Reference, bool) {
	if len(s.Refs) == 0 {
		return Reference{}, false
	}
	return s.Refs[0], true
}

// Profile is the subset of a user profile the snapshot needs.
type Profile struct {
	Plan            string
	RemainingTokens int64
}

// ProfileSource resolves user profiles. internal/profile provides the HTTP
// implementation; tests substitute their own.
type ProfileSource interface {
	GetProfile(ctx context.Context, userID string) (Profile, error)
}
