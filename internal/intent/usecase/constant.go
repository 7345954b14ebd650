package usecase

const (
	// defaultEstimateTokens is the conservative per-classification cost
	// checked against the budget before the oracle round-trip.
	defaultEstimateTokens = 1500

	confidenceSelection = 90
	confidenceRecovered = 60
	confidenceNone      = 50

	// noteIDParam is the shared note argument name across note-derived
	// capabilities. Filled from context when the model omits it.
	noteIDParam = "note_id"
)

// actionVerbs gate keyword recovery: a capability is recovered only when the
// message both names it and asks for something to be produced.
var actionVerbs = []string{"make", "create", "turn", "generate", "build"}

const (
	reasoningEmptyMessage       = "message is empty"
	reasoningNoMatch            = "no capability matched the request"
	reasoningOracleUnavailable  = "selection service did not answer; no capability selected"
	reasoningNotRecovered       = "selection response was unreadable and no capability could be recovered from the message"
	reasoningUnknownCapability  = "selection named an unknown capability"
	reasoningUnknownRequirement = "capability declares a precondition this service cannot verify"
)
