package intent

// IntentNone is the sentinel meaning no capability was dispatched.
const IntentNone = "none"

// Result is the sole output of a classification. Built once per request,
// possibly overwritten to the none intent by the precondition gate, then
// handed to the caller and discarded.
type Result struct {
	Intent     string
	Confidence int // 0-100, informational only; never gates dispatch
	Reasoning  string
	Parameters map[string]string
}

// Mention is one content item the user referenced explicitly in the message.
type Mention struct {
	ID          string
	DisplayName string
}

// PageContext says which UI view the request came from, if any.
type PageContext struct {
	CurrentView string
	ViewItemID  string
}

// ClassifyInput is everything the caller supplies for one classification.
type ClassifyInput struct {
	Message  string
	Mentions []Mention
	Page     PageContext
}

// OracleKind distinguishes the three shapes a selection response can take.
type OracleKind int

const (
	// OracleSelection carries a parsed capability selection.
	OracleSelection OracleKind = iota
	// OracleMalformed means the oracle attempted a selection but the payload
	// failed structural validation.
	OracleMalformed
	// OracleNone means the oracle declined to select any capability.
	OracleNone
)

// Selection is the oracle's structured choice.
type Selection struct {
	CapabilityID string
	Args         map[string]interface{}
}

// OracleResult is the classified shape of one oracle round-trip.
type OracleResult struct {
	Kind      OracleKind
	Selection *Selection // set when Kind == OracleSelection

	// Cost is the actual token spend reported by the provider, zero when
	// unknown.
	Cost int64
}
