package capability

// Requirement names a context fact that must hold before a capability can be
// dispatched. Requirements gate dispatch explicitly; model confidence never does.
type Requirement string

const (
	// RequireContentRef demands an identifiable content item: either an
	// explicit mention in the message or a compatible currently-open view.
	RequireContentRef Requirement = "content_reference"
)

// ParamSpec describes one argument a capability accepts.
type ParamSpec struct {
	Name     string
	Type     string // JSON Schema type: "string", "integer", "boolean"
	Required bool
	Hint     string // extraction hint shown to the selection oracle
}

// Capability describes one dispatchable user action. Values are immutable
// once registered.
type Capability struct {
	ID          string
	Description string

	// Keywords is the closed keyword family used by the recovery heuristic.
	// Examples are model-facing hints; neither drives runtime branching in
	// the normal selection path.
	Keywords []string
	Examples []string

	Parameters      []ParamSpec
	RequiredContext []Requirement

	// CompatibleViews lists page views that satisfy RequireContentRef when
	// the message carries no explicit mention.
	CompatibleViews []string
}

// RequiresContentRef reports whether the capability declares RequireContentRef.
func (c Capability) RequiresContentRef() bool {
	for _, r := range c.RequiredContext {
		if r == RequireContentRef {
			return true
		}
	}
	return false
}

// Param looks up a parameter spec by name.
func (c Capability) Param(name string) (ParamSpec, bool) {
	for _, p := range c.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return ParamSpec{}, false
}

// ViewCompatible reports whether the given page view satisfies the
// capability's content-reference requirement.
func (c Capability) ViewCompatible(view string) bool {
	for _, v := range c.CompatibleViews {
		if v == view {
			return true
		}
	}
	return false
}

// Schema renders the parameter list as a JSON Schema object for the oracle's
// function manifest.
func (c Capability) Schema() map[string]interface{} {
	properties := make(map[string]interface{}, len(c.Parameters))
	var required []string

	for _, p := range c.Parameters {
		properties[p.Name] = map[string]interface{}{
			"type":        p.Type,
			"description": p.Hint,
		}
		if p.Required {
			required = append(required, p.Name)
		}
	}

	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
