package capability

import (
	"errors"
	"fmt"

	"study-copilot/pkg/llmprovider"
)

var (
	ErrEmptyID     = errors.New("capability id must not be empty")
	ErrDuplicateID = errors.New("capability id already registered")
)

// Registry holds the set of dispatchable capabilities. Registration order is
// preserved and meaningful: the recovery heuristic breaks keyword ties by it.
type Registry struct {
	order []Capability
	index map[string]int
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds a capability. IDs must be unique.
func (r *Registry) Register(c Capability) error {
	if c.ID == "" {
		return ErrEmptyID
	}
	if _, ok := r.index[c.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, c.ID)
	}
	r.index[c.ID] = len(r.order)
	r.order = append(r.order, c)
	return nil
}

// Get returns the capability registered under id.
func (r *Registry) Get(id string) (Capability, bool) {
	i, ok := r.index[id]
	if !ok {
		return Capability{}, false
	}
	return r.order[i], true
}

// List returns all capabilities in registration order.
func (r *Registry) List() []Capability {
	out := make([]Capability, len(r.order))
	copy(out, r.order)
	return out
}

// Manifest renders the registry as a function-calling tool list for the
// selection oracle, in registration order.
func (r *Registry) Manifest() []llmprovider.Tool {
	tools := make([]llmprovider.Tool, 0, len(r.order))
	for _, c := range r.order {
		tools = append(tools, llmprovider.Tool{
			Name:        c.ID,
			Description: c.Description,
			Parameters:  c.Schema(),
		})
	}
	return tools
}
