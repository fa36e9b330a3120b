package importer

import (
	"slices"
	"strings"
)

// Registry holds parsers by format name and matches them by header.
type Registry struct {
	parsers map[string]Parser
	order   []string
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format or header.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	if other := r.Match(p.Header()); other != nil {
		panic("duplicate parser header: " + key + " and " + other.Format())
	}
	r.parsers[key] = p
	r.order = append(r.order, key)
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Match returns the parser whose header equals header exactly, or nil.
func (r *Registry) Match(header []string) Parser {
	for _, key := range r.order {
		if p := r.parsers[key]; slices.Equal(p.Header(), header) {
			return p
		}
	}
	return nil
}

// All returns the registered parsers in registration order.
func (r *Registry) All() []Parser {
	out := make([]Parser, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.parsers[key])
	}
	return out
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&RBCParser{})
	r.Register(&TangerineParser{})
	r.Register(&ChaseParser{})
	return r
}
