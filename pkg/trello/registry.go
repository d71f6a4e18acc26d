package trello

import (
	"fmt"
	"sort"
)

// Registry associates resource type names with their configurations. A
// registry is populated once, at definition time, and read-only afterwards;
// no two resource types share a configuration value.
type Registry struct {
	configs map[string]*ResourceConfig
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		configs: make(map[string]*ResourceConfig),
	}
}

// Register merges decl onto the documented defaults and attaches the result
// to name. Registering the same name twice is an error, as is a declaration
// whose CanFilter entries are not all declared subresources.
func (r *Registry) Register(name string, decl Declaration) (*ResourceConfig, error) {
	if _, ok := r.configs[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrResourceAlreadyRegistered, name)
	}

	config, err := newResourceConfig(name, decl)
	if err != nil {
		return nil, err
	}

	r.configs[name] = config

	return config, nil
}

// MustRegister is like Register but panics on error. Intended for static
// registration at process start.
func (r *Registry) MustRegister(name string, decl Declaration) *ResourceConfig {
	config, err := r.Register(name, decl)
	if err != nil {
		panic(err)
	}

	return config
}

// Get returns the configuration registered under name.
func (r *Registry) Get(name string) (*ResourceConfig, error) {
	config, ok := r.configs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrResourceNotRegistered, name)
	}

	return config, nil
}

// Names returns the registered resource type names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.configs))
	for name := range r.configs {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Resource type names seeded by DefaultRegistry.
const (
	ResourceBoard = "board"
	ResourceList  = "list"
)

// DefaultRegistry returns a registry seeded with the board and list
// declarations from the Trello URL scheme.
func DefaultRegistry() *Registry {
	registry := NewRegistry()

	registry.MustRegister(ResourceBoard, Declaration{
		URIStub: "boards",
		Subresources: []string{
			"actions",
			"cards",
			"checklists",
			"lists",
			"members",
			"membersInvited",
		},
		ParentResources: []string{"organization"},
		CanFilter:       []string{"cards", "lists", "members"},
	})

	registry.MustRegister(ResourceList, Declaration{
		URIStub:         "lists",
		Subresources:    []string{"actions", "cards"},
		ParentResources: []string{"board"},
		CanFilter:       []string{"cards"},
	})

	return registry
}
