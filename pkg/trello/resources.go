package trello

import (
	"fmt"
	"slices"
)

// Declaration is the explicit override record for a resource type. Fields
// left zero take the documented defaults (empty). There is no dynamic field
// discovery: these four fields are the full set of recognized options.
type Declaration struct {
	// URIStub is the URL path segment for the resource type, e.g. "boards".
	// A declaration without a stub is legal but cannot build URLs.
	URIStub string

	// Subresources names the collections nested under an instance of this
	// resource, e.g. "cards" under a list.
	Subresources []string

	// ParentResources names the resource types reachable upward from an
	// instance of this resource, e.g. "board" from a list.
	ParentResources []string

	// CanFilter names the subresources that support server-side filtering.
	// Every entry must also appear in Subresources.
	CanFilter []string
}

// ResourceConfig is the fully populated, immutable configuration for one
// resource type. Instances are produced by Registry.Register and never
// mutated afterwards.
type ResourceConfig struct {
	name         string
	uriStub      string
	subresources []string
	parents      []string
	filterable   []string
}

// Name returns the resource type name the configuration was registered under.
func (c *ResourceConfig) Name() string {
	return c.name
}

// URIStub returns the URL path segment for the resource type.
func (c *ResourceConfig) URIStub() string {
	return c.uriStub
}

// Subresources returns the declared subresource names.
func (c *ResourceConfig) Subresources() []string {
	return slices.Clone(c.subresources)
}

// ParentResources returns the declared parent resource names.
func (c *ResourceConfig) ParentResources() []string {
	return slices.Clone(c.parents)
}

// FilterableSubresources returns the subresource names that support
// server-side filtering.
func (c *ResourceConfig) FilterableSubresources() []string {
	return slices.Clone(c.filterable)
}

// HasSubresource reports whether name is a declared subresource.
func (c *ResourceConfig) HasSubresource(name string) bool {
	return slices.Contains(c.subresources, name)
}

// HasParent reports whether name is a declared parent resource.
func (c *ResourceConfig) HasParent(name string) bool {
	return slices.Contains(c.parents, name)
}

// CanFilter reports whether name is a filterable subresource.
func (c *ResourceConfig) CanFilter(name string) bool {
	return slices.Contains(c.filterable, name)
}

// newResourceConfig merges a declaration onto the all-empty defaults and
// checks the filterable-subset invariant.
func newResourceConfig(name string, decl Declaration) (*ResourceConfig, error) {
	for _, f := range decl.CanFilter {
		if !slices.Contains(decl.Subresources, f) {
			return nil, fmt.Errorf(
				"resource type %q: filterable subresource %q is not a declared subresource",
				name, f)
		}
	}

	return &ResourceConfig{
		name:         name,
		uriStub:      decl.URIStub,
		subresources: slices.Clone(decl.Subresources),
		parents:      slices.Clone(decl.ParentResources),
		filterable:   slices.Clone(decl.CanFilter),
	}, nil
}
