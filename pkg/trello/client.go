package trello

import (
	"context"
	"iter"
)

// URLSeq is a finite, single-traversal sequence of derived resource URLs.
// Identifier extraction happens before the sequence is returned, so shape
// errors surface from the operation, not during iteration.
type URLSeq = iter.Seq[string]

// ResourceClient exposes the derived-URL operations for one resource type.
// Instances bind one ResourceConfig to one set of connection settings, hold
// no per-call state, and are safe to reuse; they provide no internal
// synchronization, so concurrent callers should use independent clients.
type ResourceClient interface {
	// FetchSubresources fetches the named subresource collections of the
	// resource instance and returns the discovered sibling URLs keyed by
	// subresource name. Every name must be a declared subresource; an empty
	// name set returns an empty map without any network call.
	FetchSubresources(ctx context.Context, resourceID string, names []string) (map[string]URLSeq, error)

	// FetchViaParents fetches collections through the instance's parent
	// chain. A nil or empty parents slice defaults to the full declared
	// parent set. Results are keyed by the pluralization-normalized parent
	// name (see ParentResultKey). field optionally scopes each lookup to a
	// single field of the parent.
	FetchViaParents(ctx context.Context, resourceID string, parents []string, field string) (map[string]URLSeq, error)

	// FilterSubresource fetches the subset of a filterable subresource
	// collection matching filters and returns a single-entry map keyed by
	// the subresource name.
	FilterSubresource(ctx context.Context, resourceID string, subresource string, filters []string) (map[string]URLSeq, error)
}

// Client provides access to resource-specific clients.
type Client interface {
	// Boards returns the client for the board resource type.
	Boards() ResourceClient

	// Lists returns the client for the list resource type.
	Lists() ResourceClient

	// Resource returns the client for any registered resource type.
	Resource(name string) (ResourceClient, error)
}
