package client

import (
	"context"

	"github.com/boardkit-io/trello/internal/http"
	"github.com/boardkit-io/trello/pkg/trello"
)

// ResourceClient implements trello.ResourceClient for one resource type.
type ResourceClient struct {
	config     *trello.ResourceConfig
	urls       *trello.URLBuilder
	httpClient *http.Client
}

// NewResourceClient creates a resource client for config.
func NewResourceClient(config *trello.ResourceConfig, urls *trello.URLBuilder, httpClient *http.Client) *ResourceClient {
	return &ResourceClient{
		config:     config,
		urls:       urls,
		httpClient: httpClient,
	}
}

// Config returns the resource configuration the client is bound to.
func (c *ResourceClient) Config() *trello.ResourceConfig {
	return c.config
}

// FetchSubresources implements trello.ResourceClient.FetchSubresources.
// Validation runs before any request: an undeclared name aborts the call
// with zero network I/O, and an empty name set short-circuits to an empty
// map.
func (c *ResourceClient) FetchSubresources(ctx context.Context, resourceID string, names []string) (map[string]trello.URLSeq, error) {
	results := make(map[string]trello.URLSeq, len(names))
	if len(names) == 0 {
		return results, nil
	}

	var invalid []string

	for _, name := range names {
		if !c.config.HasSubresource(name) {
			invalid = append(invalid, name)
		}
	}

	if len(invalid) > 0 {
		return nil, &trello.InvalidSubresourceError{Resource: c.config.Name(), Names: invalid}
	}

	for _, name := range names {
		requestURL := c.urls.SubresourceURL(c.config, resourceID, name)

		resp, err := c.httpClient.Get(ctx, requestURL)
		if err != nil {
			return nil, err
		}

		seq, err := extractURLs(c.urls, name, resp.Body, requestURL)
		if err != nil {
			return nil, err
		}

		results[name] = seq
	}

	return results, nil
}

// FetchViaParents implements trello.ResourceClient.FetchViaParents. Any
// non-200 response aborts the whole call; no partially populated map is
// returned.
func (c *ResourceClient) FetchViaParents(ctx context.Context, resourceID string, parents []string, field string) (map[string]trello.URLSeq, error) {
	if len(parents) == 0 {
		parents = c.config.ParentResources()
	} else {
		var invalid []string

		for _, parent := range parents {
			if !c.config.HasParent(parent) {
				invalid = append(invalid, parent)
			}
		}

		if len(invalid) > 0 {
			return nil, &trello.InvalidParentError{Resource: c.config.Name(), Names: invalid}
		}
	}

	instanceURL := c.urls.InstanceURL(c.config, resourceID)
	results := make(map[string]trello.URLSeq, len(parents))

	for _, parent := range parents {
		requestURL := c.urls.ParentURL(instanceURL, parent, field)

		resp, err := c.httpClient.Get(ctx, requestURL)
		if err != nil {
			return nil, err
		}

		// The path uses the singular parent name; the results key and the
		// discovered-URL stub use the plural collection form.
		key := trello.ParentResultKey(parent)

		seq, err := extractURLs(c.urls, key, resp.Body, requestURL)
		if err != nil {
			return nil, err
		}

		results[key] = seq
	}

	return results, nil
}

// FilterSubresource implements trello.ResourceClient.FilterSubresource.
func (c *ResourceClient) FilterSubresource(ctx context.Context, resourceID string, subresource string, filters []string) (map[string]trello.URLSeq, error) {
	if !c.config.CanFilter(subresource) {
		return nil, &trello.InvalidSubresourceError{Resource: c.config.Name(), Names: []string{subresource}}
	}

	instanceURL := c.urls.InstanceURL(c.config, resourceID)
	requestURL := c.urls.FilterURL(instanceURL, filters)

	resp, err := c.httpClient.Get(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	seq, err := extractURLs(c.urls, subresource, resp.Body, requestURL)
	if err != nil {
		return nil, err
	}

	return map[string]trello.URLSeq{subresource: seq}, nil
}
