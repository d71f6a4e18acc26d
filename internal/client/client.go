// Package client implements the trello.Client and trello.ResourceClient
// interfaces on top of the internal transport.
package client

import (
	"github.com/boardkit-io/trello/internal/http"
	"github.com/boardkit-io/trello/pkg/trello"
)

// Client implements the trello.Client interface. It binds one registry and
// one set of connection settings; it holds no per-call mutable state.
type Client struct {
	httpClient *http.Client
	urls       *trello.URLBuilder
	registry   *trello.Registry
	logger     trello.Logger

	boards trello.ResourceClient
	lists  trello.ResourceClient
}

// createHTTPClientOptions builds transport options from config.
func createHTTPClientOptions(config *trello.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	return httpOpts
}

// New creates a client for the given configuration and registry. The config
// is expected to be validated and defaulted by the caller (see trelloclient).
func New(config *trello.Config, registry *trello.Registry) (*Client, error) {
	if config == nil {
		return nil, trello.ErrConfigRequired
	}

	urls := trello.NewURLBuilder(config.Protocol, config.APIDomain, config.APIVersion, config.Key, config.Token)
	httpClient := http.NewClient(createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		urls:       urls,
		registry:   registry,
		logger:     config.Logger,
	}

	if err := client.initializeResourceClients(); err != nil {
		return nil, err
	}

	return client, nil
}

// Boards implements trello.Client.Boards.
func (c *Client) Boards() trello.ResourceClient {
	return c.boards
}

// Lists implements trello.Client.Lists.
func (c *Client) Lists() trello.ResourceClient {
	return c.lists
}

// Resource implements trello.Client.Resource.
func (c *Client) Resource(name string) (trello.ResourceClient, error) {
	config, err := c.registry.Get(name)
	if err != nil {
		return nil, err
	}

	return NewResourceClient(config, c.urls, c.httpClient), nil
}

// initializeResourceClients initializes the clients for the seeded resource
// types.
func (c *Client) initializeResourceClients() error {
	boards, err := c.Resource(trello.ResourceBoard)
	if err != nil {
		return err
	}

	lists, err := c.Resource(trello.ResourceList)
	if err != nil {
		return err
	}

	c.boards = boards
	c.lists = lists

	return nil
}
