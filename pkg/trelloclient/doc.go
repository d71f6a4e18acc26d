// Package trelloclient provides the primary entry point for constructing a
// Trello API client that implements the trello.Client interface.
//
// It layers configuration defaulting, credential validation, transport, and
// logging on top of the resource interfaces and types defined in the trello
// package. Most applications should import trelloclient to build a client,
// then use the returned trello.Client to access resource clients via
// Boards(), Lists(), or Resource(name).
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/boardkit-io/trello/pkg/trello"
//	  "github.com/boardkit-io/trello/pkg/trelloclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := trelloclient.New(&trello.Config{
//	    Key:   "your-api-key",
//	    Token: "your-api-token",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Or resolve credentials from TRELLO_API_KEY / TRELLO_API_TOKEN,
//	  // an optional .env file, and an optional trello.yaml:
//	  cli, err = trelloclient.NewFromEnv()
//	  if err != nil { log.Fatal(err) }
//
//	  parents, err := cli.Lists().FetchViaParents(ctx, "list-id", nil, "")
//	  if err != nil { log.Fatal(err) }
//	  for u := range parents["boards"] {
//	    _ = u
//	  }
//	}
//
// # Credentials
//
// Key and Token are required. Missing credentials are reported as a
// trello.ConfigurationError from the constructor, before any request is
// issued; use trello.IsConfigurationMissing to branch on that case.
//
// # Custom resource types
//
// Extend trello.DefaultRegistry() with additional declarations and pass it to
// NewWithRegistry; the new types become reachable through Resource(name).
package trelloclient
