// Package trello provides types, interfaces, and helpers for working with the
// Trello REST API through declared resource types.
//
// # Overview
//
// A resource type (board, list, ...) is described once by a Declaration: its
// URL stub, the subresource collections nested under an instance of it, the
// parent resource types it can be reached up through, and the subresources
// that support server-side filtering. A Registry merges each declaration onto
// the documented defaults and attaches the resulting immutable ResourceConfig
// to the type name. From a configuration, a ResourceClient derives every URL
// needed to fetch an instance's related collections at call time; nothing is
// cached or persisted.
//
// A concrete implementation of the client interfaces is provided by the
// trelloclient package, which wires configuration, transport, and logging.
// Most consumers should import trelloclient to construct a client and then
// interact with the interfaces exposed here.
//
// Getting a client
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
//	  cli, err := trelloclient.New(&trello.Config{Key: "k", Token: "t"})
//	  if err != nil { log.Fatal(err) }
//
//	  urls, err := cli.Boards().FetchSubresources(ctx, "board-id", []string{"lists"})
//	  if err != nil { log.Fatal(err) }
//	  for u := range urls["lists"] {
//	    _ = u
//	  }
//	}
//
// # Derived URLs
//
// Operations return maps from collection name to URLSeq, a finite iter.Seq of
// fully formed URLs (auth query suffix included), one per identifier
// discovered in the response body. Sequences are single-traversal; identifier
// extraction happens eagerly so malformed bodies surface as errors from the
// operation itself.
//
// # Errors
//
// Failures are reported through typed errors: InvalidSubresourceError,
// InvalidParentError, RequestFailedError (any non-200 status; the call aborts
// with no partial results and no retry), MalformedResponseError, and
// ConfigurationError. Helpers such as IsRequestFailed and
// IsConfigurationMissing make it easy to branch on them.
package trello
