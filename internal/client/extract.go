package client

import (
	"encoding/json"

	"github.com/boardkit-io/trello/pkg/trello"
)

// extractURLs parses a response body and returns the sibling-resource URLs
// derived from the identifiers it carries. Two shapes are accepted: an array
// of objects (elements without an "id" are skipped) and a single object (an
// object without an "id" yields an empty sequence). Anything else — invalid
// JSON, a scalar, null, or an array containing non-objects — is a
// trello.MalformedResponseError.
//
// Identifiers are collected eagerly so shape errors surface here; the URL
// strings themselves are materialized during iteration. The sequence is
// finite and intended for a single traversal.
func extractURLs(urls *trello.URLBuilder, stub string, body []byte, requestURL string) (trello.URLSeq, error) {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &trello.MalformedResponseError{URL: requestURL, Detail: "body is not valid JSON"}
	}

	ids, err := collectIDs(payload, requestURL)
	if err != nil {
		return nil, err
	}

	return func(yield func(string) bool) {
		for _, id := range ids {
			if !yield(urls.DiscoveredURL(stub, id)) {
				return
			}
		}
	}, nil
}

func collectIDs(payload any, requestURL string) ([]string, error) {
	switch value := payload.(type) {
	case []any:
		ids := make([]string, 0, len(value))

		for _, item := range value {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, &trello.MalformedResponseError{
					URL:    requestURL,
					Detail: "array element is not an object",
				}
			}

			if id, ok := obj["id"].(string); ok && id != "" {
				ids = append(ids, id)
			}
		}

		return ids, nil

	case map[string]any:
		if id, ok := value["id"].(string); ok && id != "" {
			return []string{id}, nil
		}

		// A lone object without an id is a legitimate empty result, not an
		// error.
		return nil, nil

	default:
		return nil, &trello.MalformedResponseError{
			URL:    requestURL,
			Detail: "body is neither an object nor an array of objects",
		}
	}
}
