package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardkit-io/trello/pkg/trello"
)

// newTestClient creates a client whose requests land on the given test
// server.
func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()

	cfg := &trello.Config{
		Protocol:   "http",
		APIDomain:  strings.TrimPrefix(serverURL, "http://"),
		APIVersion: "1",
		Key:        "test-key",
		Token:      "test-token",
	}

	client, err := New(cfg, trello.DefaultRegistry())
	require.NoError(t, err)

	return client
}

func TestClientResource(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "http://unused.invalid")

	assert.NotNil(t, client.Boards())
	assert.NotNil(t, client.Lists())

	custom, err := client.Resource(trello.ResourceBoard)
	require.NoError(t, err)
	assert.NotNil(t, custom)

	_, err = client.Resource("stickers")
	require.ErrorIs(t, err, trello.ErrResourceNotRegistered)
}

func TestFetchSubresources(t *testing.T) {
	t.Parallel()
	t.Run("fetches each requested collection", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "test-key", request.URL.Query().Get("key"))
			assert.Equal(t, "test-token", request.URL.Query().Get("token"))

			switch request.URL.Path {
			case "/1/boards/b1/cards":
				_ = json.NewEncoder(writer).Encode([]map[string]string{{"id": "c1"}, {"id": "c2"}})
			case "/1/boards/b1/lists":
				_ = json.NewEncoder(writer).Encode([]map[string]string{{"id": "l1"}})
			default:
				t.Errorf("unexpected path %s", request.URL.Path)
			}
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		results, err := client.Boards().FetchSubresources(context.Background(), "b1", []string{"cards", "lists"})
		require.NoError(t, err)
		require.Len(t, results, 2)

		host := strings.TrimPrefix(server.URL, "http://")
		assert.Equal(t, []string{
			"http://" + host + "/1/cards/c1?key=test-key&token=test-token",
			"http://" + host + "/1/cards/c2?key=test-key&token=test-token",
		}, slices.Collect(results["cards"]))
		assert.Equal(t, []string{
			"http://" + host + "/1/lists/l1?key=test-key&token=test-token",
		}, slices.Collect(results["lists"]))
	})

	t.Run("empty request set issues zero network calls", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			calls.Add(1)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		results, err := client.Boards().FetchSubresources(context.Background(), "b1", nil)
		require.NoError(t, err)
		assert.Empty(t, results)
		assert.Zero(t, calls.Load())
	})

	t.Run("undeclared name fails before any request", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			calls.Add(1)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		results, err := client.Lists().FetchSubresources(context.Background(), "l1", []string{"cards", "checklists", "stickers"})
		require.Error(t, err)
		assert.Nil(t, results)
		assert.Zero(t, calls.Load())

		invalid := &trello.InvalidSubresourceError{}
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "list", invalid.Resource)
		assert.Equal(t, []string{"checklists", "stickers"}, invalid.Names)
	})

	t.Run("non-200 aborts with no partial results", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Path == "/1/boards/b1/cards" {
				_ = json.NewEncoder(writer).Encode([]map[string]string{{"id": "c1"}})

				return
			}

			writer.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		results, err := client.Boards().FetchSubresources(context.Background(), "b1", []string{"cards", "lists"})
		require.Error(t, err)
		assert.Nil(t, results)

		failed := &trello.RequestFailedError{}
		require.ErrorAs(t, err, &failed)
		assert.Equal(t, http.StatusNotFound, failed.StatusCode)
		assert.Contains(t, failed.URL, "/1/boards/b1/lists")
	})
}

func TestFetchViaParents(t *testing.T) {
	t.Parallel()
	t.Run("defaults to declared parents and pluralizes the result key", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			calls.Add(1)

			// Path keeps the singular parent name.
			assert.Equal(t, "/1/boards/123/organization/", request.URL.Path)
			_ = json.NewEncoder(writer).Encode(map[string]string{"id": "org1"})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		results, err := client.Boards().FetchViaParents(context.Background(), "123", nil, "")
		require.NoError(t, err)
		assert.Equal(t, int64(1), calls.Load())

		require.Len(t, results, 1)
		require.Contains(t, results, "organizations")

		host := strings.TrimPrefix(server.URL, "http://")
		assert.Equal(t, []string{
			"http://" + host + "/1/organizations/org1?key=test-key&token=test-token",
		}, slices.Collect(results["organizations"]))
	})

	t.Run("scopes each lookup to field when given", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/1/lists/l1/board/name/", request.URL.Path)
			_ = json.NewEncoder(writer).Encode(map[string]string{"id": "board1"})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		results, err := client.Lists().FetchViaParents(context.Background(), "l1", []string{"board"}, "name")
		require.NoError(t, err)
		require.Contains(t, results, "boards")
	})

	t.Run("undeclared parent fails before any request", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			calls.Add(1)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		results, err := client.Lists().FetchViaParents(context.Background(), "l1", []string{"organization"}, "")
		require.Error(t, err)
		assert.Nil(t, results)
		assert.Zero(t, calls.Load())
		assert.True(t, trello.IsInvalidParent(err))
	})

	t.Run("non-200 aborts the whole call", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		results, err := client.Boards().FetchViaParents(context.Background(), "123", nil, "")
		require.Error(t, err)
		assert.Nil(t, results)

		failed := &trello.RequestFailedError{}
		require.ErrorAs(t, err, &failed)
		assert.Equal(t, http.StatusNotFound, failed.StatusCode)
	})
}

func TestFilterSubresource(t *testing.T) {
	t.Parallel()
	t.Run("joins filters into the query suffix", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/1/boards/123/", request.URL.Path)
			assert.True(t, strings.HasSuffix(request.URL.RawQuery, "&filter=due,overdue"),
				"query %q should end with the filter suffix", request.URL.RawQuery)
			_ = json.NewEncoder(writer).Encode([]map[string]string{{"id": "c1"}})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		results, err := client.Boards().FilterSubresource(context.Background(), "123", "cards", []string{"due", "overdue"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Len(t, slices.Collect(results["cards"]), 1)
	})

	t.Run("rejects a non-filterable subresource", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			calls.Add(1)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		// actions is a declared subresource of board but not filterable.
		results, err := client.Boards().FilterSubresource(context.Background(), "123", "actions", []string{"all"})
		require.Error(t, err)
		assert.Nil(t, results)
		assert.Zero(t, calls.Load())
		assert.True(t, trello.IsInvalidSubresource(err))
	})

	t.Run("non-200 fails the call", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := client.Lists().FilterSubresource(context.Background(), "l1", "cards", []string{"open"})
		require.Error(t, err)

		failed := &trello.RequestFailedError{}
		require.ErrorAs(t, err, &failed)
		assert.Equal(t, http.StatusUnauthorized, failed.StatusCode)
	})
}
