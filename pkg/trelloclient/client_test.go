package trelloclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardkit-io/trello/pkg/trello"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("nil config is rejected", func(t *testing.T) {
		t.Parallel()

		client, err := New(nil)
		require.ErrorIs(t, err, trello.ErrConfigRequired)
		assert.Nil(t, client)
	})

	t.Run("missing credentials fail before any network call", func(t *testing.T) {
		t.Parallel()

		client, err := New(&trello.Config{})
		require.Error(t, err)
		assert.Nil(t, client)
		assert.True(t, trello.IsConfigurationMissing(err))

		configErr := &trello.ConfigurationError{}
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, []string{"api key", "api token"}, configErr.Missing)
	})

	t.Run("missing token only", func(t *testing.T) {
		t.Parallel()

		_, err := New(&trello.Config{Key: "k"})
		require.Error(t, err)

		configErr := &trello.ConfigurationError{}
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, []string{"api token"}, configErr.Missing)
	})

	t.Run("invalid protocol is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := New(&trello.Config{Protocol: "gopher", Key: "k", Token: "t"})
		require.Error(t, err)
		assert.True(t, trello.IsConfigurationMissing(err))
	})

	t.Run("valid credentials construct a client", func(t *testing.T) {
		t.Parallel()

		client, err := New(&trello.Config{Key: "k", Token: "t"})
		require.NoError(t, err)
		require.NotNil(t, client)
		assert.NotNil(t, client.Boards())
		assert.NotNil(t, client.Lists())
	})
}

func TestNewWithCredentials(t *testing.T) {
	t.Parallel()

	client, err := NewWithCredentials("k", "t")
	require.NoError(t, err)
	assert.NotNil(t, client)

	_, err = NewWithCredentials("", "")
	require.Error(t, err)
	assert.True(t, trello.IsConfigurationMissing(err))
}

func TestNewWithRegistry(t *testing.T) {
	t.Parallel()

	registry := trello.DefaultRegistry()
	registry.MustRegister("card", trello.Declaration{
		URIStub:         "cards",
		Subresources:    []string{"actions"},
		ParentResources: []string{"list", "board"},
	})

	client, err := NewWithRegistry(&trello.Config{Key: "k", Token: "t"}, registry)
	require.NoError(t, err)

	cards, err := client.Resource("card")
	require.NoError(t, err)
	assert.NotNil(t, cards)
}

func TestNewFromEnv(t *testing.T) {
	t.Run("reads credentials from the environment", func(t *testing.T) {
		t.Setenv("TRELLO_API_KEY", "env-key")
		t.Setenv("TRELLO_API_TOKEN", "env-token")

		client, err := NewFromEnv()
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("absent credentials are a fatal startup condition", func(t *testing.T) {
		t.Setenv("TRELLO_API_KEY", "")
		t.Setenv("TRELLO_API_TOKEN", "")

		client, err := NewFromEnv()
		require.Error(t, err)
		assert.Nil(t, client)
		assert.True(t, trello.IsConfigurationMissing(err))
	})
}

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	cfg := &trello.Config{Key: "k", Token: "t"}
	applyDefaults(cfg)

	assert.Equal(t, "https", cfg.Protocol)
	assert.Equal(t, "api.trello.com", cfg.APIDomain)
	assert.Equal(t, "1", cfg.APIVersion)
	assert.NotZero(t, cfg.HTTPTimeout)
	assert.Zero(t, cfg.RetryMax)

	retrying := &trello.Config{Key: "k", Token: "t", RetryMax: 2}
	applyDefaults(retrying)

	assert.NotZero(t, retrying.RetryWaitMin)
	assert.NotZero(t, retrying.RetryWaitMax)
}
