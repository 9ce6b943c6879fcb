package quotes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomTakesFirstQuote(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		w.Write([]byte(`[{"quote":"Stay hungry.","author":"Jobs"},{"quote":"Second","author":"Nobody"}]`))
	}))
	defer srv.Close()

	c := NewClientForEndpoint(srv.Client(), srv.URL, "test-key")
	q, err := c.Random(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Stay hungry.", q.Quote)
	assert.Equal(t, "Jobs", q.Author)
	assert.Equal(t, "test-key", gotKey)
}

func TestRandomEmptyArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClientForEndpoint(srv.Client(), srv.URL, "test-key")
	_, err := c.Random(context.Background())
	assert.ErrorContains(t, err, "no quotes")
}

func TestRandomNon200Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClientForEndpoint(srv.Client(), srv.URL, "test-key")
	_, err := c.Random(context.Background())
	assert.ErrorContains(t, err, "status 502")
}

func TestRandomMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	c := NewClientForEndpoint(srv.Client(), srv.URL, "test-key")
	_, err := c.Random(context.Background())
	assert.Error(t, err)
}
