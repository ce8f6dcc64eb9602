package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbaird/lensgate/internal/upstream"
)

func TestBraveSearch(t *testing.T) {
	var gotPath, gotQuery, gotCount, gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		gotCount = r.URL.Query().Get("count")
		gotToken = r.Header.Get("X-Subscription-Token")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"web":{"results":[
			{"title":"Eiffel Tower","url":"https://example.com/eiffel","description":"Iron lattice tower in Paris"},
			{"title":"Tower history","url":"https://example.com/history","description":"Built for the 1889 fair"}
		]}}`))
	}))
	defer server.Close()

	client := NewBraveClient("bsk-test", time.Second)
	client.baseURL = server.URL

	results, err := client.Search(context.Background(), "eiffel tower height", 2)
	require.NoError(t, err)
	assert.Equal(t, "/res/v1/web/search", gotPath)
	assert.Equal(t, "eiffel tower height", gotQuery)
	assert.Equal(t, "2", gotCount)
	assert.Equal(t, "bsk-test", gotToken)

	require.Len(t, results, 2)
	assert.Equal(t, Result{
		Query:   "eiffel tower height",
		Title:   "Eiffel Tower",
		Snippet: "Iron lattice tower in Paris",
		URL:     "https://example.com/eiffel",
	}, results[0])
}

func TestBraveSearchEmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"web":{"results":[]}}`))
	}))
	defer server.Close()

	client := NewBraveClient("bsk-test", time.Second)
	client.baseURL = server.URL

	results, err := client.Search(context.Background(), "nothing", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestBraveSearchUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewBraveClient("bsk-test", time.Second)
	client.baseURL = server.URL

	_, err := client.Search(context.Background(), "anything", 5)
	var upErr *upstream.Error
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, "Brave API error: 429", upErr.Error())
}
