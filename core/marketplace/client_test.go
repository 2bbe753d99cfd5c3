package marketplace

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDo_JSONRoundTrip(t *testing.T) {
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "secret", r.Header.Get("Api-Key"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"ok"}`))
	}))
	defer server.Close()

	var out struct {
		Result string `json:"result"`
	}
	err := NewClient(5).Do(context.Background(), Request{
		Op:     "test: echo",
		Method: http.MethodPost,
		URL:    server.URL + "/echo",
		Header: map[string]string{"Api-Key": "secret"},
		Query:  url.Values{"page": []string{"1"}},
		Body:   map[string]string{"hello": "world"},
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, "ok", out.Result)
	assert.Equal(t, map[string]string{"hello": "world"}, gotBody)
}

func TestClientDo_NonOKStatusIsRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bad credentials"}`, http.StatusForbidden)
	}))
	defer server.Close()

	err := NewClient(5).Do(context.Background(), Request{
		Op:     "test: reject",
		Method: http.MethodGet,
		URL:    server.URL,
	}, nil)

	require.Error(t, err)
	assert.True(t, IsRejected(err))
	assert.False(t, IsUnavailable(err))

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusForbidden, se.StatusCode)
	assert.Contains(t, se.Body, "bad credentials")
	assert.Contains(t, se.Error(), "test: reject")
}

func TestClientDo_ConnectionFailureIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse all connections

	err := NewClient(1).Do(context.Background(), Request{
		Op:     "test: refused",
		Method: http.MethodGet,
		URL:    server.URL,
	}, nil)

	require.Error(t, err)
	assert.True(t, IsUnavailable(err))
	assert.False(t, IsRejected(err))
}

func TestClientDo_DecodeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	var out map[string]any
	err := NewClient(5).Do(context.Background(), Request{
		Op:     "test: decode",
		Method: http.MethodGet,
		URL:    server.URL,
	}, &out)

	require.Error(t, err)
	assert.False(t, IsRejected(err))
	assert.False(t, IsUnavailable(err))
	assert.Contains(t, err.Error(), "decode response")
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("x", maxErrorBody+10)
	got := truncate([]byte(long), maxErrorBody)
	assert.Len(t, got, maxErrorBody+3)
	assert.True(t, strings.HasSuffix(got, "..."))

	assert.Equal(t, "short", truncate([]byte("short"), maxErrorBody))
}
