package pubmatic

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetchDeal(t *testing.T) {
	var gotPath, gotAuth, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"Spring Push","cpm":50,"startDate":"2026-02-01T00:00:00Z"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, AuthToken: "tok-123"})
	record, err := client.FetchDeal(context.Background(), "138752")
	require.NoError(t, err)

	require.Equal(t, "/v3/pmp/deals/138752", gotPath)
	require.Equal(t, "Bearer tok-123", gotAuth)
	require.Equal(t, "application/json", gotContentType)
	require.Equal(t, "Spring Push", record["name"])
	require.Equal(t, float64(50), record["cpm"])
}

func TestFetchDealEscapesIdentifier(t *testing.T) {
	var gotEscaped string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEscaped = r.URL.EscapedPath()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, AuthToken: "tok"})
	_, err := client.FetchDeal(context.Background(), "TRESemme_F18/NESA 1")
	require.NoError(t, err)
	require.Equal(t, "/v3/pmp/deals/TRESemme_F18%2FNESA%201", gotEscaped)
}

func TestBearerValue(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "Bare token gets prefix", token: "abc123", want: "Bearer abc123"},
		{name: "Prefixed token untouched", token: "Bearer abc123", want: "Bearer abc123"},
		{name: "Lowercase prefix recognized", token: "bearer abc123", want: "bearer abc123"},
		{name: "Mixed case prefix recognized", token: "BeArEr abc123", want: "BeArEr abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bearerValue(tt.token)
			require.Equal(t, tt.want, got)
			require.Equal(t, 1, strings.Count(strings.ToLower(got), "bearer "))
		})
	}
}

func TestFetchDealNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"deal not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, AuthToken: "tok"})
	record, err := client.FetchDeal(context.Background(), "999")
	require.Error(t, err)
	require.Nil(t, record)
	require.Contains(t, err.Error(), "status 404")
}

func TestFetchDealDataPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":{"deal":{"name":"Wrapped"}}}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, AuthToken: "tok", DataPath: "response.deal"})
	record, err := client.FetchDeal(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, "Wrapped", record["name"])

	missing := NewClient(Config{BaseURL: server.URL, AuthToken: "tok", DataPath: "response.missing"})
	_, err = missing.FetchDeal(context.Background(), "1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "data path")
}

func TestFetchDealTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(Config{BaseURL: server.URL, AuthToken: "tok"})
	_, err := client.FetchDeal(context.Background(), "1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "HTTP request failed")
}
