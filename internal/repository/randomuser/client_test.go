package randomuser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchProfile(t *testing.T) {
	body := `{"results":[{"login":{"uuid":"155e77ee-ba6d-486f-95ce-0e0c0fb4b919"}}],"info":{}}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "1", r.URL.Query().Get("results"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/api/?results=1&nat=us", time.Second)

	data, err := client.FetchProfile(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, body, string(data))
}

func TestClient_FetchProfileBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	data, err := client.FetchProfile(context.Background())
	assert.Error(t, err)
	assert.Nil(t, data)
	assert.Contains(t, err.Error(), "503")
}

func TestClient_FetchProfileCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL, time.Second).FetchProfile(ctx)
	assert.Error(t, err)
}

func TestNewClient_DefaultURL(t *testing.T) {
	client := NewClient("", time.Second)
	assert.Equal(t, DefaultURL, client.url)
}
