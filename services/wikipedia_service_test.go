package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWikipediaExtract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api.php", r.URL.Path)
		assert.Equal(t, "Milk allergy", r.URL.Query().Get("titles"))
		w.Write([]byte(`{"query": {"pages": {
			"12345": {"title": "Milk allergy", "extract": "Milk allergy is an adverse immune reaction."}
		}}}`))
	}))
	defer srv.Close()

	svc := NewWikipediaServiceWithBase(srv.URL, srv.Client())
	extract, err := svc.Extract(context.Background(), "Milk allergy")
	require.NoError(t, err)
	assert.Equal(t, "Milk allergy is an adverse immune reaction.", extract)
}

func TestWikipediaMissingPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"query": {"pages": {"-1": {"title": "Nonexistent", "extract": ""}}}}`))
	}))
	defer srv.Close()

	svc := NewWikipediaServiceWithBase(srv.URL, srv.Client())
	_, err := svc.Extract(context.Background(), "Nonexistent")
	assert.Error(t, err)
}

func TestWikipediaServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewWikipediaServiceWithBase(srv.URL, srv.Client())
	_, err := svc.Extract(context.Background(), "Milk allergy")
	assert.Error(t, err)
}
