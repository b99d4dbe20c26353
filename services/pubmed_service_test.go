package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubMedSearchAllergen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/esearch.fcgi":
			assert.Equal(t, "pubmed", r.URL.Query().Get("db"))
			assert.Equal(t, "allergen milk", r.URL.Query().Get("term"))
			w.Write([]byte(`{"esearchresult": {"idlist": ["12345", "67890"]}}`))
		case "/esummary.fcgi":
			assert.Equal(t, "12345", r.URL.Query().Get("id"))
			w.Write([]byte(`{"result": {
				"uids": ["12345"],
				"12345": {"title": "Milk allergy review", "source": "J Allergy", "pubdate": "2024 Jan"}
			}}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	svc := NewPubMedServiceWithBase(srv.URL, srv.Client())
	article, err := svc.SearchAllergen(context.Background(), "milk")
	require.NoError(t, err)

	assert.Equal(t, "12345", article.ID)
	assert.Equal(t, "Milk allergy review", article.Title)
	assert.Equal(t, "J Allergy", article.Source)
	assert.Equal(t, "2024 Jan", article.PubDate)
}

func TestPubMedNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"esearchresult": {"idlist": []}}`))
	}))
	defer srv.Close()

	svc := NewPubMedServiceWithBase(srv.URL, srv.Client())
	_, err := svc.SearchAllergen(context.Background(), "unobtainium")
	assert.Error(t, err)
}

func TestPubMedServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewPubMedServiceWithBase(srv.URL, srv.Client())
	_, err := svc.SearchAllergen(context.Background(), "milk")
	assert.Error(t, err)
}
