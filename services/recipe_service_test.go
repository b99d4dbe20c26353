package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeSearchCallsAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/complexSearch", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "breakfast", q.Get("query"))
		assert.Equal(t, "test-key", q.Get("apiKey"))
		assert.Equal(t, "milk,peanuts", q.Get("intolerances"))
		w.Write([]byte(`{
			"results": [{
				"id": 42,
				"title": "Porridge",
				"servings": 2,
				"readyInMinutes": 10,
				"summary": "Quick and safe",
				"extendedIngredients": [{"original": "oats"}, {"original": "water"}]
			}]
		}`))
	}))
	defer srv.Close()

	svc := NewRecipeServiceWithBase(srv.URL, "test-key", srv.Client())
	recipes := svc.Search(context.Background(), "breakfast", []string{"milk", "peanuts"}, nil)

	require.Len(t, recipes, 1)
	assert.EqualValues(t, 42, recipes[0].ID)
	assert.Equal(t, []string{"oats", "water"}, recipes[0].Ingredients)
}

func TestRecipeSearchFallsBackWithoutAPIKey(t *testing.T) {
	svc := NewRecipeServiceWithBase("http://unused", "", nil)

	recipes := svc.Search(context.Background(), "", nil, nil)
	assert.Len(t, recipes, 3)
}

func TestRecipeSearchFallsBackOnAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusPaymentRequired)
	}))
	defer srv.Close()

	svc := NewRecipeServiceWithBase(srv.URL, "test-key", srv.Client())
	recipes := svc.Search(context.Background(), "", nil, nil)
	assert.Len(t, recipes, 3)
}

func TestRecipeFallbackFiltersByQuery(t *testing.T) {
	svc := NewRecipeServiceWithBase("http://unused", "", nil)

	recipes := svc.Search(context.Background(), "rice", nil, nil)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Rice with vegetables", recipes[0].Title)
}

func TestRecipeFallbackExcludesIngredients(t *testing.T) {
	svc := NewRecipeServiceWithBase("http://unused", "", nil)

	recipes := svc.Search(context.Background(), "", nil, []string{"honey"})
	require.Len(t, recipes, 1)
	assert.Equal(t, "Rice with vegetables", recipes[0].Title)
}
