package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFoodFactsLookupSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v0/product/3800000000000.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": 1,
			"code": "3800000000000",
			"product": {
				"id": "3800000000000",
				"product_name": "Milk Chocolate",
				"brands": "Some Brand",
				"ingredients": [
					{"id": "en:sugar", "text": "sugar"},
					{"id": "en:cocoa", "text": "cocoa"},
					{"id": "en:milk", "text": " whole milk "}
				],
				"allergens_tags": ["en:milk", "en:tree-nuts"],
				"nutrition_grades": "e",
				"nutriments": {"proteins": 6.5, "fat": 30, "carbohydrates": 57, "sugars": 55, "fiber": 2, "salt": 0.2}
			}
		}`))
	}))
	defer srv.Close()

	svc := NewOpenFoodFactsServiceWithBase(srv.URL, srv.Client())
	product, err := svc.Lookup(context.Background(), "3800000000000")
	require.NoError(t, err)

	assert.Equal(t, "3800000000000", product.Barcode)
	assert.Equal(t, "Milk Chocolate", product.Name)
	assert.Equal(t, []string{"sugar", "cocoa", "whole milk"}, product.Ingredients)
	assert.Equal(t, []string{"milk", "tree nuts"}, product.Allergens)
	assert.Equal(t, "e", product.NutriScore)
	require.NotNil(t, product.Nutrition)
	assert.Equal(t, 6.5, product.Nutrition.Proteins)
}

func TestOpenFoodFactsLookupMiss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": 0, "code": "123", "status_verbose": "product not found"}`))
	}))
	defer srv.Close()

	svc := NewOpenFoodFactsServiceWithBase(srv.URL, srv.Client())
	_, err := svc.Lookup(context.Background(), "123")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestOpenFoodFactsLookupStatusOneWithoutProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": 1, "code": "123"}`))
	}))
	defer srv.Close()

	svc := NewOpenFoodFactsServiceWithBase(srv.URL, srv.Client())
	_, err := svc.Lookup(context.Background(), "123")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestOpenFoodFactsLookupServerError(t *testing.T) {
	// An HTTP-level failure is a transport error, not a miss.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := NewOpenFoodFactsServiceWithBase(srv.URL, srv.Client())
	_, err := svc.Lookup(context.Background(), "123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrProductNotFound)
}

func TestOpenFoodFactsEmptyNameFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": 1, "code": "123", "product": {"id": "123"}}`))
	}))
	defer srv.Close()

	svc := NewOpenFoodFactsServiceWithBase(srv.URL, srv.Client())
	product, err := svc.Lookup(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, "Unknown product", product.Name)
	assert.Nil(t, product.Nutrition)
}

func TestNormalizeAllergenTag(t *testing.T) {
	assert.Equal(t, "milk", normalizeAllergenTag("en:milk"))
	assert.Equal(t, "tree nuts", normalizeAllergenTag("en:tree-nuts"))
	assert.Equal(t, "молоко", normalizeAllergenTag("ru:молоко"))
	assert.Equal(t, "gluten", normalizeAllergenTag("gluten"))
}
