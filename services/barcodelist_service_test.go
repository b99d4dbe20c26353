package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarcodeListLookupSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/barcode/", r.URL.Path)
		assert.Equal(t, "4600123456789", r.URL.Query().Get("barcode"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "success",
			"products": [{
				"barcode": "4600123456789",
				"name": "Кефир",
				"brand": "Простоквашино",
				"ingredients": "молоко, закваска, ",
				"allergens": ["молоко"]
			}]
		}`))
	}))
	defer srv.Close()

	svc := NewBarcodeListServiceWithBase(srv.URL, srv.Client())
	product, err := svc.Lookup(context.Background(), "4600123456789")
	require.NoError(t, err)

	assert.Equal(t, "4600123456789", product.Barcode)
	assert.Equal(t, "Кефир", product.Name)
	assert.Equal(t, "Простоквашино", product.Brand)
	assert.Equal(t, []string{"молоко", "закваска"}, product.Ingredients)
	assert.Equal(t, []string{"молоко"}, product.Allergens)
}

func TestBarcodeListLookupMiss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "error", "message": "not found", "products": []}`))
	}))
	defer srv.Close()

	svc := NewBarcodeListServiceWithBase(srv.URL, srv.Client())
	_, err := svc.Lookup(context.Background(), "4600000000000")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestBarcodeListLookupSuccessWithNoProducts(t *testing.T) {
	// status "success" with an empty product list is still a miss.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "products": []}`))
	}))
	defer srv.Close()

	svc := NewBarcodeListServiceWithBase(srv.URL, srv.Client())
	_, err := svc.Lookup(context.Background(), "4600000000000")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestBarcodeListLookupServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewBarcodeListServiceWithBase(srv.URL, srv.Client())
	_, err := svc.Lookup(context.Background(), "4600000000000")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrProductNotFound)
}

func TestBarcodeListLookupMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": `))
	}))
	defer srv.Close()

	svc := NewBarcodeListServiceWithBase(srv.URL, srv.Client())
	_, err := svc.Lookup(context.Background(), "4600000000000")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrProductNotFound)
}
