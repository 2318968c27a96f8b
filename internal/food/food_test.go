package food

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"
)

func TestNormalize_DirectKcal(t *testing.T) {
	raw := rawProduct{
		Code:   "4000400000000",
		Name:   "Haferflocken",
		Brands: "Kölln",
		Nutriments: nutriments{
			Proteins100g: "13.5",
			Carbs100g:    "58.7",
			Fat100g:      "7",
			Kcal100g:     "372",
		},
	}
	p := raw.normalize(time.Now())
	if p.Per100.Kcal != 372 {
		t.Errorf("Kcal = %v, want the direct figure 372", p.Per100.Kcal)
	}
	if p.Per100.Protein != 13.5 || p.Per100.Carb != 58.7 || p.Per100.Fat != 7 {
		t.Errorf("macros = %+v", p.Per100)
	}
}

func TestNormalize_KJOnly(t *testing.T) {
	raw := rawProduct{
		Nutriments: nutriments{KJ100g: "1674"},
	}
	p := raw.normalize(time.Now())
	want := 1674 / 4.184
	if diff := p.Per100.Kcal - want; diff > 0.01 || diff < -0.01 {
		t.Errorf("Kcal = %v, want ~%v from kJ", p.Per100.Kcal, want)
	}
}

func TestNormalize_MissingEnergyStaysZero(t *testing.T) {
	p := rawProduct{Nutriments: nutriments{Proteins100g: "10"}}.normalize(time.Now())
	if p.Per100.Kcal != 0 {
		t.Errorf("Kcal = %v, want 0 so scaling derives it from macros", p.Per100.Kcal)
	}
}

func TestByBarcode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/product/12345.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status":1,"product":{"code":"12345","product_name":"Skyr",
			"nutriments":{"proteins_100g":11,"carbohydrates_100g":4,"fat_100g":0.2,"energy-kcal_100g":63}}}`))
	}))
	defer srv.Close()

	c := NewClientWithBase(srv.URL)
	p, err := c.ByBarcode(context.Background(), "12345")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Skyr" || p.Per100.Kcal != 63 {
		t.Errorf("product = %+v", p)
	}
}

func TestByBarcode_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":0}`))
	}))
	defer srv.Close()

	_, err := NewClientWithBase(srv.URL).ByBarcode(context.Background(), "0")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("search_terms"); got != "skyr" {
			t.Errorf("search_terms = %q", got)
		}
		_, _ = w.Write([]byte(`{"count":2,"products":[
			{"code":"1","product_name":"Skyr Natur","nutriments":{"proteins_100g":11,"energy-kcal_100g":63}},
			{"code":"2","product_name":"","nutriments":{}}
		]}`))
	}))
	defer srv.Close()

	products, err := NewClientWithBase(srv.URL).Search(context.Background(), "skyr")
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 1 {
		t.Fatalf("len = %d, want 1 (empty candidate dropped)", len(products))
	}
	if products[0].Name != "Skyr Natur" {
		t.Errorf("name = %q", products[0].Name)
	}
}

func TestSearch_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewClientWithBase(srv.URL).Search(context.Background(), "x")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("err = %v, want ErrRateLimited", err)
	}
}

func TestCache_PutGetRoundTrip(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), "products.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = cache.Close() }()

	p := Product{
		Barcode:   "4000400000000",
		Name:      "Haferflocken",
		Brand:     "Kölln",
		FetchedAt: time.Now().UTC().Truncate(time.Second),
	}
	p.Per100.Protein = 13.5
	p.Per100.Carb = 58.7
	p.Per100.Fat = 7
	p.Per100.Kcal = 372

	if err := cache.Put(p); err != nil {
		t.Fatal(err)
	}

	got, err := cache.Get(p.Barcode)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != p.Name || got.Per100 != p.Per100 {
		t.Errorf("got %+v, want %+v", got, p)
	}

	if _, err := cache.Get("unknown"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}

	n, err := cache.Count()
	if err != nil || n != 1 {
		t.Errorf("Count = %d (%v), want 1", n, err)
	}
}
