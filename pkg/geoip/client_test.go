package geoip

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/talentgate/careers_backend/config"
)

func TestSuggestCountry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/json/" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ip":"203.0.113.5","country_code":"VN","city":"Hanoi"}`))
	}))
	defer srv.Close()

	c := NewFromConfig(config.GeoIPConfig{Enabled: true, BaseURL: srv.URL})

	code, err := c.SuggestCountry(context.Background())
	if err != nil {
		t.Fatalf("SuggestCountry failed: %v", err)
	}
	if code != "vn" {
		t.Errorf("expected lowercase country code vn, got %q", code)
	}
}

func TestSuggestCountry_Disabled(t *testing.T) {
	c := NewFromConfig(config.GeoIPConfig{Enabled: false})
	if _, err := c.SuggestCountry(context.Background()); err == nil {
		t.Error("expected error from disabled client")
	}
}

func TestSuggestCountry_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewFromConfig(config.GeoIPConfig{Enabled: true, BaseURL: srv.URL})
	if _, err := c.SuggestCountry(context.Background()); err == nil {
		t.Error("expected error on non-200 response")
	}
}
