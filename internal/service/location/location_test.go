package location

import (
	"testing"

	"github.com/talentgate/careers_backend/config"
)

func fixedPick(i int) func(int) int {
	return func(n int) int { return i % n }
}

func TestResolve_SanitizesProxyChain(t *testing.T) {
	svc := New(config.LocationConfig{}).(*locationService)
	svc.pick = fixedPick(0)

	rec := svc.Resolve("203.0.113.5, 70.41.3.18")
	if rec.IP != "203.0.113.5" {
		t.Errorf("expected first entry trimmed, got %q", rec.IP)
	}

	rec = svc.Resolve("  203.0.113.5 ,70.41.3.18,150.172.238.178")
	if rec.IP != "203.0.113.5" {
		t.Errorf("expected whitespace trimmed, got %q", rec.IP)
	}
}

func TestResolve_EmptyFallsBackToLoopback(t *testing.T) {
	svc := New(config.LocationConfig{}).(*locationService)
	svc.pick = fixedPick(0)

	for _, raw := range []string{"", "   "} {
		if rec := svc.Resolve(raw); rec.IP != "127.0.0.1" {
			t.Errorf("Resolve(%q).IP = %q, expected loopback", raw, rec.IP)
		}
	}
}

func TestResolve_PicksFromCityPool(t *testing.T) {
	svc := New(config.LocationConfig{}).(*locationService)

	pool := make(map[string]bool, len(defaultCities))
	for _, c := range defaultCities {
		pool[c] = true
	}

	for range 50 {
		rec := svc.Resolve("203.0.113.5")
		if !pool[rec.Location] {
			t.Fatalf("location %q not in the configured pool", rec.Location)
		}
	}
}

func TestResolve_ConfiguredCities(t *testing.T) {
	svc := New(config.LocationConfig{
		Cities:     []string{"Berlin, Germany"},
		FallbackIP: "10.0.0.1",
	}).(*locationService)

	rec := svc.Resolve("")
	if rec.Location != "Berlin, Germany" {
		t.Errorf("expected configured city, got %q", rec.Location)
	}
	if rec.IP != "10.0.0.1" {
		t.Errorf("expected configured fallback IP, got %q", rec.IP)
	}
}
