package location

import (
	"math/rand/v2"
	"strings"

	"github.com/talentgate/careers_backend/config"
)

// Record is the display payload for the visitor-location widget. It is
// derived per request and never persisted.
type Record struct {
	Location string `json:"location"`
	IP       string `json:"ip"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Resolve(rawIP string) Record
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

// defaultCities is the demo pool. The random pick is an explicit mock: a
// production deployment would swap this service for one backed by a real
// geolocation provider keyed by the sanitized IP, keeping the same Record
// shape and sanitization rule.
var defaultCities = []string{
	"Hà Nội, Việt Nam",
	"Hồ Chí Minh, Việt Nam",
	"Đà Nẵng, Việt Nam",
	"Hải Phòng, Việt Nam",
	"Cần Thơ, Việt Nam",
}

const defaultFallbackIP = "127.0.0.1"

type locationService struct {
	cities     []string
	fallbackIP string
	pick       func(n int) int
}

func New(cfg config.LocationConfig) Service {
	cities := cfg.Cities
	if len(cities) == 0 {
		cities = defaultCities
	}
	fallback := cfg.FallbackIP
	if fallback == "" {
		fallback = defaultFallbackIP
	}
	return &locationService{
		cities:     cities,
		fallbackIP: fallback,
		pick:       rand.IntN,
	}
}

// Resolve sanitizes the raw client IP and pairs it with a city from the
// pool. Proxy chains present comma-separated lists; only the leftmost
// entry is kept.
func (s *locationService) Resolve(rawIP string) Record {
	ip := strings.TrimSpace(rawIP)
	if idx := strings.Index(ip, ","); idx >= 0 {
		ip = strings.TrimSpace(ip[:idx])
	}
	if ip == "" {
		ip = s.fallbackIP
	}

	return Record{
		Location: s.cities[s.pick(len(s.cities))],
		IP:       ip,
	}
}
