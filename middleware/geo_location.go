package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrLocationUnknown is returned when an IP cannot be placed.
var ErrLocationUnknown = errors.New("location unknown")

// GeoLocation represents the geolocation information for an IP.
type GeoLocation struct {
	IP          string `json:"ip"`
	City        string `json:"city"`
	Region      string `json:"region"`
	Country     string `json:"country_name"`
	CountryCode string `json:"country_code"`
}

// Label renders "City, Country", or just the country when the city is missing.
func (g *GeoLocation) Label() string {
	if g.City == "" {
		return g.Country
	}
	return g.City + ", " + g.Country
}

// GeoLocator resolves an IP address to a location.
type GeoLocator interface {
	Lookup(ctx context.Context, ip string) (*GeoLocation, error)
}

// IPAPILocator queries ipapi.co and caches successful lookups.
type IPAPILocator struct {
	BaseURL string
	Client  *http.Client

	mu    sync.RWMutex
	cache map[string]*GeoLocation
}

func NewIPAPILocator() *IPAPILocator {
	return &IPAPILocator{
		BaseURL: "https://ipapi.co",
		Client:  &http.Client{Timeout: 5 * time.Second},
		cache:   make(map[string]*GeoLocation),
	}
}

// isPrivateIP checks if an IP is private or loopback.
func isPrivateIP(ip string) bool {
	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}
	if parsedIP.IsLoopback() {
		return true
	}
	privateIPBlocks := []*net.IPNet{
		{IP: net.IPv4(10, 0, 0, 0), Mask: net.CIDRMask(8, 32)},
		{IP: net.IPv4(172, 16, 0, 0), Mask: net.CIDRMask(12, 32)},
		{IP: net.IPv4(192, 168, 0, 0), Mask: net.CIDRMask(16, 32)},
	}
	for _, block := range privateIPBlocks {
		if block.Contains(parsedIP) {
			return true
		}
	}
	return false
}

func (l *IPAPILocator) Lookup(ctx context.Context, ip string) (*GeoLocation, error) {
	if ip == "" || isPrivateIP(ip) {
		return nil, ErrLocationUnknown
	}

	l.mu.RLock()
	geo, exists := l.cache[ip]
	l.mu.RUnlock()
	if exists {
		return geo, nil
	}

	url := fmt.Sprintf("%s/%s/json/", strings.TrimRight(l.BaseURL, "/"), ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation API returned status %d", resp.StatusCode)
	}

	var out GeoLocation
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode geolocation response: %w", err)
	}
	if out.Country == "" {
		return nil, ErrLocationUnknown
	}
	out.IP = ip

	l.mu.Lock()
	if l.cache == nil {
		l.cache = make(map[string]*GeoLocation)
	}
	l.cache[ip] = &out
	l.mu.Unlock()
	return &out, nil
}

// GeolocationMiddleware resolves the client's IP and stores the result under
// "geoLocation", or the lookup error under "geoLocationError".
func GeolocationMiddleware(locator GeoLocator) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		clientIP := getClientIP(c)

		geo, err := locator.Lookup(c.Request.Context(), clientIP)
		if err != nil {
			logger.Warn("Geolocation lookup failed", zap.String("ip", clientIP), zap.Error(err))
			c.Set("geoLocationError", err)
			c.Next()
			return
		}

		c.Set("geoLocation", geo)
		logger.Debug("Geolocation determined", zap.String("ip", clientIP), zap.String("label", geo.Label()))
		c.Next()
	}
}
