package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 4)
	for _, ip := range []string{"41.90.1.1", "41.90.1.1", "41.90.1.1", "41.90.2.2"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	want := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests, http.StatusOK}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("request %d: status = %d, want %d (all: %v)", i, codes[i], want[i], codes)
		}
	}
}

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded list", map[string]string{"X-Forwarded-For": "41.90.1.1, 10.0.0.1"}, "10.0.0.2:5000", "41.90.1.1"},
		{"real ip", map[string]string{"X-Real-IP": " 41.90.3.3 "}, "10.0.0.2:5000", "41.90.3.3"},
		{"remote addr", nil, "197.232.4.4:443", "197.232.4.4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}
			if got := getClientIP(c); got != tt.want {
				t.Errorf("getClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIPAPILocator_Lookup(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		switch r.URL.Path {
		case "/41.90.1.1/json/":
			w.Write([]byte(`{"city":"Nairobi","region":"Nairobi","country_name":"Kenya","country_code":"KE"}`))
		case "/41.90.9.9/json/":
			w.Write([]byte(`{"error":true,"reason":"Reserved IP Address"}`))
		default:
			w.WriteHeader(http.StatusTooManyRequests)
		}
	}))
	defer srv.Close()

	l := NewIPAPILocator()
	l.BaseURL = srv.URL
	l.Client = srv.Client()
	ctx := context.Background()

	geo, err := l.Lookup(ctx, "41.90.1.1")
	if err != nil {
		t.Fatal(err)
	}
	if geo.Label() != "Nairobi, Kenya" || geo.IP != "41.90.1.1" {
		t.Fatalf("unexpected geo %+v", geo)
	}
	if _, err := l.Lookup(ctx, "41.90.1.1"); err != nil {
		t.Fatal(err)
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Errorf("expected cached second lookup, got %d requests", n)
	}

	if _, err := l.Lookup(ctx, "41.90.9.9"); !errors.Is(err, ErrLocationUnknown) {
		t.Errorf("empty country: err = %v, want ErrLocationUnknown", err)
	}
	if _, err := l.Lookup(ctx, "192.168.1.20"); !errors.Is(err, ErrLocationUnknown) {
		t.Errorf("private ip: err = %v, want ErrLocationUnknown", err)
	}
	if _, err := l.Lookup(ctx, "41.90.5.5"); err == nil {
		t.Error("expected an error for a non-OK status")
	}
}

func TestRequestLogger_SetsContextLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	var found bool
	r.GET("/", func(c *gin.Context) {
		_, found = c.Get("logger")
		c.Status(http.StatusNoContent)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !found {
		t.Error("expected a request logger in the context")
	}
}
