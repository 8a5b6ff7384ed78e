package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ansj1105/coin-csms-sub001/pkg/logger"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimit_AllowsWithinBurst(t *testing.T) {
	l := logger.NewWithWriter("test", "error", &discard{})
	handler := RateLimit(10, 5, l)(okHandler())

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/currencies", nil)
		r.RemoteAddr = "192.0.2.1:1234"
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimit_BlocksBeyondBurst(t *testing.T) {
	l := logger.NewWithWriter("test", "error", &discard{})
	handler := RateLimit(1, 2, l)(okHandler())

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/currencies", nil)
		r.RemoteAddr = "192.0.2.2:1234"
		handler.ServeHTTP(w, r)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Contains(t, codes[2:], http.StatusTooManyRequests)
}

func TestRateLimit_PerIPIsolation(t *testing.T) {
	l := logger.NewWithWriter("test", "error", &discard{})
	handler := RateLimit(1, 1, l)(okHandler())

	first := httptest.NewRecorder()
	r1 := httptest.NewRequest(http.MethodGet, "/", nil)
	r1.RemoteAddr = "192.0.2.3:1"
	handler.ServeHTTP(first, r1)

	// Exhausting one IP's bucket must not affect another.
	second := httptest.NewRecorder()
	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.RemoteAddr = "192.0.2.4:1"
	handler.ServeHTTP(second, r2)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
}

func TestVisitorStore_Cleanup(t *testing.T) {
	s := &visitorStore{
		visitors: make(map[string]*visitor),
		rps:      1,
		burst:    1,
		ttl:      time.Minute,
		nowFunc:  time.Now,
	}

	s.getVisitor("192.0.2.5")
	assert.Equal(t, 1, s.len())

	s.nowFunc = func() time.Time { return time.Now().Add(2 * time.Minute) }
	s.cleanup()
	assert.Equal(t, 0, s.len())
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.6:4321"
	assert.Equal(t, "192.0.2.6", ClientIP(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", ClientIP(r))

	r.Header.Del("X-Forwarded-For")
	r.Header.Set("X-Real-IP", "203.0.113.8")
	assert.Equal(t, "203.0.113.8", ClientIP(r))
}

type discard struct{}

func (*discard) Write(p []byte) (int, error) { return len(p), nil }
