package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"patient-appointment-api/pkg/response"

	"golang.org/x/time/rate"
)

type rateLimitClient struct {
	lim  *rate.Limiter
	seen time.Time
}

// RateLimitMiddleware applies a per-client token bucket keyed by remote IP.
type RateLimitMiddleware struct {
	mu      sync.Mutex
	clients map[string]*rateLimitClient
	r       rate.Limit
	burst   int
}

func NewRateLimitMiddleware(rps float64, burst int) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		clients: make(map[string]*rateLimitClient),
		r:       rate.Limit(rps),
		burst:   burst,
	}
	// cleanup stale entries every minute
	go func() {
		for {
			time.Sleep(time.Minute)
			m.mu.Lock()
			for ip, c := range m.clients {
				if time.Since(c.seen) > 3*time.Minute {
					delete(m.clients, ip)
				}
			}
			m.mu.Unlock()
		}
	}()
	return m
}

func (m *RateLimitMiddleware) limiter(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.clients[ip]; ok {
		c.seen = time.Now()
		return c.lim
	}
	l := rate.NewLimiter(m.r, m.burst)
	m.clients[ip] = &rateLimitClient{lim: l, seen: time.Now()}
	return l
}

func (m *RateLimitMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		if !m.limiter(ip).Allow() {
			response.TooManyRequests(w, "")
			return
		}

		next.ServeHTTP(w, req)
	})
}
