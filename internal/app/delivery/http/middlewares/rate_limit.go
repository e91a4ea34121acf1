package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// CreateRateLimiter limits by client IP. Auth endpoints get a tighter
// window via CreateAuthRateLimiter to slow credential guessing.
func (m *Middlewares) CreateRateLimiter() func(next http.Handler) http.Handler {
	return httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Second)
}

func (m *Middlewares) CreateAuthRateLimiter() func(next http.Handler) http.Handler {
	return httprate.LimitByIP(10, time.Minute)
}
