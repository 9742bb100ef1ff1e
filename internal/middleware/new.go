package middleware

import (
	pkgLog "voiceinbox/pkg/log"
)

// Middleware bundles the HTTP middlewares shared across routes.
type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

// New creates the middleware set. requestsPerMin caps extraction calls
// per client.
func New(l pkgLog.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(requestsPerMin),
	}
}
