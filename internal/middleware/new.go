package middleware

import (
	pkgLog "smart-scheduler/pkg/log"
)

// Middleware bundles the gin middlewares shared by all routes.
type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

// New creates the middleware set. requestsPerMin bounds how many requests
// a single client IP may make per minute.
func New(l pkgLog.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(requestsPerMin),
	}
}
