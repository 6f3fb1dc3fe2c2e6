// Package middleware holds the global middleware of the HTTP server:
// request ids, rate limiting, CORS, tracing, request logging, panic
// recovery and the global error handler.
package middleware
