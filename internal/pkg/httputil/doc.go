// Package httputil provides shared HTTP response helpers for handlers.
//
// Handlers write through these helpers instead of raw http.ResponseWriter
// calls so every endpoint, including the router's 404 and 405 fallbacks,
// returns the same JSON formatting and error envelope.
package httputil
