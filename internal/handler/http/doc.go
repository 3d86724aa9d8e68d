// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, server-rendered HTML handlers, and middleware.
// Cross-cutting concerns such as session resolution, request tracing and
// access logging are handled in this package before requests are delegated
// to the service layer.
package http
