// Package http implements the REST transport of the dispatch server.
//
// It exposes route wiring, request handlers, and middleware. Authentication,
// request tracing, access logging and response compression are handled here
// before requests are delegated to the service layer. Validation failures are
// answered with their kind, field and reason as JSON.
package http
