// Package http implements the HTTP transport layer of the backup server.
//
// It exposes route wiring, request handlers, and middleware used by the
// backup REST API. Cross-cutting concerns such as API-key authentication,
// request tracing and access logging are handled in this package before
// requests are delegated to the backup store.
package http
