// Package http implements the HTTP transport layer of the application.
//
// It wires the REST API routes, the session-cookie authentication middleware,
// request logging and trace-ID propagation, and maps service and storage
// errors to HTTP status codes.
package http
