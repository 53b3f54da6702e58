// Package http implements the HTTP transport of the quietpage vault API.
//
// It wires the routes, request handlers, and middleware of the REST surface.
// Authentication, request tracing, access logging, response compression, and
// payload integrity checks all run here before a request reaches the service
// layer. The server never sees plaintext drafts: every payload passing
// through this package is an opaque ciphertext record.
package http
