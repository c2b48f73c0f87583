// Package api provides the HTTP client adapter for the FrotaOps
// fleet-management API.
//
// The client owns one base URL and a cookie jar, and signs every
// outgoing request with the active session's bearer token through the
// TokenSource hook. Request bodies are JSON except for the two shapes
// the server demands otherwise: form-encoded credentials on login and
// multipart form data for file-bearing uploads (documents, part photos
// and invoices, fuel receipts).
//
// Failures surface as *Error carrying the HTTP status and the server's
// optional "detail" message. The adapter never retries and never
// notifies the user; resource containers decide both.
package api
