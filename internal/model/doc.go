// Package model declares the wire structs for every FrotaOps API
// entity. All records are server-owned; the client caches whatever the
// server returns and never derives identity or stock locally. Status
// enums keep the server's exact vocabulary, including the Portuguese
// display strings it uses on the wire.
package model
