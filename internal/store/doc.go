// Package store holds the per-resource state containers. Each container
// caches one resource family's records, serves derived views from that
// cache, and talks to the server through the shared API client.
//
// The error contract is split by operation kind. Fetches never return an
// error: on failure they log, emit a single negative toast (background
// refreshes stay silent), and leave the cached data untouched so the
// caller keeps rendering the last good state. Mutations toast and also
// return the error, since the caller usually needs to keep a form open.
//
// After a successful mutation a container either re-fetches its active
// query (when the server derives fields the client cannot compute, such
// as stock levels or embedded relations) or patches its cache in place
// (when the response carries the complete record). Cross-resource
// consequences are not handled here: containers publish a change on the
// event bus and the Coordinator decides which other caches to refresh.
package store
