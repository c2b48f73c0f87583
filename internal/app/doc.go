// Package app is the composition root for the FrotaOps client.
//
// # Overview
//
// This package wires configuration, the HTTP adapter, the session
// manager, and every resource container into one App value. Order
// matters during construction:
//
//  1. config.Load reads connection settings (base URL, state path,
//     poll interval)
//  2. api.NewClient builds the HTTP adapter for the chosen base URL
//  3. credstore.Open loads the persisted session state
//  4. session.Manager is restored (Init) BEFORE any container exists,
//     so the first authenticated fetch already carries the token
//  5. The containers are built on a shared events.Bus
//  6. store.NewCoordinator subscribes the cross-container refresh rules
//
// # Background Polling
//
// StartBackground launches two pollers for an authenticated session:
// vehicle positions for the live map and the unread notification
// counter. Both fetches are silent on failure so a flaky link does not
// toast every interval, and both stop when the context is cancelled.
//
// # Logout
//
// Logout funnels through App.Logout, which clears the session and then
// every container's cache. Nothing cached for the previous
// organization survives into the next login; derived views read empty
// until the new session fetches.
package app
