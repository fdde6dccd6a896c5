// Package client contains the client-side building blocks that talk to the
// outside world.
//
// # Overview
//
// The package provides:
//  1. Transport-agnostic contracts for the two remote services: Identity
//     (login, user lookup, password reset, liveness) and Customers (list,
//     lookup, update, block/unblock, soft delete/restore of PF and PJ
//     records).
//  2. REST implementations over net/http (IdentityHTTPClient,
//     CustomerHTTPClient) that share one request helper, stamp every call
//     with an X-Request-ID, and map HTTP statuses to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations), wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Callers match conditions with errors.Is against ErrUnauthorized,
// ErrUnavailable, ErrUpstream, ErrNotFound, ErrBadRequest and
// ErrInvalidPublicID. Non-2xx responses are returned as *StatusError, which
// unwraps to the matching sentinel and carries the server's message.
//
// All operations accept context.Context and honor cancellation/timeouts.
package client
