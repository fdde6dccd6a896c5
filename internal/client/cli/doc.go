// Package cli is the interactive back-office client.
//
// NewApp wires the local SQLite store, the identity and customer-record
// services and the session core, then restores and validates the session
// saved by the previous run. App.Run starts the connectivity watcher (and
// the metrics endpoint when configured) and blocks in the REPL.
//
// Every command that touches protected data navigates to a destination
// first and only runs when the router admits it. A command refused for
// lack of a session is remembered and runs after the next login, the way
// a returnUrl is followed after signing in.
package cli
