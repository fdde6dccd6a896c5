// Package common contains constants shared across the client packages.
package common

const (
	// RequestIDHeaderName carries a per-request UUID on every outbound call.
	RequestIDHeaderName = "X-Request-ID"

	// SessionStorageKey is the durable-storage key of the session envelope.
	SessionStorageKey = "yukam_auth_user"

	// ThemeStorageKey is the durable-storage key of the theme preference.
	ThemeStorageKey = "yukam-theme"
)
