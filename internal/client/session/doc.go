// Package session persists the authenticated identity between runs.
//
// Exactly one record lives under common.SessionStorageKey in the local
// key-value store. It is a versioned JSON envelope:
//
//	{"version":"1.0.0","user":{...identity...},"timestamp":1717171717000}
//
// Older clients stored the bare identity object without a wrapper. Load
// recognizes that shape and rewrites it as a current envelope once.
// Anything else it cannot use is wiped, never returned as an error.
package session
