package models

// CurrentSessionVersion is the schema version written into every new
// SessionEnvelope. Envelopes carrying any other version are discarded.
const CurrentSessionVersion = "1.0.0"

// SessionEnvelope is the versioned record persisted between runs. It owns
// its IdentityRecord by value.
type SessionEnvelope struct {
	Version string         `json:"version"`
	User    IdentityRecord `json:"user"`
	// Timestamp is the creation time in epoch milliseconds. Advisory only.
	Timestamp int64 `json:"timestamp"`
}

// NewSessionEnvelope wraps a copy of user at the current schema version.
func NewSessionEnvelope(user *IdentityRecord, nowMillis int64) *SessionEnvelope {
	return &SessionEnvelope{
		Version:   CurrentSessionVersion,
		User:      *user.Clone(),
		Timestamp: nowMillis,
	}
}
