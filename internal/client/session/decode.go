package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/diegorighi/yukam-front/internal/client/models"
)

// variant is the shape a stored value was recognized as.
type variant int

const (
	variantCorrupt variant = iota
	variantEnvelope
	variantLegacy
)

func (v variant) String() string {
	switch v {
	case variantEnvelope:
		return "envelope"
	case variantLegacy:
		return "legacy"
	default:
		return "corrupt"
	}
}

// decoded is the result of decode. Exactly one of envelope or legacy is set
// unless kind is variantCorrupt, in which case err says why.
type decoded struct {
	kind     variant
	envelope *models.SessionEnvelope
	legacy   *models.IdentityRecord
	err      error
}

var (
	errNotObject   = errors.New("not a JSON object")
	errNoUserField = errors.New("envelope without user")
	errUnknown     = errors.New("neither envelope nor identity record")
)

// decode tries the variants in a fixed order: versioned envelope first,
// then the legacy bare identity record.
func decode(raw string) decoded {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return decoded{err: fmt.Errorf("%w: %w", errNotObject, err)}
	}
	if fields == nil {
		return decoded{err: errNotObject}
	}

	if _, ok := fields["version"]; ok {
		env, err := decodeEnvelope(fields)
		if err != nil {
			return decoded{err: err}
		}
		return decoded{kind: variantEnvelope, envelope: env}
	}

	_, hasID := fields["publicId"]
	_, hasLogin := fields["login"]
	if hasID || hasLogin {
		var rec models.IdentityRecord
		if err := strictUnmarshal([]byte(raw), &rec); err != nil {
			return decoded{err: fmt.Errorf("legacy record: %w", err)}
		}
		return decoded{kind: variantLegacy, legacy: &rec}
	}

	return decoded{err: errUnknown}
}

func decodeEnvelope(fields map[string]json.RawMessage) (*models.SessionEnvelope, error) {
	var env models.SessionEnvelope

	if err := json.Unmarshal(fields["version"], &env.Version); err != nil {
		return nil, fmt.Errorf("envelope version: %w", err)
	}
	user, ok := fields["user"]
	if !ok || bytes.Equal(bytes.TrimSpace(user), []byte("null")) {
		return nil, errNoUserField
	}
	if err := strictUnmarshal(user, &env.User); err != nil {
		return nil, fmt.Errorf("envelope user: %w", err)
	}
	if ts, ok := fields["timestamp"]; ok {
		if err := json.Unmarshal(ts, &env.Timestamp); err != nil {
			return nil, fmt.Errorf("envelope timestamp: %w", err)
		}
	}
	return &env, nil
}

// strictUnmarshal rejects fields of the wrong JSON type. Unknown fields are
// tolerated since the identity service may add to its response.
func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("trailing data")
	}
	return nil
}
