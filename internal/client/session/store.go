package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/diegorighi/yukam-front/internal/client/models"
	"github.com/diegorighi/yukam-front/internal/client/repositories/storage"
	"github.com/diegorighi/yukam-front/internal/common"
	"github.com/diegorighi/yukam-front/internal/logging"
)

// Store keeps one SessionEnvelope under a fixed key.
type Store struct {
	repo storage.Repository
	key  string
	log  logging.Logger
	now  func() time.Time
}

// Option customizes a Store.
type Option func(*Store)

// WithClock replaces time.Now as the source of envelope timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithKey overrides the storage key. Tests use it to share a database.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

func NewStore(repo storage.Repository, log logging.Logger, opts ...Option) *Store {
	s := &Store{
		repo: repo,
		key:  common.SessionStorageKey,
		log:  log.With("component", "session_store"),
		now:  time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// NewEnvelope wraps user at the current version, stamped with the store clock.
func (s *Store) NewEnvelope(user *models.IdentityRecord) *models.SessionEnvelope {
	return models.NewSessionEnvelope(user, s.now().UnixMilli())
}

// Load returns the stored envelope, or false when there is none usable.
//
// It never fails. A read error, malformed JSON, a version other than
// models.CurrentSessionVersion, or an invalid legacy record are logged and
// the key is wiped. A valid legacy record is migrated in place.
func (s *Store) Load(ctx context.Context) (*models.SessionEnvelope, bool) {
	raw, ok, err := s.repo.Get(ctx, s.key)
	if err != nil {
		s.log.Error(ctx, "reading stored session failed", "error", err)
		s.wipe(ctx)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	d := decode(raw)
	switch d.kind {
	case variantEnvelope:
		if d.envelope.Version != models.CurrentSessionVersion {
			s.log.Warn(ctx, "stored session discarded",
				"reason", "version mismatch",
				"stored", d.envelope.Version,
				"current", models.CurrentSessionVersion)
			s.wipe(ctx)
			return nil, false
		}
		return d.envelope, true

	case variantLegacy:
		return s.migrate(ctx, raw, d.legacy)

	default:
		s.log.Warn(ctx, "stored session discarded", "reason", "malformed", "error", d.err)
		s.wipe(ctx)
		return nil, false
	}
}

// migrate rewrites a legacy bare record as a current envelope. The write is
// a compare-and-swap against the value that was read, so a concurrent Save
// is never overwritten by the migration.
func (s *Store) migrate(ctx context.Context, raw string, legacy *models.IdentityRecord) (*models.SessionEnvelope, bool) {
	if !legacy.Valid() {
		s.log.Warn(ctx, "stored session discarded", "reason", "invalid legacy record")
		s.wipe(ctx)
		return nil, false
	}

	env := s.NewEnvelope(legacy)
	data, err := json.Marshal(env)
	if err != nil {
		s.log.Error(ctx, "encoding migrated session failed", "error", err)
		s.wipe(ctx)
		return nil, false
	}

	swapped, err := s.repo.CompareAndSwap(ctx, s.key, raw, string(data))
	if err != nil {
		// The in-memory result is still good; the next start migrates again.
		s.log.Error(ctx, "persisting migrated session failed", "error", err)
		return env, true
	}
	if !swapped {
		s.log.Info(ctx, "stored session changed during migration, reloading")
		return s.Load(ctx)
	}

	s.log.Info(ctx, "stored session migrated", "version", env.Version, "user", env.User.Login)
	return env, true
}

// Save overwrites the stored envelope.
func (s *Store) Save(ctx context.Context, env *models.SessionEnvelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.repo.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear removes the stored envelope. Clearing an empty store succeeds.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo.Remove(ctx, s.key); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *Store) wipe(ctx context.Context) {
	if err := s.Clear(ctx); err != nil {
		s.log.Error(ctx, "wiping stored session failed", "error", err)
	}
}
