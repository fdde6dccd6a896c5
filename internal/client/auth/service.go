package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/diegorighi/yukam-front/internal/client/client"
	"github.com/diegorighi/yukam-front/internal/client/models"
	"github.com/diegorighi/yukam-front/internal/client/session"
	"github.com/diegorighi/yukam-front/internal/logging"
	"github.com/diegorighi/yukam-front/internal/metrics"
)

// Redirector receives the "go to the login screen" signal sent by Logout.
type Redirector interface {
	RedirectToLogin(ctx context.Context)
}

// Reasons recorded when the session is cleared.
const (
	ResetLogout         = "logout"
	ResetCleared        = "cleared"
	ResetCorrupt        = "corrupt"
	ResetStartupCorrupt = "startup_corrupt"
	ResetStartupError   = "startup_error"
)

// Service is the only writer of State. It moves the client between
// "logged out" and "logged in".
//
// Every Login is tagged with a sequence number taken when the request
// starts. Logout, ClearAuthState, and later logins advance the sequence,
// so a response that arrives after any of them is discarded instead of
// bringing the session back.
type Service struct {
	identity client.Identity
	store    *session.Store
	state    *State
	log      logging.Logger
	metrics  *metrics.Metrics
	redirect Redirector

	mu  sync.Mutex
	seq uint64
}

type ServiceOption func(*Service)

func WithRedirector(r Redirector) ServiceOption {
	return func(s *Service) { s.redirect = r }
}

func WithMetrics(m *metrics.Metrics) ServiceOption {
	return func(s *Service) { s.metrics = m }
}

func NewService(identity client.Identity, store *session.Store, state *State, log logging.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		identity: identity,
		store:    store,
		state:    state,
		log:      log.With("component", "auth"),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// State returns the session cell this service writes.
func (s *Service) State() *State { return s.state }

// Login exchanges credentials for an identity. On success the identity is
// held in State and saved for the next run. Failures from the identity
// service are returned unchanged and leave State and the store untouched.
func (s *Service) Login(ctx context.Context, creds models.Credentials) (*models.IdentityRecord, error) {
	tag := s.nextTag()
	start := time.Now()

	user, err := s.identity.Login(ctx, creds)
	if err != nil {
		s.metrics.ObserveLogin(loginOutcome(err), time.Since(start))
		s.log.Warn(ctx, "login failed", "login", creds.Login, "error", err)
		return nil, err
	}
	if !user.Valid() {
		s.metrics.ObserveLogin(metrics.OutcomeInvalid, time.Since(start))
		s.log.Error(ctx, "login response rejected", "login", creds.Login, "reason", "invalid identity")
		return nil, ErrInvalidIdentity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if tag != s.seq {
		s.metrics.ObserveLogin(metrics.OutcomeSuperseded, time.Since(start))
		s.log.Info(ctx, "stale login response discarded", "login", creds.Login)
		return nil, ErrLoginSuperseded
	}

	s.state.set(user)

	// The in-memory session stands even if it cannot be saved.
	if err := s.store.Save(context.WithoutCancel(ctx), s.store.NewEnvelope(user)); err != nil {
		s.log.Error(ctx, "saving session failed", "error", err)
	}

	s.metrics.ObserveLogin(metrics.OutcomeSuccess, time.Since(start))
	s.log.Info(ctx, "logged in", "login", user.Login, "roles", user.Roles)
	return user.Clone(), nil
}

// Logout clears the session and sends the redirect-to-login signal.
func (s *Service) Logout(ctx context.Context) {
	s.logout(ctx, ResetLogout)
}

func (s *Service) logout(ctx context.Context, reason string) {
	s.reset(ctx, reason)
	if s.redirect != nil {
		s.redirect.RedirectToLogin(ctx)
	}
}

// ClearAuthState clears the session like Logout but sends no redirect.
func (s *Service) ClearAuthState(ctx context.Context) {
	s.reset(ctx, ResetCleared)
}

// Restore seeds State from the envelope saved by a previous run. It
// reports whether a session was restored.
func (s *Service) Restore(ctx context.Context) bool {
	env, ok := s.store.Load(ctx)
	if !ok {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.set(&env.User)
	s.log.Info(ctx, "session restored", "login", env.User.Login, "saved_at", time.UnixMilli(env.Timestamp))
	return true
}

// VerifyAuthenticated reports whether a structurally valid identity is
// held. It is not a pure query: an invalid identity is logged out before
// false is returned.
func (s *Service) VerifyAuthenticated(ctx context.Context) bool {
	user := s.state.snapshot()
	if user == nil {
		return false
	}
	if !user.Valid() {
		s.log.Warn(ctx, "held session is invalid, logging out",
			"has_public_id", user.PublicID != "",
			"has_login", user.Login != "",
			"roles", len(user.Roles))
		s.logout(ctx, ResetCorrupt)
		return false
	}
	return true
}

// Roles returns a copy of the current roles, or nil when logged out.
func (s *Service) Roles() []string {
	if u := s.state.Current(); u != nil {
		return u.Roles
	}
	return nil
}

func (s *Service) nextTag() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// reset empties State and the store and invalidates in-flight logins.
func (s *Service) reset(ctx context.Context, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.state.set(nil)
	if err := s.store.Clear(context.WithoutCancel(ctx)); err != nil {
		s.log.Error(ctx, "clearing stored session failed", "error", err)
	}
	s.metrics.ObserveSessionReset(reason)
	s.log.Info(ctx, "session cleared", "reason", reason)
}

func loginOutcome(err error) string {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return metrics.OutcomeRejected
	case errors.Is(err, client.ErrUnavailable):
		return metrics.OutcomeUnavailable
	case errors.Is(err, client.ErrUpstream):
		return metrics.OutcomeUpstream
	default:
		return metrics.OutcomeOtherFailure
	}
}
