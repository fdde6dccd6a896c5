package auth

import (
	"context"
	"sync"
	"testing"

	"github.com/diegorighi/yukam-front/internal/client/models"
	"github.com/diegorighi/yukam-front/internal/client/repositories/storage"
	"github.com/diegorighi/yukam-front/internal/client/session"
	"github.com/diegorighi/yukam-front/internal/common"
	"github.com/diegorighi/yukam-front/internal/logging"
	"github.com/stretchr/testify/require"
)

// fakeIdentity implements client.Identity. Login answers with user/err, or
// waits for release when gate is set.
type fakeIdentity struct {
	mu    sync.Mutex
	user  *models.IdentityRecord
	err   error
	calls []models.Credentials

	gate    chan struct{}
	started chan struct{}
}

func (f *fakeIdentity) Login(ctx context.Context, creds models.Credentials) (*models.IdentityRecord, error) {
	f.mu.Lock()
	f.calls = append(f.calls, creds)
	gate, started := f.gate, f.started
	user, err := f.user.Clone(), f.err
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if gate != nil {
		<-gate
	}
	return user, err
}

func (f *fakeIdentity) GetUserByPublicID(ctx context.Context, publicID string) (*models.IdentityRecord, error) {
	return f.user.Clone(), f.err
}
func (f *fakeIdentity) InitiatePasswordReset(ctx context.Context, publicID string) error { return f.err }
func (f *fakeIdentity) ManualPasswordReset(ctx context.Context, publicID, newPassword string) error {
	return f.err
}
func (f *fakeIdentity) Ping(ctx context.Context) error { return nil }

type recordingRedirector struct{ n int }

func (r *recordingRedirector) RedirectToLogin(ctx context.Context) { r.n++ }

func newUser(login string, roles ...string) *models.IdentityRecord {
	return &models.IdentityRecord{
		PublicID: "3f2c1d4e-5b6a-4c7d-8e9f-0a1b2c3d4e5f",
		Login:    login,
		Theme:    "dark",
		Roles:    roles,
	}
}

type fixture struct {
	repo     *storage.MemoryRepository
	store    *session.Store
	state    *State
	identity *fakeIdentity
	redirect *recordingRedirector
	svc      *Service
}

func newFixture(t *testing.T, opts ...ServiceOption) *fixture {
	t.Helper()
	f := &fixture{
		repo:     storage.NewMemoryRepository(),
		state:    NewState(),
		identity: &fakeIdentity{},
		redirect: &recordingRedirector{},
	}
	f.store = session.NewStore(f.repo, logging.Nop())
	opts = append([]ServiceOption{WithRedirector(f.redirect)}, opts...)
	f.svc = NewService(f.identity, f.store, f.state, logging.Nop(), opts...)
	return f
}

func (f *fixture) stored(t *testing.T) (string, bool) {
	t.Helper()
	v, ok, err := f.repo.Get(context.Background(), common.SessionStorageKey)
	require.NoError(t, err)
	return v, ok
}

func (f *fixture) loggedInAs(t *testing.T, u *models.IdentityRecord) {
	t.Helper()
	f.identity.user = u
	_, err := f.svc.Login(context.Background(), models.Credentials{Login: u.Login, Password: "pw"})
	require.NoError(t, err)
}
