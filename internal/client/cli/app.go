package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/diegorighi/yukam-front/internal/client/auth"
	"github.com/diegorighi/yukam-front/internal/client/client"
	"github.com/diegorighi/yukam-front/internal/client/config"
	"github.com/diegorighi/yukam-front/internal/client/models"
	"github.com/diegorighi/yukam-front/internal/client/repositories/storage"
	"github.com/diegorighi/yukam-front/internal/client/router"
	"github.com/diegorighi/yukam-front/internal/client/services"
	"github.com/diegorighi/yukam-front/internal/client/session"
	"github.com/diegorighi/yukam-front/internal/logging"
	"github.com/diegorighi/yukam-front/internal/metrics"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// App is the interactive back-office client. It owns one session: the
// store, the state cell and the auth service are created once per App.
type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	identity client.Identity
	auth     *auth.Service
	policy   *auth.Policy
	router   *router.Router
	metrics  *metrics.Metrics

	customers services.CustomerService
	reports   services.ReportService
	users     services.UserService
	theme     services.ThemeService

	reader *bufio.Reader

	mu      sync.Mutex
	mode    Mode
	pending *pendingCommand
}

// NewApp opens the local database, connects the remote services and
// restores the session saved by the previous run.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.StorageDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "dsn", c.StorageDSN, "error", err)
		return nil, err
	}

	a := newApp(ctx, c, log, db,
		storage.NewSQLiteRepository(db),
		client.NewIdentityHTTPClient(c.IdentityEndpoint, c.RequestTimeout),
		client.NewCustomerHTTPClient(c.CustomerEndpoint, c.RequestTimeout),
		metrics.New(prometheus.NewRegistry()),
	)
	return a, nil
}

func newApp(ctx context.Context, c *config.Config, log logging.Logger, db *sql.DB,
	repo storage.Repository, identity client.Identity, customers client.Customers, m *metrics.Metrics) *App {

	a := &App{
		config:   c,
		log:      log.With("component", "cli"),
		db:       db,
		identity: identity,
		metrics:  m,
		reader:   bufio.NewReader(os.Stdin),
	}

	state := auth.NewState()
	store := session.NewStore(repo, log)
	a.auth = auth.NewService(identity, store, state, log, auth.WithRedirector(a), auth.WithMetrics(m))
	a.policy = auth.NewPolicy(state)
	a.router = router.New(log, m, router.DefaultRoutes(a.auth, a.policy, log)...)

	a.customers = services.NewCustomerService(customers, c.Operator, m)
	a.reports = services.NewReportService(a.customers)
	a.users = services.NewUserService(identity)
	a.theme = services.NewThemeService(repo)

	a.auth.Restore(ctx)
	auth.ValidateSessionOnStartup(ctx, a.auth)
	return a
}

// Close releases the local database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Run starts the background workers and blocks in the REPL until the user
// exits or stdin is closed.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.StartOnlineStatusWatcher(gctx, a.config.OnlineCheckInterval)
		return nil
	})
	g.Go(func() error {
		a.watchSession(gctx)
		return nil
	})
	if a.config.MetricsAddr != "" {
		g.Go(func() error { return a.serveMetrics(gctx, a.config.MetricsAddr) })
	}

	a.log.Info(ctx, "back-office client started", "identity", a.config.IdentityEndpoint, "customers", a.config.CustomerEndpoint)
	printlnFn("Yukam back-office CLI (type 'help' for commands)")
	if a.isLoggedIn() {
		printlnFn("Welcome back,", a.auth.State().Current().Login)
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))

	cancel()
	return g.Wait()
}

func (a *App) isLoggedIn() bool {
	return a.auth.State().Current() != nil
}

// getStatus renders the prompt status, e.g. "(ana online)".
func (a *App) getStatus() string {
	var parts []string
	if u := a.auth.State().Current(); u != nil {
		parts = append(parts, u.Login)
	}
	if m := a.Mode(); m != "" {
		parts = append(parts, string(m))
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// RedirectToLogin is the auth service's logout signal. The CLI has no
// login screen to switch to, so it tells the operator how to sign in.
func (a *App) RedirectToLogin(ctx context.Context) {
	a.log.Debug(ctx, "redirect to login")
	printlnFn("You are signed out. Type 'login' to sign in.")
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(ctx, "connectivity changed", "mode", mode)
	}
}

// StartOnlineStatusWatcher pings the identity service every interval and
// flips Mode accordingly until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	err := a.identity.Ping(pctx)
	cancel()

	if err != nil {
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}

// watchSession logs every change of the signed-in identity.
func (a *App) watchSession(ctx context.Context) {
	updates, cancel := a.auth.State().Subscribe()
	defer cancel()

	for {
		select {
		case u, ok := <-updates:
			if !ok {
				return
			}
			a.logSessionChange(ctx, u)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) logSessionChange(ctx context.Context, u *models.IdentityRecord) {
	if u == nil {
		a.log.Debug(ctx, "session changed", "signed_in", false)
		return
	}
	a.log.Debug(ctx, "session changed", "signed_in", true, "login", u.Login, "roles", u.Roles)
}

func (a *App) serveMetrics(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", a.metrics.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(sctx)
	}()

	a.log.Info(ctx, "serving metrics", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.log.Error(ctx, "metrics server failed", "error", err)
		return err
	}
	return nil
}
