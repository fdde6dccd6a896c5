package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/diegorighi/yukam-front/internal/client/client"
	"github.com/diegorighi/yukam-front/internal/client/config"
	"github.com/diegorighi/yukam-front/internal/client/models"
	"github.com/diegorighi/yukam-front/internal/logging"
)

const pid = "3f2c1d4e-5b6a-4c7d-8e9f-0a1b2c3d4e5f"

// backend fakes both remote services and records the calls it receives.
type backend struct {
	roles []string

	mu    sync.Mutex
	calls []string
	block models.BlockRequest
	reset models.ManualPasswordReset

	identity  *httptest.Server
	customers *httptest.Server
}

func newBackend(t *testing.T, roles ...string) *backend {
	t.Helper()
	b := &backend{roles: roles}
	b.identity = httptest.NewServer(http.HandlerFunc(b.serveIdentity))
	b.customers = httptest.NewServer(http.HandlerFunc(b.serveCustomers))
	t.Cleanup(b.identity.Close)
	t.Cleanup(b.customers.Close)
	return b
}

func (b *backend) record(r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, r.Method+" "+r.URL.Path)
}

func (b *backend) called(call string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, c := range b.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (b *backend) user() models.IdentityRecord {
	return models.IdentityRecord{PublicID: pid, Login: "ana", Theme: "dark", Roles: b.roles}
}

func (b *backend) serveIdentity(w http.ResponseWriter, r *http.Request) {
	b.record(r)
	switch {
	case r.URL.Path == "/api/auth/login":
		var creds models.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Login != "ana" || creds.Password != "secret1" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Credenciais inválidas"})
			return
		}
		_ = json.NewEncoder(w).Encode(b.user())
	case r.URL.Path == "/api/users/public/"+pid:
		_ = json.NewEncoder(w).Encode(b.user())
	case r.URL.Path == "/api/password/recuperar/"+pid:
		w.WriteHeader(http.StatusOK)
	case r.URL.Path == "/api/password/alterar":
		b.mu.Lock()
		_ = json.NewDecoder(r.Body).Decode(&b.reset)
		b.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (b *backend) serveCustomers(w http.ResponseWriter, r *http.Request) {
	b.record(r)
	base := client.CustomersBasePath
	active := true

	switch {
	case r.Method == http.MethodGet && r.URL.Path == base+"/pf":
		_ = json.NewEncoder(w).Encode(models.Page[models.ClientePF]{
			Content: []models.ClientePF{{
				PublicID: pid, NomeCompleto: "Ana Souza", CPF: "12345678900",
				OrigemLead: "INSTAGRAM", Ativo: &active,
			}},
			TotalPages:    1,
			TotalElements: 1,
		})
	case r.Method == http.MethodGet && r.URL.Path == base+"/pj":
		_ = json.NewEncoder(w).Encode(models.Page[models.ClientePJ]{Content: []models.ClientePJ{}, TotalPages: 0})
	case r.Method == http.MethodPatch && r.URL.Path == base+"/pf/"+pid+"/bloquear":
		b.mu.Lock()
		_ = json.NewDecoder(r.Body).Decode(&b.block)
		b.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func testConfig(t *testing.T, b *backend, dsn string) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.IdentityEndpoint = b.identity.URL
	cfg.CustomerEndpoint = b.customers.URL
	cfg.StorageDSN = dsn
	cfg.RequestTimeout = time.Second
	cfg.Operator = "carla"
	return cfg
}

func tempDSN(t *testing.T) string {
	return "file:" + t.TempDir() + "/backoffice.db"
}

func newTestApp(t *testing.T, b *backend, dsn string) *App {
	t.Helper()
	a, err := NewApp(context.Background(), testConfig(t, b, dsn), logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// captureOutput redirects printlnFn into the returned buffer.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) { return fmt.Fprintln(&buf, a...) }
	t.Cleanup(func() { printlnFn = orig })
	return &buf
}

// scriptPrompts answers text and password prompts in order. Running out
// of answers reads as end of input.
func scriptPrompts(t *testing.T, texts []string, passwords []string) {
	t.Helper()
	origText, origPassword := getSimpleText, getPassword

	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		s := texts[0]
		texts = texts[1:]
		return s, nil
	}
	getPassword = func(io.Writer, string) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		p := passwords[0]
		passwords = passwords[1:]
		return []byte(p), nil
	}

	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPassword
	})
}

func loginAna(t *testing.T, a *App) {
	t.Helper()
	scriptPrompts(t, []string{"ana"}, []string{"secret1"})
	require.NoError(t, a.Login(context.Background()))
}
