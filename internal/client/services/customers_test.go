package services

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/diegorighi/yukam-front/internal/client/client"
	"github.com/diegorighi/yukam-front/internal/client/models"
	"github.com/diegorighi/yukam-front/internal/common"
	"github.com/diegorighi/yukam-front/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pid = "3f2c1d4e-5b6a-4c7d-8e9f-0a1b2c3d4e5f"

func on(b bool) *bool { return &b }

// fakeCustomers implements client.Customers over fixed PF/PJ slices.
type fakeCustomers struct {
	mu       sync.Mutex
	pf       []models.ClientePF
	pj       []models.ClientePJ
	requests []models.PageRequest
	listHits atomic.Int32
	delay    time.Duration
	err      error

	blocked  []string
	deleted  []string
	restored []string
	operator string
}

func (f *fakeCustomers) page(req models.PageRequest, n int) (lo, hi, totalPages int) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	f.listHits.Add(1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	lo = min(req.Page*req.Size, n)
	hi = min(lo+req.Size, n)
	totalPages = (n + req.Size - 1) / req.Size
	return
}

func (f *fakeCustomers) ListPF(ctx context.Context, req models.PageRequest) (*models.Page[models.ClientePF], error) {
	if f.err != nil {
		return nil, f.err
	}
	lo, hi, tp := f.page(req, len(f.pf))
	return &models.Page[models.ClientePF]{Content: f.pf[lo:hi], TotalPages: tp, TotalElements: int64(len(f.pf))}, nil
}

func (f *fakeCustomers) ListPJ(ctx context.Context, req models.PageRequest) (*models.Page[models.ClientePJ], error) {
	if f.err != nil {
		return nil, f.err
	}
	lo, hi, tp := f.page(req, len(f.pj))
	return &models.Page[models.ClientePJ]{Content: f.pj[lo:hi], TotalPages: tp, TotalElements: int64(len(f.pj))}, nil
}

func (f *fakeCustomers) GetPF(ctx context.Context, id string) (*models.ClientePF, error) {
	for _, c := range f.pf {
		if c.PublicID == id {
			return &c, nil
		}
	}
	return nil, client.ErrNotFound
}

func (f *fakeCustomers) GetPJ(ctx context.Context, id string) (*models.ClientePJ, error) {
	for _, c := range f.pj {
		if c.PublicID == id {
			return &c, nil
		}
	}
	return nil, client.ErrNotFound
}

func (f *fakeCustomers) FindPFByCPF(ctx context.Context, cpf string) (*models.PFSummary, error) {
	for _, c := range f.pf {
		if c.CPF == cpf {
			return &models.PFSummary{PrimeiroNome: c.PrimeiroNome, PublicID: c.PublicID}, nil
		}
	}
	return nil, client.ErrNotFound
}

func (f *fakeCustomers) FindPJByCNPJ(ctx context.Context, cnpj string) (*models.PJSummary, error) {
	for _, c := range f.pj {
		if c.CNPJ == cnpj {
			return &models.PJSummary{NomeFantasia: c.NomeFantasia, PublicID: c.PublicID}, nil
		}
	}
	return nil, client.ErrNotFound
}

func (f *fakeCustomers) UpdatePF(ctx context.Context, id string, c *models.ClientePF) (*models.ClientePF, error) {
	out := *c
	out.DataAtualizacao = "now"
	return &out, nil
}

func (f *fakeCustomers) UpdatePJ(ctx context.Context, id string, c *models.ClientePJ) (*models.ClientePJ, error) {
	out := *c
	out.DataAtualizacao = "now"
	return &out, nil
}

func (f *fakeCustomers) Block(ctx context.Context, kind models.Kind, id, reason, operator string) error {
	f.blocked = append(f.blocked, string(kind)+":"+id+":"+reason)
	f.operator = operator
	return f.err
}

func (f *fakeCustomers) Unblock(ctx context.Context, kind models.Kind, id string) error {
	f.blocked = nil
	return f.err
}

func (f *fakeCustomers) Delete(ctx context.Context, kind models.Kind, id, reason, operator string) error {
	f.deleted = append(f.deleted, string(kind)+":"+id+":"+reason)
	f.operator = operator
	return f.err
}

func (f *fakeCustomers) Restore(ctx context.Context, kind models.Kind, id, operator string) error {
	f.restored = append(f.restored, string(kind)+":"+id)
	f.operator = operator
	return f.err
}

func pfRecords(n int, activeEvery int) []models.ClientePF {
	out := make([]models.ClientePF, n)
	for i := range out {
		out[i] = models.ClientePF{
			PublicID:     string(rune('a'+i%26)) + pid[1:],
			NomeCompleto: "Cliente " + string(rune('A'+i%26)),
			CPF:          "000000000" + string(rune('0'+i%10)),
			Ativo:        on(i%activeEvery == 0),
		}
	}
	return out
}

func TestCustomerService_List_FiltersActiveAndLimits(t *testing.T) {
	fc := &fakeCustomers{pf: pfRecords(30, 2)}
	svc := NewCustomerService(fc, "ana", nil)

	l, err := svc.List(context.Background(), models.KindPF, 0, 5)
	require.NoError(t, err)

	assert.Len(t, l.Items, 5)
	for _, c := range l.Items {
		assert.True(t, c.Active())
	}
	assert.Equal(t, 15, l.TotalActive)
	assert.Equal(t, 2, l.TotalPages, "pages of the over-fetched request")

	sizes := map[int]bool{}
	for _, r := range fc.requests {
		sizes[r.Size] = true
		assert.Equal(t, models.DefaultSort, r.Sort)
		assert.Equal(t, models.DefaultDirection, r.Direction)
	}
	assert.True(t, sizes[15], "page is over-fetched threefold")
	assert.True(t, sizes[FullScanSize], "active total comes from a full scan")
}

func TestCustomerService_List_Validation(t *testing.T) {
	svc := NewCustomerService(&fakeCustomers{}, "ana", nil)

	_, err := svc.List(context.Background(), models.KindPF, -1, 5)
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = svc.List(context.Background(), models.Kind("xx"), 0, 5)
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestCustomerService_List_PropagatesErrors(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	svc := NewCustomerService(&fakeCustomers{err: client.ErrUnavailable}, "ana", m)

	_, err := svc.List(context.Background(), models.KindPJ, 0, 5)
	require.ErrorIs(t, err, client.ErrUnavailable)
	assert.GreaterOrEqual(t, testutil.ToFloat64(m.RemoteRequestsTotal.WithLabelValues("list_pj", "error")), 1.0)
}

func TestCustomerService_ConcurrentIdenticalReadsShareOneRequest(t *testing.T) {
	fc := &fakeCustomers{pf: pfRecords(10, 1), delay: 50 * time.Millisecond}
	svc := NewCustomerService(fc, "ana", nil)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Active(context.Background(), models.KindPF)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Less(t, int(fc.listHits.Load()), 8)
}

func TestCustomerService_GetAndFind(t *testing.T) {
	fc := &fakeCustomers{
		pf: []models.ClientePF{{PublicID: pid, NomeCompleto: "Ana Souza", CPF: "12345678900"}},
		pj: []models.ClientePJ{{PublicID: pid, RazaoSocial: "ACME LTDA", CNPJ: "11222333000181"}},
	}
	svc := NewCustomerService(fc, "ana", nil)
	ctx := context.Background()

	c, err := svc.Get(ctx, models.KindPF, pid)
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", c.DisplayName())

	c, err = svc.FindByDocument(ctx, models.KindPJ, "11222333000181")
	require.NoError(t, err)
	assert.Equal(t, "ACME LTDA", c.DisplayName())
	assert.Equal(t, "11222333000181", c.Document())

	_, err = svc.FindByDocument(ctx, models.KindPF, "999")
	require.ErrorIs(t, err, client.ErrNotFound)

	_, err = svc.FindByDocument(ctx, models.KindPF, "")
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestCustomerService_Update(t *testing.T) {
	svc := NewCustomerService(&fakeCustomers{}, "ana", nil)

	out, err := svc.Update(context.Background(), models.ClientePJ{PublicID: pid, NomeFantasia: "Acme"})
	require.NoError(t, err)
	pj, ok := out.(models.ClientePJ)
	require.True(t, ok)
	assert.Equal(t, "now", pj.DataAtualizacao)

	_, err = svc.Update(context.Background(), nil)
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestCustomerService_MutationsCarryOperator(t *testing.T) {
	fc := &fakeCustomers{}
	svc := NewCustomerService(fc, "operador", nil)
	ctx := context.Background()

	require.NoError(t, svc.Block(ctx, models.KindPF, pid, "fraude"))
	assert.Equal(t, []string{"pf:" + pid + ":fraude"}, fc.blocked)
	assert.Equal(t, "operador", fc.operator)

	require.NoError(t, svc.Unblock(ctx, models.KindPF, pid))
	assert.Empty(t, fc.blocked)

	require.NoError(t, svc.Delete(ctx, models.KindPJ, pid, "duplicado"))
	assert.Equal(t, []string{"pj:" + pid + ":duplicado"}, fc.deleted)

	require.NoError(t, svc.Restore(ctx, models.KindPJ, pid))
	assert.Equal(t, []string{"pj:" + pid}, fc.restored)

	require.ErrorIs(t, svc.Block(ctx, models.KindPF, pid, ""), common.ErrInvalidInput)
	require.ErrorIs(t, svc.Delete(ctx, models.KindPF, pid, ""), common.ErrInvalidInput)
}

func TestParsePage(t *testing.T) {
	p, err := ParsePage("3")
	require.NoError(t, err)
	assert.Equal(t, 2, p)

	for _, bad := range []string{"0", "-1", "x", ""} {
		_, err := ParsePage(bad)
		assert.ErrorIs(t, err, common.ErrInvalidInput, bad)
	}
}
