package services

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/diegorighi/yukam-front/internal/client/client"
	"github.com/diegorighi/yukam-front/internal/client/models"
	"github.com/diegorighi/yukam-front/internal/common"
	"github.com/diegorighi/yukam-front/internal/metrics"
)

// FullScanSize is the page size used to read a whole collection at once,
// as the dashboard does for totals and reports.
const FullScanSize = 10000

// listOverfetch multiplies the requested page size so that enough active
// records remain after inactive ones are filtered out.
const listOverfetch = 3

// Listing is one page of active customers.
type Listing struct {
	Kind        models.Kind
	Items       []models.Customer
	Page        int
	TotalPages  int
	TotalActive int
}

// CustomerService defines the customer-record operations of the CLI.
//
// Identical reads issued concurrently share one request.
type CustomerService interface {
	List(ctx context.Context, kind models.Kind, page, size int) (*Listing, error)
	Active(ctx context.Context, kind models.Kind) ([]models.Customer, error)
	Get(ctx context.Context, kind models.Kind, publicID string) (models.Customer, error)
	FindByDocument(ctx context.Context, kind models.Kind, document string) (models.Customer, error)
	Update(ctx context.Context, c models.Customer) (models.Customer, error)
	Block(ctx context.Context, kind models.Kind, publicID, reason string) error
	Unblock(ctx context.Context, kind models.Kind, publicID string) error
	Delete(ctx context.Context, kind models.Kind, publicID, reason string) error
	Restore(ctx context.Context, kind models.Kind, publicID string) error
}

type customerService struct {
	client   client.Customers
	operator string
	metrics  *metrics.Metrics
	group    singleflight.Group
}

// NewCustomerService binds the service to a customer client. operator is
// recorded as the author of blocks, deletions, and restores.
func NewCustomerService(c client.Customers, operator string, m *metrics.Metrics) CustomerService {
	return &customerService{client: c, operator: operator, metrics: m}
}

// shared runs fn once per key among concurrent callers.
func shared[T any](g *singleflight.Group, key string, fn func() (T, error)) (T, error) {
	v, err, _ := g.Do(key, func() (any, error) { return fn() })
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func (s *customerService) fetchPage(ctx context.Context, kind models.Kind, req models.PageRequest) ([]models.Customer, int, error) {
	req = req.WithDefaults()
	key := fmt.Sprintf("list:%s:%d:%d:%s:%s", kind, req.Page, req.Size, req.Sort, req.Direction)

	type result struct {
		items      []models.Customer
		totalPages int
	}
	r, err := shared(&s.group, key, func() (result, error) {
		var (
			res result
			err error
		)
		switch kind {
		case models.KindPF:
			var p *models.Page[models.ClientePF]
			if p, err = s.client.ListPF(ctx, req); err == nil {
				res = result{items: asCustomers(p.Content), totalPages: p.TotalPages}
			}
		case models.KindPJ:
			var p *models.Page[models.ClientePJ]
			if p, err = s.client.ListPJ(ctx, req); err == nil {
				res = result{items: asCustomers(p.Content), totalPages: p.TotalPages}
			}
		default:
			err = fmt.Errorf("%w: kind %q", common.ErrInvalidInput, kind)
		}
		s.metrics.ObserveRemote("list_"+string(kind), err)
		return res, err
	})
	if err != nil {
		return nil, 0, err
	}
	return r.items, r.totalPages, nil
}

// Active returns every active record of a kind.
func (s *customerService) Active(ctx context.Context, kind models.Kind) ([]models.Customer, error) {
	all, _, err := s.fetchPage(ctx, kind, models.PageRequest{Size: FullScanSize})
	if err != nil {
		return nil, err
	}
	return activeOnly(all), nil
}

// List returns up to size active records from the given page, with the
// total number of active records of that kind.
func (s *customerService) List(ctx context.Context, kind models.Kind, page, size int) (*Listing, error) {
	if page < 0 {
		return nil, fmt.Errorf("%w: page %d", common.ErrInvalidInput, page)
	}
	if size <= 0 {
		size = models.DefaultPageSize
	}

	var (
		items      []models.Customer
		totalPages int
		active     []models.Customer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, totalPages, err = s.fetchPage(gctx, kind, models.PageRequest{Page: page, Size: size * listOverfetch})
		return err
	})
	g.Go(func() error {
		var err error
		active, err = s.Active(gctx, kind)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items = activeOnly(items)
	if len(items) > size {
		items = items[:size]
	}
	return &Listing{Kind: kind, Items: items, Page: page, TotalPages: totalPages, TotalActive: len(active)}, nil
}

func (s *customerService) Get(ctx context.Context, kind models.Kind, publicID string) (models.Customer, error) {
	return shared(&s.group, "get:"+string(kind)+":"+publicID, func() (models.Customer, error) {
		var (
			c   models.Customer
			err error
		)
		switch kind {
		case models.KindPF:
			var pf *models.ClientePF
			if pf, err = s.client.GetPF(ctx, publicID); err == nil {
				c = *pf
			}
		case models.KindPJ:
			var pj *models.ClientePJ
			if pj, err = s.client.GetPJ(ctx, publicID); err == nil {
				c = *pj
			}
		default:
			err = fmt.Errorf("%w: kind %q", common.ErrInvalidInput, kind)
		}
		s.metrics.ObserveRemote("get_"+string(kind), err)
		return c, err
	})
}

// FindByDocument looks a record up by CPF (pf) or CNPJ (pj) and returns
// the full record.
func (s *customerService) FindByDocument(ctx context.Context, kind models.Kind, document string) (models.Customer, error) {
	if document == "" {
		return nil, fmt.Errorf("%w: empty document", common.ErrInvalidInput)
	}

	var (
		publicID string
		err      error
	)
	switch kind {
	case models.KindPF:
		var sum *models.PFSummary
		if sum, err = s.client.FindPFByCPF(ctx, document); err == nil {
			publicID = sum.PublicID
		}
	case models.KindPJ:
		var sum *models.PJSummary
		if sum, err = s.client.FindPJByCNPJ(ctx, document); err == nil {
			publicID = sum.PublicID
		}
	default:
		err = fmt.Errorf("%w: kind %q", common.ErrInvalidInput, kind)
	}
	s.metrics.ObserveRemote("find_"+string(kind), err)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, kind, publicID)
}

func (s *customerService) Update(ctx context.Context, c models.Customer) (models.Customer, error) {
	var (
		out models.Customer
		err error
	)
	switch rec := c.(type) {
	case models.ClientePF:
		var pf *models.ClientePF
		if pf, err = s.client.UpdatePF(ctx, rec.PublicID, &rec); err == nil {
			out = *pf
		}
	case models.ClientePJ:
		var pj *models.ClientePJ
		if pj, err = s.client.UpdatePJ(ctx, rec.PublicID, &rec); err == nil {
			out = *pj
		}
	default:
		err = fmt.Errorf("%w: unsupported record %T", common.ErrInvalidInput, c)
	}
	s.metrics.ObserveRemote("update", err)
	return out, err
}

func (s *customerService) Block(ctx context.Context, kind models.Kind, publicID, reason string) error {
	if reason == "" {
		return fmt.Errorf("%w: a reason is required", common.ErrInvalidInput)
	}
	err := s.client.Block(ctx, kind, publicID, reason, s.operator)
	s.metrics.ObserveRemote("block", err)
	return err
}

func (s *customerService) Unblock(ctx context.Context, kind models.Kind, publicID string) error {
	err := s.client.Unblock(ctx, kind, publicID)
	s.metrics.ObserveRemote("unblock", err)
	return err
}

func (s *customerService) Delete(ctx context.Context, kind models.Kind, publicID, reason string) error {
	if reason == "" {
		return fmt.Errorf("%w: a reason is required", common.ErrInvalidInput)
	}
	err := s.client.Delete(ctx, kind, publicID, reason, s.operator)
	s.metrics.ObserveRemote("delete", err)
	return err
}

func (s *customerService) Restore(ctx context.Context, kind models.Kind, publicID string) error {
	err := s.client.Restore(ctx, kind, publicID, s.operator)
	s.metrics.ObserveRemote("restore", err)
	return err
}

func asCustomers[T models.Customer](in []T) []models.Customer {
	out := make([]models.Customer, len(in))
	for i, c := range in {
		out[i] = c
	}
	return out
}

func activeOnly(in []models.Customer) []models.Customer {
	out := make([]models.Customer, 0, len(in))
	for _, c := range in {
		if c.Active() {
			out = append(out, c)
		}
	}
	return out
}

// ParsePage reads a 1-based page number typed by the user.
func ParsePage(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: page must be a positive number", common.ErrInvalidInput)
	}
	return n - 1, nil
}
