package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/diegorighi/yukam-front/internal/client/models"
)

// CustomersBasePath is the collection root of the customer-record service.
const CustomersBasePath = "/api/clientes/v1/clientes"

// CustomerHTTPClient talks to the customer-record service over REST.
type CustomerHTTPClient struct {
	rest restClient
}

var _ Customers = (*CustomerHTTPClient)(nil)

func NewCustomerHTTPClient(baseURL string, timeout time.Duration) *CustomerHTTPClient {
	return &CustomerHTTPClient{rest: newRESTClient(baseURL, timeout)}
}

func recordPath(kind models.Kind, publicID string, suffix ...string) string {
	p := CustomersBasePath + "/" + string(kind) + "/" + url.PathEscape(publicID)
	for _, s := range suffix {
		p += "/" + s
	}
	return p
}

func pageQuery(req models.PageRequest) url.Values {
	req = req.WithDefaults()
	q := url.Values{}
	q.Set("page", strconv.Itoa(req.Page))
	q.Set("size", strconv.Itoa(req.Size))
	q.Set("sort", req.Sort)
	q.Set("direction", req.Direction)
	return q
}

func listPage[T any](ctx context.Context, c *CustomerHTTPClient, kind models.Kind, req models.PageRequest) (*models.Page[T], error) {
	var page models.Page[T]
	if err := c.rest.do(ctx, http.MethodGet, CustomersBasePath+"/"+string(kind), pageQuery(req), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func getRecord[T any](ctx context.Context, c *CustomerHTTPClient, kind models.Kind, publicID string) (*T, error) {
	if err := checkPublicID(publicID); err != nil {
		return nil, err
	}
	var rec T
	if err := c.rest.do(ctx, http.MethodGet, recordPath(kind, publicID), nil, nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func updateRecord[T any](ctx context.Context, c *CustomerHTTPClient, kind models.Kind, publicID string, rec *T) (*T, error) {
	if err := checkPublicID(publicID); err != nil {
		return nil, err
	}
	var out T
	if err := c.rest.do(ctx, http.MethodPut, recordPath(kind, publicID), nil, rec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *CustomerHTTPClient) ListPF(ctx context.Context, req models.PageRequest) (*models.Page[models.ClientePF], error) {
	return listPage[models.ClientePF](ctx, c, models.KindPF, req)
}

func (c *CustomerHTTPClient) ListPJ(ctx context.Context, req models.PageRequest) (*models.Page[models.ClientePJ], error) {
	return listPage[models.ClientePJ](ctx, c, models.KindPJ, req)
}

func (c *CustomerHTTPClient) GetPF(ctx context.Context, publicID string) (*models.ClientePF, error) {
	return getRecord[models.ClientePF](ctx, c, models.KindPF, publicID)
}

func (c *CustomerHTTPClient) GetPJ(ctx context.Context, publicID string) (*models.ClientePJ, error) {
	return getRecord[models.ClientePJ](ctx, c, models.KindPJ, publicID)
}

func (c *CustomerHTTPClient) FindPFByCPF(ctx context.Context, cpf string) (*models.PFSummary, error) {
	var s models.PFSummary
	if err := c.rest.do(ctx, http.MethodGet, CustomersBasePath+"/pf/cpf/"+url.PathEscape(cpf), nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *CustomerHTTPClient) FindPJByCNPJ(ctx context.Context, cnpj string) (*models.PJSummary, error) {
	var s models.PJSummary
	if err := c.rest.do(ctx, http.MethodGet, CustomersBasePath+"/pj/cnpj/"+url.PathEscape(cnpj), nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *CustomerHTTPClient) UpdatePF(ctx context.Context, publicID string, rec *models.ClientePF) (*models.ClientePF, error) {
	return updateRecord(ctx, c, models.KindPF, publicID, rec)
}

func (c *CustomerHTTPClient) UpdatePJ(ctx context.Context, publicID string, rec *models.ClientePJ) (*models.ClientePJ, error) {
	return updateRecord(ctx, c, models.KindPJ, publicID, rec)
}

// Block: PATCH /{kind}/{publicId}/bloquear
func (c *CustomerHTTPClient) Block(ctx context.Context, kind models.Kind, publicID string, reason string, operator string) error {
	if err := checkPublicID(publicID); err != nil {
		return err
	}
	body := models.BlockRequest{MotivoBloqueio: reason, UsuarioBloqueou: operator}
	return c.rest.do(ctx, http.MethodPatch, recordPath(kind, publicID, "bloquear"), nil, body, nil)
}

// Unblock: PATCH /{kind}/{publicId}/desbloquear
func (c *CustomerHTTPClient) Unblock(ctx context.Context, kind models.Kind, publicID string) error {
	if err := checkPublicID(publicID); err != nil {
		return err
	}
	return c.rest.do(ctx, http.MethodPatch, recordPath(kind, publicID, "desbloquear"), nil, nil, nil)
}

// Delete is a soft delete: DELETE /{kind}/{publicId}?motivo&usuario
func (c *CustomerHTTPClient) Delete(ctx context.Context, kind models.Kind, publicID string, reason string, operator string) error {
	if err := checkPublicID(publicID); err != nil {
		return err
	}
	q := url.Values{}
	q.Set("motivo", reason)
	q.Set("usuario", operator)
	return c.rest.do(ctx, http.MethodDelete, recordPath(kind, publicID), q, nil, nil)
}

// Restore undoes a soft delete: POST /{kind}/{publicId}/restaurar?usuario
func (c *CustomerHTTPClient) Restore(ctx context.Context, kind models.Kind, publicID string, operator string) error {
	if err := checkPublicID(publicID); err != nil {
		return err
	}
	q := url.Values{}
	q.Set("usuario", operator)
	return c.rest.do(ctx, http.MethodPost, recordPath(kind, publicID, "restaurar"), q, nil, nil)
}
