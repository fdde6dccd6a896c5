package client

import (
	"context"

	"github.com/diegorighi/yukam-front/internal/client/models"
)

// Identity is the identity microservice (user-core).
type Identity interface {
	Login(ctx context.Context, creds models.Credentials) (*models.IdentityRecord, error)
	GetUserByPublicID(ctx context.Context, publicID string) (*models.IdentityRecord, error)
	InitiatePasswordReset(ctx context.Context, publicID string) error
	ManualPasswordReset(ctx context.Context, publicID string, newPassword string) error
	Ping(ctx context.Context) error
}

// Customers is the customer-record service.
type Customers interface {
	ListPF(ctx context.Context, req models.PageRequest) (*models.Page[models.ClientePF], error)
	ListPJ(ctx context.Context, req models.PageRequest) (*models.Page[models.ClientePJ], error)
	GetPF(ctx context.Context, publicID string) (*models.ClientePF, error)
	GetPJ(ctx context.Context, publicID string) (*models.ClientePJ, error)
	FindPFByCPF(ctx context.Context, cpf string) (*models.PFSummary, error)
	FindPJByCNPJ(ctx context.Context, cnpj string) (*models.PJSummary, error)
	UpdatePF(ctx context.Context, publicID string, c *models.ClientePF) (*models.ClientePF, error)
	UpdatePJ(ctx context.Context, publicID string, c *models.ClientePJ) (*models.ClientePJ, error)
	Block(ctx context.Context, kind models.Kind, publicID string, reason string, operator string) error
	Unblock(ctx context.Context, kind models.Kind, publicID string) error
	Delete(ctx context.Context, kind models.Kind, publicID string, reason string, operator string) error
	Restore(ctx context.Context, kind models.Kind, publicID string, operator string) error
}
