package services

import (
	"context"
	"fmt"

	"github.com/diegorighi/yukam-front/internal/client/client"
	"github.com/diegorighi/yukam-front/internal/client/models"
	"github.com/diegorighi/yukam-front/internal/common"
)

// MinPasswordLength is enforced on manual resets before calling the
// identity service.
const MinPasswordLength = 6

// UserService covers the identity-service operations besides login.
type UserService interface {
	Get(ctx context.Context, publicID string) (*models.IdentityRecord, error)
	// SendResetLink makes the identity service e-mail a reset link that is
	// valid for 15 minutes.
	SendResetLink(ctx context.Context, publicID string) error
	SetPassword(ctx context.Context, publicID, newPassword string) error
}

type userService struct {
	identity client.Identity
}

func NewUserService(identity client.Identity) UserService {
	return &userService{identity: identity}
}

func (s *userService) Get(ctx context.Context, publicID string) (*models.IdentityRecord, error) {
	return s.identity.GetUserByPublicID(ctx, publicID)
}

func (s *userService) SendResetLink(ctx context.Context, publicID string) error {
	return s.identity.InitiatePasswordReset(ctx, publicID)
}

func (s *userService) SetPassword(ctx context.Context, publicID, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return fmt.Errorf("%w: password must have at least %d characters", common.ErrInvalidInput, MinPasswordLength)
	}
	return s.identity.ManualPasswordReset(ctx, publicID, newPassword)
}
