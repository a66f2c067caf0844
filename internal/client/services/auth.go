// Package services contains the application services of the Quark client:
// authentication and session lifecycle, the paper view/download flows, the
// admin provisioning surface, and the teacher upload flow.
package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/quarkpapers/quark/internal/client/api"
	"github.com/quarkpapers/quark/internal/client/models"
	"github.com/quarkpapers/quark/internal/client/session"
	"github.com/quarkpapers/quark/internal/logging"
)

// AuthService defines the account and session operations of the CLI.
//
// Contract:
//   - Login: authenticate against the service and persist the credential.
//   - Register: create a new account (no session is created).
//   - Restore: bring back a persisted session; expired or malformed tokens
//     are rejected and wiped.
//   - Logout: clear the credential in memory and on disk.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (*models.Identity, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	Restore(ctx context.Context) (*models.Identity, error)
	Logout(ctx context.Context) error
}

type authService struct {
	client   api.Client
	holder   *session.Holder
	validate *validator.Validate
	log      logging.Logger
}

// NewAuthService binds the auth flows to the API client and session holder.
func NewAuthService(client api.Client, holder *session.Holder, log logging.Logger) AuthService {
	return &authService{
		client:   client,
		holder:   holder,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.Identity, error) {
	identity, token, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return nil, err
	}
	if err := a.holder.Login(ctx, *identity, token); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return identity, nil
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := a.validate.Struct(req); err != nil {
		return err
	}
	return a.client.Register(ctx, req)
}

func (a *authService) Restore(ctx context.Context) (*models.Identity, error) {
	if err := a.holder.Restore(ctx); err != nil {
		return nil, err
	}
	return a.holder.Identity(), nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.holder.Logout(ctx)
}
