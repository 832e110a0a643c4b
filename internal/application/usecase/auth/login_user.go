// Package auth contains authentication use cases for the dashboard admin.
package auth

import (
	"context"

	"github.com/orderdash/backend/internal/application/adapter"
	domainerror "github.com/orderdash/backend/internal/domain/error"
)

// LoginUserInput represents the input for logging in.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of logging in.
type LoginUserOutput struct {
	AccessToken string
}

// LoginUserUseCase validates the dashboard admin credentials and issues an
// access token. There is a single env-configured admin account; account
// management belongs to an external collaborator.
type LoginUserUseCase struct {
	adminEmail        string
	adminPasswordHash string
	passwordService   adapter.PasswordService
	tokenService      adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	adminEmail string,
	adminPasswordHash string,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
		passwordService:   passwordService,
		tokenService:      tokenService,
	}
}

// Execute performs the login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	invalid := domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)

	if uc.adminPasswordHash == "" || input.Email != uc.adminEmail {
		return nil, invalid
	}
	if err := uc.passwordService.VerifyPassword(uc.adminPasswordHash, input.Password); err != nil {
		return nil, invalid
	}

	token, err := uc.tokenService.GenerateAccessToken(input.Email)
	if err != nil {
		return nil, err
	}

	return &LoginUserOutput{AccessToken: token}, nil
}
