package usecasecontract

import (
	"context"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
)

// IAuthUseCase defines the interface for authentication operations.
type IAuthUseCase interface {
	Signup(ctx context.Context, firstName, lastName, email, password, phoneNumber string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	VerifyEmail(ctx context.Context, email, code string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
	UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) (string, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
}
