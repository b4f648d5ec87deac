package mocks

import (
	"context"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/apperror"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
	usecasecontract "github.com/ShaiBatonya/starquestDevServer/internal/usecase/contract"
)

// MockAuthUsecase is a mock implementation of the auth usecase interface
type MockAuthUsecase struct {
	// Control mock behavior
	ShouldFailSignup         bool
	ShouldFailLogin          bool
	ShouldFailAuthenticate   bool
	ShouldFailVerifyEmail    bool
	ShouldFailForgotPassword bool
	ShouldFailResetPassword  bool
	ShouldFailUpdatePassword bool
	ShouldFailGetUser        bool

	// Return values
	MockUser  entity.User
	MockToken string
}

// Ensure MockAuthUsecase implements the correct interface for handler.NewAuthHandler
var _ usecasecontract.IAuthUseCase = (*MockAuthUsecase)(nil)

func NewMockAuthUsecase() *MockAuthUsecase {
	return &MockAuthUsecase{
		MockUser: entity.User{
			ID:        "mock-user-id",
			FirstName: "Test",
			LastName:  "User",
			Email:     "test@example.com",
			Role:      entity.UserRoleUser,
			Active:    true,
		},
		MockToken: "mock_access_token",
	}
}

func (m *MockAuthUsecase) Signup(ctx context.Context, firstName, lastName, email, password, phoneNumber string) (*entity.User, error) {
	if m.ShouldFailSignup {
		return nil, apperror.Conflict("user with this email already exists")
	}
	return &m.MockUser, nil
}

func (m *MockAuthUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if m.ShouldFailLogin {
		return nil, "", apperror.Unauthorized("incorrect email or password")
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockAuthUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if m.ShouldFailAuthenticate {
		return nil, apperror.Unauthorized("invalid or expired token")
	}
	return &m.MockUser, nil
}

func (m *MockAuthUsecase) VerifyEmail(ctx context.Context, email, code string) error {
	if m.ShouldFailVerifyEmail {
		return apperror.Validation("verification code is invalid or has expired")
	}
	return nil
}

func (m *MockAuthUsecase) ForgotPassword(ctx context.Context, email string) error {
	if m.ShouldFailForgotPassword {
		return apperror.Internal("failed to send password reset email")
	}
	return nil
}

func (m *MockAuthUsecase) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if m.ShouldFailResetPassword {
		return apperror.Validation("reset token is invalid or has expired")
	}
	return nil
}

func (m *MockAuthUsecase) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) (string, error) {
	if m.ShouldFailUpdatePassword {
		return "", apperror.Unauthorized("current password is incorrect")
	}
	return m.MockToken, nil
}

func (m *MockAuthUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetUser {
		return nil, apperror.NotFound("user not found")
	}
	return &m.MockUser, nil
}
