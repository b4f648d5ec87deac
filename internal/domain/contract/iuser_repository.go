package contract

import (
	"context"
	"time"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
)

// IUserRepository is the persistence boundary for user identity records.
// Soft-deleted (inactive) users are excluded from all lookups.
type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateUser(ctx context.Context, id string, updates map[string]interface{}) (*entity.User, error)
	AddWorkspaceRef(ctx context.Context, userID, workspaceID string) error
	UpdatePassword(ctx context.Context, id, passwordHash string, changedAt time.Time) error
	SetVerificationCode(ctx context.Context, id, hashedCode string, expires time.Time) error
	GetByVerificationCode(ctx context.Context, email, hashedCode string, now time.Time) (*entity.User, error)
	MarkEmailVerified(ctx context.Context, id string) error
	SetPasswordResetToken(ctx context.Context, id, hashedToken string, expires time.Time) error
	GetByPasswordResetToken(ctx context.Context, hashedToken string, now time.Time) (*entity.User, error)
	ClearPasswordResetToken(ctx context.Context, id string) error
	DeactivateUser(ctx context.Context, id string) error
}
