package contract

import (
	"context"
	"errors"
	"time"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
)

// ErrDuplicatePending is returned by CreateInvitation when a pending
// invitation already exists for the same (workspace, email) pair.
var ErrDuplicatePending = errors.New("a pending invitation already exists for this workspace and email")

// IInvitationRepository is the persistence boundary for the standalone
// invitation collection. CreateInvitation must surface ErrDuplicatePending
// when the partial unique (workspace, email, status=pending) index
// rejects the insert; the index is the authoritative race guard, the
// service-level existence check is only a best-effort pre-check.
type IInvitationRepository interface {
	EnsureIndexes(ctx context.Context) error
	CreateInvitation(ctx context.Context, invitation *entity.Invitation) error
	GetInvitationByID(ctx context.Context, id string) (*entity.Invitation, error)
	GetPendingByToken(ctx context.Context, token string, now time.Time) (*entity.Invitation, error)
	FindPendingByEmail(ctx context.Context, email string, now time.Time) ([]entity.Invitation, error)
	FindPendingByWorkspaceAndEmail(ctx context.Context, workspaceID, email string, now time.Time) (*entity.Invitation, error)
	FindByWorkspace(ctx context.Context, workspaceID string, status *entity.InvitationStatus) ([]entity.Invitation, error)
	FindPendingByWorkspaces(ctx context.Context, workspaceIDs []string, now time.Time) ([]entity.Invitation, error)
	MarkAccepted(ctx context.Context, id string, at time.Time) error
	MarkCancelled(ctx context.Context, id string, at time.Time) error
	TouchInvitation(ctx context.Context, id string) error
}
