package usecasecontract

import (
	"context"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
)

// WorkspaceUserView is one row of the workspace users listing.
type WorkspaceUserView struct {
	UserID   string  `json:"user_id"`
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Position *string `json:"position,omitempty"`
	Planet   *string `json:"planet,omitempty"`
	Status   string  `json:"status"`
}

// IWorkspaceUseCase defines the interface for workspace directory operations.
type IWorkspaceUseCase interface {
	CreateWorkspace(ctx context.Context, creatorID, name, description, rules string) (*entity.Workspace, error)
	GetUserWorkspaces(ctx context.Context, userID string) ([]entity.Workspace, error)
	GetWorkspaceUsers(ctx context.Context, userID, workspaceID string) ([]WorkspaceUserView, error)
	DeleteWorkspace(ctx context.Context, userID, workspaceID string) error
	CreatePosition(ctx context.Context, userID, workspaceID, name, color string) (*entity.Position, error)
	GetPositions(ctx context.Context, userID, workspaceID string) ([]entity.Position, error)
}
