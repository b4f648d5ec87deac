package mocks

import (
	"context"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/apperror"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
	usecasecontract "github.com/ShaiBatonya/starquestDevServer/internal/usecase/contract"
)

// MockWorkspaceUsecase is a mock implementation of the workspace usecase interface
type MockWorkspaceUsecase struct {
	// Control mock behavior
	ShouldFailCreateWorkspace bool
	ShouldFailGetWorkspaces   bool
	ShouldFailGetUsers        bool
	ShouldFailDelete          bool
	ShouldFailCreatePosition  bool
	ShouldFailGetPositions    bool

	// Return values
	MockWorkspace entity.Workspace
	MockPosition  entity.Position
}

// Ensure MockWorkspaceUsecase implements the correct interface for handler.NewWorkspaceHandler
var _ usecasecontract.IWorkspaceUseCase = (*MockWorkspaceUsecase)(nil)

func NewMockWorkspaceUsecase() *MockWorkspaceUsecase {
	return &MockWorkspaceUsecase{
		MockWorkspace: entity.Workspace{
			ID:      "mock-workspace-id",
			Name:    "Mock Workspace",
			Planets: entity.Planets,
			Users: []entity.WorkspaceUser{{
				UserID:     "mock-user-id",
				Role:       entity.WorkspaceRoleAdmin,
				IsVerified: true,
			}},
		},
		MockPosition: entity.Position{
			ID:   "mock-position-id",
			Name: "Frontend",
		},
	}
}

func (m *MockWorkspaceUsecase) CreateWorkspace(ctx context.Context, creatorID, name, description, rules string) (*entity.Workspace, error) {
	if m.ShouldFailCreateWorkspace {
		return nil, apperror.Validation("workspace name is required")
	}
	return &m.MockWorkspace, nil
}

func (m *MockWorkspaceUsecase) GetUserWorkspaces(ctx context.Context, userID string) ([]entity.Workspace, error) {
	if m.ShouldFailGetWorkspaces {
		return nil, apperror.Internal("failed to list workspaces")
	}
	return []entity.Workspace{m.MockWorkspace}, nil
}

func (m *MockWorkspaceUsecase) GetWorkspaceUsers(ctx context.Context, userID, workspaceID string) ([]usecasecontract.WorkspaceUserView, error) {
	if m.ShouldFailGetUsers {
		return nil, apperror.Forbidden("you are not a member of this workspace")
	}
	return []usecasecontract.WorkspaceUserView{{
		UserID: "mock-user-id",
		Email:  "test@example.com",
		Name:   "Test User",
		Role:   string(entity.WorkspaceRoleAdmin),
		Status: "verified",
	}}, nil
}

func (m *MockWorkspaceUsecase) DeleteWorkspace(ctx context.Context, userID, workspaceID string) error {
	if m.ShouldFailDelete {
		return apperror.Forbidden("only workspace admins may delete the workspace")
	}
	return nil
}

func (m *MockWorkspaceUsecase) CreatePosition(ctx context.Context, userID, workspaceID, name, color string) (*entity.Position, error) {
	if m.ShouldFailCreatePosition {
		return nil, apperror.Conflict("a position with this name already exists")
	}
	return &m.MockPosition, nil
}

func (m *MockWorkspaceUsecase) GetPositions(ctx context.Context, userID, workspaceID string) ([]entity.Position, error) {
	if m.ShouldFailGetPositions {
		return nil, apperror.Forbidden("you are not a member of this workspace")
	}
	return []entity.Position{m.MockPosition}, nil
}
