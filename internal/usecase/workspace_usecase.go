package usecase

import (
	"context"
	"time"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/apperror"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/contract"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
	usecasecontract "github.com/ShaiBatonya/starquestDevServer/internal/usecase/contract"
)

// WorkspaceUseCase implements workspace directory operations: creation,
// member listing, positions and deletion.
type WorkspaceUseCase struct {
	workspaceRepo  contract.IWorkspaceRepository
	userRepo       contract.IUserRepository
	invitationRepo contract.IInvitationRepository
	uuidGen        contract.IUUIDGenerator
	logger         usecasecontract.IAppLogger
}

var _ usecasecontract.IWorkspaceUseCase = (*WorkspaceUseCase)(nil)

func NewWorkspaceUseCase(
	workspaceRepo contract.IWorkspaceRepository,
	userRepo contract.IUserRepository,
	invitationRepo contract.IInvitationRepository,
	uuidGen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *WorkspaceUseCase {
	return &WorkspaceUseCase{
		workspaceRepo:  workspaceRepo,
		userRepo:       userRepo,
		invitationRepo: invitationRepo,
		uuidGen:        uuidGen,
		logger:         logger,
	}
}

// CreateWorkspace creates a workspace with the fixed planet set and the
// creator as its first, verified admin.
func (uc *WorkspaceUseCase) CreateWorkspace(ctx context.Context, creatorID, name, description, rules string) (*entity.Workspace, error) {
	if name == "" {
		return nil, apperror.Validation("workspace name is required")
	}

	now := time.Now()
	workspace := &entity.Workspace{
		ID:          uc.uuidGen.NewUUID(),
		Name:        name,
		Description: description,
		Rules:       rules,
		Positions:   []entity.Position{},
		Planets:     append([]string{}, entity.Planets...),
		Backlog:     []entity.Task{},
		Users: []entity.WorkspaceUser{{
			UserID:     creatorID,
			Role:       entity.WorkspaceRoleAdmin,
			IsVerified: true,
			Quest:      []entity.UserTask{},
			JoinedAt:   now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.workspaceRepo.CreateWorkspace(ctx, workspace); err != nil {
		return nil, err
	}
	if err := uc.userRepo.AddWorkspaceRef(ctx, creatorID, workspace.ID); err != nil {
		uc.logger.Warnf("failed to add workspace ref for creator %s: %v", creatorID, err)
	}
	return workspace, nil
}

func (uc *WorkspaceUseCase) GetUserWorkspaces(ctx context.Context, userID string) ([]entity.Workspace, error) {
	return uc.workspaceRepo.GetWorkspacesByMember(ctx, userID)
}

// GetWorkspaceUsers lists the workspace members with identity details
// joined from the user collection. Mentors see only mentees; admins and
// mentees see the full roster.
func (uc *WorkspaceUseCase) GetWorkspaceUsers(ctx context.Context, userID, workspaceID string) ([]usecasecontract.WorkspaceUserView, error) {
	workspace, actor, err := requireMember(ctx, uc.workspaceRepo, workspaceID, userID)
	if err != nil {
		return nil, err
	}

	views := make([]usecasecontract.WorkspaceUserView, 0, len(workspace.Users))
	for i := range workspace.Users {
		member := &workspace.Users[i]
		if actor.Role == entity.WorkspaceRoleMentor && member.Role != entity.WorkspaceRoleMentee {
			continue
		}
		view := usecasecontract.WorkspaceUserView{
			UserID:   member.UserID,
			Role:     string(member.Role),
			Position: member.Position,
			Planet:   member.Planet,
			Status:   "pending",
		}
		if member.IsVerified {
			view.Status = "verified"
		}
		if user, err := uc.userRepo.GetUserByID(ctx, member.UserID); err == nil {
			view.Email = user.Email
			view.Name = user.FullName()
		}
		views = append(views, view)
	}
	return views, nil
}

// DeleteWorkspace removes a workspace and cancels its pending
// invitations so no orphaned invitation can still be accepted.
func (uc *WorkspaceUseCase) DeleteWorkspace(ctx context.Context, userID, workspaceID string) error {
	_, actor, err := requireMember(ctx, uc.workspaceRepo, workspaceID, userID)
	if err != nil {
		return err
	}
	if actor.Role != entity.WorkspaceRoleAdmin {
		return apperror.Forbidden("only workspace admins may delete the workspace")
	}

	pending := entity.InvitationStatusPending
	invitations, err := uc.invitationRepo.FindByWorkspace(ctx, workspaceID, &pending)
	if err != nil {
		uc.logger.Warnf("failed to list invitations of workspace %s before delete: %v", workspaceID, err)
	}
	for i := range invitations {
		if err := uc.invitationRepo.MarkCancelled(ctx, invitations[i].ID, time.Now()); err != nil {
			uc.logger.Warnf("failed to cancel invitation %s: %v", invitations[i].ID, err)
		}
	}

	return uc.workspaceRepo.DeleteWorkspace(ctx, workspaceID)
}

// CreatePosition adds a position to the workspace taxonomy.
func (uc *WorkspaceUseCase) CreatePosition(ctx context.Context, userID, workspaceID, name, color string) (*entity.Position, error) {
	workspace, actor, err := requireMember(ctx, uc.workspaceRepo, workspaceID, userID)
	if err != nil {
		return nil, err
	}
	if actor.Role != entity.WorkspaceRoleAdmin {
		return nil, apperror.Forbidden("only workspace admins may create positions")
	}
	if name == "" {
		return nil, apperror.Validation("position name is required")
	}
	for _, p := range workspace.Positions {
		if p.Name == name {
			return nil, apperror.Conflict("a position with this name already exists")
		}
	}

	position := entity.Position{
		ID:    uc.uuidGen.NewUUID(),
		Name:  name,
		Color: color,
	}
	if err := uc.workspaceRepo.AddPosition(ctx, workspaceID, position); err != nil {
		return nil, err
	}
	return &position, nil
}

func (uc *WorkspaceUseCase) GetPositions(ctx context.Context, userID, workspaceID string) ([]entity.Position, error) {
	workspace, _, err := requireMember(ctx, uc.workspaceRepo, workspaceID, userID)
	if err != nil {
		return nil, err
	}
	return workspace.Positions, nil
}
