package usecase

import (
	"context"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/apperror"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/contract"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
)

// requireMember loads a workspace and the caller's membership entry.
func requireMember(ctx context.Context, repo contract.IWorkspaceRepository, workspaceID, userID string) (*entity.Workspace, *entity.WorkspaceUser, error) {
	workspace, err := repo.GetWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return nil, nil, err
	}
	member := workspace.FindUser(userID)
	if member == nil {
		return nil, nil, apperror.Forbidden("you are not a member of this workspace")
	}
	return workspace, member, nil
}

// requireManager is requireMember plus an admin-or-mentor role check.
func requireManager(ctx context.Context, repo contract.IWorkspaceRepository, workspaceID, userID string) (*entity.Workspace, *entity.WorkspaceUser, error) {
	workspace, member, err := requireMember(ctx, repo, workspaceID, userID)
	if err != nil {
		return nil, nil, err
	}
	if member.Role != entity.WorkspaceRoleAdmin && member.Role != entity.WorkspaceRoleMentor {
		return nil, nil, apperror.Forbidden("only workspace admins and mentors may perform this action")
	}
	return workspace, member, nil
}

// canInvite encodes the invitation permission matrix: admins invite any
// role, mentors invite mentees only, mentees invite nobody.
func canInvite(actorRole, inviteeRole entity.WorkspaceRole) bool {
	switch actorRole {
	case entity.WorkspaceRoleAdmin:
		return true
	case entity.WorkspaceRoleMentor:
		return inviteeRole == entity.WorkspaceRoleMentee
	default:
		return false
	}
}
