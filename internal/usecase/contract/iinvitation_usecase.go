package usecasecontract

import (
	"context"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
)

// SendInvitationInput carries everything needed to invite an email
// address into a workspace.
type SendInvitationInput struct {
	WorkspaceID  string
	InviteeEmail string
	InviteeRole  entity.WorkspaceRole
	PositionID   *string
	Planet       *string
}

// SendInvitationResult reports which invitation path was taken.
type SendInvitationResult struct {
	// PendingInvitation is true when the invitee had no account yet and
	// a standalone invitation record was created; false when an existing
	// user was appended to the workspace directly.
	PendingInvitation bool
	Message           string
}

// InvitationView is the read model returned by invitation listings.
type InvitationView struct {
	ID            string  `json:"id"`
	WorkspaceID   string  `json:"workspace_id"`
	WorkspaceName string  `json:"workspace_name,omitempty"`
	InviteeEmail  string  `json:"invitee_email"`
	InviteeRole   string  `json:"invitee_role"`
	Status        string  `json:"status"`
	TokenExpires  string  `json:"token_expires"`
	PositionID    *string `json:"position_id,omitempty"`
	Planet        *string `json:"planet,omitempty"`
	InviterID     string  `json:"inviter_id"`
	CreatedAt     string  `json:"created_at"`
}

// IInvitationUseCase defines the interface for the invitation lifecycle.
type IInvitationUseCase interface {
	SendInvitation(ctx context.Context, inviterID string, input SendInvitationInput) (*SendInvitationResult, error)
	ProcessPendingInvitations(ctx context.Context, email, newUserID string)
	AcceptInvitationByToken(ctx context.Context, invitationToken, userID string) (*entity.Workspace, error)
	GetInvitationByToken(ctx context.Context, invitationToken string) (*InvitationView, error)
	AcceptMemberInvitation(ctx context.Context, verificationToken, userID string) (*entity.Workspace, error)
	CancelInvitation(ctx context.Context, invitationID, actorID string) error
	ResendInvitation(ctx context.Context, invitationID, actorID string) error
	GetWorkspaceInvitations(ctx context.Context, userID, workspaceID string, status *entity.InvitationStatus) ([]InvitationView, error)
	GetAllPendingInvitations(ctx context.Context, userID string) []InvitationView
}
