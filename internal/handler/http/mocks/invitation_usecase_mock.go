package mocks

import (
	"context"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/apperror"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
	usecasecontract "github.com/ShaiBatonya/starquestDevServer/internal/usecase/contract"
)

// MockInvitationUsecase is a mock implementation of the invitation usecase interface
type MockInvitationUsecase struct {
	// Control mock behavior
	ShouldFailSendInvitation    bool
	ShouldFailAcceptByToken     bool
	ShouldFailAcceptMemberToken bool
	ShouldFailGetByToken        bool
	ShouldFailCancel            bool
	ShouldFailResend            bool
	ShouldFailListByWorkspace   bool

	// Return values
	MockResult    usecasecontract.SendInvitationResult
	MockWorkspace entity.Workspace
	MockView      usecasecontract.InvitationView
}

// Ensure MockInvitationUsecase implements the correct interface for handler.NewInvitationHandler
var _ usecasecontract.IInvitationUseCase = (*MockInvitationUsecase)(nil)

func NewMockInvitationUsecase() *MockInvitationUsecase {
	return &MockInvitationUsecase{
		MockResult: usecasecontract.SendInvitationResult{
			PendingInvitation: true,
			Message:           "invitation sent, pending registration",
		},
		MockWorkspace: entity.Workspace{
			ID:      "mock-workspace-id",
			Name:    "Mock Workspace",
			Planets: entity.Planets,
		},
		MockView: usecasecontract.InvitationView{
			ID:           "mock-invitation-id",
			WorkspaceID:  "mock-workspace-id",
			InviteeEmail: "invitee@example.com",
			InviteeRole:  string(entity.WorkspaceRoleMentee),
			Status:       string(entity.InvitationStatusPending),
		},
	}
}

func (m *MockInvitationUsecase) SendInvitation(ctx context.Context, inviterID string, input usecasecontract.SendInvitationInput) (*usecasecontract.SendInvitationResult, error) {
	if m.ShouldFailSendInvitation {
		return nil, apperror.Conflict("a pending invitation already exists for this email")
	}
	return &m.MockResult, nil
}

func (m *MockInvitationUsecase) ProcessPendingInvitations(ctx context.Context, email, newUserID string) {}

func (m *MockInvitationUsecase) AcceptInvitationByToken(ctx context.Context, invitationToken, userID string) (*entity.Workspace, error) {
	if m.ShouldFailAcceptByToken {
		return nil, apperror.Validation("invitation is invalid or has expired")
	}
	return &m.MockWorkspace, nil
}

func (m *MockInvitationUsecase) GetInvitationByToken(ctx context.Context, invitationToken string) (*usecasecontract.InvitationView, error) {
	if m.ShouldFailGetByToken {
		return nil, apperror.Validation("invitation is invalid or has expired")
	}
	return &m.MockView, nil
}

func (m *MockInvitationUsecase) AcceptMemberInvitation(ctx context.Context, verificationToken, userID string) (*entity.Workspace, error) {
	if m.ShouldFailAcceptMemberToken {
		return nil, apperror.Validation("invalid or expired invitation token")
	}
	return &m.MockWorkspace, nil
}

func (m *MockInvitationUsecase) CancelInvitation(ctx context.Context, invitationID, actorID string) error {
	if m.ShouldFailCancel {
		return apperror.Forbidden("only the inviter or a workspace admin may manage this invitation")
	}
	return nil
}

func (m *MockInvitationUsecase) ResendInvitation(ctx context.Context, invitationID, actorID string) error {
	if m.ShouldFailResend {
		return apperror.Conflict("invitation is no longer pending")
	}
	return nil
}

func (m *MockInvitationUsecase) GetWorkspaceInvitations(ctx context.Context, userID, workspaceID string, status *entity.InvitationStatus) ([]usecasecontract.InvitationView, error) {
	if m.ShouldFailListByWorkspace {
		return nil, apperror.Forbidden("only workspace admins and mentors may perform this action")
	}
	return []usecasecontract.InvitationView{m.MockView}, nil
}

func (m *MockInvitationUsecase) GetAllPendingInvitations(ctx context.Context, userID string) []usecasecontract.InvitationView {
	return []usecasecontract.InvitationView{m.MockView}
}
