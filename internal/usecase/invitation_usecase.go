package usecase

import (
	"context"
	"time"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/apperror"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/contract"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
	externalservices "github.com/ShaiBatonya/starquestDevServer/internal/infrastructure/external_services"
	"github.com/ShaiBatonya/starquestDevServer/internal/infrastructure/metrics"
	usecasecontract "github.com/ShaiBatonya/starquestDevServer/internal/usecase/contract"
)

// InvitationUseCase implements the workspace invitation lifecycle. Two
// delivery paths exist: invitees with an account are appended to the
// workspace as unverified members holding a short-lived verification
// token, while invitees without an account get a standalone invitation
// record that is consumed when they register or accept by token.
type InvitationUseCase struct {
	invitationRepo contract.IInvitationRepository
	workspaceRepo  contract.IWorkspaceRepository
	userRepo       contract.IUserRepository
	taskUC         usecasecontract.ITaskUseCase
	emailService   contract.IEmailService
	uuidGen        contract.IUUIDGenerator
	randomGen      contract.IRandomGenerator
	config         usecasecontract.IConfigProvider
	logger         usecasecontract.IAppLogger
}

var _ usecasecontract.IInvitationUseCase = (*InvitationUseCase)(nil)

func NewInvitationUseCase(
	invitationRepo contract.IInvitationRepository,
	workspaceRepo contract.IWorkspaceRepository,
	userRepo contract.IUserRepository,
	taskUC usecasecontract.ITaskUseCase,
	emailService contract.IEmailService,
	uuidGen contract.IUUIDGenerator,
	randomGen contract.IRandomGenerator,
	config usecasecontract.IConfigProvider,
	logger usecasecontract.IAppLogger,
) *InvitationUseCase {
	return &InvitationUseCase{
		invitationRepo: invitationRepo,
		workspaceRepo:  workspaceRepo,
		userRepo:       userRepo,
		taskUC:         taskUC,
		emailService:   emailService,
		uuidGen:        uuidGen,
		randomGen:      randomGen,
		config:         config,
		logger:         logger,
	}
}

// SendInvitation validates the permission matrix and routes the invitee
// down the existing-user or new-user path.
func (uc *InvitationUseCase) SendInvitation(ctx context.Context, inviterID string, input usecasecontract.SendInvitationInput) (*usecasecontract.SendInvitationResult, error) {
	workspace, inviter, err := requireMember(ctx, uc.workspaceRepo, input.WorkspaceID, inviterID)
	if err != nil {
		return nil, err
	}
	if !canInvite(inviter.Role, input.InviteeRole) {
		return nil, apperror.Forbidden("you are not allowed to invite members with this role")
	}
	if !entity.ValidWorkspaceRole(string(input.InviteeRole)) {
		return nil, apperror.Validation("invalid workspace role")
	}
	if input.Planet != nil && !entity.ValidPlanet(*input.Planet) {
		return nil, apperror.Validation("invalid planet")
	}
	if input.PositionID != nil && !positionExists(workspace, *input.PositionID) {
		return nil, apperror.Validation("position does not exist in this workspace")
	}

	email := entity.NormalizeEmail(input.InviteeEmail)

	invitee, err := uc.userRepo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return uc.inviteExistingUser(ctx, workspace, inviterID, invitee, input)
	case apperror.IsKind(err, apperror.KindNotFound):
		return uc.inviteNewUser(ctx, workspace, inviterID, email, input)
	default:
		return nil, err
	}
}

func positionExists(workspace *entity.Workspace, positionID string) bool {
	for _, p := range workspace.Positions {
		if p.ID == positionID {
			return true
		}
	}
	return false
}

// inviteExistingUser appends the invitee as an unverified member carrying
// a verification token, then emails the accept link.
func (uc *InvitationUseCase) inviteExistingUser(ctx context.Context, workspace *entity.Workspace, inviterID string, invitee *entity.User, input usecasecontract.SendInvitationInput) (*usecasecontract.SendInvitationResult, error) {
	if workspace.HasUser(invitee.ID) {
		return nil, apperror.Conflict("user is already a member of this workspace")
	}

	token, err := uc.randomGen.GenerateRandomToken(32)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to generate invitation token", err)
	}
	expires := time.Now().Add(uc.config.GetMemberInviteTokenExpiry())

	member := entity.WorkspaceUser{
		UserID:                   invitee.ID,
		InviterID:                &inviterID,
		Role:                     input.InviteeRole,
		Position:                 input.PositionID,
		Planet:                   input.Planet,
		IsVerified:               false,
		VerificationToken:        token,
		VerificationTokenExpires: &expires,
		Quest:                    []entity.UserTask{},
		JoinedAt:                 time.Now(),
	}
	if err := uc.workspaceRepo.AddMember(ctx, workspace.ID, member); err != nil {
		return nil, err
	}

	content := externalservices.InvitationEmail(false, workspace.Name, token, uc.config.GetAppBaseURL())
	sent := true
	if err := uc.emailService.SendEmail(ctx, invitee.Email, content.Subject, content.Plain, content.HTML); err != nil {
		sent = false
		uc.logger.Warnf("failed to send invitation email to %s: %v", invitee.Email, err)
	}
	uc.notifyInviter(ctx, inviterID, sent, invitee.Email)

	metrics.InvitationsSent.WithLabelValues("direct").Inc()
	return &usecasecontract.SendInvitationResult{
		PendingInvitation: false,
		Message:           "invitation sent to existing user",
	}, nil
}

// inviteNewUser creates a standalone invitation record. The partial
// unique index is the authoritative duplicate guard; the pre-check just
// gives a friendlier message in the common case.
func (uc *InvitationUseCase) inviteNewUser(ctx context.Context, workspace *entity.Workspace, inviterID, email string, input usecasecontract.SendInvitationInput) (*usecasecontract.SendInvitationResult, error) {
	if _, err := uc.invitationRepo.FindPendingByWorkspaceAndEmail(ctx, workspace.ID, email, time.Now()); err == nil {
		return nil, apperror.Conflict("a pending invitation already exists for this email")
	} else if !apperror.IsKind(err, apperror.KindNotFound) {
		return nil, err
	}

	token, err := uc.randomGen.GenerateRandomToken(32)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to generate invitation token", err)
	}

	now := time.Now()
	invitation := &entity.Invitation{
		ID:              uc.uuidGen.NewUUID(),
		WorkspaceID:     workspace.ID,
		InviterUserID:   inviterID,
		InviteeEmail:    email,
		InviteeRole:     input.InviteeRole,
		InvitationToken: token,
		TokenExpires:    now.Add(uc.config.GetInvitationExpiry()),
		Status:          entity.InvitationStatusPending,
		PositionID:      input.PositionID,
		Planet:          input.Planet,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.invitationRepo.CreateInvitation(ctx, invitation); err != nil {
		if err == contract.ErrDuplicatePending {
			return nil, apperror.Conflict("a pending invitation already exists for this email")
		}
		return nil, err
	}

	content := externalservices.InvitationEmail(true, workspace.Name, token, uc.config.GetAppBaseURL())
	if err := uc.emailService.SendEmail(ctx, email, content.Subject, content.Plain, content.HTML); err != nil {
		// An invitation nobody received must not block a retry, so the
		// record is cancelled before surfacing the failure.
		if cancelErr := uc.invitationRepo.MarkCancelled(ctx, invitation.ID, time.Now()); cancelErr != nil {
			uc.logger.Errorf("failed to cancel undelivered invitation %s: %v", invitation.ID, cancelErr)
		}
		uc.notifyInviter(ctx, inviterID, false, email)
		return nil, apperror.Wrap(apperror.KindInternal, "failed to send invitation email", err)
	}
	uc.notifyInviter(ctx, inviterID, true, email)

	metrics.InvitationsSent.WithLabelValues("pending").Inc()
	return &usecasecontract.SendInvitationResult{
		PendingInvitation: true,
		Message:           "invitation sent, pending registration",
	}, nil
}

func (uc *InvitationUseCase) notifyInviter(ctx context.Context, inviterID string, sent bool, inviteeEmail string) {
	inviter, err := uc.userRepo.GetUserByID(ctx, inviterID)
	if err != nil {
		uc.logger.Warnf("failed to load inviter %s for notification: %v", inviterID, err)
		return
	}
	content := externalservices.InviterNotificationEmail(sent, inviteeEmail)
	if err := uc.emailService.SendEmail(ctx, inviter.Email, content.Subject, content.Plain, content.HTML); err != nil {
		uc.logger.Warnf("failed to notify inviter %s: %v", inviter.Email, err)
	}
}

// ProcessPendingInvitations joins a freshly registered user into every
// workspace holding a live pending invitation for their email. Failures
// are logged and skipped; registration never fails on invitation state.
func (uc *InvitationUseCase) ProcessPendingInvitations(ctx context.Context, email, newUserID string) {
	invitations, err := uc.invitationRepo.FindPendingByEmail(ctx, entity.NormalizeEmail(email), time.Now())
	if err != nil {
		uc.logger.Warnf("failed to load pending invitations for %s: %v", email, err)
		return
	}
	for i := range invitations {
		if _, err := uc.acceptInvitation(ctx, &invitations[i], newUserID); err != nil {
			uc.logger.Warnf("failed to process invitation %s for new user %s: %v", invitations[i].ID, newUserID, err)
		}
	}
}

// AcceptInvitationByToken joins a logged-in user via an invitation link.
func (uc *InvitationUseCase) AcceptInvitationByToken(ctx context.Context, invitationToken, userID string) (*entity.Workspace, error) {
	invitation, err := uc.invitationRepo.GetPendingByToken(ctx, invitationToken, time.Now())
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if entity.NormalizeEmail(user.Email) != invitation.InviteeEmail {
		return nil, apperror.Forbidden("this invitation was issued to a different email address")
	}
	return uc.acceptInvitation(ctx, invitation, userID)
}

// acceptInvitation performs the join: membership first, then the user's
// workspace ref, then the invitation transition. A crash mid-way leaves
// the invitation pending and the sequence safely re-runnable, since
// AddMember treats an existing membership as a conflict we tolerate here.
func (uc *InvitationUseCase) acceptInvitation(ctx context.Context, invitation *entity.Invitation, userID string) (*entity.Workspace, error) {
	workspace, err := uc.workspaceRepo.GetWorkspaceByID(ctx, invitation.WorkspaceID)
	if err != nil {
		return nil, err
	}

	member := entity.WorkspaceUser{
		UserID:     userID,
		InviterID:  &invitation.InviterUserID,
		Role:       invitation.InviteeRole,
		Position:   invitation.PositionID,
		Planet:     invitation.Planet,
		IsVerified: true,
		Quest:      []entity.UserTask{},
		JoinedAt:   time.Now(),
	}
	if err := uc.workspaceRepo.AddMember(ctx, workspace.ID, member); err != nil && !apperror.IsKind(err, apperror.KindConflict) {
		return nil, err
	}
	if err := uc.userRepo.AddWorkspaceRef(ctx, userID, workspace.ID); err != nil {
		return nil, err
	}
	if err := uc.invitationRepo.MarkAccepted(ctx, invitation.ID, time.Now()); err != nil {
		return nil, err
	}

	if err := uc.taskUC.AssignTasksToMember(ctx, workspace.ID, userID); err != nil {
		uc.logger.Warnf("failed to assign tasks to new member %s in workspace %s: %v", userID, workspace.ID, err)
	}
	uc.sendJoinedEmails(ctx, workspace, invitation.InviterUserID, userID)

	return uc.workspaceRepo.GetWorkspaceByID(ctx, workspace.ID)
}

func (uc *InvitationUseCase) sendJoinedEmails(ctx context.Context, workspace *entity.Workspace, inviterID, inviteeID string) {
	invitee, err := uc.userRepo.GetUserByID(ctx, inviteeID)
	if err != nil {
		uc.logger.Warnf("failed to load invitee %s for joined emails: %v", inviteeID, err)
		return
	}
	welcome := externalservices.InviteeJoinedEmail(invitee.FirstName, workspace.Name)
	if err := uc.emailService.SendEmail(ctx, invitee.Email, welcome.Subject, welcome.Plain, welcome.HTML); err != nil {
		uc.logger.Warnf("failed to send welcome email to %s: %v", invitee.Email, err)
	}

	inviter, err := uc.userRepo.GetUserByID(ctx, inviterID)
	if err != nil {
		uc.logger.Warnf("failed to load inviter %s for joined notification: %v", inviterID, err)
		return
	}
	notify := externalservices.InviterJoinedNotificationEmail(inviter.FirstName, invitee.FullName(), workspace.Name)
	if err := uc.emailService.SendEmail(ctx, inviter.Email, notify.Subject, notify.Plain, notify.HTML); err != nil {
		uc.logger.Warnf("failed to notify inviter %s: %v", inviter.Email, err)
	}
}

// GetInvitationByToken resolves an invitation link for the registration
// page, without requiring authentication.
func (uc *InvitationUseCase) GetInvitationByToken(ctx context.Context, invitationToken string) (*usecasecontract.InvitationView, error) {
	invitation, err := uc.invitationRepo.GetPendingByToken(ctx, invitationToken, time.Now())
	if err != nil {
		return nil, err
	}
	view := toInvitationView(invitation)
	if workspace, err := uc.workspaceRepo.GetWorkspaceByID(ctx, invitation.WorkspaceID); err == nil {
		view.WorkspaceName = workspace.Name
	}
	return &view, nil
}

// AcceptMemberInvitation completes the existing-user path: the member
// entry created at invite time is verified and bound to the caller.
func (uc *InvitationUseCase) AcceptMemberInvitation(ctx context.Context, verificationToken, userID string) (*entity.Workspace, error) {
	workspace, member, err := uc.workspaceRepo.FindByMemberToken(ctx, verificationToken)
	if err != nil {
		return nil, err
	}
	if member.UserID != userID {
		return nil, apperror.Forbidden("this invitation was issued to a different user")
	}
	if err := uc.workspaceRepo.VerifyMember(ctx, workspace.ID, verificationToken, userID); err != nil {
		return nil, err
	}
	if err := uc.userRepo.AddWorkspaceRef(ctx, userID, workspace.ID); err != nil {
		return nil, err
	}
	if err := uc.taskUC.AssignTasksToMember(ctx, workspace.ID, userID); err != nil {
		uc.logger.Warnf("failed to assign tasks to new member %s in workspace %s: %v", userID, workspace.ID, err)
	}
	if member.InviterID != nil {
		uc.sendJoinedEmails(ctx, workspace, *member.InviterID, userID)
	}
	return uc.workspaceRepo.GetWorkspaceByID(ctx, workspace.ID)
}

// CancelInvitation voids a pending invitation. Allowed for the original
// inviter and for workspace admins.
func (uc *InvitationUseCase) CancelInvitation(ctx context.Context, invitationID, actorID string) error {
	invitation, err := uc.invitationRepo.GetInvitationByID(ctx, invitationID)
	if err != nil {
		return err
	}
	if err := uc.requireInvitationManager(ctx, invitation, actorID); err != nil {
		return err
	}
	return uc.invitationRepo.MarkCancelled(ctx, invitationID, time.Now())
}

// ResendInvitation re-sends the invitation email for a still-pending
// invitation using its original token.
func (uc *InvitationUseCase) ResendInvitation(ctx context.Context, invitationID, actorID string) error {
	invitation, err := uc.invitationRepo.GetInvitationByID(ctx, invitationID)
	if err != nil {
		return err
	}
	if err := uc.requireInvitationManager(ctx, invitation, actorID); err != nil {
		return err
	}
	if invitation.IsExpired(time.Now()) {
		return apperror.Conflict("invitation is no longer pending")
	}
	workspace, err := uc.workspaceRepo.GetWorkspaceByID(ctx, invitation.WorkspaceID)
	if err != nil {
		return err
	}

	content := externalservices.InvitationEmail(true, workspace.Name, invitation.InvitationToken, uc.config.GetAppBaseURL())
	if err := uc.emailService.SendEmail(ctx, invitation.InviteeEmail, content.Subject, content.Plain, content.HTML); err != nil {
		return apperror.Wrap(apperror.KindInternal, "failed to resend invitation email", err)
	}
	return uc.invitationRepo.TouchInvitation(ctx, invitationID)
}

func (uc *InvitationUseCase) requireInvitationManager(ctx context.Context, invitation *entity.Invitation, actorID string) error {
	if invitation.InviterUserID == actorID {
		return nil
	}
	_, actor, err := requireMember(ctx, uc.workspaceRepo, invitation.WorkspaceID, actorID)
	if err != nil {
		return err
	}
	if actor.Role != entity.WorkspaceRoleAdmin {
		return apperror.Forbidden("only the inviter or a workspace admin may manage this invitation")
	}
	return nil
}

// GetWorkspaceInvitations lists a workspace's invitations, optionally
// filtered by status. Mentees cannot see the invitation list.
func (uc *InvitationUseCase) GetWorkspaceInvitations(ctx context.Context, userID, workspaceID string, status *entity.InvitationStatus) ([]usecasecontract.InvitationView, error) {
	workspace, _, err := requireManager(ctx, uc.workspaceRepo, workspaceID, userID)
	if err != nil {
		return nil, err
	}
	invitations, err := uc.invitationRepo.FindByWorkspace(ctx, workspaceID, status)
	if err != nil {
		return nil, err
	}
	views := make([]usecasecontract.InvitationView, 0, len(invitations))
	for i := range invitations {
		view := toInvitationView(&invitations[i])
		view.WorkspaceName = workspace.Name
		views = append(views, view)
	}
	return views, nil
}

// GetAllPendingInvitations lists live pending invitations across every
// workspace the user administers. The listing degrades silently: any
// failure logs a warning and yields an empty list rather than an error.
func (uc *InvitationUseCase) GetAllPendingInvitations(ctx context.Context, userID string) []usecasecontract.InvitationView {
	ctx, cancel := context.WithTimeout(ctx, uc.config.GetListingQueryTimeout())
	defer cancel()

	workspaceIDs, err := uc.workspaceRepo.GetAdminWorkspaceIDs(ctx, userID)
	if err != nil {
		uc.logger.Warnf("failed to list admin workspaces for %s: %v", userID, err)
		return []usecasecontract.InvitationView{}
	}
	invitations, err := uc.invitationRepo.FindPendingByWorkspaces(ctx, workspaceIDs, time.Now())
	if err != nil {
		uc.logger.Warnf("failed to list pending invitations for %s: %v", userID, err)
		return []usecasecontract.InvitationView{}
	}

	names := make(map[string]string, len(workspaceIDs))
	views := make([]usecasecontract.InvitationView, 0, len(invitations))
	for i := range invitations {
		view := toInvitationView(&invitations[i])
		name, ok := names[view.WorkspaceID]
		if !ok {
			if workspace, err := uc.workspaceRepo.GetWorkspaceByID(ctx, view.WorkspaceID); err == nil {
				name = workspace.Name
			}
			names[view.WorkspaceID] = name
		}
		view.WorkspaceName = name
		views = append(views, view)
	}
	return views
}

func toInvitationView(invitation *entity.Invitation) usecasecontract.InvitationView {
	return usecasecontract.InvitationView{
		ID:           invitation.ID,
		WorkspaceID:  invitation.WorkspaceID,
		InviteeEmail: invitation.InviteeEmail,
		InviteeRole:  string(invitation.InviteeRole),
		Status:       string(invitation.Status),
		TokenExpires: invitation.TokenExpires.Format(time.RFC3339),
		PositionID:   invitation.PositionID,
		Planet:       invitation.Planet,
		InviterID:    invitation.InviterUserID,
		CreatedAt:    invitation.CreatedAt.Format(time.RFC3339),
	}
}
