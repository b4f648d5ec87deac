package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/apperror"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/contract"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
	usecasecontract "github.com/ShaiBatonya/starquestDevServer/internal/usecase/contract"
)

// In-memory fakes mirroring the repository semantics closely enough to
// exercise fan-out, invitation and quest behavior without a database.

type fakeWorkspaceRepo struct {
	workspaces map[string]*entity.Workspace
	starCalls  []starCall
}

type starCall struct {
	workspaceID string
	userID      string
	stars       int
}

func newFakeWorkspaceRepo() *fakeWorkspaceRepo {
	return &fakeWorkspaceRepo{workspaces: map[string]*entity.Workspace{}}
}

func (f *fakeWorkspaceRepo) CreateWorkspace(_ context.Context, workspace *entity.Workspace) error {
	copied := *workspace
	f.workspaces[workspace.ID] = &copied
	return nil
}

// cloneWorkspace deep-copies a stored workspace so reads behave like a
// bson decode: callers get a snapshot, not aliases into the stored
// document that later writes would mutate.
func cloneWorkspace(workspace *entity.Workspace) *entity.Workspace {
	copied := *workspace
	copied.Positions = append([]entity.Position{}, workspace.Positions...)
	copied.Planets = append([]string{}, workspace.Planets...)
	copied.Backlog = make([]entity.Task, len(workspace.Backlog))
	for i := range workspace.Backlog {
		task := workspace.Backlog[i]
		task.Planets = append([]string{}, workspace.Backlog[i].Planets...)
		task.Positions = append([]string{}, workspace.Backlog[i].Positions...)
		copied.Backlog[i] = task
	}
	copied.Users = make([]entity.WorkspaceUser, len(workspace.Users))
	for i := range workspace.Users {
		member := workspace.Users[i]
		member.Quest = make([]entity.UserTask, len(workspace.Users[i].Quest))
		for j := range workspace.Users[i].Quest {
			quest := workspace.Users[i].Quest[j]
			quest.Tasks = append([]string{}, quest.Tasks...)
			quest.Comments = append([]entity.Comment{}, quest.Comments...)
			member.Quest[j] = quest
		}
		copied.Users[i] = member
	}
	return &copied
}

func (f *fakeWorkspaceRepo) GetWorkspaceByID(_ context.Context, id string) (*entity.Workspace, error) {
	workspace, ok := f.workspaces[id]
	if !ok {
		return nil, apperror.NotFound("workspace not found")
	}
	return cloneWorkspace(workspace), nil
}

func (f *fakeWorkspaceRepo) GetWorkspacesByMember(_ context.Context, userID string) ([]entity.Workspace, error) {
	var result []entity.Workspace
	var ids []string
	for id := range f.workspaces {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if f.workspaces[id].HasUser(userID) {
			result = append(result, *cloneWorkspace(f.workspaces[id]))
		}
	}
	return result, nil
}

func (f *fakeWorkspaceRepo) GetAdminWorkspaceIDs(_ context.Context, userID string) ([]string, error) {
	var ids []string
	for id, workspace := range f.workspaces {
		if member := workspace.FindUser(userID); member != nil && member.Role == entity.WorkspaceRoleAdmin {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (f *fakeWorkspaceRepo) DeleteWorkspace(_ context.Context, id string) error {
	if _, ok := f.workspaces[id]; !ok {
		return apperror.NotFound("workspace not found")
	}
	delete(f.workspaces, id)
	return nil
}

func (f *fakeWorkspaceRepo) AddMember(_ context.Context, workspaceID string, member entity.WorkspaceUser) error {
	workspace, ok := f.workspaces[workspaceID]
	if !ok {
		return apperror.NotFound("workspace not found")
	}
	if workspace.HasUser(member.UserID) {
		return apperror.Conflict("user already exists in the workspace")
	}
	workspace.Users = append(workspace.Users, member)
	return nil
}

func (f *fakeWorkspaceRepo) FindByMemberToken(_ context.Context, token string) (*entity.Workspace, *entity.WorkspaceUser, error) {
	now := time.Now()
	for _, workspace := range f.workspaces {
		for i := range workspace.Users {
			member := &workspace.Users[i]
			if member.VerificationToken == token && member.VerificationTokenExpires != nil && member.VerificationTokenExpires.After(now) {
				copied := cloneWorkspace(workspace)
				return copied, &copied.Users[i], nil
			}
		}
	}
	return nil, nil, apperror.Validation("invalid or expired invitation token")
}

func (f *fakeWorkspaceRepo) VerifyMember(_ context.Context, workspaceID, token, userID string) error {
	workspace, ok := f.workspaces[workspaceID]
	if !ok {
		return apperror.NotFound("workspace not found")
	}
	for i := range workspace.Users {
		if workspace.Users[i].VerificationToken == token {
			workspace.Users[i].IsVerified = true
			workspace.Users[i].UserID = userID
			workspace.Users[i].VerificationToken = ""
			workspace.Users[i].VerificationTokenExpires = nil
			return nil
		}
	}
	return apperror.NotFound("failed to verify user in workspace")
}

func (f *fakeWorkspaceRepo) AddPosition(_ context.Context, workspaceID string, position entity.Position) error {
	workspace, ok := f.workspaces[workspaceID]
	if !ok {
		return apperror.NotFound("workspace not found")
	}
	workspace.Positions = append(workspace.Positions, position)
	return nil
}

func (f *fakeWorkspaceRepo) AppendTask(_ context.Context, workspaceID string, task entity.Task) error {
	workspace, ok := f.workspaces[workspaceID]
	if !ok {
		return apperror.NotFound("workspace not found")
	}
	workspace.Backlog = append(workspace.Backlog, task)
	return nil
}

func (f *fakeWorkspaceRepo) UpdateTask(_ context.Context, workspaceID, taskID string, patch contract.TaskPatch) error {
	workspace, ok := f.workspaces[workspaceID]
	if !ok {
		return apperror.NotFound("workspace not found")
	}
	task := workspace.FindTask(taskID)
	if task == nil {
		return apperror.NotFound("task not found")
	}
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Category != nil {
		task.Category = *patch.Category
	}
	if patch.StarsEarned != nil {
		task.StarsEarned = *patch.StarsEarned
	}
	if patch.IsGlobal != nil {
		task.IsGlobal = *patch.IsGlobal
	}
	if patch.Link != nil {
		task.Link = patch.Link
	}
	return nil
}

func (f *fakeWorkspaceRepo) UpdateTaskTargets(_ context.Context, workspaceID, taskID string, addPositions, removePositions, addPlanets, removePlanets []string) error {
	workspace, ok := f.workspaces[workspaceID]
	if !ok {
		return apperror.NotFound("workspace not found")
	}
	task := workspace.FindTask(taskID)
	if task == nil {
		return apperror.NotFound("task not found")
	}
	task.Positions = applySetDelta(task.Positions, addPositions, removePositions)
	task.Planets = applySetDelta(task.Planets, addPlanets, removePlanets)
	return nil
}

func (f *fakeWorkspaceRepo) PullTask(_ context.Context, workspaceID, taskID string) error {
	workspace, ok := f.workspaces[workspaceID]
	if !ok {
		return apperror.NotFound("workspace not found")
	}
	kept := workspace.Backlog[:0]
	for _, task := range workspace.Backlog {
		if task.ID != taskID {
			kept = append(kept, task)
		}
	}
	workspace.Backlog = kept
	return nil
}

// BulkQuestUpdate applies each op against the embedded membership array,
// mirroring the arrayFilters translation used by the real repository.
func (f *fakeWorkspaceRepo) BulkQuestUpdate(_ context.Context, workspaceID string, ops []contract.QuestOp) error {
	workspace, ok := f.workspaces[workspaceID]
	if !ok {
		return apperror.NotFound("workspace not found")
	}
	for _, op := range ops {
		for i := range workspace.Users {
			member := &workspace.Users[i]
			if !opMatchesMember(op, member) {
				continue
			}
			switch op.Action {
			case contract.QuestOpAdd:
				entry := *op.Entry
				member.Quest = append(member.Quest, entry)
			case contract.QuestOpAddUnique:
				if memberHoldsTask(member, op.TaskID) {
					continue
				}
				entry := *op.Entry
				member.Quest = append(member.Quest, entry)
			case contract.QuestOpRemove:
				kept := member.Quest[:0]
				for _, entry := range member.Quest {
					if !entry.References(op.TaskID) {
						kept = append(kept, entry)
					}
				}
				member.Quest = kept
			}
		}
	}
	return nil
}

func opMatchesMember(op contract.QuestOp, member *entity.WorkspaceUser) bool {
	if member.Role != entity.WorkspaceRoleMentee {
		return false
	}
	target := op.Target
	if target.UserID != nil && member.UserID != *target.UserID {
		return false
	}
	if target.ExcludeTargets {
		if member.Position != nil && containsString(target.AllPositions, *member.Position) {
			return false
		}
		if member.Planet != nil && containsString(target.AllPlanets, *member.Planet) {
			return false
		}
	} else {
		if target.Position != nil && (member.Position == nil || *member.Position != *target.Position) {
			return false
		}
		if target.Planet != nil && (member.Planet == nil || *member.Planet != *target.Planet) {
			return false
		}
	}
	if target.HoldingTask != nil && memberHoldsTask(member, op.TaskID) != *target.HoldingTask {
		return false
	}
	return true
}

func memberHoldsTask(member *entity.WorkspaceUser, taskID string) bool {
	for _, entry := range member.Quest {
		if entry.References(taskID) {
			return true
		}
	}
	return false
}

func (f *fakeWorkspaceRepo) AddQuestEntries(_ context.Context, workspaceID, userID string, entries []entity.UserTask) error {
	workspace, ok := f.workspaces[workspaceID]
	if !ok {
		return apperror.NotFound("workspace not found")
	}
	member := workspace.FindUser(userID)
	if member == nil {
		return apperror.NotFound("user not found in workspace")
	}
	member.Quest = append(member.Quest, entries...)
	return nil
}

func (f *fakeWorkspaceRepo) SetQuestStatus(_ context.Context, workspaceID, userID, questID string, status entity.TaskStatus) error {
	workspace, ok := f.workspaces[workspaceID]
	if !ok {
		return apperror.NotFound("workspace not found")
	}
	member := workspace.FindUser(userID)
	if member == nil {
		return apperror.NotFound("user not found in workspace")
	}
	for i := range member.Quest {
		if member.Quest[i].ID == questID {
			member.Quest[i].Status = status
			member.Quest[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return apperror.NotFound("task not found in user quest")
}

func (f *fakeWorkspaceRepo) AddQuestComment(_ context.Context, workspaceID, userID, questID string, comment entity.Comment) error {
	workspace, ok := f.workspaces[workspaceID]
	if !ok {
		return apperror.NotFound("workspace not found")
	}
	member := workspace.FindUser(userID)
	if member == nil {
		return apperror.NotFound("user not found in workspace")
	}
	for i := range member.Quest {
		if member.Quest[i].ID == questID {
			member.Quest[i].Comments = append(member.Quest[i].Comments, comment)
			return nil
		}
	}
	return apperror.NotFound("task not found in user quest")
}

func (f *fakeWorkspaceRepo) IncrementStars(_ context.Context, workspaceID, userID string, stars int) error {
	workspace, ok := f.workspaces[workspaceID]
	if !ok {
		return apperror.NotFound("workspace not found")
	}
	member := workspace.FindUser(userID)
	if member == nil {
		return apperror.NotFound("user not found in workspace")
	}
	member.Stars += stars
	f.starCalls = append(f.starCalls, starCall{workspaceID: workspaceID, userID: userID, stars: stars})
	return nil
}

func (f *fakeWorkspaceRepo) Leaderboard(_ context.Context, workspaceID string) ([]entity.LeaderboardEntry, error) {
	workspace, ok := f.workspaces[workspaceID]
	if !ok {
		return nil, apperror.NotFound("workspace not found")
	}
	var entries []entity.LeaderboardEntry
	for i := range workspace.Users {
		member := &workspace.Users[i]
		if member.Role != entity.WorkspaceRoleMentee {
			continue
		}
		entries = append(entries, entity.LeaderboardEntry{
			UserID:   member.UserID,
			Position: member.Position,
			Planet:   member.Planet,
			Stars:    member.Stars,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Stars > entries[j].Stars })
	return entries, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *entity.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return apperror.Conflict("user with this email already exists")
		}
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id string) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok || !user.Active {
		return nil, apperror.NotFound("user not found")
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	normalized := entity.NormalizeEmail(email)
	for _, user := range f.users {
		if user.Email == normalized && user.Active {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperror.NotFound("user not found")
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, id string, _ map[string]interface{}) (*entity.User, error) {
	return f.GetUserByID(ctx, id)
}

func (f *fakeUserRepo) AddWorkspaceRef(_ context.Context, userID, workspaceID string) error {
	user, ok := f.users[userID]
	if !ok {
		return apperror.NotFound("user not found")
	}
	for _, ref := range user.Workspaces {
		if ref.WorkspaceID == workspaceID {
			return nil
		}
	}
	user.Workspaces = append(user.Workspaces, entity.WorkspaceRef{WorkspaceID: workspaceID})
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id, passwordHash string, changedAt time.Time) error {
	user, ok := f.users[id]
	if !ok {
		return apperror.NotFound("user not found")
	}
	user.PasswordHash = passwordHash
	user.PasswordChangedAt = &changedAt
	user.PasswordResetToken = ""
	user.PasswordResetExpires = nil
	return nil
}

func (f *fakeUserRepo) SetVerificationCode(_ context.Context, id, hashedCode string, expires time.Time) error {
	user, ok := f.users[id]
	if !ok {
		return apperror.NotFound("user not found")
	}
	user.VerificationCode = hashedCode
	user.VerificationExpires = &expires
	return nil
}

func (f *fakeUserRepo) GetByVerificationCode(_ context.Context, email, hashedCode string, now time.Time) (*entity.User, error) {
	normalized := entity.NormalizeEmail(email)
	for _, user := range f.users {
		if user.Email == normalized && user.VerificationCode == hashedCode &&
			user.VerificationExpires != nil && user.VerificationExpires.After(now) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperror.NotFound("user not found")
}

func (f *fakeUserRepo) MarkEmailVerified(_ context.Context, id string) error {
	user, ok := f.users[id]
	if !ok {
		return apperror.NotFound("user not found")
	}
	user.IsEmailVerified = true
	user.VerificationCode = ""
	user.VerificationExpires = nil
	return nil
}

func (f *fakeUserRepo) SetPasswordResetToken(_ context.Context, id, hashedToken string, expires time.Time) error {
	user, ok := f.users[id]
	if !ok {
		return apperror.NotFound("user not found")
	}
	user.PasswordResetToken = hashedToken
	user.PasswordResetExpires = &expires
	return nil
}

func (f *fakeUserRepo) GetByPasswordResetToken(_ context.Context, hashedToken string, now time.Time) (*entity.User, error) {
	for _, user := range f.users {
		if user.PasswordResetToken == hashedToken && user.PasswordResetExpires != nil && user.PasswordResetExpires.After(now) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperror.NotFound("user not found")
}

func (f *fakeUserRepo) ClearPasswordResetToken(_ context.Context, id string) error {
	if user, ok := f.users[id]; ok {
		user.PasswordResetToken = ""
		user.PasswordResetExpires = nil
	}
	return nil
}

func (f *fakeUserRepo) DeactivateUser(_ context.Context, id string) error {
	user, ok := f.users[id]
	if !ok {
		return apperror.NotFound("user not found")
	}
	user.Active = false
	return nil
}

type fakeInvitationRepo struct {
	invitations map[string]*entity.Invitation
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{invitations: map[string]*entity.Invitation{}}
}

func (f *fakeInvitationRepo) EnsureIndexes(context.Context) error { return nil }

func (f *fakeInvitationRepo) CreateInvitation(_ context.Context, invitation *entity.Invitation) error {
	for _, existing := range f.invitations {
		if existing.WorkspaceID == invitation.WorkspaceID &&
			existing.InviteeEmail == invitation.InviteeEmail &&
			existing.Status == entity.InvitationStatusPending {
			return contract.ErrDuplicatePending
		}
	}
	copied := *invitation
	f.invitations[invitation.ID] = &copied
	return nil
}

func (f *fakeInvitationRepo) GetInvitationByID(_ context.Context, id string) (*entity.Invitation, error) {
	invitation, ok := f.invitations[id]
	if !ok {
		return nil, apperror.NotFound("invitation not found")
	}
	copied := *invitation
	return &copied, nil
}

func (f *fakeInvitationRepo) GetPendingByToken(_ context.Context, token string, now time.Time) (*entity.Invitation, error) {
	for _, invitation := range f.invitations {
		if invitation.InvitationToken == token && invitation.Status == entity.InvitationStatusPending && invitation.TokenExpires.After(now) {
			copied := *invitation
			return &copied, nil
		}
	}
	return nil, apperror.Validation("invitation is invalid or has expired")
}

func (f *fakeInvitationRepo) FindPendingByEmail(_ context.Context, email string, now time.Time) ([]entity.Invitation, error) {
	var result []entity.Invitation
	for _, invitation := range f.invitations {
		if invitation.InviteeEmail == email && invitation.Status == entity.InvitationStatusPending && invitation.TokenExpires.After(now) {
			result = append(result, *invitation)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeInvitationRepo) FindPendingByWorkspaceAndEmail(_ context.Context, workspaceID, email string, now time.Time) (*entity.Invitation, error) {
	for _, invitation := range f.invitations {
		if invitation.WorkspaceID == workspaceID && invitation.InviteeEmail == email &&
			invitation.Status == entity.InvitationStatusPending && invitation.TokenExpires.After(now) {
			copied := *invitation
			return &copied, nil
		}
	}
	return nil, apperror.NotFound("no pending invitation for this email")
}

func (f *fakeInvitationRepo) FindByWorkspace(_ context.Context, workspaceID string, status *entity.InvitationStatus) ([]entity.Invitation, error) {
	var result []entity.Invitation
	for _, invitation := range f.invitations {
		if invitation.WorkspaceID != workspaceID {
			continue
		}
		if status != nil && invitation.Status != *status {
			continue
		}
		result = append(result, *invitation)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeInvitationRepo) FindPendingByWorkspaces(_ context.Context, workspaceIDs []string, now time.Time) ([]entity.Invitation, error) {
	var result []entity.Invitation
	for _, invitation := range f.invitations {
		if !containsString(workspaceIDs, invitation.WorkspaceID) {
			continue
		}
		if invitation.Status != entity.InvitationStatusPending || !invitation.TokenExpires.After(now) {
			continue
		}
		result = append(result, *invitation)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeInvitationRepo) MarkAccepted(_ context.Context, id string, at time.Time) error {
	return f.transition(id, entity.InvitationStatusAccepted, at)
}

func (f *fakeInvitationRepo) MarkCancelled(_ context.Context, id string, at time.Time) error {
	return f.transition(id, entity.InvitationStatusCancelled, at)
}

func (f *fakeInvitationRepo) transition(id string, status entity.InvitationStatus, at time.Time) error {
	invitation, ok := f.invitations[id]
	if !ok || invitation.Status != entity.InvitationStatusPending {
		return apperror.Conflict("invitation is no longer pending")
	}
	invitation.Status = status
	invitation.UpdatedAt = at
	if status == entity.InvitationStatusAccepted {
		invitation.AcceptedAt = &at
	} else {
		invitation.CancelledAt = &at
	}
	return nil
}

func (f *fakeInvitationRepo) TouchInvitation(_ context.Context, id string) error {
	if invitation, ok := f.invitations[id]; ok {
		invitation.UpdatedAt = time.Now()
	}
	return nil
}

type sentEmail struct {
	to      string
	subject string
}

type fakeEmailService struct {
	sent       []sentEmail
	shouldFail bool
}

func (f *fakeEmailService) SendEmail(_ context.Context, to, subject, _, _ string) error {
	if f.shouldFail {
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, sentEmail{to: to, subject: subject})
	return nil
}

type seqUUIDGen struct{ n int }

func (g *seqUUIDGen) NewUUID() string {
	g.n++
	return fmt.Sprintf("uuid-%d", g.n)
}

type seqRandomGen struct{ n int }

func (g *seqRandomGen) GenerateRandomToken(int) (string, error) {
	g.n++
	return fmt.Sprintf("token-%d", g.n), nil
}

type fakeHasher struct{}

func (fakeHasher) HashPassword(password string) (string, error) { return "bcrypt:" + password, nil }

func (fakeHasher) ComparePasswordHash(password, hashed string) error {
	if hashed != "bcrypt:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (fakeHasher) HashString(s string) string    { return "sha:" + s }
func (fakeHasher) CheckHash(s, hash string) bool { return "sha:"+s == hash }

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Fatalf(string, ...interface{}) {}

type stubConfig struct{}

func (stubConfig) GetAppBaseURL() string                         { return "http://localhost:8080" }
func (stubConfig) GetSendActivationEmail() bool                  { return false }
func (stubConfig) GetJWTCookieExpiry() time.Duration             { return 24 * time.Hour }
func (stubConfig) GetEmailVerificationCodeExpiry() time.Duration { return 20 * time.Minute }
func (stubConfig) GetPasswordResetTokenExpiry() time.Duration    { return 10 * time.Minute }
func (stubConfig) GetMemberInviteTokenExpiry() time.Duration     { return time.Hour }
func (stubConfig) GetInvitationExpiry() time.Duration            { return 7 * 24 * time.Hour }
func (stubConfig) GetListingQueryTimeout() time.Duration         { return 10 * time.Second }

type passValidator struct{}

func (passValidator) ValidateEmail(string) error            { return nil }
func (passValidator) ValidatePasswordStrength(string) error { return nil }

type fakeJWT struct{}

func (fakeJWT) GenerateAccessToken(userID string, _ entity.UserRole) (string, error) {
	return "jwt-" + userID, nil
}

func (fakeJWT) ParseAccessToken(token string) (*entity.Claims, error) {
	if len(token) < 5 || token[:4] != "jwt-" {
		return nil, errors.New("invalid token")
	}
	return &entity.Claims{UserID: token[4:]}, nil
}

// Compile-time checks that the fakes satisfy their contracts.
var (
	_ contract.IWorkspaceRepository   = (*fakeWorkspaceRepo)(nil)
	_ contract.IUserRepository        = (*fakeUserRepo)(nil)
	_ contract.IInvitationRepository  = (*fakeInvitationRepo)(nil)
	_ contract.IEmailService          = (*fakeEmailService)(nil)
	_ contract.IUUIDGenerator         = (*seqUUIDGen)(nil)
	_ contract.IRandomGenerator       = (*seqRandomGen)(nil)
	_ contract.IHasher                = (fakeHasher{})
	_ usecasecontract.IAppLogger      = (nopLogger{})
	_ usecasecontract.IConfigProvider = (stubConfig{})
	_ usecasecontract.IValidator      = (passValidator{})
	_ JWTService                      = (fakeJWT{})
)

// Workspace fixture helpers shared across usecase tests.

func mentee(userID, position, planet string) entity.WorkspaceUser {
	return entity.WorkspaceUser{
		UserID:     userID,
		Role:       entity.WorkspaceRoleMentee,
		Position:   &position,
		Planet:     &planet,
		IsVerified: true,
		Quest:      []entity.UserTask{},
		JoinedAt:   time.Now(),
	}
}

func adminMember(userID string) entity.WorkspaceUser {
	return entity.WorkspaceUser{
		UserID:     userID,
		Role:       entity.WorkspaceRoleAdmin,
		IsVerified: true,
		Quest:      []entity.UserTask{},
		JoinedAt:   time.Now(),
	}
}

func mentorMember(userID string) entity.WorkspaceUser {
	return entity.WorkspaceUser{
		UserID:     userID,
		Role:       entity.WorkspaceRoleMentor,
		IsVerified: true,
		Quest:      []entity.UserTask{},
		JoinedAt:   time.Now(),
	}
}

func testWorkspace(id string, users ...entity.WorkspaceUser) *entity.Workspace {
	return &entity.Workspace{
		ID:        id,
		Name:      "Test Workspace",
		Planets:   append([]string{}, entity.Planets...),
		Positions: []entity.Position{{ID: "pos-frontend", Name: "Frontend"}, {ID: "pos-backend", Name: "Backend"}},
		Backlog:   []entity.Task{},
		Users:     users,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}
