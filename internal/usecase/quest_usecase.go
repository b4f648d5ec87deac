package usecase

import (
	"context"
	"time"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/apperror"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/contract"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
	"github.com/ShaiBatonya/starquestDevServer/internal/infrastructure/metrics"
	usecasecontract "github.com/ShaiBatonya/starquestDevServer/internal/usecase/contract"
)

// QuestUseCase implements per-member quest board reads, status moves and
// comments. Star awards happen here, on the mentor Done transition.
type QuestUseCase struct {
	workspaceRepo contract.IWorkspaceRepository
	cache         contract.ILeaderboardCache
	logger        usecasecontract.IAppLogger
}

var _ usecasecontract.IQuestUseCase = (*QuestUseCase)(nil)

// NewQuestUseCase creates the quest usecase. cache may be nil when no
// leaderboard cache is configured.
func NewQuestUseCase(workspaceRepo contract.IWorkspaceRepository, cache contract.ILeaderboardCache, logger usecasecontract.IAppLogger) *QuestUseCase {
	return &QuestUseCase{workspaceRepo: workspaceRepo, cache: cache, logger: logger}
}

// GetUserQuest returns the caller's quest entries grouped by status.
func (uc *QuestUseCase) GetUserQuest(ctx context.Context, userID, workspaceID string) (usecasecontract.QuestBoard, error) {
	_, member, err := requireMember(ctx, uc.workspaceRepo, workspaceID, userID)
	if err != nil {
		return nil, err
	}

	board := usecasecontract.QuestBoard{
		entity.TaskStatusBacklog:    {},
		entity.TaskStatusToDo:       {},
		entity.TaskStatusInProgress: {},
		entity.TaskStatusInReview:   {},
		entity.TaskStatusDone:       {},
	}
	for _, entry := range member.Quest {
		board[entry.Status] = append(board[entry.Status], entry)
	}
	return board, nil
}

// ChangeTaskStatus is the self-service move. Mentees may only place their
// own tasks In Progress or In Review; every other transition needs a
// mentor.
func (uc *QuestUseCase) ChangeTaskStatus(ctx context.Context, userID, workspaceID, questID string, newStatus entity.TaskStatus) (*entity.UserTask, error) {
	if !entity.ValidTaskStatus(string(newStatus)) {
		return nil, apperror.Validation("invalid task status")
	}
	if !entity.SelfServiceStatus(newStatus) {
		return nil, apperror.Forbidden("you may only move your own tasks to In Progress or In Review")
	}
	_, member, err := requireMember(ctx, uc.workspaceRepo, workspaceID, userID)
	if err != nil {
		return nil, err
	}
	if findQuestEntry(member, questID) == nil {
		return nil, apperror.NotFound("task not found in your quest")
	}

	if err := uc.workspaceRepo.SetQuestStatus(ctx, workspaceID, userID, questID, newStatus); err != nil {
		return nil, err
	}
	return uc.reloadEntry(ctx, workspaceID, userID, questID)
}

// MentorChangeTaskStatus is the override move: admins and mentors may set
// any status on a mentee's task. Moving a task to Done awards the task's
// stars to the mentee. The award is per call; repeating a Done transition
// awards again, so mentors moving a task out of Done and back grant a
// second award on purpose.
func (uc *QuestUseCase) MentorChangeTaskStatus(ctx context.Context, actorID, workspaceID, menteeID, questID string, newStatus entity.TaskStatus) (*entity.UserTask, error) {
	if !entity.ValidTaskStatus(string(newStatus)) {
		return nil, apperror.Validation("invalid task status")
	}
	workspace, _, err := requireManager(ctx, uc.workspaceRepo, workspaceID, actorID)
	if err != nil {
		return nil, err
	}
	mentee := workspace.FindUser(menteeID)
	if mentee == nil {
		return nil, apperror.NotFound("mentee is not a member of this workspace")
	}
	entry := findQuestEntry(mentee, questID)
	if entry == nil {
		return nil, apperror.NotFound("task not found in mentee quest")
	}

	if err := uc.workspaceRepo.SetQuestStatus(ctx, workspaceID, menteeID, questID, newStatus); err != nil {
		return nil, err
	}

	if newStatus == entity.TaskStatusDone {
		stars := questStars(workspace, entry)
		if stars > 0 {
			if err := uc.workspaceRepo.IncrementStars(ctx, workspaceID, menteeID, stars); err != nil {
				return nil, err
			}
			metrics.StarsAwarded.Add(float64(stars))
			uc.invalidateLeaderboard(ctx, workspaceID)
		}
	}
	return uc.reloadEntry(ctx, workspaceID, menteeID, questID)
}

// AddCommentToTask appends a comment to one of the caller's quest entries.
func (uc *QuestUseCase) AddCommentToTask(ctx context.Context, userID, workspaceID, questID, content string) (*entity.Comment, error) {
	if content == "" {
		return nil, apperror.Validation("comment content cannot be empty")
	}
	_, member, err := requireMember(ctx, uc.workspaceRepo, workspaceID, userID)
	if err != nil {
		return nil, err
	}
	if findQuestEntry(member, questID) == nil {
		return nil, apperror.NotFound("task not found in your quest")
	}

	comment := entity.Comment{
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := uc.workspaceRepo.AddQuestComment(ctx, workspaceID, userID, questID, comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (uc *QuestUseCase) reloadEntry(ctx context.Context, workspaceID, userID, questID string) (*entity.UserTask, error) {
	workspace, err := uc.workspaceRepo.GetWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	member := workspace.FindUser(userID)
	if member == nil {
		return nil, apperror.NotFound("user not found in workspace")
	}
	entry := findQuestEntry(member, questID)
	if entry == nil {
		return nil, apperror.NotFound("task not found in quest")
	}
	return entry, nil
}

func (uc *QuestUseCase) invalidateLeaderboard(ctx context.Context, workspaceID string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateLeaderboard(ctx, workspaceID); err != nil {
		uc.logger.Warnf("failed to invalidate leaderboard cache for workspace %s: %v", workspaceID, err)
	}
}

func findQuestEntry(member *entity.WorkspaceUser, questID string) *entity.UserTask {
	for i := range member.Quest {
		if member.Quest[i].ID == questID {
			return &member.Quest[i]
		}
	}
	return nil
}

// questStars sums the star value of every backlog task a quest entry
// references.
func questStars(workspace *entity.Workspace, entry *entity.UserTask) int {
	total := 0
	for _, taskID := range entry.Tasks {
		if task := workspace.FindTask(taskID); task != nil {
			total += task.StarsEarned
		}
	}
	return total
}
