package usecasecontract

import (
	"context"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
)

// QuestBoard groups a member's quest entries by status for board display.
type QuestBoard map[entity.TaskStatus][]entity.UserTask

// IQuestUseCase defines the interface for per-member quest tracking.
type IQuestUseCase interface {
	GetUserQuest(ctx context.Context, userID, workspaceID string) (QuestBoard, error)
	ChangeTaskStatus(ctx context.Context, userID, workspaceID, questID string, newStatus entity.TaskStatus) (*entity.UserTask, error)
	MentorChangeTaskStatus(ctx context.Context, actorID, workspaceID, menteeID, questID string, newStatus entity.TaskStatus) (*entity.UserTask, error)
	AddCommentToTask(ctx context.Context, userID, workspaceID, questID, content string) (*entity.Comment, error)
}
