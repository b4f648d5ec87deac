package mocks

import (
	"context"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/apperror"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
	usecasecontract "github.com/ShaiBatonya/starquestDevServer/internal/usecase/contract"
)

// MockQuestUsecase is a mock implementation of the quest usecase interface
type MockQuestUsecase struct {
	// Control mock behavior
	ShouldFailGetUserQuest bool
	ShouldForbidStatusMove bool
	ShouldFailStatusMove   bool
	ShouldFailMentorMove   bool
	ShouldFailAddComment   bool

	// Return values
	MockEntry   entity.UserTask
	MockComment entity.Comment
}

// Ensure MockQuestUsecase implements the correct interface for handler.NewQuestHandler
var _ usecasecontract.IQuestUseCase = (*MockQuestUsecase)(nil)

func NewMockQuestUsecase() *MockQuestUsecase {
	return &MockQuestUsecase{
		MockEntry: entity.UserTask{
			ID:     "mock-quest-id",
			Tasks:  []string{"mock-task-id"},
			Status: entity.TaskStatusInProgress,
		},
		MockComment: entity.Comment{
			UserID:  "mock-user-id",
			Content: "mock comment",
		},
	}
}

func (m *MockQuestUsecase) GetUserQuest(ctx context.Context, userID, workspaceID string) (usecasecontract.QuestBoard, error) {
	if m.ShouldFailGetUserQuest {
		return nil, apperror.Forbidden("you are not a member of this workspace")
	}
	return usecasecontract.QuestBoard{
		entity.TaskStatusBacklog:    {m.MockEntry},
		entity.TaskStatusToDo:       {},
		entity.TaskStatusInProgress: {},
		entity.TaskStatusInReview:   {},
		entity.TaskStatusDone:       {},
	}, nil
}

func (m *MockQuestUsecase) ChangeTaskStatus(ctx context.Context, userID, workspaceID, questID string, newStatus entity.TaskStatus) (*entity.UserTask, error) {
	if m.ShouldForbidStatusMove {
		return nil, apperror.Forbidden("you may only move your own tasks to In Progress or In Review")
	}
	if m.ShouldFailStatusMove {
		return nil, apperror.NotFound("task not found in your quest")
	}
	entry := m.MockEntry
	entry.Status = newStatus
	return &entry, nil
}

func (m *MockQuestUsecase) MentorChangeTaskStatus(ctx context.Context, actorID, workspaceID, menteeID, questID string, newStatus entity.TaskStatus) (*entity.UserTask, error) {
	if m.ShouldFailMentorMove {
		return nil, apperror.Forbidden("only workspace admins and mentors may perform this action")
	}
	entry := m.MockEntry
	entry.Status = newStatus
	return &entry, nil
}

func (m *MockQuestUsecase) AddCommentToTask(ctx context.Context, userID, workspaceID, questID, content string) (*entity.Comment, error) {
	if m.ShouldFailAddComment {
		return nil, apperror.NotFound("task not found in your quest")
	}
	comment := m.MockComment
	comment.Content = content
	return &comment, nil
}
