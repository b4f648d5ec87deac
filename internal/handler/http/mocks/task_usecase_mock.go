package mocks

import (
	"context"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/apperror"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
	usecasecontract "github.com/ShaiBatonya/starquestDevServer/internal/usecase/contract"
)

// MockTaskUsecase is a mock implementation of the task usecase interface
type MockTaskUsecase struct {
	// Control mock behavior
	ShouldFailCreateTask     bool
	ShouldFailCreatePersonal bool
	ShouldFailUpdateTask     bool
	ShouldFailDeleteTask     bool
	ShouldFailAssignMember   bool

	// Return values
	MockTask entity.Task
}

// Ensure MockTaskUsecase implements the correct interface for handler.NewTaskHandler
var _ usecasecontract.ITaskUseCase = (*MockTaskUsecase)(nil)

func NewMockTaskUsecase() *MockTaskUsecase {
	return &MockTaskUsecase{
		MockTask: entity.Task{
			ID:          "mock-task-id",
			Title:       "Mock Task",
			Category:    entity.TaskCategoryLearning,
			StarsEarned: 5,
			Planets:     []string{"Nebulae"},
			Positions:   []string{"mock-position-id"},
		},
	}
}

func (m *MockTaskUsecase) CreateTask(ctx context.Context, actorID, workspaceID string, input usecasecontract.CreateTaskInput) (*entity.Task, error) {
	if m.ShouldFailCreateTask {
		return nil, apperror.Forbidden("only workspace admins and mentors may perform this action")
	}
	task := m.MockTask
	task.Title = input.Title
	return &task, nil
}

func (m *MockTaskUsecase) CreatePersonalTask(ctx context.Context, actorID, workspaceID, targetUserID string, input usecasecontract.CreateTaskInput) (*entity.Task, error) {
	if m.ShouldFailCreatePersonal {
		return nil, apperror.Validation("personal tasks may only target mentees")
	}
	task := m.MockTask
	task.Title = input.Title
	task.UserID = &targetUserID
	return &task, nil
}

func (m *MockTaskUsecase) UpdateTask(ctx context.Context, actorID, workspaceID, taskID string, input usecasecontract.UpdateTaskInput) (*entity.Task, error) {
	if m.ShouldFailUpdateTask {
		return nil, apperror.NotFound("task not found")
	}
	return &m.MockTask, nil
}

func (m *MockTaskUsecase) DeleteTask(ctx context.Context, actorID, workspaceID, taskID string) error {
	if m.ShouldFailDeleteTask {
		return apperror.Forbidden("only workspace admins may perform this action")
	}
	return nil
}

func (m *MockTaskUsecase) AssignTasksToMember(ctx context.Context, workspaceID, userID string) error {
	if m.ShouldFailAssignMember {
		return apperror.Internal("failed to seed member quest")
	}
	return nil
}
