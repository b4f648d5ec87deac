package usecasecontract

import (
	"context"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/contract"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
)

// CreateTaskInput describes a new backlog task before fan-out.
type CreateTaskInput struct {
	Title       string
	Description string
	Category    entity.TaskCategory
	StarsEarned int
	Planets     []string
	Positions   []string
	IsGlobal    bool
	Link        *string
}

// UpdateTaskInput is a partial backlog task edit. Position/planet changes
// travel as explicit add/remove sets so the fan-out engine can compute
// which mentees gain or lose the task.
type UpdateTaskInput struct {
	Patch             contract.TaskPatch
	PositionsToAdd    []string
	PositionsToRemove []string
	PlanetsToAdd      []string
	PlanetsToRemove   []string
}

// ITaskUseCase defines the interface for backlog management and the
// task fan-out engine.
type ITaskUseCase interface {
	CreateTask(ctx context.Context, actorID, workspaceID string, input CreateTaskInput) (*entity.Task, error)
	CreatePersonalTask(ctx context.Context, actorID, workspaceID, targetUserID string, input CreateTaskInput) (*entity.Task, error)
	UpdateTask(ctx context.Context, actorID, workspaceID, taskID string, input UpdateTaskInput) (*entity.Task, error)
	DeleteTask(ctx context.Context, actorID, workspaceID, taskID string) error
	AssignTasksToMember(ctx context.Context, workspaceID, userID string) error
}
