package contract

import (
	"context"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
)

// QuestOpAction selects the array mutation applied by a fan-out operation.
type QuestOpAction string

const (
	// QuestOpAdd pushes a fresh quest entry onto matching mentees.
	QuestOpAdd QuestOpAction = "add"
	// QuestOpAddUnique adds the task reference only to mentees not
	// already holding it ($addToSet semantics), so re-runs converge.
	QuestOpAddUnique QuestOpAction = "addUnique"
	// QuestOpRemove pulls quest entries referencing the task from
	// matching mentees.
	QuestOpRemove QuestOpAction = "remove"
)

// QuestTarget selects which mentees a fan-out operation applies to.
// Nil fields match any value; ExcludeTargets inverts the position/planet
// match (used when a task flips global→non-global and must be pulled
// from everyone outside the new explicit target set).
type QuestTarget struct {
	Position       *string
	Planet         *string
	UserID         *string
	HoldingTask    *bool
	ExcludeTargets bool
	AllPositions   []string
	AllPlanets     []string
}

// QuestOp is one fan-out operation against a workspace's embedded
// membership array. A mutation's full op set is executed as a single
// unordered bulk write. Entry is required for add actions; the same
// entry document is pushed to every matching mentee.
type QuestOp struct {
	Action QuestOpAction
	Target QuestTarget
	TaskID string
	Entry  *entity.UserTask
}

// TaskPatch is a partial update of a backlog task's scalar fields.
// Positions/planets changes travel separately as add/remove sets.
type TaskPatch struct {
	Title       *string
	Description *string
	Category    *entity.TaskCategory
	StarsEarned *int
	IsGlobal    *bool
	Link        *string
}

// IWorkspaceRepository is the persistence boundary for workspace
// documents: membership, position taxonomy, backlog and quest fan-out.
type IWorkspaceRepository interface {
	CreateWorkspace(ctx context.Context, workspace *entity.Workspace) error
	GetWorkspaceByID(ctx context.Context, id string) (*entity.Workspace, error)
	GetWorkspacesByMember(ctx context.Context, userID string) ([]entity.Workspace, error)
	GetAdminWorkspaceIDs(ctx context.Context, userID string) ([]string, error)
	DeleteWorkspace(ctx context.Context, id string) error

	AddMember(ctx context.Context, workspaceID string, member entity.WorkspaceUser) error
	FindByMemberToken(ctx context.Context, verificationToken string) (*entity.Workspace, *entity.WorkspaceUser, error)
	VerifyMember(ctx context.Context, workspaceID, verificationToken, userID string) error

	AddPosition(ctx context.Context, workspaceID string, position entity.Position) error

	AppendTask(ctx context.Context, workspaceID string, task entity.Task) error
	UpdateTask(ctx context.Context, workspaceID, taskID string, patch TaskPatch) error
	UpdateTaskTargets(ctx context.Context, workspaceID, taskID string, addPositions, removePositions, addPlanets, removePlanets []string) error
	PullTask(ctx context.Context, workspaceID, taskID string) error

	BulkQuestUpdate(ctx context.Context, workspaceID string, ops []QuestOp) error
	AddQuestEntries(ctx context.Context, workspaceID, userID string, entries []entity.UserTask) error
	SetQuestStatus(ctx context.Context, workspaceID, userID, questID string, status entity.TaskStatus) error
	AddQuestComment(ctx context.Context, workspaceID, userID, questID string, comment entity.Comment) error
	IncrementStars(ctx context.Context, workspaceID, userID string, stars int) error

	Leaderboard(ctx context.Context, workspaceID string) ([]entity.LeaderboardEntry, error)
}
