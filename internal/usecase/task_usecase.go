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

// TaskUseCase implements backlog management and the fan-out engine that
// keeps mentee quests in sync with backlog targeting.
type TaskUseCase struct {
	workspaceRepo contract.IWorkspaceRepository
	uuidGen       contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
}

var _ usecasecontract.ITaskUseCase = (*TaskUseCase)(nil)

func NewTaskUseCase(workspaceRepo contract.IWorkspaceRepository, uuidGen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *TaskUseCase {
	return &TaskUseCase{workspaceRepo: workspaceRepo, uuidGen: uuidGen, logger: logger}
}

func strPtr(s string) *string { return &s }

// newQuestEntry builds the quest entry pushed to every mentee a fan-out
// operation matches. The entry is shared across the op set, so all
// recipients hold the same quest entry id for the task.
func (uc *TaskUseCase) newQuestEntry(taskID string) *entity.UserTask {
	now := time.Now()
	return &entity.UserTask{
		ID:        uc.uuidGen.NewUUID(),
		Tasks:     []string{taskID},
		Status:    entity.TaskStatusBacklog,
		Comments:  []entity.Comment{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// assignOps builds the op set that hands a new task to its audience. A
// global task reaches every mentee with a single op; a targeted task
// fans out to each (position, planet) combination.
func assignOps(task *entity.Task, entry *entity.UserTask) []contract.QuestOp {
	if task.UserID != nil {
		return []contract.QuestOp{{
			Action: contract.QuestOpAdd,
			Target: contract.QuestTarget{UserID: task.UserID},
			TaskID: task.ID,
			Entry:  entry,
		}}
	}
	if task.IsGlobal {
		return []contract.QuestOp{{
			Action: contract.QuestOpAdd,
			TaskID: task.ID,
			Entry:  entry,
		}}
	}
	ops := make([]contract.QuestOp, 0, len(task.Positions)*len(task.Planets))
	for _, position := range task.Positions {
		for _, planet := range task.Planets {
			ops = append(ops, contract.QuestOp{
				Action: contract.QuestOpAdd,
				Target: contract.QuestTarget{Position: strPtr(position), Planet: strPtr(planet)},
				TaskID: task.ID,
				Entry:  entry,
			})
		}
	}
	return ops
}

// retargetOps builds the op set reconciling mentee quests after a task
// edit. old is the task before the edit; the final position/planet sets
// and global flag are derived from the input. Add operations use the
// unique action so a member already holding the task never receives a
// duplicate entry, which makes the op set safe to re-run.
func retargetOps(old *entity.Task, input usecasecontract.UpdateTaskInput, entry *entity.UserTask) []contract.QuestOp {
	newPositions := applySetDelta(old.Positions, input.PositionsToAdd, input.PositionsToRemove)
	newPlanets := applySetDelta(old.Planets, input.PlanetsToAdd, input.PlanetsToRemove)
	newGlobal := old.IsGlobal
	if input.Patch.IsGlobal != nil {
		newGlobal = *input.Patch.IsGlobal
	}

	var ops []contract.QuestOp
	switch {
	case newGlobal && !old.IsGlobal:
		// Flipped to global: every mentee not yet holding the task gets it.
		ops = append(ops, contract.QuestOp{
			Action: contract.QuestOpAddUnique,
			TaskID: old.ID,
			Entry:  entry,
		})
	case !newGlobal && old.IsGlobal:
		// Flipped off global: pull the task from every mentee outside the
		// explicit target set.
		ops = append(ops, contract.QuestOp{
			Action: contract.QuestOpRemove,
			Target: contract.QuestTarget{
				ExcludeTargets: true,
				AllPositions:   newPositions,
				AllPlanets:     newPlanets,
			},
			TaskID: old.ID,
		})
	case !newGlobal:
		// Targeted both before and after: grant to newly covered
		// (position, planet) pairs, revoke from dropped positions/planets.
		for _, position := range input.PositionsToAdd {
			for _, planet := range newPlanets {
				ops = append(ops, contract.QuestOp{
					Action: contract.QuestOpAddUnique,
					Target: contract.QuestTarget{Position: strPtr(position), Planet: strPtr(planet)},
					TaskID: old.ID,
					Entry:  entry,
				})
			}
		}
		for _, planet := range input.PlanetsToAdd {
			for _, position := range newPositions {
				ops = append(ops, contract.QuestOp{
					Action: contract.QuestOpAddUnique,
					Target: contract.QuestTarget{Position: strPtr(position), Planet: strPtr(planet)},
					TaskID: old.ID,
					Entry:  entry,
				})
			}
		}
		for _, position := range input.PositionsToRemove {
			ops = append(ops, contract.QuestOp{
				Action: contract.QuestOpRemove,
				Target: contract.QuestTarget{Position: strPtr(position)},
				TaskID: old.ID,
			})
		}
		for _, planet := range input.PlanetsToRemove {
			ops = append(ops, contract.QuestOp{
				Action: contract.QuestOpRemove,
				Target: contract.QuestTarget{Planet: strPtr(planet)},
				TaskID: old.ID,
			})
		}
	}
	return ops
}

// removalOps pulls a deleted task from every mentee quest.
func removalOps(taskID string) []contract.QuestOp {
	return []contract.QuestOp{{
		Action: contract.QuestOpRemove,
		TaskID: taskID,
	}}
}

func applySetDelta(base, add, remove []string) []string {
	removed := make(map[string]bool, len(remove))
	for _, r := range remove {
		removed[r] = true
	}
	seen := make(map[string]bool, len(base)+len(add))
	result := make([]string, 0, len(base)+len(add))
	for _, v := range base {
		if !removed[v] && !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	for _, v := range add {
		if !removed[v] && !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}

func (uc *TaskUseCase) execute(ctx context.Context, workspaceID string, ops []contract.QuestOp) error {
	if len(ops) == 0 {
		return nil
	}
	if err := uc.workspaceRepo.BulkQuestUpdate(ctx, workspaceID, ops); err != nil {
		return err
	}
	for _, op := range ops {
		metrics.TaskFanoutOps.WithLabelValues(string(op.Action)).Inc()
	}
	return nil
}

// CreateTask appends a backlog task and fans it out to its audience.
func (uc *TaskUseCase) CreateTask(ctx context.Context, actorID, workspaceID string, input usecasecontract.CreateTaskInput) (*entity.Task, error) {
	workspace, _, err := requireManager(ctx, uc.workspaceRepo, workspaceID, actorID)
	if err != nil {
		return nil, err
	}
	if err := validateTaskInput(workspace, input); err != nil {
		return nil, err
	}

	now := time.Now()
	task := &entity.Task{
		ID:          uc.uuidGen.NewUUID(),
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		StarsEarned: input.StarsEarned,
		Planets:     input.Planets,
		Positions:   input.Positions,
		IsGlobal:    input.IsGlobal,
		Link:        input.Link,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.workspaceRepo.AppendTask(ctx, workspaceID, *task); err != nil {
		return nil, err
	}
	if err := uc.execute(ctx, workspaceID, assignOps(task, uc.newQuestEntry(task.ID))); err != nil {
		return nil, err
	}
	return task, nil
}

// CreatePersonalTask appends a backlog task owned by a single mentee and
// assigns it to them alone, regardless of position or planet.
func (uc *TaskUseCase) CreatePersonalTask(ctx context.Context, actorID, workspaceID, targetUserID string, input usecasecontract.CreateTaskInput) (*entity.Task, error) {
	workspace, _, err := requireManager(ctx, uc.workspaceRepo, workspaceID, actorID)
	if err != nil {
		return nil, err
	}
	target := workspace.FindUser(targetUserID)
	if target == nil {
		return nil, apperror.NotFound("target user is not a member of this workspace")
	}
	if target.Role != entity.WorkspaceRoleMentee {
		return nil, apperror.Validation("personal tasks can only be assigned to mentees")
	}
	if !entity.ValidTaskCategory(string(input.Category)) {
		return nil, apperror.Validation("invalid task category")
	}

	now := time.Now()
	task := &entity.Task{
		ID:          uc.uuidGen.NewUUID(),
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		StarsEarned: input.StarsEarned,
		Planets:     []string{},
		Positions:   []string{},
		UserID:      &targetUserID,
		Link:        input.Link,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.workspaceRepo.AppendTask(ctx, workspaceID, *task); err != nil {
		return nil, err
	}
	if err := uc.execute(ctx, workspaceID, assignOps(task, uc.newQuestEntry(task.ID))); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTask patches backlog task fields and reconciles mentee quests
// with the new targeting in a single bulk write.
func (uc *TaskUseCase) UpdateTask(ctx context.Context, actorID, workspaceID, taskID string, input usecasecontract.UpdateTaskInput) (*entity.Task, error) {
	workspace, _, err := requireManager(ctx, uc.workspaceRepo, workspaceID, actorID)
	if err != nil {
		return nil, err
	}
	old := workspace.FindTask(taskID)
	if old == nil {
		return nil, apperror.NotFound("task not found")
	}
	if old.UserID != nil && (len(input.PositionsToAdd) > 0 || len(input.PlanetsToAdd) > 0 || input.Patch.IsGlobal != nil) {
		return nil, apperror.Validation("personal tasks cannot be retargeted")
	}
	if input.Patch.Category != nil && !entity.ValidTaskCategory(string(*input.Patch.Category)) {
		return nil, apperror.Validation("invalid task category")
	}
	for _, planet := range input.PlanetsToAdd {
		if !entity.ValidPlanet(planet) {
			return nil, apperror.Validation("invalid planet")
		}
	}
	for _, position := range input.PositionsToAdd {
		if !positionExists(workspace, position) {
			return nil, apperror.Validation("position does not exist in this workspace")
		}
	}

	if err := uc.workspaceRepo.UpdateTask(ctx, workspaceID, taskID, input.Patch); err != nil {
		return nil, err
	}
	if err := uc.workspaceRepo.UpdateTaskTargets(ctx, workspaceID, taskID,
		input.PositionsToAdd, input.PositionsToRemove,
		input.PlanetsToAdd, input.PlanetsToRemove,
	); err != nil {
		return nil, err
	}
	if err := uc.execute(ctx, workspaceID, retargetOps(old, input, uc.newQuestEntry(taskID))); err != nil {
		return nil, err
	}

	updated, err := uc.workspaceRepo.GetWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	task := updated.FindTask(taskID)
	if task == nil {
		return nil, apperror.NotFound("task not found")
	}
	return task, nil
}

// DeleteTask removes a backlog task and pulls it from every mentee quest.
func (uc *TaskUseCase) DeleteTask(ctx context.Context, actorID, workspaceID, taskID string) error {
	workspace, actor, err := requireMember(ctx, uc.workspaceRepo, workspaceID, actorID)
	if err != nil {
		return err
	}
	if actor.Role != entity.WorkspaceRoleAdmin {
		return apperror.Forbidden("only workspace admins may delete tasks")
	}
	if workspace.FindTask(taskID) == nil {
		return apperror.NotFound("task not found")
	}
	if err := uc.workspaceRepo.PullTask(ctx, workspaceID, taskID); err != nil {
		return err
	}
	return uc.execute(ctx, workspaceID, removalOps(taskID))
}

// AssignTasksToMember seeds a joining member's quest with every backlog
// task whose targeting matches them. Called on invitation acceptance.
func (uc *TaskUseCase) AssignTasksToMember(ctx context.Context, workspaceID, userID string) error {
	workspace, member, err := requireMember(ctx, uc.workspaceRepo, workspaceID, userID)
	if err != nil {
		return err
	}
	if member.Role != entity.WorkspaceRoleMentee {
		return nil
	}

	entries := make([]entity.UserTask, 0)
	for i := range workspace.Backlog {
		task := &workspace.Backlog[i]
		if !taskMatchesMember(task, member) {
			continue
		}
		entries = append(entries, *uc.newQuestEntry(task.ID))
	}
	if len(entries) == 0 {
		return nil
	}
	return uc.workspaceRepo.AddQuestEntries(ctx, workspaceID, userID, entries)
}

// taskMatchesMember mirrors fan-out targeting for a single member.
func taskMatchesMember(task *entity.Task, member *entity.WorkspaceUser) bool {
	if task.UserID != nil {
		return *task.UserID == member.UserID
	}
	if task.IsGlobal {
		return true
	}
	if member.Position == nil || member.Planet == nil {
		return false
	}
	return containsString(task.Positions, *member.Position) && containsString(task.Planets, *member.Planet)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func validateTaskInput(workspace *entity.Workspace, input usecasecontract.CreateTaskInput) error {
	if !entity.ValidTaskCategory(string(input.Category)) {
		return apperror.Validation("invalid task category")
	}
	if input.StarsEarned < 0 {
		return apperror.Validation("stars earned cannot be negative")
	}
	if !input.IsGlobal {
		if len(input.Positions) == 0 || len(input.Planets) == 0 {
			return apperror.Validation("a targeted task needs at least one position and one planet")
		}
	}
	for _, planet := range input.Planets {
		if !entity.ValidPlanet(planet) {
			return apperror.Validation("invalid planet")
		}
	}
	for _, position := range input.Positions {
		if !positionExists(workspace, position) {
			return apperror.Validation("position does not exist in this workspace")
		}
	}
	return nil
}
