package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/contract"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
	"github.com/ShaiBatonya/starquestDevServer/internal/handler/http/dto"
	usecasecontract "github.com/ShaiBatonya/starquestDevServer/internal/usecase/contract"
)

// TaskHandlerInterface defines the methods for the task handler to allow
// interface-based dependency injection (for testing/mocking).
type TaskHandlerInterface interface {
	CreateTask(*gin.Context)
	CreatePersonalTask(*gin.Context)
	UpdateTask(*gin.Context)
	DeleteTask(*gin.Context)
}

var _ TaskHandlerInterface = (*TaskHandler)(nil)

type TaskHandler struct {
	taskUsecase usecasecontract.ITaskUseCase
}

func NewTaskHandler(taskUsecase usecasecontract.ITaskUseCase) *TaskHandler {
	return &TaskHandler{taskUsecase: taskUsecase}
}

func toCreateTaskInput(req dto.CreateTaskRequest) usecasecontract.CreateTaskInput {
	return usecasecontract.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    entity.TaskCategory(req.Category),
		StarsEarned: req.StarsEarned,
		Planets:     req.Planets,
		Positions:   req.Positions,
		IsGlobal:    req.IsGlobal,
		Link:        req.Link,
	}
}

// CreateTask appends a backlog task and fans it out to matching mentees.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateTaskRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	task, err := h.taskUsecase.CreateTask(c.Request.Context(), userID, c.Param("workspaceId"), toCreateTaskInput(req))
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, task)
}

// CreatePersonalTask appends a backlog task assigned to one mentee.
func (h *TaskHandler) CreatePersonalTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreatePersonalTaskRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	task, err := h.taskUsecase.CreatePersonalTask(c.Request.Context(), userID, c.Param("workspaceId"), req.UserID, toCreateTaskInput(req.CreateTaskRequest))
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, task)
}

// UpdateTask patches a backlog task and reconciles mentee quests with
// the new targeting.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	patch := contract.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		StarsEarned: req.StarsEarned,
		IsGlobal:    req.IsGlobal,
		Link:        req.Link,
	}
	if req.Category != nil {
		category := entity.TaskCategory(*req.Category)
		patch.Category = &category
	}

	task, err := h.taskUsecase.UpdateTask(c.Request.Context(), userID, c.Param("workspaceId"), c.Param("taskId"), usecasecontract.UpdateTaskInput{
		Patch:             patch,
		PositionsToAdd:    req.PositionsToAdd,
		PositionsToRemove: req.PositionsToRemove,
		PlanetsToAdd:      req.PlanetsToAdd,
		PlanetsToRemove:   req.PlanetsToRemove,
	})
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, task)
}

// DeleteTask removes a backlog task and pulls it from every quest.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.taskUsecase.DeleteTask(c.Request.Context(), userID, c.Param("workspaceId"), c.Param("taskId")); err != nil {
		ErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "task deleted")
}
