package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
	"github.com/ShaiBatonya/starquestDevServer/internal/handler/http/dto"
	usecasecontract "github.com/ShaiBatonya/starquestDevServer/internal/usecase/contract"
)

// QuestHandlerInterface defines the methods for the quest handler to
// allow interface-based dependency injection (for testing/mocking).
type QuestHandlerInterface interface {
	GetUserQuest(*gin.Context)
	ChangeTaskStatus(*gin.Context)
	MentorChangeTaskStatus(*gin.Context)
	AddCommentToTask(*gin.Context)
}

var _ QuestHandlerInterface = (*QuestHandler)(nil)

type QuestHandler struct {
	questUsecase usecasecontract.IQuestUseCase
}

func NewQuestHandler(questUsecase usecasecontract.IQuestUseCase) *QuestHandler {
	return &QuestHandler{questUsecase: questUsecase}
}

// GetUserQuest returns the caller's quest board grouped by status.
func (h *QuestHandler) GetUserQuest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	board, err := h.questUsecase.GetUserQuest(c.Request.Context(), userID, c.Param("workspaceId"))
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, board)
}

// ChangeTaskStatus is the self-service board move.
func (h *QuestHandler) ChangeTaskStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.ChangeTaskStatusRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	entry, err := h.questUsecase.ChangeTaskStatus(c.Request.Context(), userID, c.Param("workspaceId"), req.QuestID, entity.TaskStatus(req.Status))
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, entry)
}

// MentorChangeTaskStatus is the mentor/admin override move; Done awards
// the task's stars.
func (h *QuestHandler) MentorChangeTaskStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.MentorChangeTaskStatusRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	entry, err := h.questUsecase.MentorChangeTaskStatus(c.Request.Context(), userID, c.Param("workspaceId"), req.MenteeID, req.QuestID, entity.TaskStatus(req.Status))
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, entry)
}

// AddCommentToTask appends a comment to one of the caller's quest entries.
func (h *QuestHandler) AddCommentToTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.AddCommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	comment, err := h.questUsecase.AddCommentToTask(c.Request.Context(), userID, c.Param("workspaceId"), req.QuestID, req.Content)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, comment)
}
