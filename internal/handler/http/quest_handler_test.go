package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	handler "github.com/ShaiBatonya/starquestDevServer/internal/handler/http"
	dto "github.com/ShaiBatonya/starquestDevServer/internal/handler/http/dto"
	mocks "github.com/ShaiBatonya/starquestDevServer/internal/handler/http/mocks"
)

// injectUser stands in for the auth middleware on protected routes.
func injectUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func setupQuestRouter(mockUsecase *mocks.MockQuestUsecase) *gin.Engine {
	h := handler.NewQuestHandler(mockUsecase)
	r := gin.New()
	g := r.Group("/workspaces/:workspaceId/quest", injectUser("mock-user-id"))
	g.GET("", h.GetUserQuest)
	g.PATCH("/status", h.ChangeTaskStatus)
	g.PATCH("/mentor/status", h.MentorChangeTaskStatus)
	g.POST("/comments", h.AddCommentToTask)
	return r
}

func TestGetUserQuest(t *testing.T) {
	mockUsecase := mocks.NewMockQuestUsecase()
	r := setupQuestRouter(mockUsecase)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/workspaces/ws-1/quest", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock-quest-id")
	assert.Contains(t, w.Body.String(), "Backlog")
}

func TestGetUserQuest_NotMember(t *testing.T) {
	mockUsecase := mocks.NewMockQuestUsecase()
	mockUsecase.ShouldFailGetUserQuest = true
	r := setupQuestRouter(mockUsecase)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/workspaces/ws-1/quest", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "not a member")
}

func patchJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestChangeTaskStatus(t *testing.T) {
	mockUsecase := mocks.NewMockQuestUsecase()
	r := setupQuestRouter(mockUsecase)

	w := patchJSON(r, "/workspaces/ws-1/quest/status", dto.ChangeTaskStatusRequest{
		QuestID: "mock-quest-id",
		Status:  "In Progress",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "In Progress")
}

func TestChangeTaskStatus_UnknownStatus(t *testing.T) {
	mockUsecase := mocks.NewMockQuestUsecase()
	r := setupQuestRouter(mockUsecase)

	w := patchJSON(r, "/workspaces/ws-1/quest/status", dto.ChangeTaskStatusRequest{
		QuestID: "mock-quest-id",
		Status:  "Bogus",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "taskstatus")
}

func TestChangeTaskStatus_Forbidden(t *testing.T) {
	mockUsecase := mocks.NewMockQuestUsecase()
	mockUsecase.ShouldForbidStatusMove = true
	r := setupQuestRouter(mockUsecase)

	w := patchJSON(r, "/workspaces/ws-1/quest/status", dto.ChangeTaskStatusRequest{
		QuestID: "mock-quest-id",
		Status:  "Done",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "only move your own tasks")
}

func TestChangeTaskStatus_UnknownQuest(t *testing.T) {
	mockUsecase := mocks.NewMockQuestUsecase()
	mockUsecase.ShouldFailStatusMove = true
	r := setupQuestRouter(mockUsecase)

	w := patchJSON(r, "/workspaces/ws-1/quest/status", dto.ChangeTaskStatusRequest{
		QuestID: "missing",
		Status:  "In Progress",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestMentorChangeTaskStatus(t *testing.T) {
	mockUsecase := mocks.NewMockQuestUsecase()
	r := setupQuestRouter(mockUsecase)

	w := patchJSON(r, "/workspaces/ws-1/quest/mentor/status", dto.MentorChangeTaskStatusRequest{
		MenteeID: "mentee-id",
		QuestID:  "mock-quest-id",
		Status:   "Done",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Done")
}

func TestMentorChangeTaskStatus_NotMentor(t *testing.T) {
	mockUsecase := mocks.NewMockQuestUsecase()
	mockUsecase.ShouldFailMentorMove = true
	r := setupQuestRouter(mockUsecase)

	w := patchJSON(r, "/workspaces/ws-1/quest/mentor/status", dto.MentorChangeTaskStatusRequest{
		MenteeID: "mentee-id",
		QuestID:  "mock-quest-id",
		Status:   "Done",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "admins and mentors")
}

func TestAddCommentToTask(t *testing.T) {
	mockUsecase := mocks.NewMockQuestUsecase()
	r := setupQuestRouter(mockUsecase)

	body, _ := json.Marshal(dto.AddCommentRequest{
		QuestID: "mock-quest-id",
		Content: "shipped the first draft",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/workspaces/ws-1/quest/comments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "shipped the first draft")
}

func TestAddCommentToTask_EmptyContent(t *testing.T) {
	mockUsecase := mocks.NewMockQuestUsecase()
	r := setupQuestRouter(mockUsecase)

	body, _ := json.Marshal(dto.AddCommentRequest{QuestID: "mock-quest-id"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/workspaces/ws-1/quest/comments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Content")
}
