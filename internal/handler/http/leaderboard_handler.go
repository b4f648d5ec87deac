package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	usecasecontract "github.com/ShaiBatonya/starquestDevServer/internal/usecase/contract"
)

// LeaderboardHandlerInterface defines the methods for the leaderboard
// handler to allow interface-based dependency injection (for
// testing/mocking).
type LeaderboardHandlerInterface interface {
	GetLeaderboard(*gin.Context)
}

var _ LeaderboardHandlerInterface = (*LeaderboardHandler)(nil)

type LeaderboardHandler struct {
	leaderboardUsecase usecasecontract.ILeaderboardUseCase
}

func NewLeaderboardHandler(leaderboardUsecase usecasecontract.ILeaderboardUseCase) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardUsecase: leaderboardUsecase}
}

// GetLeaderboard returns the workspace's mentees ranked by stars.
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entries, err := h.leaderboardUsecase.GetLeaderboard(c.Request.Context(), userID, c.Param("workspaceId"))
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, entries)
}
