package mocks

import (
	"context"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/apperror"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
	usecasecontract "github.com/ShaiBatonya/starquestDevServer/internal/usecase/contract"
)

// MockLeaderboardUsecase is a mock implementation of the leaderboard usecase interface
type MockLeaderboardUsecase struct {
	// Control mock behavior
	ShouldFailGetLeaderboard bool

	// Return values
	MockEntries []entity.LeaderboardEntry
}

// Ensure MockLeaderboardUsecase implements the correct interface for handler.NewLeaderboardHandler
var _ usecasecontract.ILeaderboardUseCase = (*MockLeaderboardUsecase)(nil)

func NewMockLeaderboardUsecase() *MockLeaderboardUsecase {
	return &MockLeaderboardUsecase{
		MockEntries: []entity.LeaderboardEntry{
			{Rank: 1, UserID: "mock-user-id", Name: "Test User", Stars: 25, Me: true},
			{Rank: 2, UserID: "other-user-id", Name: "Other User", Stars: 10},
		},
	}
}

func (m *MockLeaderboardUsecase) GetLeaderboard(ctx context.Context, userID, workspaceID string) ([]entity.LeaderboardEntry, error) {
	if m.ShouldFailGetLeaderboard {
		return nil, apperror.Forbidden("you are not a member of this workspace")
	}
	return m.MockEntries, nil
}
