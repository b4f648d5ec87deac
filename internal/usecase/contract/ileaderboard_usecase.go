package usecasecontract

import (
	"context"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
)

// ILeaderboardUseCase defines the interface for workspace leaderboards.
type ILeaderboardUseCase interface {
	GetLeaderboard(ctx context.Context, userID, workspaceID string) ([]entity.LeaderboardEntry, error)
}
