package contract

import (
	"context"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
)

// ILeaderboardCache is an optional read-through cache for workspace
// leaderboards. A miss returns (nil, false, nil).
type ILeaderboardCache interface {
	GetLeaderboard(ctx context.Context, workspaceID string) ([]entity.LeaderboardEntry, bool, error)
	SetLeaderboard(ctx context.Context, workspaceID string, entries []entity.LeaderboardEntry) error
	InvalidateLeaderboard(ctx context.Context, workspaceID string) error
}
