package usecase

import (
	"context"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/contract"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
	usecasecontract "github.com/ShaiBatonya/starquestDevServer/internal/usecase/contract"
)

// LeaderboardUseCase serves workspace leaderboards through an optional
// read-through cache.
type LeaderboardUseCase struct {
	workspaceRepo contract.IWorkspaceRepository
	cache         contract.ILeaderboardCache
	logger        usecasecontract.IAppLogger
}

var _ usecasecontract.ILeaderboardUseCase = (*LeaderboardUseCase)(nil)

// NewLeaderboardUseCase creates the leaderboard usecase. cache may be nil
// when no cache backend is configured.
func NewLeaderboardUseCase(workspaceRepo contract.IWorkspaceRepository, cache contract.ILeaderboardCache, logger usecasecontract.IAppLogger) *LeaderboardUseCase {
	return &LeaderboardUseCase{workspaceRepo: workspaceRepo, cache: cache, logger: logger}
}

// GetLeaderboard returns the workspace's mentees ranked by stars. The
// caller's own row is flagged. Cache entries hold the ranked rows
// without the caller flag, which is annotated per request.
func (uc *LeaderboardUseCase) GetLeaderboard(ctx context.Context, userID, workspaceID string) ([]entity.LeaderboardEntry, error) {
	if _, _, err := requireMember(ctx, uc.workspaceRepo, workspaceID, userID); err != nil {
		return nil, err
	}

	entries, ok := uc.cached(ctx, workspaceID)
	if !ok {
		var err error
		entries, err = uc.workspaceRepo.Leaderboard(ctx, workspaceID)
		if err != nil {
			return nil, err
		}
		for i := range entries {
			entries[i].Rank = i + 1
		}
		uc.store(ctx, workspaceID, entries)
	}

	for i := range entries {
		entries[i].Me = entries[i].UserID == userID
	}
	return entries, nil
}

func (uc *LeaderboardUseCase) cached(ctx context.Context, workspaceID string) ([]entity.LeaderboardEntry, bool) {
	if uc.cache == nil {
		return nil, false
	}
	entries, ok, err := uc.cache.GetLeaderboard(ctx, workspaceID)
	if err != nil {
		uc.logger.Warnf("leaderboard cache read failed for workspace %s: %v", workspaceID, err)
		return nil, false
	}
	return entries, ok
}

func (uc *LeaderboardUseCase) store(ctx context.Context, workspaceID string, entries []entity.LeaderboardEntry) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.SetLeaderboard(ctx, workspaceID, entries); err != nil {
		uc.logger.Warnf("leaderboard cache write failed for workspace %s: %v", workspaceID, err)
	}
}
