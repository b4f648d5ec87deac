package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/apperror"
)

func newLeaderboardFixture(cache *fakeLeaderboardCache) (*LeaderboardUseCase, *fakeWorkspaceRepo) {
	repo := newFakeWorkspaceRepo()
	alice := mentee("alice", "pos-frontend", "Nebulae")
	alice.Stars = 10
	bob := mentee("bob", "pos-backend", "Supernova")
	bob.Stars = 25
	repo.workspaces["ws-1"] = testWorkspace("ws-1", adminMember("admin"), alice, bob)
	var uc *LeaderboardUseCase
	if cache != nil {
		uc = NewLeaderboardUseCase(repo, cache, nopLogger{})
	} else {
		uc = NewLeaderboardUseCase(repo, nil, nopLogger{})
	}
	return uc, repo
}

func TestGetLeaderboardRanksByStars(t *testing.T) {
	uc, _ := newLeaderboardFixture(nil)

	entries, err := uc.GetLeaderboard(context.Background(), "alice", "ws-1")
	require.NoError(t, err)
	require.Len(t, entries, 2, "only mentees appear on the leaderboard")

	assert.Equal(t, "bob", entries[0].UserID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.False(t, entries[0].Me)
	assert.Equal(t, "alice", entries[1].UserID)
	assert.Equal(t, 2, entries[1].Rank)
	assert.True(t, entries[1].Me)
}

func TestGetLeaderboardNonMemberForbidden(t *testing.T) {
	uc, _ := newLeaderboardFixture(nil)

	_, err := uc.GetLeaderboard(context.Background(), "outsider", "ws-1")
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
}

func TestGetLeaderboardUsesCacheOnSecondRead(t *testing.T) {
	cache := newFakeLeaderboardCache()
	uc, repo := newLeaderboardFixture(cache)

	first, err := uc.GetLeaderboard(context.Background(), "alice", "ws-1")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.setCalls)

	// Mutate the repo; the cached ranking must still be served.
	repo.workspaces["ws-1"].FindUser("alice").Stars = 100
	second, err := uc.GetLeaderboard(context.Background(), "bob", "ws-1")
	require.NoError(t, err)
	assert.Equal(t, first[0].UserID, second[0].UserID)
	assert.Equal(t, 1, cache.setCalls, "cache hit performs no write")

	// The Me flag is per caller, not part of the cached rows.
	assert.True(t, second[0].Me)

	// After invalidation the fresh ranking is computed.
	require.NoError(t, cache.InvalidateLeaderboard(context.Background(), "ws-1"))
	third, err := uc.GetLeaderboard(context.Background(), "alice", "ws-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", third[0].UserID)
	assert.Equal(t, 100, third[0].Stars)
}

func TestLeaderboardExcludesManagers(t *testing.T) {
	uc, _ := newLeaderboardFixture(nil)

	entries, err := uc.GetLeaderboard(context.Background(), "admin", "ws-1")
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotEqual(t, "admin", entry.UserID)
	}
}
