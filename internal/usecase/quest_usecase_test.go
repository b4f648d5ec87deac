package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/apperror"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
)

// fakeLeaderboardCache records invalidations for assertions.
type fakeLeaderboardCache struct {
	entries     map[string][]entity.LeaderboardEntry
	invalidated []string
	getCalls    int
	setCalls    int
}

func newFakeLeaderboardCache() *fakeLeaderboardCache {
	return &fakeLeaderboardCache{entries: map[string][]entity.LeaderboardEntry{}}
}

func (f *fakeLeaderboardCache) GetLeaderboard(_ context.Context, workspaceID string) ([]entity.LeaderboardEntry, bool, error) {
	f.getCalls++
	entries, ok := f.entries[workspaceID]
	return entries, ok, nil
}

func (f *fakeLeaderboardCache) SetLeaderboard(_ context.Context, workspaceID string, entries []entity.LeaderboardEntry) error {
	f.setCalls++
	f.entries[workspaceID] = entries
	return nil
}

func (f *fakeLeaderboardCache) InvalidateLeaderboard(_ context.Context, workspaceID string) error {
	delete(f.entries, workspaceID)
	f.invalidated = append(f.invalidated, workspaceID)
	return nil
}

func newQuestFixture(users ...entity.WorkspaceUser) (*QuestUseCase, *fakeWorkspaceRepo, *fakeLeaderboardCache) {
	repo := newFakeWorkspaceRepo()
	repo.workspaces["ws-1"] = testWorkspace("ws-1", users...)
	cache := newFakeLeaderboardCache()
	return NewQuestUseCase(repo, cache, nopLogger{}), repo, cache
}

func seedQuestEntry(repo *fakeWorkspaceRepo, userID, questID string, taskIDs ...string) {
	member := repo.workspaces["ws-1"].FindUser(userID)
	member.Quest = append(member.Quest, entity.UserTask{
		ID:        questID,
		Tasks:     taskIDs,
		Status:    entity.TaskStatusBacklog,
		Comments:  []entity.Comment{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	})
}

func TestGetUserQuestGroupsByStatus(t *testing.T) {
	uc, repo, _ := newQuestFixture(mentee("alice", "pos-frontend", "Nebulae"))
	seedQuestEntry(repo, "alice", "q-1", "t-1")
	seedQuestEntry(repo, "alice", "q-2", "t-2")
	member := repo.workspaces["ws-1"].FindUser("alice")
	member.Quest[1].Status = entity.TaskStatusInProgress

	board, err := uc.GetUserQuest(context.Background(), "alice", "ws-1")
	require.NoError(t, err)

	require.Len(t, board, 5, "every status bucket is present even when empty")
	assert.Len(t, board[entity.TaskStatusBacklog], 1)
	assert.Len(t, board[entity.TaskStatusInProgress], 1)
	assert.Empty(t, board[entity.TaskStatusDone])
}

func TestChangeTaskStatusSelfServiceOnly(t *testing.T) {
	allowed := map[entity.TaskStatus]bool{
		entity.TaskStatusInProgress: true,
		entity.TaskStatusInReview:   true,
		entity.TaskStatusBacklog:    false,
		entity.TaskStatusToDo:       false,
		entity.TaskStatusDone:       false,
	}
	for status, ok := range allowed {
		t.Run(string(status), func(t *testing.T) {
			uc, repo, _ := newQuestFixture(mentee("alice", "pos-frontend", "Nebulae"))
			seedQuestEntry(repo, "alice", "q-1", "t-1")

			entry, err := uc.ChangeTaskStatus(context.Background(), "alice", "ws-1", "q-1", status)
			if ok {
				require.NoError(t, err)
				assert.Equal(t, status, entry.Status)
			} else {
				assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
			}
		})
	}
}

func TestChangeTaskStatusRejectsUnknownStatus(t *testing.T) {
	uc, repo, _ := newQuestFixture(mentee("alice", "pos-frontend", "Nebulae"))
	seedQuestEntry(repo, "alice", "q-1", "t-1")

	_, err := uc.ChangeTaskStatus(context.Background(), "alice", "ws-1", "q-1", "Shipped")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestChangeTaskStatusForeignEntryNotFound(t *testing.T) {
	uc, repo, _ := newQuestFixture(
		mentee("alice", "pos-frontend", "Nebulae"),
		mentee("bob", "pos-backend", "Supernova"),
	)
	seedQuestEntry(repo, "bob", "q-bob", "t-1")

	_, err := uc.ChangeTaskStatus(context.Background(), "alice", "ws-1", "q-bob", entity.TaskStatusInProgress)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestMentorChangeTaskStatusAnyTransition(t *testing.T) {
	uc, repo, _ := newQuestFixture(mentorMember("mentor"), mentee("alice", "pos-frontend", "Nebulae"))
	seedQuestEntry(repo, "alice", "q-1", "t-1")

	entry, err := uc.MentorChangeTaskStatus(context.Background(), "mentor", "ws-1", "alice", "q-1", entity.TaskStatusToDo)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusToDo, entry.Status)
}

func TestMentorDoneAwardsStarsPerCall(t *testing.T) {
	uc, repo, cache := newQuestFixture(mentorMember("mentor"), mentee("alice", "pos-frontend", "Nebulae"))
	repo.workspaces["ws-1"].Backlog = []entity.Task{{ID: "t-1", Title: "Course", StarsEarned: 5}}
	seedQuestEntry(repo, "alice", "q-1", "t-1")

	_, err := uc.MentorChangeTaskStatus(context.Background(), "mentor", "ws-1", "alice", "q-1", entity.TaskStatusDone)
	require.NoError(t, err)

	require.Len(t, repo.starCalls, 1, "exactly one star increment per Done transition")
	assert.Equal(t, starCall{workspaceID: "ws-1", userID: "alice", stars: 5}, repo.starCalls[0])
	assert.Equal(t, 5, repo.workspaces["ws-1"].FindUser("alice").Stars)
	assert.Equal(t, []string{"ws-1"}, cache.invalidated)

	// Reopen and complete again: the award repeats.
	_, err = uc.MentorChangeTaskStatus(context.Background(), "mentor", "ws-1", "alice", "q-1", entity.TaskStatusInProgress)
	require.NoError(t, err)
	_, err = uc.MentorChangeTaskStatus(context.Background(), "mentor", "ws-1", "alice", "q-1", entity.TaskStatusDone)
	require.NoError(t, err)
	assert.Len(t, repo.starCalls, 2)
	assert.Equal(t, 10, repo.workspaces["ws-1"].FindUser("alice").Stars)
}

func TestMentorDoneZeroStarTaskSkipsAward(t *testing.T) {
	uc, repo, cache := newQuestFixture(adminMember("admin"), mentee("alice", "pos-frontend", "Nebulae"))
	repo.workspaces["ws-1"].Backlog = []entity.Task{{ID: "t-1", Title: "Freebie", StarsEarned: 0}}
	seedQuestEntry(repo, "alice", "q-1", "t-1")

	_, err := uc.MentorChangeTaskStatus(context.Background(), "admin", "ws-1", "alice", "q-1", entity.TaskStatusDone)
	require.NoError(t, err)
	assert.Empty(t, repo.starCalls)
	assert.Empty(t, cache.invalidated)
}

func TestMentorChangeTaskStatusMenteeForbidden(t *testing.T) {
	uc, repo, _ := newQuestFixture(
		mentee("alice", "pos-frontend", "Nebulae"),
		mentee("bob", "pos-backend", "Supernova"),
	)
	seedQuestEntry(repo, "bob", "q-1", "t-1")

	_, err := uc.MentorChangeTaskStatus(context.Background(), "alice", "ws-1", "bob", "q-1", entity.TaskStatusDone)
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
}

func TestAddCommentToTask(t *testing.T) {
	uc, repo, _ := newQuestFixture(mentee("alice", "pos-frontend", "Nebulae"))
	seedQuestEntry(repo, "alice", "q-1", "t-1")

	comment, err := uc.AddCommentToTask(context.Background(), "alice", "ws-1", "q-1", "halfway there")
	require.NoError(t, err)
	assert.Equal(t, "alice", comment.UserID)
	assert.Equal(t, "halfway there", comment.Content)

	member := repo.workspaces["ws-1"].FindUser("alice")
	require.Len(t, member.Quest[0].Comments, 1)
}

func TestAddCommentToTaskEmptyContent(t *testing.T) {
	uc, repo, _ := newQuestFixture(mentee("alice", "pos-frontend", "Nebulae"))
	seedQuestEntry(repo, "alice", "q-1", "t-1")

	_, err := uc.AddCommentToTask(context.Background(), "alice", "ws-1", "q-1", "")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}
