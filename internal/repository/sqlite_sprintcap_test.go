package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/alexanderramin/sprintbudget/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSprintCapRepo_UpsertAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSprintCapRepo(db)
	ctx := context.Background()

	caps, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, caps)

	require.NoError(t, repo.Upsert(ctx, domain.SprintCap{Nr: 3, Cap: 70}))
	require.NoError(t, repo.Upsert(ctx, domain.SprintCap{Nr: 1, Cap: 80}))
	require.NoError(t, repo.Upsert(ctx, domain.SprintCap{Nr: 3, Cap: 40}))

	caps, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.SprintCap{{Nr: 1, Cap: 80}, {Nr: 3, Cap: 40}}, caps)
}

func TestSprintCapRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSprintCapRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, domain.SprintCap{Nr: 2, Cap: 50}))
	require.NoError(t, repo.Delete(ctx, 2))

	err := repo.Delete(ctx, 2)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSprintCapRepo_DeleteAll(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSprintCapRepo(db)
	ctx := context.Background()

	for nr := 1; nr <= 4; nr++ {
		require.NoError(t, repo.Upsert(ctx, domain.SprintCap{Nr: nr, Cap: 80}))
	}
	require.NoError(t, repo.DeleteAll(ctx))

	caps, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, caps)
}

func TestSprintCapRepo_RejectsNegativeCap(t *testing.T) {
	db := testutil.NewTestDB(t)
	err := NewSQLiteSprintCapRepo(db).Upsert(context.Background(), domain.SprintCap{Nr: 1, Cap: -1})
	assert.Error(t, err)
}
