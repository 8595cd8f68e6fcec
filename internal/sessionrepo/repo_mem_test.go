package sessionrepo

import (
	"context"
	"testing"
	"time"

	"github.com/go-coinx/coinx/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRepoMem(t *testing.T) {
	t.Parallel()

	repo := NewRepoMem()
	id := uuid.New()

	_, ok := repo.Get(context.Background(), id)
	require.False(t, ok)

	sess := domain.Session{Username: "alice", LastActivity: time.Now()}
	repo.Put(context.Background(), id, sess)

	got, ok := repo.Get(context.Background(), id)
	require.True(t, ok)
	require.Equal(t, "alice", got.Username)

	repo.Delete(context.Background(), id)

	_, ok = repo.Get(context.Background(), id)
	require.False(t, ok)

	// Deleting an absent slot is a no-op.
	repo.Delete(context.Background(), id)
}
