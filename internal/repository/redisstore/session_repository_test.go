package redisstore

import (
	"context"
	"os"
	"testing"
	"time"

	"lead-generator-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepositoryAgainstRedis(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	ctx := context.Background()
	rdb := NewClient(url)
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}

	repo := NewSessionRepository(rdb, time.Minute)
	s := &entity.Session{
		Id:        uuid.New(),
		Selection: entity.Selection{Countries: []string{"DE"}, Products: []string{}, Competitors: []string{"ABB"}},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		UpdatedAt: time.Now().UTC().Truncate(time.Second),
	}

	require.NoError(t, repo.Save(ctx, s))
	defer repo.Delete(ctx, s.Id)

	got, found, err := repo.Get(ctx, s.Id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, s.Selection, got.Selection)
	assert.True(t, s.CreatedAt.Equal(got.CreatedAt))

	require.NoError(t, repo.Delete(ctx, s.Id))
	_, found, err = repo.Get(ctx, s.Id)
	require.NoError(t, err)
	assert.False(t, found)
}
