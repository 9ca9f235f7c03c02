package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/strategos/pkg/adapters/redis"
	"github.com/aretw0/strategos/pkg/domain"
	"github.com/aretw0/strategos/pkg/ports"
)

func newTestStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	return redis.NewFromClient(client, opts...), mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newTestStore(t)
	ports.RunPlanStoreContract(t, store)
}

func TestRedisStore_TTLExpiry(t *testing.T) {
	store, mr := newTestStore(t, redis.WithTTL(time.Minute))
	ctx := context.Background()

	plan := &domain.Plan{Steps: []domain.Step{{Action: "move", Args: []string{"r1", "c1", "c2"}}}}
	require.NoError(t, store.Save(ctx, "fp", plan))

	// Within the TTL the plan is served.
	loaded, err := store.Load(ctx, "fp")
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())

	// After the TTL the key is gone. The index entry is pruned lazily on a
	// later List once wall-clock time passes the score.
	mr.FastForward(2 * time.Minute)

	_, err = store.Load(ctx, "fp")
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)
}

func TestRedisStore_Prefix(t *testing.T) {
	store, mr := newTestStore(t, redis.WithPrefix("custom:"))
	ctx := context.Background()

	plan := &domain.Plan{Steps: []domain.Step{{Action: "move", Args: []string{"r1", "c1", "c2"}}}}
	require.NoError(t, store.Save(ctx, "fp", plan))

	assert.True(t, mr.Exists("custom:fp"))
}
