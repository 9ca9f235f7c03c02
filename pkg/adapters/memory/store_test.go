package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/strategos/pkg/adapters/memory"
	"github.com/aretw0/strategos/pkg/domain"
	"github.com/aretw0/strategos/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunPlanStoreContract(t, memory.New())
}

func TestMemoryStore_CopiesOnLoad(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	plan := &domain.Plan{Steps: []domain.Step{{Action: "move", Args: []string{"r1", "c1", "c2"}}}}
	require.NoError(t, store.Save(ctx, "fp", plan))

	loaded, err := store.Load(ctx, "fp")
	require.NoError(t, err)
	loaded.Steps[0].Args[0] = "mutated"

	again, err := store.Load(ctx, "fp")
	require.NoError(t, err)
	assert.Equal(t, "r1", again.Steps[0].Args[0], "cached plan must not alias loaded copies")
}
