package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/strategos/pkg/domain"
)

// RunPlanStoreContract runs a suite of tests verifying that a PlanStore
// implementation adheres to the interface contract.
func RunPlanStoreContract(t *testing.T, store PlanStore) {
	ctx := context.Background()
	fingerprint := "contract-test-" + time.Now().Format("20060102150405")

	plan := &domain.Plan{Steps: []domain.Step{
		{Action: "pick_up_dish", Args: []string{"r1", "d1", "c1"}},
		{Action: "serve_dish", Args: []string{"r1", "d1", "p1", "c1", "c2"}},
	}}

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, fingerprint, plan)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, fingerprint)
		require.NoError(t, err, "Load should not return error")
		require.Equal(t, plan.Len(), loaded.Len())
		assert.Equal(t, plan.Steps, loaded.Steps)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+fingerprint)
		assert.ErrorIs(t, err, domain.ErrPlanNotFound)
	})

	t.Run("Overwrite", func(t *testing.T) {
		shorter := &domain.Plan{Steps: plan.Steps[:1]}
		require.NoError(t, store.Save(ctx, fingerprint, shorter))

		loaded, err := store.Load(ctx, fingerprint)
		require.NoError(t, err)
		assert.Equal(t, 1, loaded.Len())
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, fingerprint, plan))

		err := store.Delete(ctx, fingerprint)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, fingerprint)
		assert.ErrorIs(t, err, domain.ErrPlanNotFound, "Load after Delete should return ErrPlanNotFound")
	})

	t.Run("List", func(t *testing.T) {
		a, b := fingerprint+"-a", fingerprint+"-b"
		require.NoError(t, store.Save(ctx, a, plan))
		require.NoError(t, store.Save(ctx, b, plan))

		keys, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, a)
		assert.Contains(t, keys, b)
	})
}
