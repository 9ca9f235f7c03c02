package ports

import (
	"context"

	"github.com/aretw0/strategos/pkg/domain"
)

// PlanStore caches solved plans keyed by the (model, problem) fingerprint.
// Load must return domain.ErrPlanNotFound on a miss. Implementations must be
// safe for concurrent use.
type PlanStore interface {
	Save(ctx context.Context, fingerprint string, plan *domain.Plan) error
	Load(ctx context.Context, fingerprint string) (*domain.Plan, error)
	Delete(ctx context.Context, fingerprint string) error
	List(ctx context.Context) ([]string, error)
}
