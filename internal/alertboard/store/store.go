package store

import (
	"context"

	"github.com/infofatec/alertboard/internal/alertboard/model"
)

// Store is the persistence contract for alert records. Implementations must
// return model.ErrAlertNotFound for unknown ids and keep List ordering
// newest-first, with a stable tie-break for equal timestamps.
type Store interface {
	Create(ctx context.Context, a *model.Alert) error
	Get(ctx context.Context, id string) (*model.Alert, error)
	List(ctx context.Context) ([]*model.Alert, error)
	Update(ctx context.Context, a *model.Alert) error
	Delete(ctx context.Context, id string) error
}
