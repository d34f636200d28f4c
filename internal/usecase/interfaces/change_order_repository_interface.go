package interfaces

import (
	"context"

	"aperture_studio/internal/domain/entities"
)

// IChangeOrderRepository abstracts DynamoDB persistence for ChangeOrder.
//
// Save replaces the full document; the usecases mutate in-memory values and
// persist the result after each pipeline step.

type IChangeOrderRepository interface {
	Create(ctx context.Context, o entities.ChangeOrder) (entities.ChangeOrder, error)
	GetByID(ctx context.Context, id string) (entities.ChangeOrder, error)
	Save(ctx context.Context, o entities.ChangeOrder) (entities.ChangeOrder, error)
}
