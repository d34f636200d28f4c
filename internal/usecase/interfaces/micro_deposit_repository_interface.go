package interfaces

import (
	"context"

	"aperture_studio/internal/domain/entities"
)

// IMicroDepositRepository abstracts DynamoDB persistence for MicroDeposit.
//
// The webhook path resolves deposits by the processor's payment intent id
// (GSI), not by primary key.

type IMicroDepositRepository interface {
	Create(ctx context.Context, d entities.MicroDeposit) (entities.MicroDeposit, error)
	GetByID(ctx context.Context, id string) (entities.MicroDeposit, error)
	GetByPaymentIntentID(ctx context.Context, intentID string) (entities.MicroDeposit, error)
	ListByChangeOrderID(ctx context.Context, changeOrderID string) ([]entities.MicroDeposit, error)
	Save(ctx context.Context, d entities.MicroDeposit) (entities.MicroDeposit, error)
}
