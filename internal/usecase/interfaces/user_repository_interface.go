package interfaces

import (
	"context"

	"sapataria_xpto/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.
//
// GetByEmail resolves through the email-index GSI.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
}
