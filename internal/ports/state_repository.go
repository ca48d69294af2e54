package ports

import (
	"context"

	"github.com/bnema/poolctl/internal/domain"
)

type StateRepository interface {
	Load(ctx context.Context) (domain.ChainState, error)
	Save(ctx context.Context, state domain.ChainState) error
}
