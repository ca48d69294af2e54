package ports

import (
	"context"

	"github.com/bnema/poolctl/internal/domain"
)

type Journal interface {
	Append(ctx context.Context, record domain.Record) error
	List(ctx context.Context) ([]domain.Record, error)
}

type NopJournal struct{}

func (NopJournal) Append(context.Context, domain.Record) error { return nil }

func (NopJournal) List(context.Context) ([]domain.Record, error) { return nil, nil }
