package ports

import (
	"context"

	"taskdesk/internal/core/domain"
)

type ItemRepository interface {
	GetByID(ctx context.Context, id uint64) (domain.Item, error)
	List(ctx context.Context, filter domain.ItemFilter, offset, limit uint64) ([]domain.Item, error)
	Create(ctx context.Context, input domain.CreateItemInput) (domain.Item, error)
	Update(ctx context.Context, id uint64, input domain.UpdateItemInput) (domain.Item, error)
	Delete(ctx context.Context, id uint64) error
	Count(ctx context.Context, filter domain.ItemFilter) (int64, error)
}

type ItemService interface {
	GetItem(ctx context.Context, id uint64) (domain.Item, error)
	ListItems(ctx context.Context, filter domain.ItemFilter, offset, limit uint64) ([]domain.Item, error)
	CreateItem(ctx context.Context, input domain.CreateItemInput) (domain.Item, error)
	UpdateItem(ctx context.Context, id uint64, input domain.UpdateItemInput) (domain.Item, error)
	DeleteItem(ctx context.Context, id uint64) error
	CountItems(ctx context.Context, filter domain.ItemFilter) (int64, error)
}
