package service

import (
	"context"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

type ItemService struct {
	itemRepository ports.ItemRepository
}

func NewItemService(itemRepository ports.ItemRepository) *ItemService {
	return &ItemService{itemRepository: itemRepository}
}

func (s *ItemService) GetItem(ctx context.Context, id uint64) (domain.Item, error) {
	return s.itemRepository.GetByID(ctx, id)
}

func (s *ItemService) ListItems(ctx context.Context, filter domain.ItemFilter, offset, limit uint64) ([]domain.Item, error) {
	return s.itemRepository.List(ctx, filter, offset, limit)
}

func (s *ItemService) CreateItem(ctx context.Context, input domain.CreateItemInput) (domain.Item, error) {
	return s.itemRepository.Create(ctx, input)
}

func (s *ItemService) UpdateItem(ctx context.Context, id uint64, input domain.UpdateItemInput) (domain.Item, error) {
	return s.itemRepository.Update(ctx, id, input)
}

func (s *ItemService) DeleteItem(ctx context.Context, id uint64) error {
	return s.itemRepository.Delete(ctx, id)
}

func (s *ItemService) CountItems(ctx context.Context, filter domain.ItemFilter) (int64, error) {
	return s.itemRepository.Count(ctx, filter)
}

var _ ports.ItemService = (*ItemService)(nil)
