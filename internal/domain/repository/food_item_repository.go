package repository

import (
	"context"

	"shuddhify/internal/domain/entity"
)

type FoodItemRepository interface {
	GetByID(ctx context.Context, id string) (*entity.FoodItem, error)
	List(ctx context.Context, category string, limit, offset int) ([]*entity.FoodItem, int64, error)
}
