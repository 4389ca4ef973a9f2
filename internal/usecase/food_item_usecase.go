package usecase

import (
	"context"

	"shuddhify/internal/domain/entity"
	"shuddhify/internal/domain/repository"
)

type FoodItemUseCase struct {
	foodItemRepo repository.FoodItemRepository
}

func NewFoodItemUseCase(foodItemRepo repository.FoodItemRepository) *FoodItemUseCase {
	return &FoodItemUseCase{
		foodItemRepo: foodItemRepo,
	}
}

func (uc *FoodItemUseCase) GetItemByID(ctx context.Context, id string) (*entity.FoodItem, error) {
	return uc.foodItemRepo.GetByID(ctx, id)
}

func (uc *FoodItemUseCase) ListItems(ctx context.Context, category string, page, limit int) ([]*entity.FoodItem, int64, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	return uc.foodItemRepo.List(ctx, category, limit, offset)
}
