package handler

import (
	"shuddhify/internal/usecase"
	"shuddhify/pkg/response"
	"shuddhify/pkg/utils"

	"github.com/labstack/echo/v4"
)

type FoodItemHandler struct {
	foodItemUseCase *usecase.FoodItemUseCase
}

func NewFoodItemHandler(foodItemUseCase *usecase.FoodItemUseCase) *FoodItemHandler {
	return &FoodItemHandler{
		foodItemUseCase: foodItemUseCase,
	}
}

func (h *FoodItemHandler) ListItems(c echo.Context) error {
	category := c.QueryParam("category")
	pagination := utils.GetPaginationParams(c)

	items, total, err := h.foodItemUseCase.ListItems(
		c.Request().Context(),
		category,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"items": items,
		"total": total,
	})
}

func (h *FoodItemHandler) GetItem(c echo.Context) error {
	item, err := h.foodItemUseCase.GetItemByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}
