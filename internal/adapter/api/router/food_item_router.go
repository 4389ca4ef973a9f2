package router

import (
	"shuddhify/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupFoodItemRouter(e *echo.Echo) {
	foodItemHandler := handler.GetFoodItemHandler()

	items := e.Group("/v1/items")
	items.GET("", foodItemHandler.ListItems)
	items.GET("/:id", foodItemHandler.GetItem)
}
