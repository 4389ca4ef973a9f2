package handler

import (
	"shuddhify/internal/usecase"
)

var (
	reportHandler   *ReportHandler
	geoHandler      *GeoHandler
	foodItemHandler *FoodItemHandler
	userHandler     *UserHandler
)

func Setup(
	reportUseCase *usecase.ReportUseCase,
	geoUseCase *usecase.GeoUseCase,
	foodItemUseCase *usecase.FoodItemUseCase,
	userUseCase *usecase.UserUseCase,
) {
	reportHandler = NewReportHandler(reportUseCase)
	geoHandler = NewGeoHandler(geoUseCase)
	foodItemHandler = NewFoodItemHandler(foodItemUseCase)
	userHandler = NewUserHandler(userUseCase)
}

func GetReportHandler() *ReportHandler {
	return reportHandler
}

func GetGeoHandler() *GeoHandler {
	return geoHandler
}

func GetFoodItemHandler() *FoodItemHandler {
	return foodItemHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}
