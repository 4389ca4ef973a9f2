package handler

import (
	"shuddhify/internal/usecase"
	"shuddhify/pkg/response"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

// AuthStatus reports whether the caller presented a valid token. Runs behind
// OptionalAuthenticate, so an anonymous caller still gets a 200.
func (h *UserHandler) AuthStatus(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return response.Success(c, map[string]interface{}{
			"is_authenticated": false,
			"user":             nil,
		})
	}

	user, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Success(c, map[string]interface{}{
			"is_authenticated": true,
			"user":             nil,
		})
	}

	return response.Success(c, map[string]interface{}{
		"is_authenticated": true,
		"user": map[string]interface{}{
			"id":      user.ID,
			"name":    user.Name,
			"email":   user.Email,
			"picture": user.Picture,
		},
	})
}
