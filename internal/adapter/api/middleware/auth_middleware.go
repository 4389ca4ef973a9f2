package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"shuddhify/internal/usecase"
	"shuddhify/pkg/logger"
)

type AuthMiddleware struct {
	authClient  *auth.Client
	userUseCase *usecase.UserUseCase
}

func NewAuthMiddleware(authClient *auth.Client, userUseCase *usecase.UserUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		authClient:  authClient,
		userUseCase: userUseCase,
	}
}

// Authenticate verifies the Bearer token and attaches the caller's profile,
// creating it on first authenticated access.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		token, err := m.authClient.VerifyIDToken(c.Request().Context(), parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("uid", token.UID)
		c.Set("email", claimString(token, "email"))

		user, err := m.userUseCase.EnsureProfile(
			c.Request().Context(),
			token.UID,
			claimString(token, "email"),
			claimString(token, "name"),
			claimString(token, "picture"),
		)
		if err != nil {
			logger.Error("failed to attach user profile for %s: %v", token.UID, err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load user profile")
		}
		c.Set("user", user)

		return next(c)
	}
}

// OptionalAuthenticate sets the caller identity when a valid token is present
// and continues anonymously otherwise.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return next(c)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return next(c)
		}

		token, err := m.authClient.VerifyIDToken(c.Request().Context(), parts[1])
		if err != nil {
			return next(c)
		}

		c.Set("uid", token.UID)
		c.Set("email", claimString(token, "email"))

		return next(c)
	}
}

func claimString(token *auth.Token, key string) string {
	if v, ok := token.Claims[key].(string); ok {
		return v
	}
	return ""
}
