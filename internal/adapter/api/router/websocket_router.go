package router

import (
	"shuddhify/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

// SetupWebSocketRouter mounts the live feed endpoint. Auth is not required;
// the feed only carries already-public report events.
func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler) {
	e.GET("/v1/live", wsHandler.LiveFeed)
}
