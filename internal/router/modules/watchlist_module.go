package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/entertainmenthub/user-api/internal/container"
	handlers "github.com/entertainmenthub/user-api/internal/interface/http"
	"github.com/entertainmenthub/user-api/internal/interface/middleware"
	"github.com/entertainmenthub/user-api/pkg/helpers"
)

// WatchlistModule wires the watchlist routes; all of them require a valid
// bearer token.
// POST /api/watchlist, GET /api/watchlist, DELETE /api/watchlist/:itemType/:itemId
type WatchlistModule struct {
	Handler *handlers.WatchlistHandler
	JWT     *helpers.JWTManager
}

func NewWatchlistModule(h *handlers.WatchlistHandler, jwt *helpers.JWTManager) *WatchlistModule {
	return &WatchlistModule{Handler: h, JWT: jwt}
}

func (m *WatchlistModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/watchlist")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP()),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.POST("", m.Handler.Add)
		auth.GET("", m.Handler.List)
		auth.DELETE("/:itemType/:itemId", m.Handler.Remove)
	}
}
