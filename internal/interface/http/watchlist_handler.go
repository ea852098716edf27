package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/entertainmenthub/user-api/internal/application"
	"github.com/entertainmenthub/user-api/internal/domain/entity"
	"github.com/entertainmenthub/user-api/pkg/response"
	"github.com/entertainmenthub/user-api/pkg/validation"
)

type WatchlistHandler struct {
	Svc    *application.WatchlistService
	Logger *logrus.Logger
}

func NewWatchlistHandler(svc *application.WatchlistService, logger *logrus.Logger) *WatchlistHandler {
	return &WatchlistHandler{Svc: svc, Logger: logger}
}

type watchlistItemRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	ItemType string `json:"itemType" binding:"required"`
}

// Add POST /api/watchlist
func (h *WatchlistHandler) Add(c *gin.Context) {
	var req watchlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	id := identityFromCtx(c)
	item := entity.WatchlistItem{ItemID: req.ItemID, ItemType: req.ItemType}
	if err := h.Svc.AddItem(c.Request.Context(), id, item); err != nil {
		h.writeError(c, id, err, "add to watchlist failed")
		return
	}

	response.WriteSuccess[any](c, http.StatusOK, nil, "Item added to watchlist successfully!", nil)
}

// List GET /api/watchlist
func (h *WatchlistHandler) List(c *gin.Context) {
	id := identityFromCtx(c)
	items, err := h.Svc.ListItems(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, id, err, "get watchlist failed")
		return
	}

	response.WriteSuccess(c, http.StatusOK, items, "watchlist", map[string]any{"count": len(items)})
}

// Remove DELETE /api/watchlist/:itemType/:itemId
func (h *WatchlistHandler) Remove(c *gin.Context) {
	id := identityFromCtx(c)
	itemType := c.Param("itemType")
	itemID := c.Param("itemId")
	if err := h.Svc.RemoveItem(c.Request.Context(), id, itemType, itemID); err != nil {
		h.writeError(c, id, err, "remove from watchlist failed")
		return
	}

	response.WriteSuccess[any](c, http.StatusOK, nil, "Item removed from watchlist successfully!", nil)
}

func (h *WatchlistHandler) writeError(c *gin.Context, id application.Identity, err error, logMsg string) {
	if errors.Is(err, application.ErrUserNotFound) {
		response.WriteError[any](c, http.StatusNotFound, "user not found", nil)
		return
	}
	h.Logger.WithError(err).WithField("user_id", id.UserID).Error(logMsg)
	response.WriteError[any](c, http.StatusInternalServerError, "watchlist operation failed", nil)
}
