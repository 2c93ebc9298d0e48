package ws

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ColdCodePlay/FoodFusion/services"
	"github.com/ColdCodePlay/FoodFusion/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// TrackingHandler streams the virtual tracking view over a WebSocket: one
// payload on connect, then one per tick until the order reaches Delivered.
// The status is recomputed from elapsed time each tick; nothing is persisted.
type TrackingHandler struct {
	Orders   *services.OrderService
	Interval time.Duration

	upgrader websocket.Upgrader
}

func NewTrackingHandler(orders *services.OrderService) *TrackingHandler {
	return &TrackingHandler{
		Orders:   orders,
		Interval: 15 * time.Second,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // CORS handled upstream
		},
	}
}

// GET /ws/orders/:id/track
func (h *TrackingHandler) Stream(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid order id"})
		return
	}
	userID := utils.CurrentUserID(c)

	// Authorize before upgrading so the handshake can still carry a status.
	detail, err := h.Orders.Track(uint(id), userID)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, services.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, services.ErrForbidden):
			status = http.StatusForbidden
		}
		c.JSON(status, gin.H{"ok": false, "error": err.Error()})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	if err := conn.WriteJSON(detail); err != nil {
		return
	}
	if detail.Tracking.Status == services.StatusDelivered {
		return
	}

	ticker := time.NewTicker(h.Interval)
	defer ticker.Stop()

	for range ticker.C {
		detail, err := h.Orders.Track(uint(id), userID)
		if err != nil {
			return
		}
		if err := conn.WriteJSON(detail); err != nil {
			return
		}
		if detail.Tracking.Status == services.StatusDelivered {
			return
		}
	}
}
