package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/realtime"
)

// ScheduleWSHandler streams refresh hints for a stylist's schedule. Clients
// get a bare {"type":"refresh"} and refetch the day; no state rides on the
// socket, so a dropped or reordered message costs nothing.
type ScheduleWSHandler struct {
	hub *realtime.Hub
}

func NewScheduleWSHandler(hub *realtime.Hub) *ScheduleWSHandler {
	return &ScheduleWSHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CORS is enforced at the API layer
	CheckOrigin: func(*http.Request) bool { return true },
}

func (h *ScheduleWSHandler) Stream(c *gin.Context) {
	stylistID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid stylist id.")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	notify := make(chan struct{}, 1)
	done := make(chan struct{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	unsubscribe := h.hub.Subscribe(ctx, uint(stylistID), func() {
		select {
		case notify <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	// read pump only detects the peer going away
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case <-notify:
			if err := conn.WriteJSON(gin.H{"type": "refresh"}); err != nil {
				return
			}
		}
	}
}
