package handlers

import (
	"log"
	"net/http"

	"kanban-server/services"
	"kanban-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WSHandler upgrades board subscribers and keeps their connections in the hub
// so task handlers can push change events.
type WSHandler struct {
	mgr    *ws.Manager
	tokens services.TokenGenerator
}

func NewWSHandler(mgr *ws.Manager, tokens services.TokenGenerator) *WSHandler {
	return &WSHandler{mgr: mgr, tokens: tokens}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleBoardWS upgrades to websocket and streams board events to the caller.
// GET /ws?token=<jwt> — browsers cannot set headers on websocket requests, so
// the token travels as a query parameter here.
func (h *WSHandler) HandleBoardWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	claims, err := h.tokens.Parse(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	connID := h.mgr.Register(claims.UserID, conn)
	log.Printf("board subscriber connected: user %d", claims.UserID)

	defer func() {
		h.mgr.Unregister(claims.UserID, connID)
		log.Printf("board subscriber disconnected: user %d", claims.UserID)
	}()

	// The stream is one-way; drain client frames until the peer goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("user %d closed board stream", claims.UserID)
			} else {
				log.Printf("read error from user %d: %v", claims.UserID, err)
			}
			return
		}
	}
}
