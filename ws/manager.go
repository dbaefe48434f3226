package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Manager keeps track of active board subscriptions. A user may have several
// open connections (multiple tabs), each keyed by a generated id.
type Manager struct {
	mu          sync.RWMutex
	connections map[uint]map[string]*websocket.Conn // userID -> connID -> conn
}

func NewManager() *Manager {
	return &Manager{connections: make(map[uint]map[string]*websocket.Conn)}
}

// Register adds a connection for the user and returns its id for Unregister.
func (m *Manager) Register(userID uint, conn *websocket.Conn) string {
	connID := uuid.New().String()
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.connections[userID] == nil {
		m.connections[userID] = make(map[string]*websocket.Conn)
	}
	m.connections[userID][connID] = conn
	return connID
}

// Unregister closes and removes one connection of the user.
func (m *Manager) Unregister(userID uint, connID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if conns, ok := m.connections[userID]; ok {
		if conn, ok := conns[connID]; ok {
			_ = conn.Close()
			delete(conns, connID)
		}
		if len(conns) == 0 {
			delete(m.connections, userID)
		}
	}
}

// Broadcast sends payload to every connection of the user. Failed writes are
// logged and the connection dropped; a broadcast never returns an error to
// the caller.
func (m *Manager) Broadcast(userID uint, payload interface{}) {
	b, err := json.Marshal(payload)
	if err != nil {
		log.Printf("ws: cannot marshal event for user %d: %v", userID, err)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for connID, conn := range m.connections[userID] {
		if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
			log.Printf("ws: dropping connection %s of user %d: %v", connID, userID, err)
			_ = conn.Close()
			delete(m.connections[userID], connID)
		}
	}
	if len(m.connections[userID]) == 0 {
		delete(m.connections, userID)
	}
}

// IsConnected returns whether a user has at least one open connection.
func (m *Manager) IsConnected(userID uint) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections[userID]) > 0
}

// ConnectionCount returns the number of open connections for the user.
func (m *Manager) ConnectionCount(userID uint) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections[userID])
}
