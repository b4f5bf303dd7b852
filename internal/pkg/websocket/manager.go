package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/takerapp/taker-go/internal/pkg/logger"
	"github.com/takerapp/taker-go/internal/pkg/models"
)

// Client represents a connected websocket client
type Client struct {
	UserID string
	Role   string
	Conn   *websocket.Conn

	writeMu sync.Mutex
}

// Manager manages websocket connections, client state and rooms
type Manager struct {
	sync.RWMutex
	clients  map[string]*Client
	rooms    map[string]map[string]bool // room -> set of user IDs
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new websocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]*Client),
		rooms:   make(map[string]map[string]bool),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and upgrades a new websocket
// connection, then hands the client to handleClient for its read loop.
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*Client) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client.Conn = ws
	m.addClient(client)
	defer m.RemoveClient(client.UserID)

	return handleClient(client)
}

func (m *Manager) authenticateClient(c echo.Context) (*Client, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		// browsers cannot set headers on websocket upgrades
		authHeader = "Bearer " + c.QueryParam("token")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Missing credentials")
	}

	claims, err := m.validateToken(parts[1])
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &Client{
		UserID: fmt.Sprintf("%v", claims["user_id"]),
		Role:   fmt.Sprintf("%v", claims["role"]),
	}, nil
}

func (m *Manager) validateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

func (m *Manager) addClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.UserID] = client
}

// RemoveClient removes a client and clears its room memberships
func (m *Manager) RemoveClient(userID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, userID)
	for room, members := range m.rooms {
		delete(members, userID)
		if len(members) == 0 {
			delete(m.rooms, room)
		}
	}
}

// IsConnected reports whether the user has a live connection
func (m *Manager) IsConnected(userID string) bool {
	m.RLock()
	defer m.RUnlock()
	_, exists := m.clients[userID]
	return exists
}

// JoinRoom adds a user to a room
func (m *Manager) JoinRoom(userID, room string) {
	m.Lock()
	defer m.Unlock()
	if m.rooms[room] == nil {
		m.rooms[room] = make(map[string]bool)
	}
	m.rooms[room][userID] = true
}

// LeaveRoom removes a user from a room
func (m *Manager) LeaveRoom(userID, room string) {
	m.Lock()
	defer m.Unlock()
	if members, ok := m.rooms[room]; ok {
		delete(members, userID)
		if len(members) == 0 {
			delete(m.rooms, room)
		}
	}
}

// SendMessage sends an event frame to a client connection
func (m *Manager) SendMessage(client *Client, event string, data interface{}) error {
	if client == nil || client.Conn == nil {
		return nil
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	client.writeMu.Lock()
	defer client.writeMu.Unlock()
	return client.Conn.WriteJSON(models.WSMessage{
		Event: event,
		Data:  rawData,
	})
}

// SendErrorMessage sends an error frame to a client connection
func (m *Manager) SendErrorMessage(client *Client, code, message string) error {
	return m.SendMessage(client, "error", models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// NotifyClient sends an event to a specific user if connected.
// Returns false when the user has no live connection.
func (m *Manager) NotifyClient(userID, event string, data interface{}) bool {
	m.RLock()
	client, exists := m.clients[userID]
	m.RUnlock()

	if !exists {
		return false
	}

	if err := m.SendMessage(client, event, data); err != nil {
		logger.Warn("Error sending message to client",
			logger.String("user_id", userID),
			logger.String("event", event),
			logger.Err(err))
		return false
	}
	return true
}

// NotifyRoom sends an event to every member of a room
func (m *Manager) NotifyRoom(room, event string, data interface{}) {
	m.RLock()
	members := make([]string, 0, len(m.rooms[room]))
	for userID := range m.rooms[room] {
		members = append(members, userID)
	}
	m.RUnlock()

	for _, userID := range members {
		m.NotifyClient(userID, event, data)
	}
}
