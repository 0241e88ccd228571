package sse

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"smart-life-agent/internal/logger"
	"smart-life-agent/internal/model"
)

// SSEManager manages Server-Sent Event connections. Clients subscribe per
// user and receive the tasks created by agent runs as they happen.
type SSEManager struct {
	clients    map[string]map[chan []byte]bool // user email -> connection channels
	clientsMux sync.RWMutex

	logger *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// NewSSEManager creates a new SSE manager
func NewSSEManager(logger *logger.Logger) *SSEManager {
	ctx, cancel := context.WithCancel(context.Background())

	return &SSEManager{
		clients: make(map[string]map[chan []byte]bool),
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// AddClient adds a new client connection for a specific user
func (s *SSEManager) AddClient(userEmail string) chan []byte {
	s.clientsMux.Lock()
	defer s.clientsMux.Unlock()

	if s.clients[userEmail] == nil {
		s.clients[userEmail] = make(map[chan []byte]bool)
	}

	channel := make(chan []byte, 10) // buffered per client
	s.clients[userEmail][channel] = true

	s.logger.Info("Added SSE client for user:", userEmail, "total clients:", len(s.clients[userEmail]))

	return channel
}

// RemoveClient removes a client connection
func (s *SSEManager) RemoveClient(userEmail string, channel chan []byte) {
	s.clientsMux.Lock()
	defer s.clientsMux.Unlock()

	userClients, exists := s.clients[userEmail]
	if !exists {
		return
	}

	delete(userClients, channel)
	close(channel)

	s.logger.Info("Removed SSE client for user:", userEmail, "remaining clients:", len(userClients))

	if len(userClients) == 0 {
		delete(s.clients, userEmail)
	}
}

// BroadcastTaskToUser sends a newly created task to a specific user.
func (s *SSEManager) BroadcastTaskToUser(userEmail string, task *model.Task) {
	s.BroadcastToUser(userEmail, "task_created", task)
}

// BroadcastRunSummaryToUser sends the summary of a completed agent run.
func (s *SSEManager) BroadcastRunSummaryToUser(userEmail string, summary *model.RunSummary) {
	s.BroadcastToUser(userEmail, "agent_run", summary)
}

// BroadcastToUser broadcasts a generic event to a specific user.
func (s *SSEManager) BroadcastToUser(userEmail string, eventType string, data interface{}) {
	s.clientsMux.RLock()
	defer s.clientsMux.RUnlock()

	userClients, exists := s.clients[userEmail]
	if !exists {
		return // no active connections for this user
	}

	event := map[string]interface{}{
		"type": eventType,
		"data": data,
		"time": time.Now().Unix(),
	}

	jsonData, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("Failed to marshal SSE event:", err)
		return
	}

	for channel := range userClients {
		select {
		case channel <- jsonData:
		case <-time.After(5 * time.Second):
			// Client might be disconnected
			s.logger.Warn("Timeout sending event to user:", userEmail)
		}
	}
}

// GetUserConnectionCount returns the number of active connections for a user
func (s *SSEManager) GetUserConnectionCount(userEmail string) int {
	s.clientsMux.RLock()
	defer s.clientsMux.RUnlock()

	return len(s.clients[userEmail])
}

// HasUserConnection checks if a user has active SSE connections
func (s *SSEManager) HasUserConnection(userEmail string) bool {
	return s.GetUserConnectionCount(userEmail) > 0
}

// Close shuts down the SSE manager
func (s *SSEManager) Close() {
	s.cancel()

	s.clientsMux.Lock()
	defer s.clientsMux.Unlock()

	for userEmail, userClients := range s.clients {
		for channel := range userClients {
			close(channel)
		}
		delete(s.clients, userEmail)
	}
}
