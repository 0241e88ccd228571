package sse_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"smart-life-agent/internal/logger"
	"smart-life-agent/internal/model"
	"smart-life-agent/internal/sse"
)

func TestSSEManagerAddAndRemoveClient(t *testing.T) {
	// Setup
	manager := sse.NewSSEManager(logger.New())

	// Execute
	channel := manager.AddClient("test@example.com")

	// Verify
	assert.True(t, manager.HasUserConnection("test@example.com"))
	assert.Equal(t, 1, manager.GetUserConnectionCount("test@example.com"))

	manager.RemoveClient("test@example.com", channel)
	assert.False(t, manager.HasUserConnection("test@example.com"))

	// The channel is closed on removal
	_, open := <-channel
	assert.False(t, open)
}

func TestSSEManagerBroadcastTaskToUser(t *testing.T) {
	// Setup
	manager := sse.NewSSEManager(logger.New())
	channel := manager.AddClient("test@example.com")
	defer manager.RemoveClient("test@example.com", channel)

	task := model.NewTaskFromDraft("test@example.com", model.TaskDraft{Title: "Pay rent", Priority: "high"})

	// Execute
	manager.BroadcastTaskToUser("test@example.com", task)

	// Verify
	select {
	case data := <-channel:
		var event map[string]interface{}
		err := json.Unmarshal(data, &event)
		assert.NoError(t, err)
		assert.Equal(t, "task_created", event["type"])

		payload := event["data"].(map[string]interface{})
		assert.Equal(t, "Pay rent", payload["title"])
		assert.Equal(t, "high", payload["priority"])
	case <-time.After(time.Second):
		t.Fatal("expected a broadcast event")
	}
}

func TestSSEManagerBroadcastRunSummaryToUser(t *testing.T) {
	// Setup
	manager := sse.NewSSEManager(logger.New())
	channel := manager.AddClient("test@example.com")
	defer manager.RemoveClient("test@example.com", channel)

	summary := &model.RunSummary{Status: model.RunStatusTasksCreated, TasksCreated: 2}

	// Execute
	manager.BroadcastRunSummaryToUser("test@example.com", summary)

	// Verify
	select {
	case data := <-channel:
		var event map[string]interface{}
		err := json.Unmarshal(data, &event)
		assert.NoError(t, err)
		assert.Equal(t, "agent_run", event["type"])

		payload := event["data"].(map[string]interface{})
		assert.Equal(t, model.RunStatusTasksCreated, payload["status"])
		assert.Equal(t, float64(2), payload["tasks_created"])
	case <-time.After(time.Second):
		t.Fatal("expected a broadcast event")
	}
}

func TestSSEManagerBroadcastScopedToUser(t *testing.T) {
	// Setup
	manager := sse.NewSSEManager(logger.New())
	aliceChannel := manager.AddClient("alice@example.com")
	bobChannel := manager.AddClient("bob@example.com")
	defer manager.RemoveClient("alice@example.com", aliceChannel)
	defer manager.RemoveClient("bob@example.com", bobChannel)

	// Execute
	manager.BroadcastToUser("alice@example.com", "task_created", map[string]string{"title": "Pay rent"})

	// Verify: only alice's channel receives the event
	select {
	case <-aliceChannel:
	case <-time.After(time.Second):
		t.Fatal("expected alice to receive the event")
	}

	select {
	case <-bobChannel:
		t.Fatal("bob must not receive alice's event")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSSEManagerBroadcastWithoutConnections(t *testing.T) {
	// Setup
	manager := sse.NewSSEManager(logger.New())

	// Execute: must be a no-op, not a panic
	manager.BroadcastTaskToUser("nobody@example.com", model.NewTaskFromDraft("nobody@example.com", model.TaskDraft{Title: "Pay rent"}))

	// Verify
	assert.False(t, manager.HasUserConnection("nobody@example.com"))
}

func TestSSEManagerClose(t *testing.T) {
	// Setup
	manager := sse.NewSSEManager(logger.New())
	channel := manager.AddClient("test@example.com")

	// Execute
	manager.Close()

	// Verify
	_, open := <-channel
	assert.False(t, open)
	assert.False(t, manager.HasUserConnection("test@example.com"))
}
