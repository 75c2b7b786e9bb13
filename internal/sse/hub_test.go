package sse

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/imposterparty/imposterparty/internal/model"
	"github.com/imposterparty/imposterparty/internal/testutil"
)

func TestFormatSSEMessage(t *testing.T) {
	tests := []struct {
		name      string
		eventName string
		data      string
		expected  string
	}{
		{
			name:      "single line data",
			eventName: "test-event",
			data:      "hello world",
			expected:  "event: test-event\ndata: hello world\n\n",
		},
		{
			name:      "multi-line data",
			eventName: "session-update",
			data:      "{\n  \"game_id\": \"GAME01\"\n}",
			expected:  "event: session-update\ndata: {\ndata:   \"game_id\": \"GAME01\"\ndata: }\n\n",
		},
		{
			name:      "empty data",
			eventName: "ping",
			data:      "",
			expected:  "event: ping\ndata: \n\n",
		},
		{
			name:      "data with carriage returns",
			eventName: "test",
			data:      "line1\r\nline2",
			expected:  "event: test\ndata: line1\ndata: line2\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatSSEMessage(tt.eventName, tt.data)
			if string(result) != tt.expected {
				t.Errorf("formatSSEMessage(%q, %q)\ngot:  %q\nwant: %q",
					tt.eventName, tt.data, string(result), tt.expected)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "single line",
			input:    "hello",
			expected: []string{"hello"},
		},
		{
			name:     "two lines",
			input:    "line1\nline2",
			expected: []string{"line1", "line2"},
		},
		{
			name:     "trailing newline",
			input:    "line1\n",
			expected: []string{"line1"},
		},
		{
			name:     "empty string",
			input:    "",
			expected: []string{""},
		},
		{
			name:     "crlf line endings",
			input:    "line1\r\nline2\r\n",
			expected: []string{"line1", "line2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitLines(tt.input)
			if len(result) != len(tt.expected) {
				t.Errorf("splitLines(%q) returned %d lines, want %d",
					tt.input, len(result), len(tt.expected))
				return
			}
			for i, line := range result {
				if line != tt.expected[i] {
					t.Errorf("splitLines(%q)[%d] = %q, want %q",
						tt.input, i, line, tt.expected[i])
				}
			}
		})
	}
}

func TestHub_RegisterAndBroadcast(t *testing.T) {
	hub := NewHub("GAME01", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub, "10.0.0.1:1234")
	hub.Register(client)

	// Give the hub time to process registration
	time.Sleep(10 * time.Millisecond)

	if hub.ClientCount() != 1 {
		t.Errorf("ClientCount() = %d, want 1", hub.ClientCount())
	}

	hub.BroadcastEvent("test-event", "test data")

	select {
	case msg := <-client.send:
		expected := "event: test-event\ndata: test data\n\n"
		if string(msg) != expected {
			t.Errorf("client received %q, want %q", string(msg), expected)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("client did not receive message")
	}
}

func TestHub_Unregister(t *testing.T) {
	hub := NewHub("GAME01", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub, "10.0.0.1:1234")
	hub.Register(client)

	time.Sleep(10 * time.Millisecond)

	if hub.ClientCount() != 1 {
		t.Errorf("ClientCount() = %d, want 1", hub.ClientCount())
	}

	hub.Unregister(client)
	time.Sleep(10 * time.Millisecond)

	if hub.ClientCount() != 0 {
		t.Errorf("ClientCount() = %d after unregister, want 0", hub.ClientCount())
	}
}

func TestHub_BroadcastToMultipleClients(t *testing.T) {
	hub := NewHub("GAME01", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client1 := NewClient(hub, "10.0.0.1:1234")
	client2 := NewClient(hub, "10.0.0.2:1234")
	client3 := NewClient(hub, "10.0.0.3:1234")

	hub.Register(client1)
	hub.Register(client2)
	hub.Register(client3)

	time.Sleep(10 * time.Millisecond)

	if hub.ClientCount() != 3 {
		t.Errorf("ClientCount() = %d, want 3", hub.ClientCount())
	}

	hub.BroadcastEvent("update", "data")

	for i, client := range []*Client{client1, client2, client3} {
		select {
		case msg := <-client.send:
			expected := "event: update\ndata: data\n\n"
			if string(msg) != expected {
				t.Errorf("client %d received %q, want %q", i+1, string(msg), expected)
			}
		case <-time.After(100 * time.Millisecond):
			t.Errorf("client %d did not receive message", i+1)
		}
	}
}

func TestHubManager_GetOrCreateHub(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())

	hub1 := manager.GetOrCreateHub("GAME01")
	if hub1 == nil {
		t.Fatal("GetOrCreateHub returned nil")
	}

	// Getting again should return the same hub
	hub2 := manager.GetOrCreateHub("GAME01")
	if hub1 != hub2 {
		t.Error("GetOrCreateHub returned different hub for same game id")
	}

	// Different game id should return different hub
	hub3 := manager.GetOrCreateHub("GAME02")
	if hub3 == hub1 {
		t.Error("GetOrCreateHub returned same hub for different game id")
	}

	manager.RemoveHub("GAME01")
	manager.RemoveHub("GAME02")
}

func TestHubManager_GetHub(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())

	hub := manager.GetHub("NOTEXIST")
	if hub != nil {
		t.Error("GetHub returned non-nil for non-existent hub")
	}

	created := manager.GetOrCreateHub("GAME01")
	got := manager.GetHub("GAME01")
	if got != created {
		t.Error("GetHub returned different hub than GetOrCreateHub")
	}

	manager.RemoveHub("GAME01")
}

func TestHubManager_RemoveHub(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())

	_ = manager.GetOrCreateHub("GAME01")

	manager.RemoveHub("GAME01")

	if manager.GetHub("GAME01") != nil {
		t.Error("Hub still exists after RemoveHub")
	}

	// Removing non-existent hub should not panic
	manager.RemoveHub("NOTEXIST")
}

func TestHubManager_CleanupEmptyHubs(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())

	_ = manager.GetOrCreateHub("EMPTY1")

	hub := manager.GetOrCreateHub("ACTIVE")
	client := NewClient(hub, "10.0.0.1:1234")
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	manager.CleanupEmptyHubs()

	if manager.GetHub("EMPTY1") != nil {
		t.Error("Empty hub still exists after cleanup")
	}

	if manager.GetHub("ACTIVE") == nil {
		t.Error("Active hub was removed during cleanup")
	}

	manager.RemoveHub("ACTIVE")
}

func testBroadcastSession() *model.GameSession {
	return &model.GameSession{
		ID:           "GAME01",
		ImposterWord: "lighthouse",
		Hint:         "tall and coastal",
		ImposterID:   "PLYR02",
		Players: []model.Player{
			{ID: "PLYR01", Name: "Alice"},
			{ID: "PLYR02", Name: "Bob"},
		},
		GameMasterID:     "PLYR01",
		StartingPlayerID: "PLYR01",
	}
}

func TestBroadcaster_SessionUpdateHidesSecrets(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	hub := manager.GetOrCreateHub("GAME01")
	defer manager.RemoveHub("GAME01")
	client := NewClient(hub, "10.0.0.1:1234")
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	broadcaster.BroadcastSessionUpdate(testBroadcastSession())

	select {
	case msg := <-client.send:
		payload := string(msg)
		if !strings.HasPrefix(payload, "event: session-update\n") {
			t.Errorf("unexpected event frame: %q", payload)
		}
		if strings.Contains(payload, "lighthouse") {
			t.Error("session update leaked the secret word")
		}
		if strings.Contains(payload, "tall and coastal") {
			t.Error("session update leaked the hint")
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("client did not receive session update")
	}
}

func TestBroadcaster_GameOverRevealsWordAndImposter(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	hub := manager.GetOrCreateHub("GAME01")
	defer manager.RemoveHub("GAME01")
	client := NewClient(hub, "10.0.0.1:1234")
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	session := testBroadcastSession()
	session.IsGameOver = true
	broadcaster.BroadcastGameOver(session)

	// First frame is the session snapshot, second the terminal reveal
	var frames []string
	for i := 0; i < 2; i++ {
		select {
		case msg := <-client.send:
			frames = append(frames, string(msg))
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("client received %d frames, want 2", len(frames))
		}
	}

	if !strings.HasPrefix(frames[0], "event: session-update\n") {
		t.Errorf("first frame = %q, want session-update", frames[0])
	}
	if !strings.HasPrefix(frames[1], "event: game-over\n") {
		t.Errorf("second frame = %q, want game-over", frames[1])
	}

	var reveal struct {
		ImposterWord string `json:"imposter_word"`
		ImposterName string `json:"imposter_name"`
	}
	data := strings.TrimPrefix(frames[1], "event: game-over\ndata: ")
	if err := json.Unmarshal([]byte(strings.TrimSpace(data)), &reveal); err != nil {
		t.Fatalf("game-over payload is not valid JSON: %v", err)
	}
	if reveal.ImposterWord != "lighthouse" {
		t.Errorf("ImposterWord = %q, want lighthouse", reveal.ImposterWord)
	}
	if reveal.ImposterName != "Bob" {
		t.Errorf("ImposterName = %q, want Bob", reveal.ImposterName)
	}
}

func TestSessionSnapshotFrame(t *testing.T) {
	frame := SessionSnapshot(testBroadcastSession())
	if !strings.HasPrefix(string(frame), "event: session-update\n") {
		t.Errorf("snapshot frame = %q", string(frame))
	}
}
