package debugstream

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestBroadcastReachesConnectedSubscriber(t *testing.T) {
	hub := New(nil)
	server := httptest.NewServer(hub)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.SubscriberCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if hub.SubscriberCount() != 1 {
		t.Fatalf("expected 1 subscriber registered, got %d", hub.SubscriberCount())
	}

	hub.Broadcast(Snapshot{Tick: 7, State: "MovingState", HasPosition: true})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("expected a broadcast message, got error: %v", err)
	}
	if !strings.Contains(string(data), `"tick":7`) {
		t.Fatalf("expected the snapshot to round-trip the tick, got %s", data)
	}
}
