package engagement

import (
	"testing"
	"time"
)

func newHubClient(h *Hub, userID int64) *Client {
	return &Client{hub: h, send: make(chan Event, 1), userID: userID}
}

func TestHubReconnectClosesDisplacedClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	first := newHubClient(hub, 7)
	second := newHubClient(hub, 7)

	hub.register <- first
	hub.register <- second

	// The displaced client's send channel must close so its writePump can
	// exit and release the connection.
	select {
	case _, ok := <-first.send:
		if ok {
			t.Fatal("expected displaced client's send channel closed, got an event")
		}
	case <-time.After(time.Second):
		t.Fatal("displaced client's send channel was never closed")
	}

	hub.broadcast <- Event{Type: "new_match", UserID: 7}
	select {
	case event := <-second.send:
		if event.Type != "new_match" {
			t.Fatalf("unexpected event type %q", event.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("replacement client did not receive the broadcast")
	}
}

func TestHubStaleUnregisterKeepsReplacement(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	first := newHubClient(hub, 3)
	second := newHubClient(hub, 3)

	hub.register <- first
	hub.register <- second

	// The displaced connection's readPump still unregisters on exit; that
	// must not tear down the replacement.
	hub.unregister <- first

	hub.broadcast <- Event{Type: "new_match", UserID: 3}
	select {
	case <-second.send:
	case <-time.After(time.Second):
		t.Fatal("replacement client was dropped by the stale unregister")
	}
}
