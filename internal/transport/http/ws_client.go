package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/gorilla/websocket"
	"quiz-author/internal/domain"
)

// RoomEvent is a message pushed by the waiting room.
type RoomEvent struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

// Terminal waiting-room event types.
const (
	EventStart  = "start"
	EventClosed = "closed"
	EventError  = "error"
)

// WaitingRoomClient follows a private room over a websocket until the game
// starts or the room closes.
type WaitingRoomClient struct {
	url    string
	dialer *websocket.Dialer
}

func NewWaitingRoomClient(url string) *WaitingRoomClient {
	return &WaitingRoomClient{url: url, dialer: websocket.DefaultDialer}
}

// Wait joins the room with the handoff state and streams events to onEvent.
// It returns nil on a start or closed event and the ctx error on cancellation.
func (c *WaitingRoomClient) Wait(ctx context.Context, state domain.WaitingRoomState, onEvent func(RoomEvent)) error {
	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			// unblocks ReadJSON below
			_ = conn.Close()
		case <-done:
		}
	}()

	if err := conn.WriteJSON(outboundMessage[domain.WaitingRoomState]{Type: "join", Payload: state}); err != nil {
		return fmt.Errorf("join waiting room: %w", err)
	}

	for {
		var event RoomEvent
		if err := conn.ReadJSON(&event); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("read waiting room: %w", err)
		}
		if onEvent != nil {
			onEvent(event)
		}
		switch event.Type {
		case EventStart, EventClosed:
			return nil
		case EventError:
			log.Printf("waiting room error: %s", string(event.Payload))
		}
	}
}
