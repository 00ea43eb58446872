package webchat

import (
	"context"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
)

// Conn adapts a WebSocket connection to the channel the session engine
// reads and writes. A reader goroutine owns the socket's read side so
// Receive can honor context cancellation.
type Conn struct {
	ws      *websocket.Conn
	writeMu sync.Mutex
	inbound chan inboundFrame
	done    chan struct{}
	once    sync.Once
}

type inboundFrame struct {
	text string
	err  error
}

// NewConn wraps an upgraded WebSocket connection and starts its read pump.
func NewConn(ws *websocket.Conn) *Conn {
	c := &Conn{
		ws:      ws,
		inbound: make(chan inboundFrame, 1),
		done:    make(chan struct{}),
	}
	go c.readPump()
	return c
}

// readPump forwards frames until the socket fails or the Conn is closed.
// Every send races against done so a session that terminates server-side
// without draining the channel still releases the goroutine.
func (c *Conn) readPump() {
	defer close(c.inbound)
	for {
		msgType, data, err := c.ws.ReadMessage()
		if err != nil {
			select {
			case c.inbound <- inboundFrame{err: fmt.Errorf("webchat: read: %w", err)}:
			case <-c.done:
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}
		select {
		case c.inbound <- inboundFrame{text: string(data)}:
		case <-c.done:
			return
		}
	}
}

// Send writes one text frame.
func (c *Conn) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.ws.WriteMessage(websocket.TextMessage, []byte(text)); err != nil {
		return fmt.Errorf("webchat: write: %w", err)
	}
	return nil
}

// Receive blocks until the visitor sends a text frame, the connection
// drops, or the context is canceled.
func (c *Conn) Receive(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case frame, ok := <-c.inbound:
		if !ok {
			return "", fmt.Errorf("webchat: connection closed")
		}
		if frame.err != nil {
			return "", frame.err
		}
		return frame.text, nil
	}
}

// Close shuts the socket and unblocks the read pump.
func (c *Conn) Close() error {
	var err error
	c.once.Do(func() {
		close(c.done)
		err = c.ws.Close()
	})
	return err
}
