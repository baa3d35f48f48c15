package realtime

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/connectvan/backend/internal/listing"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Client is one connected viewer with its own carousel position.
type Client struct {
	id       string
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	selects  chan int
	carousel *listing.Carousel
}

func newClient(h *Hub, conn *websocket.Conn, carousel *listing.Carousel) *Client {
	return &Client{
		id:       uuid.NewString(),
		hub:      h,
		conn:     conn,
		send:     make(chan []byte, 16),
		selects:  make(chan int, 1),
		carousel: carousel,
	}
}

// writePump is the only goroutine writing to conn. It owns the rotation timer.
func (c *Client) writePump(interval time.Duration) {
	ping := time.NewTicker(pingPeriod)
	rotate := time.NewTicker(interval)
	defer func() {
		ping.Stop()
		rotate.Stop()
		_ = c.conn.Close()
	}()

	if err := c.writeMessage(TypeHeroRotate, c.carousel.Current()); err != nil {
		return
	}

	for {
		select {
		case data, ok := <-c.send:
			if !ok {
				_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.write(data); err != nil {
				return
			}
		case i := <-c.selects:
			frame, err := c.carousel.Select(i)
			if errors.Is(err, listing.ErrIndexOutOfRange) {
				err = c.writeMessage(TypeError, errorPayload{Message: err.Error()})
			} else {
				err = c.writeMessage(TypeHeroRotate, frame)
			}
			if err != nil {
				return
			}
		case <-rotate.C:
			if c.carousel.Len() == 0 {
				continue
			}
			if err := c.writeMessage(TypeHeroRotate, c.carousel.Advance()); err != nil {
				return
			}
		case <-ping.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) writeMessage(msgType string, payload any) error {
	data, err := encode(msgType, payload)
	if err != nil {
		return err
	}
	return c.write(data)
}

func (c *Client) write(data []byte) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func (c *Client) readPump() {
	defer c.conn.Close()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Debug("viewer read failed", zap.String("client_id", c.id), zap.Error(err))
			}
			return
		}
		var msg inbound
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.hub.logger.Debug("bad viewer message", zap.String("client_id", c.id), zap.Error(err))
			continue
		}
		c.handle(msg)
	}
}

func (c *Client) handle(msg inbound) {
	switch msg.Type {
	case TypeHeroSelect:
		i, ok := msg.selectedIndex()
		if !ok {
			return
		}
		// A pending selection is replaced by the newer one.
		select {
		case c.selects <- i:
		default:
			select {
			case <-c.selects:
			default:
			}
			select {
			case c.selects <- i:
			default:
			}
		}
	default:
		c.hub.logger.Debug("unknown viewer message", zap.String("client_id", c.id), zap.String("type", msg.Type))
	}
}
