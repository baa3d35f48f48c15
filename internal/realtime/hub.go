package realtime

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/connectvan/backend/internal/listing"
	"github.com/connectvan/backend/internal/store"
)

// Hub owns the set of connected viewers. Register, unregister and fan-out all
// happen on the Run goroutine; it is the only writer to a client's send channel.
type Hub struct {
	logger   *zap.Logger
	store    *store.CatalogStore
	interval time.Duration

	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	changes    chan store.Change
	done       chan struct{}
}

func NewHub(logger *zap.Logger, cs *store.CatalogStore, rotateInterval time.Duration) *Hub {
	return &Hub{
		logger:     logger,
		store:      cs,
		interval:   rotateInterval,
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		changes:    make(chan store.Change, 32),
		done:       make(chan struct{}),
	}
}

// Run serves the hub until ctx is cancelled, then disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	unsubscribe := h.store.Subscribe(func(ch store.Change) {
		select {
		case h.changes <- ch:
		default:
			h.logger.Warn("realtime change dropped", zap.String("collection", ch.Collection))
		}
	})
	defer func() {
		unsubscribe()
		for c := range h.clients {
			h.drop(c)
		}
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.logger.Debug("viewer connected", zap.String("client_id", c.id), zap.Int("viewers", len(h.clients)))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
				h.logger.Debug("viewer disconnected", zap.String("client_id", c.id), zap.Int("viewers", len(h.clients)))
			}
		case ch := <-h.changes:
			h.handleChange(ctx, ch)
		}
	}
}

func (h *Hub) drop(c *Client) {
	delete(h.clients, c)
	close(c.send)
}

func (h *Hub) handleChange(ctx context.Context, ch store.Change) {
	if ch.Collection != store.CollectionHeroImages {
		data, err := encode(TypeCatalogChanged, changedPayload{Collection: ch.Collection})
		if err != nil {
			h.logger.Error("encode change", zap.Error(err))
			return
		}
		for c := range h.clients {
			h.deliver(c, data)
		}
		return
	}

	images, err := h.store.HeroImages(ctx)
	if err != nil {
		h.logger.Error("reload hero images", zap.Error(err))
		return
	}
	for c := range h.clients {
		frame := c.carousel.SetImages(images)
		data, err := encode(TypeHeroRotate, frame)
		if err != nil {
			h.logger.Error("encode frame", zap.Error(err))
			return
		}
		h.deliver(c, data)
	}
}

// deliver never blocks the hub: a viewer that cannot keep up is disconnected.
func (h *Hub) deliver(c *Client, data []byte) {
	select {
	case c.send <- data:
	default:
		h.logger.Warn("viewer too slow, disconnecting", zap.String("client_id", c.id))
		h.drop(c)
	}
}

// Serve attaches conn to the hub and blocks until the viewer goes away.
func (h *Hub) Serve(ctx context.Context, conn *websocket.Conn) {
	images, err := h.store.HeroImages(ctx)
	if err != nil {
		h.logger.Error("load hero images for viewer", zap.Error(err))
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "catalog unavailable"))
		_ = conn.Close()
		return
	}
	c := newClient(h, conn, listing.NewCarousel(images))

	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()
		return
	}

	go c.writePump(h.interval)
	c.readPump()

	select {
	case h.unregister <- c:
	case <-h.done:
	}
}
