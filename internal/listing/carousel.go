package listing

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/connectvan/backend/internal/catalog"
)

var ErrIndexOutOfRange = errors.New("image index out of range")

// Frame is what the carousel shows at a moment.
type Frame struct {
	Index    int    `json:"index"`
	Image    string `json:"image"`
	Fallback bool   `json:"fallback"`
}

// Carousel rotates over the hero images. With no images it shows the fallback
// image and rotation is inert. Safe for concurrent use.
type Carousel struct {
	mu      sync.Mutex
	images  []string
	current int
}

func NewCarousel(images []string) *Carousel {
	return &Carousel{images: slices.Clone(images)}
}

func (c *Carousel) Current() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frameLocked()
}

func (c *Carousel) frameLocked() Frame {
	if len(c.images) == 0 {
		return Frame{Index: 0, Image: catalog.FallbackHeroImage, Fallback: true}
	}
	return Frame{Index: c.current, Image: c.images[c.current]}
}

// Advance moves to the next image, wrapping to 0 after the last.
func (c *Carousel) Advance() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.images) > 0 {
		c.current = (c.current + 1) % len(c.images)
	}
	return c.frameLocked()
}

// Select jumps to index i. The rotation timer is not restarted.
func (c *Carousel) Select(i int) (Frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.images) {
		return c.frameLocked(), ErrIndexOutOfRange
	}
	c.current = i
	return c.frameLocked(), nil
}

// SetImages swaps the collection, keeping the position while it is still valid.
func (c *Carousel) SetImages(images []string) Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.images = slices.Clone(images)
	if c.current >= len(c.images) {
		c.current = 0
	}
	return c.frameLocked()
}

// Len is the number of real images.
func (c *Carousel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.images)
}

// Run advances every interval and passes each new frame to fn until ctx is done.
// Ticks are skipped while the collection is empty.
func (c *Carousel) Run(ctx context.Context, interval time.Duration, fn func(Frame)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if c.Len() == 0 {
				continue
			}
			fn(c.Advance())
		}
	}
}
