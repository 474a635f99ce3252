package deeplink

import (
	"context"
	"crypto/sha256"
	"errors"
	"strings"
	"sync"

	"github.com/five82/memoix/internal/model"
	"github.com/five82/memoix/internal/store"
)

// ErrConsumed is returned when a link was already dispatched successfully.
var ErrConsumed = errors.New("link already handled")

// LinkState is where a link is in its consume-once lifecycle.
type LinkState int

const (
	Unconsumed LinkState = iota
	Consumed
)

func (s LinkState) String() string {
	if s == Consumed {
		return "consumed"
	}
	return "unconsumed"
}

// LinkHandler is satisfied by *Handler.
type LinkHandler interface {
	HandleLink(ctx context.Context, link string) (model.Record, error)
}

// Controller makes sure each link is acted on once, however many times the
// OS or the user hands it over. A link moves to Consumed only after it was
// imported or found to be present already; failures leave it Unconsumed so
// a retry can succeed.
type Controller struct {
	handler LinkHandler

	mu     sync.Mutex
	states map[[sha256.Size]byte]LinkState
}

// NewController wraps h.
func NewController(h LinkHandler) *Controller {
	return &Controller{handler: h, states: make(map[[sha256.Size]byte]LinkState)}
}

// Dispatch hands link to the handler unless it was consumed before.
// Concurrent dispatches of the same link are serialised.
func (c *Controller) Dispatch(ctx context.Context, link string) (model.Record, error) {
	key := linkKey(link)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.states[key] == Consumed {
		return nil, ErrConsumed
	}
	rec, err := c.handler.HandleLink(ctx, link)
	if err == nil || errors.Is(err, store.ErrDuplicate) {
		c.states[key] = Consumed
	}
	return rec, err
}

// State reports the lifecycle state of link.
func (c *Controller) State(link string) LinkState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.states[linkKey(link)]
}

func linkKey(link string) [sha256.Size]byte {
	return sha256.Sum256([]byte(strings.TrimSpace(link)))
}
