package control

import (
	"context"
	"sync"

	"github.com/dyercode/discord-mediaplayer-rpc/internal/domain"
	"go.uber.org/zap"
)

// State is the controller's lifecycle state
type State int

const (
	// StateActive means the pipeline is running and notifications flow
	StateActive State = iota
	// StateDraining means the subscription is gone and the listener is
	// winding down; queued events are still delivered
	StateDraining
)

// Controller drives the shutdown protocol: on the first trigger it
// unsubscribes the listener (best-effort) and cancels the notification
// stream. The presence actor is not touched here; its lifetime is tied to
// the event channel closing, which guarantees the queue drains.
type Controller struct {
	logger *zap.Logger

	mu         sync.Mutex
	state      State
	listener   domain.Listener
	stopStream context.CancelFunc
}

// NewController creates a shutdown controller in the Active state.
func NewController(logger *zap.Logger) *Controller {
	return &Controller{logger: logger, state: StateActive}
}

// Arm binds the controller to the running pipeline: the listener whose
// subscription it will consume and the cancel function that ends the stream.
func (c *Controller) Arm(listener domain.Listener, stopStream context.CancelFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listener = listener
	c.stopStream = stopStream
}

// Trigger moves Active to Draining. Safe to call from any goroutine and
// idempotent: only the first call unsubscribes and stops the stream.
func (c *Controller) Trigger() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateActive {
		return
	}
	c.state = StateDraining

	c.logger.Info("Shutdown triggered, draining")
	if c.listener != nil {
		if err := c.listener.Unsubscribe(); err != nil {
			// Best-effort: a failed unsubscribe must not block shutdown
			c.logger.Warn("Unsubscribe failed", zap.Error(err))
		}
	}
	if c.stopStream != nil {
		c.stopStream()
	}
}

// State returns the current lifecycle state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
