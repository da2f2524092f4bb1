// Package modal owns the visibility and target product of the "fake door"
// dialog, independent from submission state.
package modal

import (
	"sync"

	"interest-capture/internal/catalog"
	"interest-capture/internal/common/logger"
	"interest-capture/internal/submission"
)

// State is the owned modal value. IsOpen implies a non-nil Target.
type State struct {
	IsOpen bool             `json:"isOpen"`
	Target *catalog.Product `json:"target,omitempty"`
}

// Controller pairs the modal state with the modal surface's submission
// machine so stale results never leak across products.
type Controller struct {
	mu      sync.Mutex
	state   State
	machine *submission.Machine
	logger  logger.Logger
}

func NewController(machine *submission.Machine, log logger.Logger) *Controller {
	return &Controller{
		machine: machine,
		logger:  log.WithFields(map[string]interface{}{"component": "modal"}),
	}
}

// Open shows the modal for a product and resets the associated machine,
// clearing any result left over from a previous product. A machine with a
// record still in flight keeps its state; the outcome is simply never
// displayed.
func (c *Controller) Open(product catalog.Product) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.machine.Reset(); err != nil {
		c.logger.Warn("modal opened with a submission still in flight", map[string]interface{}{
			"product": product.ID,
		})
	}

	c.state = State{IsOpen: true, Target: &product}
	return c.state
}

// Close hides the modal. An in-flight submission is not cancelled; its
// network effect still occurs.
func (c *Controller) Close() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = State{}
	return c.state
}

// Current returns the owned modal value.
func (c *Controller) Current() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Machine exposes the modal surface's submission machine.
func (c *Controller) Machine() *submission.Machine {
	return c.machine
}
