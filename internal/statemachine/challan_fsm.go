package statemachine

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/pfportal/employer-api/internal/models"
)

// ChallanFSM wraps a challan with its state machine. Paid and cancelled are
// terminal, so paying a cancelled challan (or cancelling a paid one) fails in
// the transition table rather than in scattered status checks.
type ChallanFSM struct {
	challan *models.Challan
	fsm     *fsm.FSM
}

// NewChallanFSM creates a new challan state machine
func NewChallanFSM(challan *models.Challan) *ChallanFSM {
	cfsm := &ChallanFSM{
		challan: challan,
	}

	cfsm.fsm = fsm.NewFSM(
		challan.Status,
		fsm.Events{
			// due → paid
			{Name: "pay", Src: []string{models.ChallanStatusDue}, Dst: models.ChallanStatusPaid},

			// due → cancelled
			{Name: "cancel", Src: []string{models.ChallanStatusDue}, Dst: models.ChallanStatusCancelled},
		},
		fsm.Callbacks{},
	)

	return cfsm
}

// Pay transitions the challan to paid state
func (c *ChallanFSM) Pay(ctx context.Context) error {
	if !c.challan.MayPay() {
		return fmt.Errorf("challan cannot be paid in current state: %s", c.challan.Status)
	}

	if err := c.fsm.Event(ctx, "pay"); err != nil {
		return fmt.Errorf("failed to pay challan: %w", err)
	}

	c.challan.Status = c.fsm.Current()
	return nil
}

// Cancel transitions the challan to cancelled state
func (c *ChallanFSM) Cancel(ctx context.Context) error {
	if !c.challan.MayCancel() {
		return fmt.Errorf("challan cannot be cancelled in current state: %s", c.challan.Status)
	}

	if err := c.fsm.Event(ctx, "cancel"); err != nil {
		return fmt.Errorf("failed to cancel challan: %w", err)
	}

	c.challan.Status = c.fsm.Current()
	return nil
}

// Current returns the current state
func (c *ChallanFSM) Current() string {
	return c.fsm.Current()
}

// Can checks if a transition is possible
func (c *ChallanFSM) Can(event string) bool {
	return c.fsm.Can(event)
}
