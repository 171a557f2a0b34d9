package statemachine

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/pfportal/employer-api/internal/models"
)

// ReturnFSM wraps a return file with its state machine
type ReturnFSM struct {
	returnFile *models.ReturnFile
	fsm        *fsm.FSM
}

// NewReturnFSM creates a new return state machine
func NewReturnFSM(returnFile *models.ReturnFile) *ReturnFSM {
	rfsm := &ReturnFSM{
		returnFile: returnFile,
	}

	rfsm.fsm = fsm.NewFSM(
		returnFile.Status,
		fsm.Events{
			// draft/rejected → in-process (upload / re-upload after rejection)
			{Name: "upload", Src: []string{models.ReturnStatusDraft, models.ReturnStatusRejected}, Dst: models.ReturnStatusInProcess},

			// in-process → approved
			{Name: "approve", Src: []string{models.ReturnStatusInProcess}, Dst: models.ReturnStatusApproved},

			// in-process → rejected
			{Name: "reject", Src: []string{models.ReturnStatusInProcess}, Dst: models.ReturnStatusRejected},
		},
		fsm.Callbacks{},
	)

	return rfsm
}

// Upload transitions the return to in-process state
func (r *ReturnFSM) Upload(ctx context.Context) error {
	if err := r.fsm.Event(ctx, "upload"); err != nil {
		return fmt.Errorf("return cannot be uploaded in current state %s: %w", r.returnFile.Status, err)
	}

	r.returnFile.Status = r.fsm.Current()
	return nil
}

// Approve transitions the return to approved state
func (r *ReturnFSM) Approve(ctx context.Context) error {
	if !r.returnFile.MayApprove() {
		return fmt.Errorf("return cannot be approved in current state: %s", r.returnFile.Status)
	}

	if err := r.fsm.Event(ctx, "approve"); err != nil {
		return fmt.Errorf("failed to approve return: %w", err)
	}

	r.returnFile.Status = r.fsm.Current()
	return nil
}

// Reject transitions the return to rejected state
func (r *ReturnFSM) Reject(ctx context.Context) error {
	if !r.returnFile.MayReject() {
		return fmt.Errorf("return cannot be rejected in current state: %s", r.returnFile.Status)
	}

	if err := r.fsm.Event(ctx, "reject"); err != nil {
		return fmt.Errorf("failed to reject return: %w", err)
	}

	r.returnFile.Status = r.fsm.Current()
	return nil
}

// Current returns the current state
func (r *ReturnFSM) Current() string {
	return r.fsm.Current()
}

// Can checks if a transition is possible
func (r *ReturnFSM) Can(event string) bool {
	return r.fsm.Can(event)
}
