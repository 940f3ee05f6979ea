// internal/workflow/engine.go
package workflow

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/model"
)

// Event is a workflow event requested against a requisition.
type Event string

const (
	EventSubmit       Event = "submit"
	EventStartReview  Event = "start_review"
	EventMarkReviewed Event = "mark_reviewed"
	EventApprove      Event = "approve"
	EventReject       Event = "reject"
	EventCancel       Event = "cancel"
	EventReceive      Event = "receive"
	EventComplete     Event = "complete"
)

// Events lists every defined workflow event.
var Events = []Event{
	EventSubmit,
	EventStartReview,
	EventMarkReviewed,
	EventApprove,
	EventReject,
	EventCancel,
	EventReceive,
	EventComplete,
}

// transitions is the complete state machine. Any (status, event) pair not
// present here is rejected with InvalidTransitionError, regardless of what
// the guard would allow for the actor.
var transitions = map[model.RequisitionStatus]map[Event]model.RequisitionStatus{
	model.StatusDraft: {
		EventSubmit: model.StatusPending,
	},
	model.StatusPending: {
		EventStartReview: model.StatusUnderReview,
		EventApprove:     model.StatusApproved,
		EventReject:      model.StatusRejected,
		EventCancel:      model.StatusCancelled,
	},
	model.StatusUnderReview: {
		EventMarkReviewed: model.StatusReviewed,
		EventApprove:      model.StatusApproved,
		EventReject:       model.StatusRejected,
		EventCancel:       model.StatusCancelled,
	},
	model.StatusReviewed: {
		EventApprove: model.StatusApproved,
		EventReject:  model.StatusRejected,
		EventCancel:  model.StatusCancelled,
	},
	model.StatusApproved: {
		EventReceive:  model.StatusPartiallyReceived,
		EventComplete: model.StatusCompleted,
	},
	model.StatusPartiallyReceived: {
		EventReceive:  model.StatusPartiallyReceived,
		EventComplete: model.StatusCompleted,
	},
}

// Next returns the status the event leads to from the given status, if the
// transition is defined.
func Next(from model.RequisitionStatus, event Event) (model.RequisitionStatus, bool) {
	next, ok := transitions[from][event]
	return next, ok
}

// TransitionInput carries the caller-supplied inputs of an event. Comment is
// mandatory for reject and cancel.
type TransitionInput struct {
	Comment string
}

// Changes holds the field updates produced by a transition. Only non-zero
// fields changed; the caller persists exactly these, conditioned on the
// requisition still being in the status the changes were computed from.
type Changes struct {
	Event       Event
	FromStatus  model.RequisitionStatus
	Status      model.RequisitionStatus
	SubmittedAt *time.Time
	ReviewedAt  *time.Time
	ApprovedAt  *time.Time
	ReviewerID  *uuid.UUID
	ApproverID  *uuid.UUID
	ClosedByID  *uuid.UUID
	Comment     string
}

// Actor identifies the member requesting a transition within the
// requisition's organization.
type Actor struct {
	ID   uuid.UUID
	Role model.Role
}

// AttemptTransition composes the permission guard and the lifecycle engine.
// It is pure: on success it returns the field updates to persist, and on any
// failure the requisition is untouched. Checks run strictest first: the
// state machine, then the guard, then input validation.
func AttemptTransition(req *model.Requisition, event Event, actor Actor, input TransitionInput, now time.Time) (*Changes, error) {
	next, ok := Next(req.Status, event)
	if !ok {
		return nil, &InvalidTransitionError{From: req.Status, Event: event}
	}

	if !CanTransition(actor.Role, actor.ID, req, event) {
		return nil, &PermissionError{Event: event}
	}

	if err := validate(req, event, input); err != nil {
		return nil, err
	}

	changes := &Changes{
		Event:      event,
		FromStatus: req.Status,
		Status:     next,
		Comment:    strings.TrimSpace(input.Comment),
	}

	switch event {
	case EventSubmit:
		changes.SubmittedAt = &now
	case EventStartReview:
		changes.ReviewerID = &actor.ID
	case EventMarkReviewed:
		changes.ReviewedAt = &now
		changes.ReviewerID = &actor.ID
	case EventApprove:
		changes.ApprovedAt = &now
		changes.ApproverID = &actor.ID
	case EventReject, EventCancel:
		changes.ClosedByID = &actor.ID
	}

	return changes, nil
}

// validate enforces the per-event input rules.
func validate(req *model.Requisition, event Event, input TransitionInput) error {
	switch event {
	case EventSubmit:
		if len(req.Items) == 0 {
			return &ValidationError{Field: "items", Reason: "at least one line item is required"}
		}
		if strings.TrimSpace(req.Title) == "" {
			return &ValidationError{Field: "title", Reason: "is required"}
		}
		if req.ProjectID == uuid.Nil {
			return &ValidationError{Field: "project_id", Reason: "is required"}
		}
		if req.ExpenseAccountID == uuid.Nil {
			return &ValidationError{Field: "expense_account_id", Reason: "is required"}
		}
	case EventReject, EventCancel:
		if strings.TrimSpace(input.Comment) == "" {
			return &ValidationError{Field: "comment", Reason: "a reason is required"}
		}
	}
	return nil
}
