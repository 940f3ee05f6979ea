// internal/workflow/guard.go
package workflow

import (
	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/model"
)

// CanTransition decides whether the actor may request the event on the
// requisition, given their role in its organization. It is pure and total:
// every (role, ownership, status) combination maps to a deterministic
// answer. It does not consult the state machine; undefined transitions are
// rejected separately and take precedence.
//
// The core subtlety is the conflict-of-interest rule: reviewers and
// approvers never process their own submissions. super_admin is exempt and
// may also approve directly from pending or under_review, a deliberate
// bypass of the review step.
func CanTransition(role model.Role, actorID uuid.UUID, req *model.Requisition, event Event) bool {
	isOwner := req.SubmittedByID == actorID

	for _, allowed := range AllowedEvents(role, isOwner, req.Status) {
		if allowed == event {
			return true
		}
	}
	return false
}

// AllowedEvents returns the permitted event set for a (role, ownership,
// status) triple. The result is deterministic and possibly empty.
func AllowedEvents(role model.Role, isOwner bool, status model.RequisitionStatus) []Event {
	var events []Event

	// Owners submit their own drafts regardless of role.
	if isOwner && status == model.StatusDraft {
		events = append(events, EventSubmit)
	}

	switch role {
	case model.RoleSuperAdmin:
		// Full workflow control at any non-terminal state, own
		// requisitions included.
		switch status {
		case model.StatusPending:
			events = append(events, EventStartReview, EventApprove, EventReject, EventCancel)
		case model.StatusUnderReview:
			events = append(events, EventMarkReviewed, EventApprove, EventReject, EventCancel)
		case model.StatusReviewed:
			events = append(events, EventApprove, EventReject, EventCancel)
		case model.StatusApproved, model.StatusPartiallyReceived:
			events = append(events, EventReceive, EventComplete)
		}

	case model.RoleReviewer:
		if isOwner {
			break // never review your own submission
		}
		switch status {
		case model.StatusPending:
			events = append(events, EventStartReview, EventReject)
		case model.StatusUnderReview:
			events = append(events, EventMarkReviewed, EventReject)
		}

	case model.RoleApprover:
		if isOwner {
			break // never approve your own submission
		}
		// Approvers act only once review has concluded.
		if status == model.StatusReviewed {
			events = append(events, EventApprove, EventReject)
		}

	case model.RoleStoreManager:
		// Store managers drive receipt tracking after approval.
		switch status {
		case model.StatusApproved, model.StatusPartiallyReceived:
			events = append(events, EventReceive, EventComplete)
		}

	case model.RoleSubmitter:
		// No rights beyond submitting and editing their own drafts.
	}

	return events
}

// FieldSet is the set of requisition fields an actor may edit.
type FieldSet map[string]struct{}

// Has reports whether the field is editable.
func (s FieldSet) Has(field string) bool {
	_, ok := s[field]
	return ok
}

var draftFields = []string{"title", "description", "project_id", "expense_account_id", "items"}

// EditableFields returns the fields the actor may edit on the requisition.
// Only owners of draft requisitions may edit, and only the draft field set;
// every other combination yields an empty set.
func EditableFields(req *model.Requisition, actorID uuid.UUID) FieldSet {
	fields := make(FieldSet)
	if req.Status != model.StatusDraft || req.SubmittedByID != actorID {
		return fields
	}
	for _, f := range draftFields {
		fields[f] = struct{}{}
	}
	return fields
}
