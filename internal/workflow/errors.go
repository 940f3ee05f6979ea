// internal/workflow/errors.go
package workflow

import (
	"fmt"

	"github.com/procurehq/reqflow/internal/model"
)

// ValidationError reports a missing or invalid input caught before a
// transition is applied. Recoverable; surfaced as a form-level message.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// InvalidTransitionError reports an event that is not defined for the
// requisition's current status. Reaching this through normal navigation
// indicates a caller bug, so callers log it as unexpected.
type InvalidTransitionError struct {
	From  model.RequisitionStatus
	Event Event
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("event %q is not valid in status %q", e.Event, e.From)
}

// PermissionError reports that the guard denied the actor. The message is
// deliberately generic so it never reveals whether a resource exists in
// another tenant.
type PermissionError struct {
	Event Event
}

func (e *PermissionError) Error() string {
	return "access denied"
}

// ConflictError reports that a concurrent mutation invalidated the status
// the transition was computed against. Callers should reload and may retry
// once; the workflow layer never retries on its own.
type ConflictError struct {
	Expected model.RequisitionStatus
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("requisition is no longer in status %q", e.Expected)
}
