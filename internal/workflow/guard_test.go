package workflow_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/model"
	"github.com/procurehq/reqflow/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allRoles = []model.Role{
	model.RoleSubmitter,
	model.RoleReviewer,
	model.RoleApprover,
	model.RoleStoreManager,
	model.RoleSuperAdmin,
}

var allStatuses = []model.RequisitionStatus{
	model.StatusDraft,
	model.StatusPending,
	model.StatusUnderReview,
	model.StatusReviewed,
	model.StatusApproved,
	model.StatusRejected,
	model.StatusCancelled,
	model.StatusPartiallyReceived,
	model.StatusCompleted,
}

// Every (role, isOwner, status) triple maps to exactly one deterministic
// event set; nothing panics and repeated calls agree.
func TestAllowedEventsIsTotalAndDeterministic(t *testing.T) {
	for _, role := range allRoles {
		for _, isOwner := range []bool{true, false} {
			for _, status := range allStatuses {
				first := workflow.AllowedEvents(role, isOwner, status)
				second := workflow.AllowedEvents(role, isOwner, status)
				assert.Equal(t, first, second,
					"role=%s owner=%v status=%s", role, isOwner, status)
			}
		}
	}
}

func TestSelfReviewAlwaysDeniedForNonAdmins(t *testing.T) {
	owner := uuid.New()

	reviewEvents := []workflow.Event{
		workflow.EventStartReview,
		workflow.EventMarkReviewed,
		workflow.EventApprove,
		workflow.EventReject,
	}

	for _, role := range []model.Role{model.RoleSubmitter, model.RoleReviewer, model.RoleApprover, model.RoleStoreManager} {
		for _, status := range allStatuses {
			req := &model.Requisition{SubmittedByID: owner, Status: status}
			for _, event := range reviewEvents {
				assert.False(t, workflow.CanTransition(role, owner, req, event),
					"role=%s status=%s event=%s must be denied on own requisition", role, status, event)
			}
		}
	}
}

func TestSuperAdminMayActOnOwnRequisition(t *testing.T) {
	owner := uuid.New()
	req := &model.Requisition{SubmittedByID: owner, Status: model.StatusPending}

	assert.True(t, workflow.CanTransition(model.RoleSuperAdmin, owner, req, workflow.EventStartReview))
	assert.True(t, workflow.CanTransition(model.RoleSuperAdmin, owner, req, workflow.EventApprove))
	assert.True(t, workflow.CanTransition(model.RoleSuperAdmin, owner, req, workflow.EventReject))
}

func TestSuperAdminDeniedAtTerminalStates(t *testing.T) {
	actor := uuid.New()
	for _, status := range []model.RequisitionStatus{model.StatusRejected, model.StatusCancelled, model.StatusCompleted} {
		req := &model.Requisition{SubmittedByID: uuid.New(), Status: status}
		for _, event := range workflow.Events {
			assert.False(t, workflow.CanTransition(model.RoleSuperAdmin, actor, req, event),
				"terminal status %s must allow no events, got %s", status, event)
		}
	}
}

func TestReviewerEventWindows(t *testing.T) {
	reviewer := uuid.New()
	other := uuid.New()

	t.Run("pending allows start_review and reject", func(t *testing.T) {
		req := &model.Requisition{SubmittedByID: other, Status: model.StatusPending}
		assert.True(t, workflow.CanTransition(model.RoleReviewer, reviewer, req, workflow.EventStartReview))
		assert.True(t, workflow.CanTransition(model.RoleReviewer, reviewer, req, workflow.EventReject))
		assert.False(t, workflow.CanTransition(model.RoleReviewer, reviewer, req, workflow.EventApprove))
		assert.False(t, workflow.CanTransition(model.RoleReviewer, reviewer, req, workflow.EventMarkReviewed))
	})

	t.Run("under_review allows mark_reviewed and reject", func(t *testing.T) {
		req := &model.Requisition{SubmittedByID: other, Status: model.StatusUnderReview}
		assert.True(t, workflow.CanTransition(model.RoleReviewer, reviewer, req, workflow.EventMarkReviewed))
		assert.True(t, workflow.CanTransition(model.RoleReviewer, reviewer, req, workflow.EventReject))
		assert.False(t, workflow.CanTransition(model.RoleReviewer, reviewer, req, workflow.EventApprove))
	})

	t.Run("reviewed allows nothing for reviewers", func(t *testing.T) {
		req := &model.Requisition{SubmittedByID: other, Status: model.StatusReviewed}
		for _, event := range workflow.Events {
			assert.False(t, workflow.CanTransition(model.RoleReviewer, reviewer, req, event))
		}
	})
}

func TestSubmitterRights(t *testing.T) {
	owner := uuid.New()

	t.Run("may submit own draft", func(t *testing.T) {
		req := &model.Requisition{SubmittedByID: owner, Status: model.StatusDraft}
		assert.True(t, workflow.CanTransition(model.RoleSubmitter, owner, req, workflow.EventSubmit))
	})

	t.Run("may not submit someone else's draft", func(t *testing.T) {
		req := &model.Requisition{SubmittedByID: uuid.New(), Status: model.StatusDraft}
		assert.False(t, workflow.CanTransition(model.RoleSubmitter, owner, req, workflow.EventSubmit))
	})

	t.Run("no rights after submission", func(t *testing.T) {
		req := &model.Requisition{SubmittedByID: owner, Status: model.StatusPending}
		for _, event := range workflow.Events {
			assert.False(t, workflow.CanTransition(model.RoleSubmitter, owner, req, event))
		}
	})
}

func TestStoreManagerHandlesReceipts(t *testing.T) {
	manager := uuid.New()
	req := &model.Requisition{SubmittedByID: uuid.New(), Status: model.StatusApproved}

	assert.True(t, workflow.CanTransition(model.RoleStoreManager, manager, req, workflow.EventReceive))
	assert.True(t, workflow.CanTransition(model.RoleStoreManager, manager, req, workflow.EventComplete))
	assert.False(t, workflow.CanTransition(model.RoleStoreManager, manager, req, workflow.EventApprove))

	req.Status = model.StatusReviewed
	assert.False(t, workflow.CanTransition(model.RoleStoreManager, manager, req, workflow.EventReceive))
}

func TestEditableFields(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	t.Run("owner edits own draft", func(t *testing.T) {
		req := &model.Requisition{SubmittedByID: owner, Status: model.StatusDraft}
		fields := workflow.EditableFields(req, owner)
		require.NotEmpty(t, fields)
		assert.True(t, fields.Has("title"))
		assert.True(t, fields.Has("items"))
		assert.True(t, fields.Has("project_id"))
		assert.True(t, fields.Has("expense_account_id"))
	})

	t.Run("non-owner gets nothing", func(t *testing.T) {
		req := &model.Requisition{SubmittedByID: owner, Status: model.StatusDraft}
		assert.Empty(t, workflow.EditableFields(req, stranger))
	})

	t.Run("nothing editable after submit", func(t *testing.T) {
		for _, status := range allStatuses {
			if status == model.StatusDraft {
				continue
			}
			req := &model.Requisition{SubmittedByID: owner, Status: status}
			assert.Empty(t, workflow.EditableFields(req, owner), "status=%s", status)
		}
	})
}

func TestParseRoleRejectsUnknownValues(t *testing.T) {
	for _, role := range allRoles {
		parsed, err := model.ParseRole(string(role))
		require.NoError(t, err)
		assert.Equal(t, role, parsed)
	}

	for _, bad := range []string{"", "admin", "owner", "SUBMITTER", "reviewer "} {
		_, err := model.ParseRole(bad)
		assert.Error(t, err, "role %q must be rejected", bad)
	}
}
