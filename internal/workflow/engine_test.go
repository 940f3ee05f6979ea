package workflow_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/model"
	"github.com/procurehq/reqflow/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft(owner uuid.UUID) *model.Requisition {
	req := &model.Requisition{
		ID:               uuid.New(),
		OrganizationID:   uuid.New(),
		ProjectID:        uuid.New(),
		ExpenseAccountID: uuid.New(),
		SubmittedByID:    owner,
		Title:            "Workshop restock",
		Status:           model.StatusDraft,
		Items: []model.RequisitionItem{
			{CatalogItemID: uuid.New(), Quantity: 2, UnitPriceCents: 10000},
			{CatalogItemID: uuid.New(), Quantity: 3, UnitPriceCents: 5000},
		},
	}
	for i := range req.Items {
		req.Items[i].ComputeTotal()
	}
	req.TotalCents = req.SumItems()
	return req
}

func TestTotalComputation(t *testing.T) {
	req := validDraft(uuid.New())

	// 2 x 100.00 + 3 x 50.00 = 350.00
	assert.Equal(t, int64(20000), req.Items[0].TotalCents)
	assert.Equal(t, int64(15000), req.Items[1].TotalCents)
	assert.Equal(t, int64(35000), req.TotalCents)
}

func TestSubmitValidation(t *testing.T) {
	owner := uuid.New()
	actor := workflow.Actor{ID: owner, Role: model.RoleSubmitter}
	now := time.Now()

	t.Run("submit without line items fails", func(t *testing.T) {
		req := validDraft(owner)
		req.Items = nil

		changes, err := workflow.AttemptTransition(req, workflow.EventSubmit, actor, workflow.TransitionInput{}, now)
		assert.Nil(t, changes)

		var verr *workflow.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "items", verr.Field)
		// no partial mutation
		assert.Equal(t, model.StatusDraft, req.Status)
	})

	t.Run("submit with blank title fails", func(t *testing.T) {
		req := validDraft(owner)
		req.Title = "   "

		_, err := workflow.AttemptTransition(req, workflow.EventSubmit, actor, workflow.TransitionInput{}, now)
		var verr *workflow.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "title", verr.Field)
	})

	t.Run("submit without project fails", func(t *testing.T) {
		req := validDraft(owner)
		req.ProjectID = uuid.Nil

		_, err := workflow.AttemptTransition(req, workflow.EventSubmit, actor, workflow.TransitionInput{}, now)
		var verr *workflow.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "project_id", verr.Field)
	})

	t.Run("submit without expense account fails", func(t *testing.T) {
		req := validDraft(owner)
		req.ExpenseAccountID = uuid.Nil

		_, err := workflow.AttemptTransition(req, workflow.EventSubmit, actor, workflow.TransitionInput{}, now)
		var verr *workflow.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "expense_account_id", verr.Field)
	})

	t.Run("valid submit records submission time", func(t *testing.T) {
		req := validDraft(owner)

		changes, err := workflow.AttemptTransition(req, workflow.EventSubmit, actor, workflow.TransitionInput{}, now)
		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, changes.Status)
		require.NotNil(t, changes.SubmittedAt)
		assert.Equal(t, now, *changes.SubmittedAt)
		assert.Nil(t, changes.ApprovedAt)
		assert.Nil(t, changes.ReviewedAt)
	})
}

func TestRejectRequiresReason(t *testing.T) {
	owner := uuid.New()
	reviewer := workflow.Actor{ID: uuid.New(), Role: model.RoleReviewer}
	approver := workflow.Actor{ID: uuid.New(), Role: model.RoleApprover}
	now := time.Now()

	cases := []struct {
		status model.RequisitionStatus
		actor  workflow.Actor
	}{
		{model.StatusPending, reviewer},
		{model.StatusUnderReview, reviewer},
		{model.StatusReviewed, approver},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			req := validDraft(owner)
			req.Status = tc.status

			for _, comment := range []string{"", "   ", "\t\n"} {
				_, err := workflow.AttemptTransition(req, workflow.EventReject, tc.actor, workflow.TransitionInput{Comment: comment}, now)
				var verr *workflow.ValidationError
				require.ErrorAs(t, err, &verr, "status=%s comment=%q", tc.status, comment)
				assert.Equal(t, "comment", verr.Field)
			}

			changes, err := workflow.AttemptTransition(req, workflow.EventReject, tc.actor, workflow.TransitionInput{Comment: "over budget"}, now)
			require.NoError(t, err)
			assert.Equal(t, model.StatusRejected, changes.Status)
			assert.Equal(t, "over budget", changes.Comment)
			require.NotNil(t, changes.ClosedByID)
			assert.Equal(t, tc.actor.ID, *changes.ClosedByID)
		})
	}
}

func TestUndefinedTransitionsRejected(t *testing.T) {
	owner := uuid.New()
	admin := workflow.Actor{ID: uuid.New(), Role: model.RoleSuperAdmin}
	now := time.Now()

	cases := []struct {
		status model.RequisitionStatus
		event  workflow.Event
	}{
		{model.StatusDraft, workflow.EventApprove},
		{model.StatusDraft, workflow.EventStartReview},
		{model.StatusReviewed, workflow.EventSubmit},
		{model.StatusReviewed, workflow.EventStartReview},
		{model.StatusApproved, workflow.EventApprove},
		{model.StatusRejected, workflow.EventApprove},
		{model.StatusCancelled, workflow.EventSubmit},
		{model.StatusCompleted, workflow.EventReceive},
	}

	for _, tc := range cases {
		t.Run(string(tc.status)+"_"+string(tc.event), func(t *testing.T) {
			req := validDraft(owner)
			req.Status = tc.status

			// super_admin has the widest guard rights; the state machine
			// still wins.
			_, err := workflow.AttemptTransition(req, tc.event, admin, workflow.TransitionInput{Comment: "reason"}, now)
			var terr *workflow.InvalidTransitionError
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, tc.status, terr.From)
			assert.Equal(t, tc.event, terr.Event)
		})
	}
}

func TestFullApprovalRoundTrip(t *testing.T) {
	owner := uuid.New()
	submitter := workflow.Actor{ID: owner, Role: model.RoleSubmitter}
	reviewer := workflow.Actor{ID: uuid.New(), Role: model.RoleReviewer}
	approver := workflow.Actor{ID: uuid.New(), Role: model.RoleApprover}

	req := validDraft(owner)
	now := time.Now()

	apply := func(changes *workflow.Changes) {
		req.Status = changes.Status
		if changes.SubmittedAt != nil {
			req.SubmittedAt = changes.SubmittedAt
		}
		if changes.ReviewedAt != nil {
			req.ReviewedAt = changes.ReviewedAt
		}
		if changes.ApprovedAt != nil {
			req.ApprovedAt = changes.ApprovedAt
		}
		if changes.ReviewerID != nil {
			req.ReviewerID = changes.ReviewerID
		}
		if changes.ApproverID != nil {
			req.ApproverID = changes.ApproverID
		}
	}

	changes, err := workflow.AttemptTransition(req, workflow.EventSubmit, submitter, workflow.TransitionInput{}, now)
	require.NoError(t, err)
	apply(changes)
	assert.Equal(t, model.StatusPending, req.Status)

	changes, err = workflow.AttemptTransition(req, workflow.EventStartReview, reviewer, workflow.TransitionInput{}, now)
	require.NoError(t, err)
	apply(changes)
	assert.Equal(t, model.StatusUnderReview, req.Status)
	require.NotNil(t, req.ReviewerID)
	assert.Equal(t, reviewer.ID, *req.ReviewerID)

	changes, err = workflow.AttemptTransition(req, workflow.EventMarkReviewed, reviewer, workflow.TransitionInput{Comment: "looks fine"}, now)
	require.NoError(t, err)
	apply(changes)
	assert.Equal(t, model.StatusReviewed, req.Status)
	assert.NotNil(t, req.ReviewedAt)

	changes, err = workflow.AttemptTransition(req, workflow.EventApprove, approver, workflow.TransitionInput{}, now)
	require.NoError(t, err)
	apply(changes)

	assert.Equal(t, model.StatusApproved, req.Status)
	require.NotNil(t, req.ApprovedAt)
	assert.Equal(t, now, *req.ApprovedAt)
	require.NotNil(t, req.ApproverID)
	assert.Equal(t, approver.ID, *req.ApproverID)
	// fields untouched by the workflow stay put
	assert.Equal(t, int64(35000), req.TotalCents)
	assert.Equal(t, "Workshop restock", req.Title)
}

func TestSuperAdminBypassesReviewStep(t *testing.T) {
	owner := uuid.New()
	admin := workflow.Actor{ID: owner, Role: model.RoleSuperAdmin}
	now := time.Now()

	for _, status := range []model.RequisitionStatus{model.StatusPending, model.StatusUnderReview} {
		req := validDraft(owner)
		req.Status = status

		// admins may approve their own requisition before review concludes
		changes, err := workflow.AttemptTransition(req, workflow.EventApprove, admin, workflow.TransitionInput{}, now)
		require.NoError(t, err, "status=%s", status)
		assert.Equal(t, model.StatusApproved, changes.Status)
	}
}

func TestApproverCannotApproveOwnRequisition(t *testing.T) {
	owner := uuid.New()
	actor := workflow.Actor{ID: owner, Role: model.RoleApprover}

	req := validDraft(owner)
	req.Status = model.StatusReviewed

	changes, err := workflow.AttemptTransition(req, workflow.EventApprove, actor, workflow.TransitionInput{}, time.Now())
	assert.Nil(t, changes)

	var perr *workflow.PermissionError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "access denied", perr.Error())
}

func TestApproverNeedsReviewedStatus(t *testing.T) {
	approver := workflow.Actor{ID: uuid.New(), Role: model.RoleApprover}

	for _, status := range []model.RequisitionStatus{model.StatusPending, model.StatusUnderReview} {
		req := validDraft(uuid.New())
		req.Status = status

		_, err := workflow.AttemptTransition(req, workflow.EventApprove, approver, workflow.TransitionInput{}, time.Now())
		var perr *workflow.PermissionError
		require.True(t, errors.As(err, &perr), "approver must not approve from %s", status)
	}
}
