package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/config"
	"github.com/procurehq/reqflow/internal/domain"
	"github.com/procurehq/reqflow/internal/mocks"
	"github.com/procurehq/reqflow/internal/model"
	"github.com/procurehq/reqflow/internal/service"
	"github.com/procurehq/reqflow/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.BaseURL = "http://localhost:8080"
	return cfg
}

func newService(ctrl *gomock.Controller) (*service.RequisitionService, *mocks.MockRequisitionRepositoryIface, *mocks.MockOrganizationRepositoryIface, *mocks.MockUserRepositoryIface, *mocks.MockNotificationRepositoryIface) {
	reqRepo := mocks.NewMockRequisitionRepositoryIface(ctrl)
	orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	notifRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

	svc := service.NewRequisitionService(reqRepo, orgRepo, userRepo, notifRepo, nil, nil, testConfig())
	return svc, reqRepo, orgRepo, userRepo, notifRepo
}

func reviewedRequisition(orgID, submitterID uuid.UUID) *model.Requisition {
	now := time.Now().UTC()
	return &model.Requisition{
		ID:               uuid.New(),
		OrganizationID:   orgID,
		ProjectID:        uuid.New(),
		ExpenseAccountID: uuid.New(),
		SubmittedByID:    submitterID,
		Title:            "Workshop restock",
		Status:           model.StatusReviewed,
		TotalCents:       35000,
		SubmittedAt:      &now,
		ReviewedAt:       &now,
		Items: []model.RequisitionItem{
			{CatalogItemID: uuid.New(), Quantity: 2, UnitPriceCents: 10000, TotalCents: 20000},
			{CatalogItemID: uuid.New(), Quantity: 3, UnitPriceCents: 5000, TotalCents: 15000},
		},
	}
}

func TestTransitionApproverCannotApproveOwn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reqRepo, _, _, _ := newService(ctrl)

	orgID := uuid.New()
	actorID := uuid.New()
	req := reviewedRequisition(orgID, actorID) // actor submitted it themselves

	reqRepo.EXPECT().
		FindByID(gomock.Any(), orgID, req.ID).
		Return(req, nil)

	actor := workflow.Actor{ID: actorID, Role: model.RoleApprover}
	_, err := svc.Transition(context.Background(), orgID, actor, req.ID, workflow.EventApprove, workflow.TransitionInput{}, nil)

	var permErr *workflow.PermissionError
	assert.ErrorAs(t, err, &permErr)
	assert.Equal(t, "access denied", err.Error())
}

func TestTransitionConcurrentLoserGetsConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reqRepo, _, _, _ := newService(ctrl)

	orgID := uuid.New()
	submitterID := uuid.New()
	reviewerID := uuid.New()

	req := reviewedRequisition(orgID, submitterID)
	req.Status = model.StatusPending
	req.ReviewedAt = nil

	reqRepo.EXPECT().
		FindByID(gomock.Any(), orgID, req.ID).
		Return(req, nil)

	// Another reviewer claimed the requisition first; the conditional
	// update matches zero rows.
	reqRepo.EXPECT().
		ApplyTransition(gomock.Any(), orgID, req.ID, gomock.Any()).
		Return(domain.ErrStaleStatus)

	actor := workflow.Actor{ID: reviewerID, Role: model.RoleReviewer}
	_, err := svc.Transition(context.Background(), orgID, actor, req.ID, workflow.EventStartReview, workflow.TransitionInput{}, nil)

	var conflictErr *workflow.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, model.StatusPending, conflictErr.Expected)
}

func TestTransitionApproveNotifiesSubmitter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reqRepo, _, userRepo, notifRepo := newService(ctrl)

	orgID := uuid.New()
	submitterID := uuid.New()
	approverID := uuid.New()

	req := reviewedRequisition(orgID, submitterID)
	submitter := &model.User{ID: submitterID, Email: "dana@example.com", FirstName: "Dana"}
	approver := &model.User{ID: approverID, Email: "alex@example.com", FirstName: "Alex"}

	reqRepo.EXPECT().
		FindByID(gomock.Any(), orgID, req.ID).
		Return(req, nil).
		Times(2) // initial load and post-transition reload

	reqRepo.EXPECT().
		ApplyTransition(gomock.Any(), orgID, req.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ uuid.UUID, changes *workflow.Changes) error {
			assert.Equal(t, model.StatusReviewed, changes.FromStatus)
			assert.Equal(t, model.StatusApproved, changes.Status)
			require.NotNil(t, changes.ApproverID)
			assert.Equal(t, approverID, *changes.ApproverID)
			require.NotNil(t, changes.ApprovedAt)
			return nil
		})

	userRepo.EXPECT().FindByID(gomock.Any(), submitterID).Return(submitter, nil)
	userRepo.EXPECT().FindByID(gomock.Any(), approverID).Return(approver, nil)

	notifRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *model.Notification) error {
			assert.Equal(t, orgID, n.OrganizationID)
			assert.Equal(t, submitterID, n.UserID)
			assert.Contains(t, n.Message, "approved")
			return nil
		})

	actor := workflow.Actor{ID: approverID, Role: model.RoleApprover}
	result, err := svc.Transition(context.Background(), orgID, actor, req.ID, workflow.EventApprove, workflow.TransitionInput{}, nil)

	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestTransitionSubmitWithoutItemsFailsValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reqRepo, _, _, _ := newService(ctrl)

	orgID := uuid.New()
	ownerID := uuid.New()

	req := &model.Requisition{
		ID:               uuid.New(),
		OrganizationID:   orgID,
		ProjectID:        uuid.New(),
		ExpenseAccountID: uuid.New(),
		SubmittedByID:    ownerID,
		Title:            "Empty cart",
		Status:           model.StatusDraft,
	}

	reqRepo.EXPECT().
		FindByID(gomock.Any(), orgID, req.ID).
		Return(req, nil)

	actor := workflow.Actor{ID: ownerID, Role: model.RoleSubmitter}
	_, err := svc.Transition(context.Background(), orgID, actor, req.ID, workflow.EventSubmit, workflow.TransitionInput{}, nil)

	var valErr *workflow.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "items", valErr.Field)
}

func TestTransitionRejectRecordsComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reqRepo, _, userRepo, notifRepo := newService(ctrl)

	orgID := uuid.New()
	submitterID := uuid.New()
	approverID := uuid.New()

	req := reviewedRequisition(orgID, submitterID)
	submitter := &model.User{ID: submitterID, Email: "dana@example.com", FirstName: "Dana"}
	approver := &model.User{ID: approverID, Email: "alex@example.com", FirstName: "Alex"}

	reqRepo.EXPECT().FindByID(gomock.Any(), orgID, req.ID).Return(req, nil).Times(2)
	reqRepo.EXPECT().ApplyTransition(gomock.Any(), orgID, req.ID, gomock.Any()).Return(nil)

	reqRepo.EXPECT().
		AddComment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *model.RequisitionComment) error {
			assert.Equal(t, req.ID, c.RequisitionID)
			assert.Equal(t, approverID, c.AuthorID)
			assert.Equal(t, "over budget", c.Body)
			assert.Equal(t, string(workflow.EventReject), c.Event)
			return nil
		})

	userRepo.EXPECT().FindByID(gomock.Any(), submitterID).Return(submitter, nil)
	userRepo.EXPECT().FindByID(gomock.Any(), approverID).Return(approver, nil)
	notifRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	actor := workflow.Actor{ID: approverID, Role: model.RoleApprover}
	_, err := svc.Transition(context.Background(), orgID, actor, req.ID, workflow.EventReject, workflow.TransitionInput{Comment: "over budget"}, nil)
	require.NoError(t, err)
}

func TestCreateDraftComputesTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reqRepo, _, _, _ := newService(ctrl)

	orgID := uuid.New()
	ownerID := uuid.New()

	reqRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.Requisition) error {
			assert.Equal(t, orgID, req.OrganizationID)
			assert.Equal(t, ownerID, req.SubmittedByID)
			assert.Equal(t, model.StatusDraft, req.Status)
			require.Len(t, req.Items, 2)
			assert.Equal(t, int64(20000), req.Items[0].TotalCents)
			assert.Equal(t, int64(15000), req.Items[1].TotalCents)
			assert.Equal(t, int64(35000), req.TotalCents)
			return nil
		})

	actor := workflow.Actor{ID: ownerID, Role: model.RoleSubmitter}
	input := service.DraftInput{
		Title: "Workshop restock",
		Items: []service.DraftItemInput{
			{CatalogItemID: uuid.New(), Quantity: 2, UnitPriceCents: 10000},
			{CatalogItemID: uuid.New(), Quantity: 3, UnitPriceCents: 5000},
		},
	}

	req, err := svc.CreateDraft(context.Background(), orgID, actor, input, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(35000), req.TotalCents)
}

func TestUpdateDraftDeniedForNonOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reqRepo, _, _, _ := newService(ctrl)

	orgID := uuid.New()
	ownerID := uuid.New()
	otherID := uuid.New()

	req := &model.Requisition{
		ID:             uuid.New(),
		OrganizationID: orgID,
		SubmittedByID:  ownerID,
		Title:          "Workshop restock",
		Status:         model.StatusDraft,
	}

	reqRepo.EXPECT().FindByID(gomock.Any(), orgID, req.ID).Return(req, nil)

	// Even a super_admin does not edit someone else's draft.
	actor := workflow.Actor{ID: otherID, Role: model.RoleSuperAdmin}
	_, err := svc.UpdateDraft(context.Background(), orgID, actor, req.ID, service.DraftInput{Title: "Hijacked"})

	var permErr *workflow.PermissionError
	assert.ErrorAs(t, err, &permErr)
}
