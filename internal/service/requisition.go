// internal/service/requisition.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/audit"
	"github.com/procurehq/reqflow/internal/config"
	"github.com/procurehq/reqflow/internal/domain"
	"github.com/procurehq/reqflow/internal/email"
	"github.com/procurehq/reqflow/internal/email/mailer"
	"github.com/procurehq/reqflow/internal/model"
	"github.com/procurehq/reqflow/internal/repository"
	"github.com/procurehq/reqflow/internal/workflow"
)

// RequisitionService owns the requisition lifecycle. All status changes
// funnel through Transition; nothing else in the codebase writes the
// status column.
type RequisitionService struct {
	repo        repository.RequisitionRepositoryIface
	orgRepo     repository.OrganizationRepositoryIface
	userRepo    repository.UserRepositoryIface
	notifRepo   repository.NotificationRepositoryIface
	auditLogger audit.Logger
	emailSender email.Sender
	config      *config.Config
	validate    *validator.Validate
}

func NewRequisitionService(
	repo repository.RequisitionRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	userRepo repository.UserRepositoryIface,
	notifRepo repository.NotificationRepositoryIface,
	auditLogger audit.Logger,
	emailSender email.Sender,
	config *config.Config,
) *RequisitionService {
	if auditLogger == nil {
		auditLogger = &audit.NoOpLogger{}
	}
	return &RequisitionService{
		repo:        repo,
		orgRepo:     orgRepo,
		userRepo:    userRepo,
		notifRepo:   notifRepo,
		auditLogger: auditLogger,
		emailSender: emailSender,
		config:      config,
		validate:    validator.New(),
	}
}

type DraftItemInput struct {
	CatalogItemID  uuid.UUID `json:"catalog_item_id" validate:"required"`
	Quantity       int64     `json:"quantity" validate:"required,gt=0"`
	UnitPriceCents int64     `json:"unit_price_cents" validate:"gte=0"`
}

type DraftInput struct {
	Title            string           `json:"title" validate:"required"`
	Description      string           `json:"description"`
	ProjectID        uuid.UUID        `json:"project_id"`
	ExpenseAccountID uuid.UUID        `json:"expense_account_id"`
	Items            []DraftItemInput `json:"items" validate:"dive"`
}

func (s *RequisitionService) buildItems(inputs []DraftItemInput) []model.RequisitionItem {
	items := make([]model.RequisitionItem, 0, len(inputs))
	for i, in := range inputs {
		item := model.RequisitionItem{
			CatalogItemID:  in.CatalogItemID,
			Position:       i,
			Quantity:       in.Quantity,
			UnitPriceCents: in.UnitPriceCents,
		}
		item.ComputeTotal()
		items = append(items, item)
	}
	return items
}

// CreateDraft creates a new draft requisition owned by the actor. Drafts
// may be sparse; completeness is enforced at submit time, not here.
func (s *RequisitionService) CreateDraft(ctx context.Context, orgID uuid.UUID, actor workflow.Actor, input DraftInput, httpReq *http.Request) (*model.Requisition, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	req := &model.Requisition{
		OrganizationID:   orgID,
		ProjectID:        input.ProjectID,
		ExpenseAccountID: input.ExpenseAccountID,
		SubmittedByID:    actor.ID,
		Title:            input.Title,
		Description:      input.Description,
		Status:           model.StatusDraft,
		Items:            s.buildItems(input.Items),
	}
	req.TotalCents = req.SumItems()

	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	if err := s.auditLogger.LogRequisitionCreate(ctx, orgID, req.ID, actor, httpReq); err != nil {
		slog.Warn("audit write failed", "requisition_id", req.ID, "error", err)
	}

	return req, nil
}

// UpdateDraft replaces the editable fields of a draft. Only the owner of
// a draft may edit, and only while it is still a draft.
func (s *RequisitionService) UpdateDraft(ctx context.Context, orgID uuid.UUID, actor workflow.Actor, id uuid.UUID, input DraftInput) (*model.Requisition, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	req, err := s.repo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	fields := workflow.EditableFields(req, actor.ID)
	if !fields.Has("title") {
		return nil, &workflow.PermissionError{}
	}

	req.Title = input.Title
	req.Description = input.Description
	req.ProjectID = input.ProjectID
	req.ExpenseAccountID = input.ExpenseAccountID
	req.Items = s.buildItems(input.Items)
	req.TotalCents = req.SumItems()

	if err := s.repo.UpdateDraft(ctx, req); err != nil {
		if errors.Is(err, domain.ErrStaleStatus) {
			return nil, &workflow.ConflictError{Expected: model.StatusDraft}
		}
		return nil, err
	}

	return s.repo.FindByID(ctx, orgID, id)
}

// EditableFields exposes the per-actor field permissions for a
// requisition so clients can render forms without guessing.
func (s *RequisitionService) EditableFields(ctx context.Context, orgID uuid.UUID, actor workflow.Actor, id uuid.UUID) ([]string, error) {
	req, err := s.repo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	fields := workflow.EditableFields(req, actor.ID)
	names := make([]string, 0, len(fields))
	for f := range fields {
		names = append(names, f)
	}
	return names, nil
}

// AllowedEvents reports which workflow events the actor may request on
// the requisition in its current status.
func (s *RequisitionService) AllowedEvents(ctx context.Context, orgID uuid.UUID, actor workflow.Actor, id uuid.UUID) ([]workflow.Event, error) {
	req, err := s.repo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	var allowed []workflow.Event
	for _, event := range workflow.Events {
		if _, defined := workflow.Next(req.Status, event); !defined {
			continue
		}
		if workflow.CanTransition(actor.Role, actor.ID, req, event) {
			allowed = append(allowed, event)
		}
	}
	return allowed, nil
}

func (s *RequisitionService) GetRequisition(ctx context.Context, orgID uuid.UUID, id uuid.UUID) (*model.Requisition, error) {
	return s.repo.FindByID(ctx, orgID, id)
}

func (s *RequisitionService) ListRequisitions(ctx context.Context, orgID uuid.UUID, status model.RequisitionStatus, offset, limit int) ([]*model.Requisition, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	return s.repo.FindByOrg(ctx, orgID, status, offset, limit)
}

func (s *RequisitionService) ListMine(ctx context.Context, orgID uuid.UUID, actor workflow.Actor) ([]*model.Requisition, error) {
	return s.repo.FindBySubmitter(ctx, orgID, actor.ID)
}

// DeleteDraft removes a draft requisition. Submitted requisitions are
// never deleted; they are cancelled through the workflow so the record
// survives.
func (s *RequisitionService) DeleteDraft(ctx context.Context, orgID uuid.UUID, actor workflow.Actor, id uuid.UUID, httpReq *http.Request) error {
	req, err := s.repo.FindByID(ctx, orgID, id)
	if err != nil {
		return err
	}

	if req.SubmittedByID != actor.ID && actor.Role != model.RoleSuperAdmin {
		return &workflow.PermissionError{}
	}

	if err := s.repo.Delete(ctx, orgID, id); err != nil {
		return err
	}

	if err := s.auditLogger.LogRequisitionDelete(ctx, orgID, id, actor, httpReq); err != nil {
		slog.Warn("audit write failed", "requisition_id", id, "error", err)
	}

	return nil
}

// Transition runs a workflow event against a requisition. The decision
// is computed in memory and persisted with a conditional update keyed on
// the status it was computed from; a concurrent transition surfaces as
// ConflictError and nothing is applied. Every attempt, allowed or
// denied, is audit logged.
func (s *RequisitionService) Transition(ctx context.Context, orgID uuid.UUID, actor workflow.Actor, id uuid.UUID, event workflow.Event, input workflow.TransitionInput, httpReq *http.Request) (*model.Requisition, error) {
	req, err := s.repo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	changes, err := workflow.AttemptTransition(req, event, actor, input, time.Now().UTC())
	if err != nil {
		s.logTransition(ctx, orgID, req, actor, event, req.Status, false, map[string]interface{}{"reason": err.Error()}, httpReq)
		return nil, err
	}

	if err := s.repo.ApplyTransition(ctx, orgID, id, changes); err != nil {
		if errors.Is(err, domain.ErrStaleStatus) {
			s.logTransition(ctx, orgID, req, actor, event, changes.Status, false, map[string]interface{}{"reason": "status changed concurrently"}, httpReq)
			return nil, &workflow.ConflictError{Expected: changes.FromStatus}
		}
		return nil, err
	}

	if changes.Comment != "" {
		comment := &model.RequisitionComment{
			RequisitionID: id,
			AuthorID:      actor.ID,
			Body:          changes.Comment,
			Event:         string(event),
		}
		if err := s.repo.AddComment(ctx, comment); err != nil {
			slog.Warn("failed to record transition comment", "requisition_id", id, "error", err)
		}
	}

	s.logTransition(ctx, orgID, req, actor, event, changes.Status, true, nil, httpReq)

	s.notifyTransition(ctx, orgID, req, actor, changes)

	return s.repo.FindByID(ctx, orgID, id)
}

func (s *RequisitionService) logTransition(ctx context.Context, orgID uuid.UUID, req *model.Requisition, actor workflow.Actor, event workflow.Event, toStatus model.RequisitionStatus, allowed bool, contextData map[string]interface{}, httpReq *http.Request) {
	if err := s.auditLogger.LogTransition(ctx, orgID, req.ID, actor, event, req.Status, toStatus, allowed, contextData, httpReq); err != nil {
		slog.Warn("audit write failed", "requisition_id", req.ID, "event", event, "error", err)
	}
}

// notifyTransition fans out notifications and emails for the events
// people wait on. Delivery failures are logged, never surfaced; the
// transition already happened.
func (s *RequisitionService) notifyTransition(ctx context.Context, orgID uuid.UUID, req *model.Requisition, actor workflow.Actor, changes *workflow.Changes) {
	link := fmt.Sprintf("%s/orgs/%s/requisitions/%s", s.config.BaseURL, orgID, req.ID)
	total := formatCents(req.TotalCents)

	switch changes.Event {
	case workflow.EventSubmit:
		submitter, err := s.userRepo.FindByID(ctx, req.SubmittedByID)
		if err != nil {
			slog.Warn("failed to load submitter for notification", "requisition_id", req.ID, "error", err)
			return
		}
		members, err := s.orgRepo.FindMembers(ctx, orgID)
		if err != nil {
			slog.Warn("failed to load members for notification", "requisition_id", req.ID, "error", err)
			return
		}
		for _, m := range members {
			if m.Role != model.RoleReviewer && m.Role != model.RoleSuperAdmin {
				continue
			}
			if m.UserID == req.SubmittedByID {
				continue
			}
			s.createNotification(ctx, orgID, m.UserID, "Requisition awaiting review",
				fmt.Sprintf("%s submitted %q for review.", submitter.FirstName, req.Title), req.ID)
			if s.emailSender != nil && m.User.Email != "" {
				data := mailer.RequisitionTemplateData{
					RecipientName:    m.User.FirstName,
					RequisitionTitle: req.Title,
					SubmitterName:    submitter.FirstName,
					TotalFormatted:   total,
					RequisitionLink:  link,
				}
				if err := mailer.SendRequisitionSubmittedEmail(s.emailSender, m.User.Email, data); err != nil {
					slog.Warn("failed to send submission email", "requisition_id", req.ID, "error", err)
				}
			}
		}

	case workflow.EventApprove, workflow.EventReject:
		submitter, err := s.userRepo.FindByID(ctx, req.SubmittedByID)
		if err != nil {
			slog.Warn("failed to load submitter for notification", "requisition_id", req.ID, "error", err)
			return
		}
		actorUser, err := s.userRepo.FindByID(ctx, actor.ID)
		if err != nil {
			slog.Warn("failed to load actor for notification", "requisition_id", req.ID, "error", err)
			return
		}

		verb := "approved"
		if changes.Event == workflow.EventReject {
			verb = "rejected"
		}
		s.createNotification(ctx, orgID, submitter.ID, fmt.Sprintf("Requisition %s", verb),
			fmt.Sprintf("%s %s your requisition %q.", actorUser.FirstName, verb, req.Title), req.ID)

		if s.emailSender != nil && submitter.Email != "" {
			data := mailer.RequisitionTemplateData{
				RecipientName:    submitter.FirstName,
				RequisitionTitle: req.Title,
				ActorName:        actorUser.FirstName,
				TotalFormatted:   total,
				Comment:          changes.Comment,
				RequisitionLink:  link,
			}
			var mailErr error
			if changes.Event == workflow.EventApprove {
				mailErr = mailer.SendRequisitionApprovedEmail(s.emailSender, submitter.Email, data)
			} else {
				mailErr = mailer.SendRequisitionRejectedEmail(s.emailSender, submitter.Email, data)
			}
			if mailErr != nil {
				slog.Warn("failed to send decision email", "requisition_id", req.ID, "error", mailErr)
			}
		}
	}
}

func (s *RequisitionService) createNotification(ctx context.Context, orgID, userID uuid.UUID, title, message string, requisitionID uuid.UUID) {
	n := &model.Notification{
		OrganizationID: orgID,
		UserID:         userID,
		Title:          title,
		Message:        message,
		Context:        model.JSONMap{"requisition_id": requisitionID.String()},
	}
	if err := s.notifRepo.Create(ctx, n); err != nil {
		slog.Warn("failed to create notification", "user_id", userID, "error", err)
	}
}

// GetComments lists the discussion and event comments of a requisition.
func (s *RequisitionService) GetComments(ctx context.Context, orgID, id uuid.UUID) ([]model.RequisitionComment, error) {
	if _, err := s.repo.FindByID(ctx, orgID, id); err != nil {
		return nil, err
	}
	return s.repo.FindComments(ctx, orgID, id)
}

// AddComment records a free-form discussion comment.
func (s *RequisitionService) AddComment(ctx context.Context, orgID uuid.UUID, actor workflow.Actor, id uuid.UUID, body string) (*model.RequisitionComment, error) {
	if body == "" {
		return nil, fmt.Errorf("%w: comment body is required", domain.ErrInvalidInput)
	}
	if _, err := s.repo.FindByID(ctx, orgID, id); err != nil {
		return nil, err
	}

	comment := &model.RequisitionComment{
		RequisitionID: id,
		AuthorID:      actor.ID,
		Body:          body,
	}
	if err := s.repo.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
