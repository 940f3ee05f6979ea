// internal/jobs/runner.go
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/procurehq/reqflow/internal/config"
	"github.com/procurehq/reqflow/internal/model"
	"github.com/procurehq/reqflow/internal/repository"
	"github.com/robfig/cron/v3"
)

// Runner schedules the maintenance jobs: reminders for requisitions
// stuck in review and cleanup of abandoned drafts.
type Runner struct {
	cron        *cron.Cron
	maintenance *repository.MaintenanceRepository
	orgRepo     repository.OrganizationRepositoryIface
	notifRepo   repository.NotificationRepositoryIface
	cfg         *config.Config
}

func NewRunner(
	maintenance *repository.MaintenanceRepository,
	orgRepo repository.OrganizationRepositoryIface,
	notifRepo repository.NotificationRepositoryIface,
	cfg *config.Config,
) *Runner {
	return &Runner{
		cron:        cron.New(),
		maintenance: maintenance,
		orgRepo:     orgRepo,
		notifRepo:   notifRepo,
		cfg:         cfg,
	}
}

// Start registers the jobs and begins the scheduler.
func (r *Runner) Start() error {
	if _, err := r.cron.AddFunc(r.cfg.Jobs.ReminderSchedule, r.runReviewReminders); err != nil {
		return fmt.Errorf("scheduling review reminders: %w", err)
	}
	if _, err := r.cron.AddFunc(r.cfg.Jobs.CleanupSchedule, r.runDraftCleanup); err != nil {
		return fmt.Errorf("scheduling draft cleanup: %w", err)
	}
	r.cron.Start()
	slog.Info("job scheduler started",
		"reminder_schedule", r.cfg.Jobs.ReminderSchedule,
		"cleanup_schedule", r.cfg.Jobs.CleanupSchedule,
	)
	return nil
}

// Stop halts the scheduler and waits for running jobs to finish.
func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

func (r *Runner) runReviewReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := r.RemindPendingReviews(ctx); err != nil {
		slog.Error("review reminder job failed", "error", err)
	}
}

func (r *Runner) runDraftCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := r.CleanupStaleDrafts(ctx); err != nil {
		slog.Error("draft cleanup job failed", "error", err)
	}
}

// RemindPendingReviews notifies reviewers and super_admins about
// requisitions that have been awaiting review past the configured
// threshold. Each run re-notifies; the threshold keeps the noise down to
// genuinely stuck requisitions.
func (r *Runner) RemindPendingReviews(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-r.cfg.Jobs.ReminderThreshold)

	reqs, err := r.maintenance.FindAwaitingReview(ctx, cutoff)
	if err != nil {
		return err
	}
	if len(reqs) == 0 {
		return nil
	}

	// Requisitions cluster by organization; members are fetched once per org.
	membersByOrg := make(map[string][]*model.OrganizationMember)

	var notified int
	for _, req := range reqs {
		orgKey := req.OrganizationID.String()
		members, ok := membersByOrg[orgKey]
		if !ok {
			members, err = r.orgRepo.FindMembers(ctx, req.OrganizationID)
			if err != nil {
				slog.Warn("failed to load members for reminder", "org_id", req.OrganizationID, "error", err)
				continue
			}
			membersByOrg[orgKey] = members
		}

		age := time.Since(*req.SubmittedAt).Round(time.Hour)
		for _, m := range members {
			if m.Role != model.RoleReviewer && m.Role != model.RoleSuperAdmin {
				continue
			}
			n := &model.Notification{
				OrganizationID: req.OrganizationID,
				UserID:         m.UserID,
				Title:          "Requisition still awaiting review",
				Message:        fmt.Sprintf("%q has been waiting for review for %s.", req.Title, age),
				Context:        model.JSONMap{"requisition_id": req.ID.String()},
			}
			if err := r.notifRepo.Create(ctx, n); err != nil {
				slog.Warn("failed to create reminder notification", "user_id", m.UserID, "error", err)
				continue
			}
			notified++
		}
	}

	slog.Info("review reminders sent", "requisitions", len(reqs), "notifications", notified)
	return nil
}

// CleanupStaleDrafts deletes drafts that have not been touched within
// the configured retention window.
func (r *Runner) CleanupStaleDrafts(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-r.cfg.Jobs.StaleDraftMaxAge)

	deleted, err := r.maintenance.DeleteStaleDrafts(ctx, cutoff)
	if err != nil {
		return err
	}

	slog.Info("stale drafts removed", "count", deleted, "cutoff", cutoff.Format(time.RFC3339))
	return nil
}
