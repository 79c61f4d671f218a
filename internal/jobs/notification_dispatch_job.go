package jobs

import (
	"context"
	"log/slog"

	"atelier/internal/notifications"

	"github.com/robfig/cron/v3"
)

// NotificationDispatchJob manages the scheduled draining of the transition
// outbox. Runs every second so notifications follow their transitions with at
// most a tick of lag.
type NotificationDispatchJob struct {
	dispatcher *notifications.Dispatcher
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewNotificationDispatchJob creates a new job for dispatching notifications.
func NewNotificationDispatchJob(dispatcher *notifications.Dispatcher, logger *slog.Logger) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		dispatcher: dispatcher,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "notification_dispatch_job"),
	}
}

// Start begins the notification dispatch job to run every second.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		if err := j.dispatcher.DispatchDue(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Notification dispatch job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started (running every second)")
	return nil
}

// Stop stops the notification dispatch job.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}
