package scheduler

import (
	"context"
	"fmt"
	"time"

	"strategic_reminder/internal/app"
	"strategic_reminder/internal/domain/reminder"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const jobTimeout = 1 * time.Minute

// ReminderRunner is the operation each cron job triggers. *app.ReminderService implements it.
type ReminderRunner interface {
	Run(ctx context.Context, mode reminder.Mode, date time.Time) (app.Result, error)
}

// ReminderScheduler fires every mode on its own cron spec. The monthly and quarterly
// specs normally run daily; the guardrails decide whether a given day actually sends.
type ReminderScheduler struct {
	cronEngine *cron.Cron
	runner     ReminderRunner
	logger     *logrus.Logger
	location   *time.Location
	specs      map[reminder.Mode]string
	now        func() time.Time
}

func NewReminderScheduler(
	runner ReminderRunner,
	logger *logrus.Logger,
	location *time.Location,
	specs map[reminder.Mode]string, // e.g. {weekly: "0 9 * * 1", monthly: "0 9 * * *"}
) *ReminderScheduler {
	return &ReminderScheduler{
		cronEngine: cron.New(cron.WithLocation(location)),
		runner:     runner,
		logger:     logger,
		location:   location,
		specs:      specs,
		now:        time.Now,
	}
}

// Start registers one job per configured mode and starts the cron engine.
func (s *ReminderScheduler) Start() error {
	s.logger.Info("Starting reminder scheduler...")

	for _, mode := range reminder.Modes {
		spec, ok := s.specs[mode]
		if !ok || spec == "" {
			s.logger.WithField("mode", mode).Info("No cron spec configured, mode not scheduled.")
			continue
		}
		mode := mode
		if _, err := s.cronEngine.AddFunc(spec, func() { s.runJob(mode) }); err != nil {
			return fmt.Errorf("could not add %s cron job %q: %w", mode, spec, err)
		}
		s.logger.WithFields(logrus.Fields{"mode": mode, "spec": spec}).Info("Cron job registered.")
	}

	s.cronEngine.Start()
	s.logger.WithField("location", s.location.String()).Info("Reminder scheduler started with jobs.")
	return nil
}

// runJob executes one reminder run. Failures are logged and never stop the scheduler.
func (s *ReminderScheduler) runJob(mode reminder.Mode) {
	log := s.logger.WithField("mode", mode)
	log.Info("Cron job triggered.")

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	res, err := s.runner.Run(ctx, mode, s.now().In(s.location))
	switch {
	case err != nil:
		log.WithError(err).Error("Scheduled reminder failed.")
	case res.Skipped:
		log.Info(res.Notice)
	default:
		log.WithField("message_id", res.MessageID).Infof("Scheduled reminder sent via %s.", res.Channel)
	}
}

func (s *ReminderScheduler) Stop() {
	s.logger.Info("Stopping reminder scheduler...")
	ctx := s.cronEngine.Stop() // Stops the scheduler from adding new jobs, waits for running jobs.
	<-ctx.Done()
	s.logger.Info("Reminder scheduler gracefully stopped.")
}
