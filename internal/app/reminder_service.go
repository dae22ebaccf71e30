// internal/app/reminder_service.go
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"strategic_reminder/internal/domain/reminder"
	"strategic_reminder/internal/domain/sender"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrTransmission wraps any failure reported by the delivery channel. Sends are never retried.
var ErrTransmission = errors.New("transmission failed")

// Channel is an opened delivery route: the transport plus the addressing used for one send.
type Channel struct {
	Name   string // e.g. "SMS", used in status output
	Sender sender.Sender
	To     string
	From   string
}

// ChannelOpener resolves credentials and builds a Channel. It is only called once
// the guardrail has approved a send, so missing credentials never fail a skipped run.
type ChannelOpener func() (Channel, error)

// Result describes the outcome of one Run.
type Result struct {
	RunID     string
	Mode      reminder.Mode
	Date      time.Time
	Skipped   bool
	Notice    string // Set when Skipped
	Channel   string
	MessageID string
}

// ReminderService evaluates the guardrail, builds the message and hands it to the channel.
type ReminderService struct {
	openChannel   ChannelOpener
	dashboardLink string
	logger        *logrus.Logger
}

func NewReminderService(open ChannelOpener, dashboardLink string, logger *logrus.Logger) *ReminderService {
	return &ReminderService{
		openChannel:   open,
		dashboardLink: dashboardLink,
		logger:        logger,
	}
}

// Run performs a single reminder invocation for mode on date.
// A guardrail rejection is not an error: it returns a Result with Skipped set.
func (s *ReminderService) Run(ctx context.Context, mode reminder.Mode, date time.Time) (Result, error) {
	date = reminder.DateOf(date)
	res := Result{RunID: uuid.NewString(), Mode: mode, Date: date}
	log := s.logger.WithFields(logrus.Fields{
		"run_id": res.RunID,
		"mode":   mode,
		"date":   date.Format(reminder.DateLayout),
	})

	if !reminder.PermitsSend(mode, date) {
		res.Skipped = true
		res.Notice = reminder.SkipNotice(mode)
		log.Info("Guardrail rejected send date, skipping.")
		return res, nil
	}

	body := reminder.Build(mode, date, s.dashboardLink).String()
	log.Debugf("Reminder body built (%d bytes).", len(body))

	ch, err := s.openChannel()
	if err != nil {
		log.WithError(err).Error("Could not open delivery channel.")
		return res, err
	}
	res.Channel = ch.Name

	id, err := ch.Sender.Send(ctx, sender.Message{To: ch.To, From: ch.From, Body: body})
	if err != nil {
		log.WithError(err).WithField("channel", ch.Name).Error("Failed to send reminder.")
		return res, fmt.Errorf("%w: %s: %w", ErrTransmission, ch.Name, err)
	}
	res.MessageID = id

	log.WithFields(logrus.Fields{"channel": ch.Name, "message_id": id}).Info("Reminder sent.")
	return res, nil
}
