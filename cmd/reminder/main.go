package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"strategic_reminder/internal/app"
	"strategic_reminder/internal/domain/reminder"
	"strategic_reminder/internal/infra/config"
	"strategic_reminder/internal/infra/logger"
	"strategic_reminder/internal/infra/scheduler"
	"strategic_reminder/internal/infra/telegram"
	"strategic_reminder/internal/infra/twilio"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2

	scheduleCommand = "schedule"
)

var errUsage = errors.New("usage: reminder [--today YYYY-MM-DD] {weekly|monthly|quarterly|schedule}")

// Swapped in tests.
var (
	now        = time.Now
	newChannel = openChannel
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one CLI invocation and returns the process exit code.
// It is the only place where errors turn into exit codes.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	command, today, err := parseArgs(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: could not load configuration: %v\n", err)
		return exitError
	}
	logger.Init(cfg, stderr)

	svc := app.NewReminderService(func() (app.Channel, error) {
		return newChannel(cfg)
	}, cfg.DashboardLink, logger.Get())

	if command == scheduleCommand {
		if err := runScheduler(ctx, cfg, svc); err != nil {
			fmt.Fprintf(stderr, "ERROR: %v\n", err)
			return exitError
		}
		return exitOK
	}

	mode, err := reminder.ParseMode(command)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return exitUsage
	}

	date := now()
	if today != "" {
		if date, err = reminder.ParseDate(today); err != nil {
			fmt.Fprintf(stderr, "ERROR: %v\n", err)
			return exitUsage
		}
	}

	res, err := svc.Run(ctx, mode, date)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return exitError
	}
	if res.Skipped {
		fmt.Fprintln(stdout, res.Notice)
		return exitOK
	}
	fmt.Fprintf(stdout, "Sent %s SID: %s\n", res.Channel, res.MessageID)
	return exitOK
}

// parseArgs accepts the --today flag on either side of the positional command.
func parseArgs(args []string, stderr io.Writer) (command, today string, err error) {
	fs := flag.NewFlagSet("reminder", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&today, "today", "", "Simulate date YYYY-MM-DD (for tests)")

	if err := fs.Parse(args); err != nil {
		return "", "", err
	}
	if fs.NArg() == 0 {
		return "", "", errUsage
	}
	command = fs.Arg(0)
	if err := fs.Parse(fs.Args()[1:]); err != nil {
		return "", "", err
	}
	if fs.NArg() > 0 {
		return "", "", fmt.Errorf("unexpected arguments %v: %w", fs.Args(), errUsage)
	}
	if command == scheduleCommand && today != "" {
		return "", "", errors.New("--today cannot be combined with schedule")
	}
	return command, today, nil
}

// openChannel builds the configured delivery channel. Credentials are read here, at send time.
func openChannel(cfg *config.AppConfig) (app.Channel, error) {
	switch cfg.Channel {
	case config.ChannelTelegram:
		creds, err := cfg.TelegramCredentials()
		if err != nil {
			return app.Channel{}, err
		}
		bot, err := telegram.NewTelebotAdapter(creds.Token)
		if err != nil {
			return app.Channel{}, err
		}
		return app.Channel{Name: "Telegram", Sender: bot, To: creds.ChatID}, nil
	default:
		creds, err := cfg.SMSCredentials()
		if err != nil {
			return app.Channel{}, err
		}
		return app.Channel{
			Name:   "SMS",
			Sender: twilio.NewClient(creds.AccountSID, creds.AuthToken),
			To:     creds.To,
			From:   creds.From,
		}, nil
	}
}

// runScheduler blocks until SIGINT/SIGTERM, firing reminders on the configured cron specs.
func runScheduler(ctx context.Context, cfg *config.AppConfig, svc *app.ReminderService) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := scheduler.NewReminderScheduler(svc, logger.Get(), cfg.CronLocation, map[reminder.Mode]string{
		reminder.ModeWeekly:    cfg.CronSpecWeekly,
		reminder.ModeMonthly:   cfg.CronSpecMonthly,
		reminder.ModeQuarterly: cfg.CronSpecQuarterly,
	})
	if err := s.Start(); err != nil {
		return err
	}

	<-ctx.Done() // Block until a signal is received
	s.Stop()
	return nil
}
