// internal/domain/reminder/mode.go
package reminder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned when a mode string is not one of the known cadences.
var ErrUnknownMode = errors.New("unknown reminder mode")

// Mode selects the reminder cadence. It drives both the guardrail and the message content.
type Mode string

const (
	ModeWeekly    Mode = "weekly"
	ModeMonthly   Mode = "monthly"
	ModeQuarterly Mode = "quarterly"
)

// Modes lists every supported mode in cadence order.
var Modes = []Mode{ModeWeekly, ModeMonthly, ModeQuarterly}

// ParseMode converts a CLI argument into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeWeekly, ModeMonthly, ModeQuarterly:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q (choose from weekly, monthly, quarterly)", ErrUnknownMode, s)
	}
}

// Title returns the mode name with its first letter upper-cased, e.g. "Monthly".
func (m Mode) Title() string {
	if m == "" {
		return ""
	}
	return strings.ToUpper(string(m[:1])) + string(m[1:])
}

func (m Mode) String() string {
	return string(m)
}
