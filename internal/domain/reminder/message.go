// internal/domain/reminder/message.go
package reminder

import (
	"fmt"
	"strings"
	"time"
)

// Message is the reminder body as an ordered list of lines.
// Lines are: one header, two mode-specific bullets, one dashboard footer.
type Message struct {
	lines []string
}

var modeBullets = map[Mode][2]string{
	ModeWeekly: {
		"✅ Review progress and update key actions.",
		"🔍 Check overdue & upcoming tasks.",
	},
	ModeMonthly: {
		"📊 Prepare monthly wrap-up and finalize metrics.",
		"📌 Ensure sustainability & margin reviews are complete.",
	},
	ModeQuarterly: {
		"📈 Quarterly review — assess goals vs outcomes.",
		"🚀 Plan adjustments for next quarter.",
	},
}

// Build constructs the reminder text for mode on date. The dashboard
// reference is copied verbatim, even when empty.
func Build(mode Mode, date time.Time, dashboard string) Message {
	bullets := modeBullets[mode]
	return Message{lines: []string{
		fmt.Sprintf("📅 Strategic Reminder (%s) — %s", mode.Title(), DateOf(date).Format(DateLayout)),
		bullets[0],
		bullets[1],
		"🔗 Dashboard: " + dashboard,
	}}
}

// Lines returns a copy of the message lines.
func (m Message) Lines() []string {
	out := make([]string, len(m.lines))
	copy(out, m.lines)
	return out
}

// String joins the lines with newlines, producing the SMS body.
func (m Message) String() string {
	return strings.Join(m.lines, "\n")
}
