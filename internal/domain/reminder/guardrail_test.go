package reminder

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestLastDayOfMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2000, time.February, 29},
		{1900, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LastDayOfMonth(tc.year, tc.month), "%d-%02d", tc.year, tc.month)
	}
}

func TestIsTwoDaysBeforeMonthEnd(t *testing.T) {
	cases := map[string]bool{
		"2024-04-28": false,
		"2024-04-29": true,
		"2024-04-30": false,
		"2024-02-27": false,
		"2024-02-28": true,
		"2024-02-29": false,
		"2023-02-27": true,
		"2023-02-28": false,
		"2024-12-30": true,
		"2024-12-31": false,
		"2024-01-01": false,
	}
	for date, want := range cases {
		assert.Equal(t, want, IsTwoDaysBeforeMonthEnd(mustDate(t, date)), date)
	}
}

func TestIsOneWeekBeforeQuarterEnd(t *testing.T) {
	cases := map[string]bool{
		"2024-03-23": false,
		"2024-03-24": true,
		"2024-03-25": false,
		"2024-06-22": false,
		"2024-06-23": true,
		"2024-09-23": true,
		"2024-12-24": true,
		"2024-12-31": false,
		"2024-01-01": false,
		"2024-05-24": false,
	}
	for date, want := range cases {
		assert.Equal(t, want, IsOneWeekBeforeQuarterEnd(mustDate(t, date)), date)
	}
}

func TestGuardrailsIgnoreTimeOfDayAndLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	late := time.Date(2024, time.March, 24, 23, 59, 0, 0, tokyo)
	require.True(t, IsOneWeekBeforeQuarterEnd(late))

	early := time.Date(2024, time.April, 29, 0, 1, 0, 0, time.FixedZone("PST", -8*60*60))
	require.True(t, IsTwoDaysBeforeMonthEnd(early))
}

func TestQuarterEnd(t *testing.T) {
	assert.Equal(t, mustDate(t, "2024-03-31"), QuarterEnd(mustDate(t, "2024-01-01")))
	assert.Equal(t, mustDate(t, "2024-06-30"), QuarterEnd(mustDate(t, "2024-04-15")))
	assert.Equal(t, mustDate(t, "2024-09-30"), QuarterEnd(mustDate(t, "2024-09-30")))
	assert.Equal(t, mustDate(t, "2024-12-31"), QuarterEnd(mustDate(t, "2024-10-01")))
}

func TestPermitsSend(t *testing.T) {
	assert.True(t, PermitsSend(ModeMonthly, mustDate(t, "2024-04-29")))
	assert.False(t, PermitsSend(ModeMonthly, mustDate(t, "2024-04-28")))
	assert.True(t, PermitsSend(ModeQuarterly, mustDate(t, "2024-06-23")))
	assert.False(t, PermitsSend(ModeQuarterly, mustDate(t, "2024-06-22")))
	assert.False(t, PermitsSend(Mode("yearly"), mustDate(t, "2024-06-23")))
}

func TestSkipNotice(t *testing.T) {
	assert.Equal(t, "Not 2 days before month-end; skipping.", SkipNotice(ModeMonthly))
	assert.Equal(t, "Not 1 week before quarter-end; skipping.", SkipNotice(ModeQuarterly))
}

// genDate yields calendar dates between 1900-01-01 and roughly 2173.
func genDate() gopter.Gen {
	base := time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	return gen.IntRange(0, 100000).Map(func(offset int) time.Time {
		return base.AddDate(0, 0, offset)
	})
}

func TestGuardrailProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("weekly is always permitted", prop.ForAll(
		func(d time.Time) bool {
			return PermitsSend(ModeWeekly, d)
		},
		genDate(),
	))

	properties.Property("month-end check holds iff two days later is the 1st", prop.ForAll(
		func(d time.Time) bool {
			return IsTwoDaysBeforeMonthEnd(d) == (d.AddDate(0, 0, 2).Day() == 1)
		},
		genDate(),
	))

	properties.Property("quarter-end check holds iff eight days later opens a quarter", prop.ForAll(
		func(d time.Time) bool {
			next := d.AddDate(0, 0, 8)
			opensQuarter := next.Day() == 1 && (int(next.Month())-1)%3 == 0
			return IsOneWeekBeforeQuarterEnd(d) == opensQuarter
		},
		genDate(),
	))

	properties.Property("exactly one monthly send day per month", prop.ForAll(
		func(d time.Time) bool {
			count := 0
			for day := 1; day <= LastDayOfMonth(d.Year(), d.Month()); day++ {
				if IsTwoDaysBeforeMonthEnd(time.Date(d.Year(), d.Month(), day, 0, 0, 0, 0, time.UTC)) {
					count++
				}
			}
			return count == 1
		},
		genDate(),
	))

	properties.Property("monthly and quarterly delegate to their checks", prop.ForAll(
		func(d time.Time) bool {
			return PermitsSend(ModeMonthly, d) == IsTwoDaysBeforeMonthEnd(d) &&
				PermitsSend(ModeQuarterly, d) == IsOneWeekBeforeQuarterEnd(d)
		},
		genDate(),
	))

	properties.TestingRun(t)
}
