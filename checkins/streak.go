package checkins

import "time"

// StreakLookbackDays bounds the backward walk. A streak longer than the
// lookback window is reported as the window size.
const StreakLookbackDays = 90

const dayKeyFormat = "2006-01-02"

// Streak counts consecutive calendar days with at least one check-in,
// walking backward from now. A missing check-in for the current day does
// not break the streak; it is skipped without being counted, so an evening
// streak survives until the user checks in. Any other missing day ends the
// walk. The order of rows does not matter.
func Streak(now time.Time, rows []*Checkin) int {
	days := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if row == nil || row.CheckedAt == nil {
			continue
		}
		days[row.CheckedAt.Format(dayKeyFormat)] = struct{}{}
	}

	streak := 0
	for offset := 0; offset < StreakLookbackDays; offset++ {
		day := now.AddDate(0, 0, -offset).Format(dayKeyFormat)
		if _, ok := days[day]; ok {
			streak++
			continue
		}
		if offset == 0 {
			continue
		}
		break
	}

	return streak
}
