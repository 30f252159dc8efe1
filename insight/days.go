// Package insight computes the derived dashboard views. Every calculator is a
// pure function of the project state and the supplied clock.
package insight

import (
	"eventdesk/common"
	"math"
	"time"
)

// DaysRemaining is the whole number of days between now and the event date,
// rounded up. The distance is absolute: a past event counts days since.
// An empty or malformed date yields 0.
func DaysRemaining(eventDate string, now time.Time) int {
	date, ok := common.ParseDate(eventDate)
	if !ok {
		return 0
	}
	// seconds apart; time.Duration saturates beyond ~292 years
	diff := float64(date.Unix()-now.Unix()) + float64(date.Nanosecond()-now.Nanosecond())/1e9
	return int(math.Ceil(math.Abs(diff) / (24 * 60 * 60)))
}

// percent is part/whole in whole percent, bounded to the int32 range.
func percent(part, whole float64) int {
	if whole <= 0 {
		return 0
	}
	p := math.Round(part / whole * 100)
	if math.IsNaN(p) {
		return 0
	}
	return int(math.Max(-math.MaxInt32, math.Min(math.MaxInt32, p)))
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
