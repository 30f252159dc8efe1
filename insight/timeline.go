package insight

import (
	"errors"
	"eventdesk/common"
	"eventdesk/domain"
	"fmt"
	"sort"
	"time"
)

type TimelineMode string

const (
	TimelineModePhases TimelineMode = "phases"
	TimelineModeMonths TimelineMode = "months"
)

const (
	PhaseNoDate    = "Sin Fecha"
	PhasePostEvent = "Post-Evento"
	// PhaseFundraising is the merged February/March 2026 bucket of the phases view.
	PhaseFundraising = "Febrero - Marzo"

	// CategoryPostEvent is the task category routed to the post-event bucket.
	CategoryPostEvent = "Post-Evento"
)

var ErrUnknownTimelineMode = errors.New("unknown timeline mode")

// ParseTimelineMode accepts "phases", "months", or empty for phases.
func ParseTimelineMode(s string) (TimelineMode, error) {
	switch TimelineMode(s) {
	case "", TimelineModePhases:
		return TimelineModePhases, nil
	case TimelineModeMonths:
		return TimelineModeMonths, nil
	}
	return "", ErrUnknownTimelineMode
}

type Phase struct {
	Label string        `json:"label"`
	Tasks []domain.Task `json:"tasks"`
}

const (
	rankDated = iota
	rankPostEvent
	rankNoDate
)

type phaseKey struct {
	rank   int
	anchor time.Time
	label  string
}

func phaseOf(t domain.Task, mode TimelineMode) phaseKey {
	if t.Category == CategoryPostEvent {
		return phaseKey{rank: rankPostEvent, label: PhasePostEvent}
	}
	date, ok := common.ParseDate(t.Date)
	if !ok {
		return phaseKey{rank: rankNoDate, label: PhaseNoDate}
	}
	anchor := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	if mode == TimelineModePhases && date.Year() == 2026 && (date.Month() == time.February || date.Month() == time.March) {
		return phaseKey{rank: rankDated, anchor: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), label: PhaseFundraising}
	}
	return phaseKey{rank: rankDated, anchor: anchor, label: fmt.Sprintf("%s %d", MonthName(date.Month()), date.Year())}
}

// TimelinePhases buckets tasks by month in chronological order. Post-event
// tasks follow the dated buckets and undated tasks come last. Tasks keep
// their relative order inside a bucket.
func TimelinePhases(tasks []domain.Task, mode TimelineMode) []Phase {
	keys := []phaseKey{}
	buckets := map[string][]domain.Task{}
	for _, t := range tasks {
		k := phaseOf(t, mode)
		if _, found := buckets[k.label]; !found {
			keys = append(keys, k)
		}
		buckets[k.label] = append(buckets[k.label], t)
	}

	sort.SliceStable(keys, func(i, j int) bool {
		if keys[i].rank != keys[j].rank {
			return keys[i].rank < keys[j].rank
		}
		return keys[i].anchor.Before(keys[j].anchor)
	})

	r := make([]Phase, 0, len(keys))
	for _, k := range keys {
		r = append(r, Phase{Label: k.label, Tasks: buckets[k.label]})
	}
	return r
}
