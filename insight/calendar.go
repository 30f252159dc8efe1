package insight

import (
	"eventdesk/common"
	"eventdesk/domain"
	"fmt"
	"time"
)

var monthNames = [...]string{"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio", "Julio", "Agosto",
	"Septiembre", "Octubre", "Noviembre", "Diciembre"}

// MonthName is the Spanish name of m.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}

// CalendarBuckets groups dated tasks by their exact date string. Dates are
// never parsed, so the key is whatever the task carries.
func CalendarBuckets(tasks []domain.Task) map[string][]domain.Task {
	r := map[string][]domain.Task{}
	for _, t := range tasks {
		if t.Date == "" {
			continue
		}
		r[t.Date] = append(r[t.Date], t)
	}
	return r
}

func TasksOn(tasks []domain.Task, day string) []domain.Task {
	r := []domain.Task{}
	if day == "" {
		return r
	}
	for _, t := range tasks {
		if t.Date == day {
			r = append(r, t)
		}
	}
	return r
}

type CalendarDay struct {
	Day   int           `json:"day"`
	Date  string        `json:"date"`
	Tasks []domain.Task `json:"tasks"`
}

// MonthView is a Sunday-first month grid: LeadingBlanks empty cells precede day 1.
type MonthView struct {
	Year          int           `json:"year"`
	Month         int           `json:"month"`
	Label         string        `json:"label"`
	LeadingBlanks int           `json:"leadingBlanks"`
	Days          []CalendarDay `json:"days"`
}

func MonthGrid(year int, month time.Month, tasks []domain.Task) MonthView {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// normalizes out-of-range months, e.g. month 13 is January of the next year
	year, month = first.Year(), first.Month()
	daysInMonth := first.AddDate(0, 1, -1).Day()

	buckets := CalendarBuckets(tasks)
	v := MonthView{
		Year:          year,
		Month:         int(month),
		Label:         fmt.Sprintf("%s %d", MonthName(month), year),
		LeadingBlanks: int(first.Weekday()),
		Days:          make([]CalendarDay, 0, daysInMonth),
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(common.DateLayout)
		dayTasks := buckets[date]
		if dayTasks == nil {
			dayTasks = []domain.Task{}
		}
		v.Days = append(v.Days, CalendarDay{Day: day, Date: date, Tasks: dayTasks})
	}
	return v
}
