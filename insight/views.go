package insight

import (
	"eventdesk/common"
	"eventdesk/domain/namespace"
	"eventdesk/persistence"
	"eventdesk/session"
	"time"

	"github.com/fundwit/go-commons/types"
)

var (
	QueryDashboardFunc = QueryDashboard
	QueryTimelineFunc  = QueryTimeline
	QueryCalendarFunc  = QueryCalendar
)

func view(projectID types.ID, sec *session.Session, fn func(d *persistence.ProjectData)) error {
	return persistence.ActiveStore.View(projectID, func(d *persistence.ProjectData) error {
		if err := namespace.AuthorizeView(d, sec); err != nil {
			return err
		}
		fn(d)
		return nil
	})
}

func QueryDashboard(projectID types.ID, sec *session.Session) (*DashboardView, error) {
	var r DashboardView
	if err := view(projectID, sec, func(d *persistence.ProjectData) { r = Dashboard(d, common.NowFunc()) }); err != nil {
		return nil, err
	}
	return &r, nil
}

func QueryTimeline(projectID types.ID, mode TimelineMode, sec *session.Session) ([]Phase, error) {
	var r []Phase
	if err := view(projectID, sec, func(d *persistence.ProjectData) { r = TimelinePhases(d.Tasks.List(), mode) }); err != nil {
		return nil, err
	}
	return r, nil
}

func QueryCalendar(projectID types.ID, year int, month time.Month, sec *session.Session) (*MonthView, error) {
	var r MonthView
	if err := view(projectID, sec, func(d *persistence.ProjectData) { r = MonthGrid(year, month, d.Tasks.List()) }); err != nil {
		return nil, err
	}
	return &r, nil
}
