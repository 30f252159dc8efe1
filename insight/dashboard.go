package insight

import (
	"eventdesk/domain"
	"eventdesk/persistence"
	"time"

	"github.com/fundwit/go-commons/types"
)

// dashboard lists show the first rows only
const previewSize = 5

type DashboardView struct {
	ProjectID       types.ID `json:"projectId"`
	EventName       string   `json:"eventName"`
	EventDate       string   `json:"eventDate"`
	DaysRemaining   int      `json:"daysRemaining"`
	TargetAttendees int      `json:"targetAttendees"`

	Budget       BudgetSummary     `json:"budget"`
	BudgetLines  []BudgetLine      `json:"budgetLines"`
	Sponsors     SponsorSummary    `json:"sponsors"`
	Universities UniversitySummary `json:"universities"`
	Speakers     SpeakerSummary    `json:"speakers"`
	Tasks        TaskStats         `json:"tasks"`
	RecentTasks  []domain.Task     `json:"recentTasks"`
	Metrics      []MetricLine      `json:"metrics"`
}

// Dashboard aggregates every KPI of the dashboard view from one project snapshot.
func Dashboard(d *persistence.ProjectData, now time.Time) DashboardView {
	config := d.Project.Config
	tasks := d.Tasks.List()
	budgetItems := d.BudgetItems.List()

	recent := tasks
	if len(recent) > previewSize {
		recent = recent[:previewSize]
	}

	return DashboardView{
		ProjectID:       d.Project.ID,
		EventName:       config.EventName,
		EventDate:       config.EventDate,
		DaysRemaining:   DaysRemaining(config.EventDate, now),
		TargetAttendees: config.TargetAttendees,

		Budget:       SummarizeBudget(budgetItems, config.TotalBudget),
		BudgetLines:  BudgetLines(budgetItems, previewSize),
		Sponsors:     SponsorFunnel(d.Sponsors.List(), config),
		Universities: UniversityFunnel(d.Universities.List(), config),
		Speakers:     SpeakerLineup(d.Speakers.List()),
		Tasks:        TaskProgress(tasks),
		RecentTasks:  recent,
		Metrics:      MetricLines(d.MarketingMetrics.List()),
	}
}
