package persistence

import (
	"eventdesk/domain"
)

// ProjectData is the whole state of one project: its metadata, its members and
// the planning collections it owns.
type ProjectData struct {
	Project domain.Project
	Members []domain.ProjectMember

	Tasks            Collection[domain.Task]
	BudgetItems      Collection[domain.BudgetItem]
	Speakers         Collection[domain.Speaker]
	Sponsors         Collection[domain.Sponsor]
	Universities     Collection[domain.University]
	Campaigns        Collection[domain.Campaign]
	MarketingMetrics Collection[domain.MarketingMetric]
	TeamMembers      Collection[domain.TeamMember]
	Objectives       Collection[domain.Objective]
}

func NewProjectData(project domain.Project) *ProjectData {
	return &ProjectData{Project: project}
}

func (d *ProjectData) Clone() *ProjectData {
	c := &ProjectData{
		Project: d.Project,
		Members: append([]domain.ProjectMember{}, d.Members...),

		Tasks:            d.Tasks.clone(),
		BudgetItems:      d.BudgetItems.clone(),
		Speakers:         d.Speakers.clone(),
		Sponsors:         d.Sponsors.clone(),
		Universities:     d.Universities.clone(),
		Campaigns:        d.Campaigns.clone(),
		MarketingMetrics: d.MarketingMetrics.clone(),
		TeamMembers:      d.TeamMembers.clone(),
		Objectives:       d.Objectives.clone(),
	}
	return c
}
