package domain

import (
	"time"

	"github.com/fundwit/go-commons/types"
)

// Project is one managed event and all of its planning data.
type Project struct {
	ID             types.ID `json:"id"`
	OrganizationID types.ID `json:"organizationId"`

	Name   string      `json:"name"`
	Config EventConfig `json:"config"`

	CreateTime time.Time `json:"createTime"`
	Creator    types.ID  `json:"creator"`
}

type ProjectCreating struct {
	Name string `json:"name" binding:"required,lte=60"`
}

type ProjectUpdating struct {
	Name string `json:"name" binding:"required,lte=60"`
}

type SponsorTargets struct {
	Diamond int `json:"Diamond" yaml:"diamond" binding:"gte=0"`
	Gold    int `json:"Gold" yaml:"gold" binding:"gte=0"`
	Silver  int `json:"Silver" yaml:"silver" binding:"gte=0"`
	Bronze  int `json:"Bronze" yaml:"bronze" binding:"gte=0"`
}

func (t SponsorTargets) For(level SponsorLevel) int {
	switch level {
	case SponsorLevelDiamond:
		return t.Diamond
	case SponsorLevelGold:
		return t.Gold
	case SponsorLevelSilver:
		return t.Silver
	case SponsorLevelBronze:
		return t.Bronze
	}
	return 0
}

// EventConfig holds the event-level targets shown on the dashboard.
type EventConfig struct {
	EventName        string         `json:"eventName" yaml:"eventName" binding:"required,lte=120"`
	EventDate        string         `json:"eventDate" yaml:"eventDate" binding:"omitempty,datetime=2006-01-02"`
	TargetAttendees  int            `json:"targetAttendees" yaml:"targetAttendees" binding:"gte=0"`
	SponsorsTarget   int            `json:"sponsorsTarget" yaml:"sponsorsTarget" binding:"gte=0"`
	TotalBudget      float64        `json:"totalBudget" yaml:"totalBudget" binding:"gte=0"`
	UniversityTarget int            `json:"universityTarget" yaml:"universityTarget" binding:"gte=0"`
	StudentTarget    int            `json:"studentTarget" yaml:"studentTarget" binding:"gte=0"`
	SponsorTargets   SponsorTargets `json:"sponsorTargets" yaml:"sponsorTargets"`
}
