package domain

import "strings"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
)

type TaskPriority string

const (
	TaskPriorityLow      TaskPriority = "low"
	TaskPriorityMedium   TaskPriority = "medium"
	TaskPriorityHigh     TaskPriority = "high"
	TaskPriorityCritical TaskPriority = "critical"
)

type SpeakerStatus string

const (
	SpeakerStatusPending   SpeakerStatus = "pending"
	SpeakerStatusContacted SpeakerStatus = "contacted"
	SpeakerStatusConfirmed SpeakerStatus = "confirmed"
	SpeakerStatusDeclined  SpeakerStatus = "declined"
)

type SpeakerType string

const (
	SpeakerTypeNational      SpeakerType = "national"
	SpeakerTypeInternational SpeakerType = "international"
)

// SponsorLevel is one of the four fixed sponsorship tiers.
type SponsorLevel string

const (
	SponsorLevelDiamond SponsorLevel = "Diamond"
	SponsorLevelGold    SponsorLevel = "Gold"
	SponsorLevelSilver  SponsorLevel = "Silver"
	SponsorLevelBronze  SponsorLevel = "Bronze"
)

// SponsorLevels lists the tiers from highest to lowest.
var SponsorLevels = []SponsorLevel{SponsorLevelDiamond, SponsorLevelGold, SponsorLevelSilver, SponsorLevelBronze}

type SponsorStatus string

const (
	SponsorStatusProspect    SponsorStatus = "prospect"
	SponsorStatusContacted   SponsorStatus = "contacted"
	SponsorStatusNegotiation SponsorStatus = "negotiation"
	SponsorStatusConfirmed   SponsorStatus = "confirmed"
	SponsorStatusPaid        SponsorStatus = "paid"
)

// Committed reports whether the sponsor counts toward tier progress.
func (s SponsorStatus) Committed() bool {
	return s == SponsorStatusConfirmed || s == SponsorStatusPaid
}

type UniversityStatus string

const (
	UniversityStatusPending     UniversityStatus = "pending"
	UniversityStatusContacted   UniversityStatus = "contacted"
	UniversityStatusNegotiation UniversityStatus = "negotiation"
	UniversityStatusSigned      UniversityStatus = "signed"
)

type CampaignStatus string

const (
	CampaignStatusPending   CampaignStatus = "pending"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusCompleted CampaignStatus = "completed"
)

type MetricUnit string

const (
	MetricUnitNumber   MetricUnit = "number"
	MetricUnitPercent  MetricUnit = "percent"
	MetricUnitCurrency MetricUnit = "currency"
)

type MetricPlatform string

const (
	MetricPlatformInstagram MetricPlatform = "instagram"
	MetricPlatformFacebook  MetricPlatform = "facebook"
	MetricPlatformLinkedIn  MetricPlatform = "linkedin"
	MetricPlatformEmail     MetricPlatform = "email"
	MetricPlatformWebsite   MetricPlatform = "website"
	MetricPlatformOther     MetricPlatform = "other"
)

type ObjectiveStatus string

const (
	ObjectiveStatusPending ObjectiveStatus = "pending"
	ObjectiveStatusDefined ObjectiveStatus = "defined"
)

// coerce matches v case-insensitively against the closed set and the aliases,
// returning def when nothing matches.
func coerce[T ~string](v string, def T, aliases map[string]T, set ...T) T {
	key := strings.ToLower(strings.TrimSpace(v))
	for _, candidate := range set {
		if strings.ToLower(string(candidate)) == key {
			return candidate
		}
	}
	if alias, found := aliases[key]; found {
		return alias
	}
	return def
}

func CoerceTaskStatus(v string) TaskStatus {
	return coerce(v, TaskStatusPending, map[string]TaskStatus{"in progress": TaskStatusInProgress, "in_progress": TaskStatusInProgress},
		TaskStatusPending, TaskStatusInProgress, TaskStatusDone)
}

func CoerceTaskPriority(v string) TaskPriority {
	return coerce(v, TaskPriorityMedium, nil, TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityCritical)
}

func CoerceSpeakerStatus(v string) SpeakerStatus {
	return coerce(v, SpeakerStatusPending, nil, SpeakerStatusPending, SpeakerStatusContacted, SpeakerStatusConfirmed, SpeakerStatusDeclined)
}

func CoerceSpeakerType(v string) SpeakerType {
	return coerce(v, SpeakerTypeNational, nil, SpeakerTypeNational, SpeakerTypeInternational)
}

var sponsorLevelAliases = map[string]SponsorLevel{
	"diamante": SponsorLevelDiamond,
	"oro":      SponsorLevelGold,
	"plata":    SponsorLevelSilver,
	"bronce":   SponsorLevelBronze,
}

// CoerceSponsorLevel also accepts the Spanish tier names.
func CoerceSponsorLevel(v string) SponsorLevel {
	return coerce(v, SponsorLevelBronze, sponsorLevelAliases, SponsorLevels...)
}

func CoerceSponsorStatus(v string) SponsorStatus {
	return coerce(v, SponsorStatusProspect, nil, SponsorStatusProspect, SponsorStatusContacted,
		SponsorStatusNegotiation, SponsorStatusConfirmed, SponsorStatusPaid)
}

func CoerceUniversityStatus(v string) UniversityStatus {
	return coerce(v, UniversityStatusPending, nil, UniversityStatusPending, UniversityStatusContacted,
		UniversityStatusNegotiation, UniversityStatusSigned)
}

func CoerceCampaignStatus(v string) CampaignStatus {
	return coerce(v, CampaignStatusPending, nil, CampaignStatusPending, CampaignStatusActive, CampaignStatusCompleted)
}

func CoerceMetricUnit(v string) MetricUnit {
	return coerce(v, MetricUnitNumber, nil, MetricUnitNumber, MetricUnitPercent, MetricUnitCurrency)
}

func CoerceMetricPlatform(v string) MetricPlatform {
	return coerce(v, MetricPlatformOther, nil, MetricPlatformInstagram, MetricPlatformFacebook, MetricPlatformLinkedIn,
		MetricPlatformEmail, MetricPlatformWebsite, MetricPlatformOther)
}

func CoerceObjectiveStatus(v string) ObjectiveStatus {
	return coerce(v, ObjectiveStatusPending, nil, ObjectiveStatusPending, ObjectiveStatusDefined)
}
