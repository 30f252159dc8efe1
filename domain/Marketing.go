package domain

import (
	"eventdesk/common"
	"strings"
)

type Campaign struct {
	ID       int            `json:"id" yaml:"id"`
	Phase    string         `json:"phase" yaml:"phase" binding:"required,lte=120"`
	Dates    string         `json:"dates" yaml:"dates"`
	Status   CampaignStatus `json:"status" yaml:"status" binding:"oneof=pending active completed"`
	Channels []string       `json:"channels" yaml:"channels"`
	Progress int            `json:"progress" yaml:"progress" binding:"gte=0,lte=100"`
}

func (c Campaign) GetID() int { return c.ID }

func (c Campaign) WithID(id int) Campaign {
	c.ID = id
	return c
}

type CampaignCreation struct {
	Phase    string         `json:"phase" binding:"required,lte=120"`
	Dates    string         `json:"dates"`
	Status   CampaignStatus `json:"status" binding:"omitempty,oneof=pending active completed"`
	Channels []string       `json:"channels"`
	Progress int            `json:"progress" binding:"gte=0,lte=100"`
}

func (c CampaignCreation) BuildCampaign(id int) Campaign {
	r := Campaign{ID: id, Phase: strings.TrimSpace(c.Phase), Dates: c.Dates, Status: c.Status,
		Channels: normalizeChannels(c.Channels), Progress: c.Progress}
	if r.Status == "" {
		r.Status = CampaignStatusPending
	}
	return r
}

type CampaignUpdating struct {
	Phase    *string         `json:"phase"`
	Dates    *string         `json:"dates"`
	Status   *CampaignStatus `json:"status"`
	Channels *[]string       `json:"channels"`
	Progress *int            `json:"progress"`
}

func (u CampaignUpdating) Apply(c Campaign) Campaign {
	if u.Phase != nil {
		c.Phase = strings.TrimSpace(*u.Phase)
	}
	if u.Dates != nil {
		c.Dates = *u.Dates
	}
	if u.Status != nil {
		c.Status = *u.Status
	}
	if u.Channels != nil {
		c.Channels = normalizeChannels(*u.Channels)
	}
	if u.Progress != nil {
		c.Progress = *u.Progress
	}
	return c
}

func (c Campaign) Normalized() Campaign {
	c.Phase = strings.TrimSpace(c.Phase)
	c.Status = CoerceCampaignStatus(string(c.Status))
	c.Channels = normalizeChannels(c.Channels)
	if c.Progress < 0 {
		c.Progress = 0
	} else if c.Progress > 100 {
		c.Progress = 100
	}
	return c
}

// channels are a set: blanks and duplicates are dropped, first occurrence wins
func normalizeChannels(channels []string) []string {
	r := []string{}
	seen := map[string]bool{}
	for _, ch := range channels {
		ch = strings.TrimSpace(ch)
		if ch == "" || seen[ch] {
			continue
		}
		seen[ch] = true
		r = append(r, ch)
	}
	return r
}

type MarketingMetric struct {
	ID          int            `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name" binding:"required,lte=120"`
	Value       float64        `json:"value" yaml:"value"`
	Target      float64        `json:"target" yaml:"target" binding:"gte=0"`
	Unit        MetricUnit     `json:"unit" yaml:"unit" binding:"oneof=number percent currency"`
	Platform    MetricPlatform `json:"platform" yaml:"platform" binding:"oneof=instagram facebook linkedin email website other"`
	LastUpdated string         `json:"lastUpdated" yaml:"lastUpdated"`
}

func (m MarketingMetric) GetID() int { return m.ID }

func (m MarketingMetric) WithID(id int) MarketingMetric {
	m.ID = id
	return m
}

type MarketingMetricCreation struct {
	Name     string         `json:"name" binding:"required,lte=120"`
	Value    float64        `json:"value"`
	Target   float64        `json:"target" binding:"gte=0"`
	Unit     MetricUnit     `json:"unit" binding:"omitempty,oneof=number percent currency"`
	Platform MetricPlatform `json:"platform" binding:"omitempty,oneof=instagram facebook linkedin email website other"`
}

func (c MarketingMetricCreation) BuildMarketingMetric(id int) MarketingMetric {
	m := MarketingMetric{ID: id, Name: strings.TrimSpace(c.Name), Value: c.Value, Target: c.Target,
		Unit: c.Unit, Platform: c.Platform, LastUpdated: common.Today()}
	if m.Unit == "" {
		m.Unit = MetricUnitNumber
	}
	if m.Platform == "" {
		m.Platform = MetricPlatformOther
	}
	return m
}

type MarketingMetricUpdating struct {
	Name     *string         `json:"name"`
	Value    *float64        `json:"value"`
	Target   *float64        `json:"target"`
	Unit     *MetricUnit     `json:"unit"`
	Platform *MetricPlatform `json:"platform"`
}

// Apply merges the patch and stamps lastUpdated with today's date.
func (u MarketingMetricUpdating) Apply(m MarketingMetric) MarketingMetric {
	if u.Name != nil {
		m.Name = strings.TrimSpace(*u.Name)
	}
	if u.Value != nil {
		m.Value = *u.Value
	}
	if u.Target != nil {
		m.Target = *u.Target
	}
	if u.Unit != nil {
		m.Unit = *u.Unit
	}
	if u.Platform != nil {
		m.Platform = *u.Platform
	}
	m.LastUpdated = common.Today()
	return m
}

func (m MarketingMetric) Normalized() MarketingMetric {
	m.Name = strings.TrimSpace(m.Name)
	m.Unit = CoerceMetricUnit(string(m.Unit))
	m.Platform = CoerceMetricPlatform(string(m.Platform))
	m.Target = nonNegative(m.Target)
	if _, ok := common.ParseDate(m.LastUpdated); !ok {
		m.LastUpdated = common.Today()
	}
	return m
}

func (c Campaign) Clone() Campaign {
	if c.Channels != nil {
		c.Channels = append([]string{}, c.Channels...)
	}
	return c
}
