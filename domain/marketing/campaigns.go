package marketing

import (
	"eventdesk/authority"
	"eventdesk/domain"
	"eventdesk/domain/entity"
	"eventdesk/persistence"
	"eventdesk/session"
	"strings"

	"github.com/fundwit/go-commons/types"
)

var CampaignKind = entity.Kind[domain.Campaign]{
	SourceType:     "CAMPAIGN",
	EditPermission: authority.PermEditMarketing,
	Collection:     func(d *persistence.ProjectData) *persistence.Collection[domain.Campaign] { return &d.Campaigns },
	Describe:       func(c domain.Campaign) string { return c.Phase },
}

var (
	QueryCampaignsFunc        = QueryCampaigns
	DetailCampaignFunc        = DetailCampaign
	CreateCampaignFunc        = CreateCampaign
	UpdateCampaignFunc        = UpdateCampaign
	DeleteCampaignFunc        = DeleteCampaign
	ReplaceCampaignsFunc      = ReplaceCampaigns
	ToggleCampaignChannelFunc = ToggleCampaignChannel
)

func QueryCampaigns(projectID types.ID, sec *session.Session) ([]domain.Campaign, error) {
	return CampaignKind.Query(projectID, sec)
}

func DetailCampaign(projectID types.ID, id int, sec *session.Session) (*domain.Campaign, error) {
	return CampaignKind.Detail(projectID, id, sec)
}

func CreateCampaign(projectID types.ID, c *domain.CampaignCreation, sec *session.Session) (*domain.Campaign, error) {
	return CampaignKind.Create(projectID, c.BuildCampaign, sec)
}

func UpdateCampaign(projectID types.ID, id int, u *domain.CampaignUpdating, sec *session.Session) (*domain.Campaign, error) {
	return CampaignKind.Update(projectID, id, u.Apply, sec)
}

func DeleteCampaign(projectID types.ID, id int, sec *session.Session) error {
	return CampaignKind.Delete(projectID, id, sec)
}

func ReplaceCampaigns(projectID types.ID, campaigns []domain.Campaign, sec *session.Session) ([]domain.Campaign, error) {
	return CampaignKind.ReplaceAll(projectID, campaigns, sec)
}

// ToggleCampaignChannel adds the channel to the campaign, or removes it when already present.
func ToggleCampaignChannel(projectID types.ID, id int, channel string, sec *session.Session) (*domain.Campaign, error) {
	channel = strings.TrimSpace(channel)
	return CampaignKind.Update(projectID, id, func(c domain.Campaign) domain.Campaign {
		channels := []string{}
		removed := false
		for _, ch := range c.Channels {
			if ch == channel {
				removed = true
				continue
			}
			channels = append(channels, ch)
		}
		if !removed && channel != "" {
			channels = append(channels, channel)
		}
		c.Channels = channels
		return c
	}, sec)
}
