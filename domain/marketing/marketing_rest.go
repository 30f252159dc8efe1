package marketing

import (
	"eventdesk/bizerror"
	"eventdesk/domain"
	"eventdesk/domain/entity"
	"eventdesk/session"
	"net/http"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	PathCampaigns = entity.CollectionPath("campaigns")
	PathMetrics   = entity.CollectionPath("marketing-metrics")
)

type ChannelToggle struct {
	Channel string `json:"channel" binding:"required"`
}

func RegisterMarketingRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	campaigns := entity.CollectionApi[domain.Campaign, domain.CampaignCreation, domain.CampaignUpdating]{
		Query: func(projectID types.ID, sec *session.Session) ([]domain.Campaign, error) {
			return QueryCampaignsFunc(projectID, sec)
		},
		Detail: func(projectID types.ID, id int, sec *session.Session) (*domain.Campaign, error) {
			return DetailCampaignFunc(projectID, id, sec)
		},
		Create: func(projectID types.ID, c *domain.CampaignCreation, sec *session.Session) (*domain.Campaign, error) {
			return CreateCampaignFunc(projectID, c, sec)
		},
		Update: func(projectID types.ID, id int, u *domain.CampaignUpdating, sec *session.Session) (*domain.Campaign, error) {
			return UpdateCampaignFunc(projectID, id, u, sec)
		},
		Delete: func(projectID types.ID, id int, sec *session.Session) error {
			return DeleteCampaignFunc(projectID, id, sec)
		},
		Replace: func(projectID types.ID, records []domain.Campaign, sec *session.Session) ([]domain.Campaign, error) {
			return ReplaceCampaignsFunc(projectID, records, sec)
		},
	}
	g := campaigns.Register(r, PathCampaigns, middleWares...)
	g.PUT(":id/channels", handleToggleChannel)

	metrics := entity.CollectionApi[domain.MarketingMetric, domain.MarketingMetricCreation, domain.MarketingMetricUpdating]{
		Query: func(projectID types.ID, sec *session.Session) ([]domain.MarketingMetric, error) {
			return QueryMetricsFunc(projectID, sec)
		},
		Detail: func(projectID types.ID, id int, sec *session.Session) (*domain.MarketingMetric, error) {
			return DetailMetricFunc(projectID, id, sec)
		},
		Create: func(projectID types.ID, c *domain.MarketingMetricCreation, sec *session.Session) (*domain.MarketingMetric, error) {
			return CreateMetricFunc(projectID, c, sec)
		},
		Update: func(projectID types.ID, id int, u *domain.MarketingMetricUpdating, sec *session.Session) (*domain.MarketingMetric, error) {
			return UpdateMetricFunc(projectID, id, u, sec)
		},
		Delete: func(projectID types.ID, id int, sec *session.Session) error {
			return DeleteMetricFunc(projectID, id, sec)
		},
		Replace: func(projectID types.ID, records []domain.MarketingMetric, sec *session.Session) ([]domain.MarketingMetric, error) {
			return ReplaceMetricsFunc(projectID, records, sec)
		},
	}
	metrics.Register(r, PathMetrics, middleWares...)
}

func handleToggleChannel(c *gin.Context) {
	projectID, id := entity.BindProjectID(c), entity.BindRecordID(c, entity.RecordIDParam)
	req := ChannelToggle{}
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	record, err := ToggleCampaignChannelFunc(projectID, id, req.Channel, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}
