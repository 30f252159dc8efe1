package marketing

import (
	"eventdesk/authority"
	"eventdesk/domain"
	"eventdesk/domain/entity"
	"eventdesk/persistence"
	"eventdesk/session"

	"github.com/fundwit/go-commons/types"
)

// MetricKind covers marketing KPIs. Creating or editing one stamps lastUpdated with today.
var MetricKind = entity.Kind[domain.MarketingMetric]{
	SourceType:     "MARKETING_METRIC",
	EditPermission: authority.PermEditMarketing,
	Collection:     func(d *persistence.ProjectData) *persistence.Collection[domain.MarketingMetric] { return &d.MarketingMetrics },
	Describe:       func(m domain.MarketingMetric) string { return m.Name },
}

var (
	QueryMetricsFunc   = QueryMetrics
	DetailMetricFunc   = DetailMetric
	CreateMetricFunc   = CreateMetric
	UpdateMetricFunc   = UpdateMetric
	DeleteMetricFunc   = DeleteMetric
	ReplaceMetricsFunc = ReplaceMetrics
)

func QueryMetrics(projectID types.ID, sec *session.Session) ([]domain.MarketingMetric, error) {
	return MetricKind.Query(projectID, sec)
}

func DetailMetric(projectID types.ID, id int, sec *session.Session) (*domain.MarketingMetric, error) {
	return MetricKind.Detail(projectID, id, sec)
}

func CreateMetric(projectID types.ID, c *domain.MarketingMetricCreation, sec *session.Session) (*domain.MarketingMetric, error) {
	return MetricKind.Create(projectID, c.BuildMarketingMetric, sec)
}

func UpdateMetric(projectID types.ID, id int, u *domain.MarketingMetricUpdating, sec *session.Session) (*domain.MarketingMetric, error) {
	return MetricKind.Update(projectID, id, u.Apply, sec)
}

func DeleteMetric(projectID types.ID, id int, sec *session.Session) error {
	return MetricKind.Delete(projectID, id, sec)
}

func ReplaceMetrics(projectID types.ID, metrics []domain.MarketingMetric, sec *session.Session) ([]domain.MarketingMetric, error) {
	return MetricKind.ReplaceAll(projectID, metrics, sec)
}
