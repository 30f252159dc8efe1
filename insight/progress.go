package insight

import "eventdesk/domain"

type TaskStats struct {
	Total      int `json:"total"`
	Done       int `json:"done"`
	InProgress int `json:"inProgress"`
	Pending    int `json:"pending"`
	Percent    int `json:"percent"`
}

func TaskProgress(tasks []domain.Task) TaskStats {
	s := TaskStats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case domain.TaskStatusDone:
			s.Done++
		case domain.TaskStatusInProgress:
			s.InProgress++
		default:
			s.Pending++
		}
	}
	s.Percent = percent(float64(s.Done), float64(s.Total))
	return s
}

// MetricProgress is value/target as a percentage clamped to 0..100; a metric
// without a target reports 0.
func MetricProgress(m domain.MarketingMetric) int {
	return clampPercent(percent(m.Value, m.Target))
}

type MetricLine struct {
	domain.MarketingMetric
	Percent int `json:"percent"`
}

func MetricLines(metrics []domain.MarketingMetric) []MetricLine {
	r := make([]MetricLine, 0, len(metrics))
	for _, m := range metrics {
		r = append(r, MetricLine{MarketingMetric: m, Percent: MetricProgress(m)})
	}
	return r
}
