package insight

import "eventdesk/domain"

// TierProgress is the number of committed sponsors of one tier against its
// target. Percent is the raw ratio; DisplayPercent is clamped for progress bars.
type TierProgress struct {
	Level          domain.SponsorLevel `json:"level"`
	Count          int                 `json:"count"`
	Target         int                 `json:"target"`
	Percent        int                 `json:"percent"`
	DisplayPercent int                 `json:"displayPercent"`
}

type SponsorSummary struct {
	Tiers           []TierProgress `json:"tiers"`
	Confirmed       int            `json:"confirmed"`
	Negotiating     int            `json:"negotiating"`
	Target          int            `json:"target"`
	ConfirmedAmount float64        `json:"confirmedAmount"`
}

func SponsorFunnel(sponsors []domain.Sponsor, config domain.EventConfig) SponsorSummary {
	counts := map[domain.SponsorLevel]int{}
	s := SponsorSummary{Target: config.SponsorsTarget}
	for _, sponsor := range sponsors {
		if sponsor.Status.Committed() {
			counts[sponsor.Level]++
			s.Confirmed++
			s.ConfirmedAmount += sponsor.Amount
		}
		if sponsor.Status == domain.SponsorStatusNegotiation {
			s.Negotiating++
		}
	}
	for _, level := range domain.SponsorLevels {
		target := config.SponsorTargets.For(level)
		p := percent(float64(counts[level]), float64(target))
		s.Tiers = append(s.Tiers, TierProgress{Level: level, Count: counts[level], Target: target,
			Percent: p, DisplayPercent: clampPercent(p)})
	}
	return s
}

// UniversitySummary counts signed agreements. Only signed universities
// contribute their students.
type UniversitySummary struct {
	Signed         int `json:"signed"`
	Target         int `json:"target"`
	SignedPercent  int `json:"signedPercent"`
	Students       int `json:"students"`
	StudentTarget  int `json:"studentTarget"`
	StudentPercent int `json:"studentPercent"`
}

func UniversityFunnel(universities []domain.University, config domain.EventConfig) UniversitySummary {
	s := UniversitySummary{Target: config.UniversityTarget, StudentTarget: config.StudentTarget}
	for _, u := range universities {
		if u.Status == domain.UniversityStatusSigned {
			s.Signed++
			s.Students += u.Students
		}
	}
	s.SignedPercent = clampPercent(percent(float64(s.Signed), float64(s.Target)))
	s.StudentPercent = clampPercent(percent(float64(s.Students), float64(s.StudentTarget)))
	return s
}

type SpeakerSummary struct {
	Total         int `json:"total"`
	Confirmed     int `json:"confirmed"`
	International int `json:"international"`
}

func SpeakerLineup(speakers []domain.Speaker) SpeakerSummary {
	s := SpeakerSummary{Total: len(speakers)}
	for _, sp := range speakers {
		if sp.Status == domain.SpeakerStatusConfirmed {
			s.Confirmed++
		}
		if sp.Type == domain.SpeakerTypeInternational {
			s.International++
		}
	}
	return s
}
