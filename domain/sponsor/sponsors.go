package sponsor

import (
	"eventdesk/authority"
	"eventdesk/domain"
	"eventdesk/domain/entity"
	"eventdesk/persistence"
	"eventdesk/session"

	"github.com/fundwit/go-commons/types"
)

var Kind = entity.Kind[domain.Sponsor]{
	SourceType:     "SPONSOR",
	EditPermission: authority.PermEditSponsors,
	Collection:     func(d *persistence.ProjectData) *persistence.Collection[domain.Sponsor] { return &d.Sponsors },
	Describe:       func(s domain.Sponsor) string { return s.Name },
}

var (
	QuerySponsorsFunc   = QuerySponsors
	DetailSponsorFunc   = DetailSponsor
	CreateSponsorFunc   = CreateSponsor
	UpdateSponsorFunc   = UpdateSponsor
	DeleteSponsorFunc   = DeleteSponsor
	ReplaceSponsorsFunc = ReplaceSponsors
)

func QuerySponsors(projectID types.ID, sec *session.Session) ([]domain.Sponsor, error) {
	return Kind.Query(projectID, sec)
}

func DetailSponsor(projectID types.ID, id int, sec *session.Session) (*domain.Sponsor, error) {
	return Kind.Detail(projectID, id, sec)
}

func CreateSponsor(projectID types.ID, c *domain.SponsorCreation, sec *session.Session) (*domain.Sponsor, error) {
	return Kind.Create(projectID, c.BuildSponsor, sec)
}

func UpdateSponsor(projectID types.ID, id int, u *domain.SponsorUpdating, sec *session.Session) (*domain.Sponsor, error) {
	return Kind.Update(projectID, id, u.Apply, sec)
}

func DeleteSponsor(projectID types.ID, id int, sec *session.Session) error {
	return Kind.Delete(projectID, id, sec)
}

// ReplaceSponsors imports sponsors. Levels also accept the Spanish tier names.
func ReplaceSponsors(projectID types.ID, sponsors []domain.Sponsor, sec *session.Session) ([]domain.Sponsor, error) {
	return Kind.ReplaceAll(projectID, sponsors, sec)
}

type SponsorFilter struct {
	Level  string `form:"level"`
	Status string `form:"status"`
}

func FilterSponsors(sponsors []domain.Sponsor, f SponsorFilter) []domain.Sponsor {
	r := []domain.Sponsor{}
	for _, s := range sponsors {
		if (f.Level == "" || f.Level == string(s.Level)) && (f.Status == "" || f.Status == string(s.Status)) {
			r = append(r, s)
		}
	}
	return r
}
