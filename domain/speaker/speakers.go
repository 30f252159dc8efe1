package speaker

import (
	"eventdesk/authority"
	"eventdesk/domain"
	"eventdesk/domain/entity"
	"eventdesk/persistence"
	"eventdesk/session"

	"github.com/fundwit/go-commons/types"
)

var Kind = entity.Kind[domain.Speaker]{
	SourceType:     "SPEAKER",
	EditPermission: authority.PermEditSpeakers,
	Collection:     func(d *persistence.ProjectData) *persistence.Collection[domain.Speaker] { return &d.Speakers },
	Describe:       func(s domain.Speaker) string { return s.Name },
}

var (
	QuerySpeakersFunc   = QuerySpeakers
	DetailSpeakerFunc   = DetailSpeaker
	CreateSpeakerFunc   = CreateSpeaker
	UpdateSpeakerFunc   = UpdateSpeaker
	DeleteSpeakerFunc   = DeleteSpeaker
	ReplaceSpeakersFunc = ReplaceSpeakers
)

func QuerySpeakers(projectID types.ID, sec *session.Session) ([]domain.Speaker, error) {
	return Kind.Query(projectID, sec)
}

func DetailSpeaker(projectID types.ID, id int, sec *session.Session) (*domain.Speaker, error) {
	return Kind.Detail(projectID, id, sec)
}

func CreateSpeaker(projectID types.ID, c *domain.SpeakerCreation, sec *session.Session) (*domain.Speaker, error) {
	return Kind.Create(projectID, c.BuildSpeaker, sec)
}

func UpdateSpeaker(projectID types.ID, id int, u *domain.SpeakerUpdating, sec *session.Session) (*domain.Speaker, error) {
	return Kind.Update(projectID, id, u.Apply, sec)
}

func DeleteSpeaker(projectID types.ID, id int, sec *session.Session) error {
	return Kind.Delete(projectID, id, sec)
}

func ReplaceSpeakers(projectID types.ID, speakers []domain.Speaker, sec *session.Session) ([]domain.Speaker, error) {
	return Kind.ReplaceAll(projectID, speakers, sec)
}

type SpeakerFilter struct {
	Status string `form:"status"`
	Type   string `form:"type"`
}

// FilterSpeakers keeps the speakers matching both filters; an empty filter matches everything.
func FilterSpeakers(speakers []domain.Speaker, f SpeakerFilter) []domain.Speaker {
	r := []domain.Speaker{}
	for _, s := range speakers {
		if (f.Status == "" || f.Status == string(s.Status)) && (f.Type == "" || f.Type == string(s.Type)) {
			r = append(r, s)
		}
	}
	return r
}
