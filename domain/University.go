package domain

import "strings"

type University struct {
	ID       int              `json:"id" yaml:"id"`
	Name     string           `json:"name" yaml:"name" binding:"required,lte=120"`
	Status   UniversityStatus `json:"status" yaml:"status" binding:"oneof=pending contacted negotiation signed"`
	Students int              `json:"students" yaml:"students" binding:"gte=0"`
	Contact  string           `json:"contact" yaml:"contact"`
	Email    string           `json:"email,omitempty" yaml:"email,omitempty"`
	Phone    string           `json:"phone,omitempty" yaml:"phone,omitempty"`
}

func (u University) GetID() int { return u.ID }

func (u University) WithID(id int) University {
	u.ID = id
	return u
}

type UniversityCreation struct {
	Name     string           `json:"name" binding:"required,lte=120"`
	Status   UniversityStatus `json:"status" binding:"omitempty,oneof=pending contacted negotiation signed"`
	Students int              `json:"students" binding:"gte=0"`
	Contact  string           `json:"contact"`
	Email    string           `json:"email"`
	Phone    string           `json:"phone"`
}

func (c UniversityCreation) BuildUniversity(id int) University {
	u := University{ID: id, Name: strings.TrimSpace(c.Name), Status: c.Status, Students: c.Students,
		Contact: c.Contact, Email: c.Email, Phone: c.Phone}
	if u.Status == "" {
		u.Status = UniversityStatusPending
	}
	return u
}

type UniversityUpdating struct {
	Name     *string           `json:"name"`
	Status   *UniversityStatus `json:"status"`
	Students *int              `json:"students"`
	Contact  *string           `json:"contact"`
	Email    *string           `json:"email"`
	Phone    *string           `json:"phone"`
}

func (d UniversityUpdating) Apply(u University) University {
	if d.Name != nil {
		u.Name = strings.TrimSpace(*d.Name)
	}
	if d.Status != nil {
		u.Status = *d.Status
	}
	if d.Students != nil {
		u.Students = *d.Students
	}
	if d.Contact != nil {
		u.Contact = *d.Contact
	}
	if d.Email != nil {
		u.Email = *d.Email
	}
	if d.Phone != nil {
		u.Phone = *d.Phone
	}
	return u
}

func (u University) Normalized() University {
	u.Name = strings.TrimSpace(u.Name)
	u.Status = CoerceUniversityStatus(string(u.Status))
	u.Students = nonNegative(u.Students)
	return u
}
