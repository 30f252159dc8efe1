package domain

import "strings"

type Sponsor struct {
	ID           int           `json:"id" yaml:"id"`
	Name         string        `json:"name" yaml:"name" binding:"required,lte=120"`
	Level        SponsorLevel  `json:"level" yaml:"level" binding:"oneof=Diamond Gold Silver Bronze"`
	Amount       float64       `json:"amount" yaml:"amount" binding:"gte=0"`
	Status       SponsorStatus `json:"status" yaml:"status" binding:"oneof=prospect contacted negotiation confirmed paid"`
	ContactName  string        `json:"contactName,omitempty" yaml:"contactName,omitempty"`
	ContactEmail string        `json:"contactEmail,omitempty" yaml:"contactEmail,omitempty"`
	ContactPhone string        `json:"contactPhone,omitempty" yaml:"contactPhone,omitempty"`
}

func (s Sponsor) GetID() int { return s.ID }

func (s Sponsor) WithID(id int) Sponsor {
	s.ID = id
	return s
}

type SponsorCreation struct {
	Name         string        `json:"name" binding:"required,lte=120"`
	Level        SponsorLevel  `json:"level" binding:"omitempty,oneof=Diamond Gold Silver Bronze"`
	Amount       float64       `json:"amount" binding:"gte=0"`
	Status       SponsorStatus `json:"status" binding:"omitempty,oneof=prospect contacted negotiation confirmed paid"`
	ContactName  string        `json:"contactName"`
	ContactEmail string        `json:"contactEmail"`
	ContactPhone string        `json:"contactPhone"`
}

func (c SponsorCreation) BuildSponsor(id int) Sponsor {
	s := Sponsor{ID: id, Name: strings.TrimSpace(c.Name), Level: c.Level, Amount: c.Amount, Status: c.Status,
		ContactName: c.ContactName, ContactEmail: c.ContactEmail, ContactPhone: c.ContactPhone}
	if s.Level == "" {
		s.Level = SponsorLevelBronze
	}
	if s.Status == "" {
		s.Status = SponsorStatusProspect
	}
	return s
}

type SponsorUpdating struct {
	Name         *string        `json:"name"`
	Level        *SponsorLevel  `json:"level"`
	Amount       *float64       `json:"amount"`
	Status       *SponsorStatus `json:"status"`
	ContactName  *string        `json:"contactName"`
	ContactEmail *string        `json:"contactEmail"`
	ContactPhone *string        `json:"contactPhone"`
}

func (u SponsorUpdating) Apply(s Sponsor) Sponsor {
	if u.Name != nil {
		s.Name = strings.TrimSpace(*u.Name)
	}
	if u.Level != nil {
		s.Level = *u.Level
	}
	if u.Amount != nil {
		s.Amount = *u.Amount
	}
	if u.Status != nil {
		s.Status = *u.Status
	}
	if u.ContactName != nil {
		s.ContactName = *u.ContactName
	}
	if u.ContactEmail != nil {
		s.ContactEmail = *u.ContactEmail
	}
	if u.ContactPhone != nil {
		s.ContactPhone = *u.ContactPhone
	}
	return s
}

func (s Sponsor) Normalized() Sponsor {
	s.Name = strings.TrimSpace(s.Name)
	s.Level = CoerceSponsorLevel(string(s.Level))
	s.Status = CoerceSponsorStatus(string(s.Status))
	s.Amount = nonNegative(s.Amount)
	return s
}
