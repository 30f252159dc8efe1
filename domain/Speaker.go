package domain

import "strings"

type Speaker struct {
	ID     int           `json:"id" yaml:"id"`
	Name   string        `json:"name" yaml:"name" binding:"required,lte=120"`
	Role   string        `json:"role" yaml:"role"`
	Topic  string        `json:"topic" yaml:"topic"`
	Status SpeakerStatus `json:"status" yaml:"status" binding:"oneof=pending contacted confirmed declined"`
	Type   SpeakerType   `json:"type" yaml:"type" binding:"oneof=national international"`
	Image  string        `json:"image,omitempty" yaml:"image,omitempty"`
	Email  string        `json:"email,omitempty" yaml:"email,omitempty"`
	Phone  string        `json:"phone,omitempty" yaml:"phone,omitempty"`
	Bio    string        `json:"bio,omitempty" yaml:"bio,omitempty"`
}

func (s Speaker) GetID() int { return s.ID }

func (s Speaker) WithID(id int) Speaker {
	s.ID = id
	return s
}

type SpeakerCreation struct {
	Name   string        `json:"name" binding:"required,lte=120"`
	Role   string        `json:"role"`
	Topic  string        `json:"topic"`
	Status SpeakerStatus `json:"status" binding:"omitempty,oneof=pending contacted confirmed declined"`
	Type   SpeakerType   `json:"type" binding:"omitempty,oneof=national international"`
	Image  string        `json:"image"`
	Email  string        `json:"email"`
	Phone  string        `json:"phone"`
	Bio    string        `json:"bio"`
}

func (c SpeakerCreation) BuildSpeaker(id int) Speaker {
	s := Speaker{ID: id, Name: strings.TrimSpace(c.Name), Role: c.Role, Topic: c.Topic, Status: c.Status, Type: c.Type,
		Image: c.Image, Email: c.Email, Phone: c.Phone, Bio: c.Bio}
	if s.Status == "" {
		s.Status = SpeakerStatusPending
	}
	if s.Type == "" {
		s.Type = SpeakerTypeNational
	}
	return s
}

type SpeakerUpdating struct {
	Name   *string        `json:"name"`
	Role   *string        `json:"role"`
	Topic  *string        `json:"topic"`
	Status *SpeakerStatus `json:"status"`
	Type   *SpeakerType   `json:"type"`
	Image  *string        `json:"image"`
	Email  *string        `json:"email"`
	Phone  *string        `json:"phone"`
	Bio    *string        `json:"bio"`
}

func (u SpeakerUpdating) Apply(s Speaker) Speaker {
	if u.Name != nil {
		s.Name = strings.TrimSpace(*u.Name)
	}
	if u.Role != nil {
		s.Role = *u.Role
	}
	if u.Topic != nil {
		s.Topic = *u.Topic
	}
	if u.Status != nil {
		s.Status = *u.Status
	}
	if u.Type != nil {
		s.Type = *u.Type
	}
	if u.Image != nil {
		s.Image = *u.Image
	}
	if u.Email != nil {
		s.Email = *u.Email
	}
	if u.Phone != nil {
		s.Phone = *u.Phone
	}
	if u.Bio != nil {
		s.Bio = *u.Bio
	}
	return s
}

func (s Speaker) Normalized() Speaker {
	s.Name = strings.TrimSpace(s.Name)
	s.Status = CoerceSpeakerStatus(string(s.Status))
	s.Type = CoerceSpeakerType(string(s.Type))
	return s
}
