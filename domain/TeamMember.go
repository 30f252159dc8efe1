package domain

import "strings"

// TeamMember is a member of the organizing committee. Role is the committee
// position, unrelated to authorization roles.
type TeamMember struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Role        string `json:"role" yaml:"role" binding:"required,lte=120"`
	Email       string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone       string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Description string `json:"description" yaml:"description"`
}

func (m TeamMember) GetID() int { return m.ID }

func (m TeamMember) WithID(id int) TeamMember {
	m.ID = id
	return m
}

func (m TeamMember) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	return m.Role
}

type TeamMemberCreation struct {
	Name        string `json:"name"`
	Role        string `json:"role" binding:"required,lte=120"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
}

func (c TeamMemberCreation) BuildTeamMember(id int) TeamMember {
	return TeamMember{ID: id, Name: strings.TrimSpace(c.Name), Role: strings.TrimSpace(c.Role),
		Email: c.Email, Phone: c.Phone, Description: c.Description}
}

type TeamMemberUpdating struct {
	Name        *string `json:"name"`
	Role        *string `json:"role"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Description *string `json:"description"`
}

func (u TeamMemberUpdating) Apply(m TeamMember) TeamMember {
	if u.Name != nil {
		m.Name = strings.TrimSpace(*u.Name)
	}
	if u.Role != nil {
		m.Role = strings.TrimSpace(*u.Role)
	}
	if u.Email != nil {
		m.Email = *u.Email
	}
	if u.Phone != nil {
		m.Phone = *u.Phone
	}
	if u.Description != nil {
		m.Description = *u.Description
	}
	return m
}

func (m TeamMember) Normalized() TeamMember {
	m.Name = strings.TrimSpace(m.Name)
	m.Role = strings.TrimSpace(m.Role)
	return m
}
