package account

import "github.com/fundwit/go-commons/types"

type User struct {
	ID    types.ID `json:"id" yaml:"id"`
	Name  string   `json:"name" yaml:"name"`
	Email string   `json:"email" yaml:"email"`

	Nickname string `json:"nickname" yaml:"nickname"`
}

type UserInfo struct {
	ID       types.ID `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Nickname string   `json:"nickname"`

	OrgRole string `json:"orgRole,omitempty"`
}

type Organization struct {
	ID   types.ID `json:"id" yaml:"id"`
	Name string   `json:"name" yaml:"name"`
}

type UserCreation struct {
	Name     string `json:"name" binding:"required,lte=32"`
	Email    string `json:"email" binding:"omitempty,email"`
	Nickname string `json:"nickname" binding:"omitempty,gte=1,lte=32"`
	OrgRole  string `json:"orgRole" binding:"omitempty,oneof=OWNER ADMIN MEMBER"`
}

type UserUpdation struct {
	Nickname string `json:"nickname" binding:"required,lte=32"`
}

type OrgRoleUpdation struct {
	Role string `json:"role" binding:"required,oneof=OWNER ADMIN MEMBER"`
}

func (u User) DisplayName() string {
	if u.Nickname != "" {
		return u.Nickname
	} else {
		return u.Name
	}
}

func (u UserInfo) DisplayName() string {
	if u.Nickname != "" {
		return u.Nickname
	} else {
		return u.Name
	}
}
