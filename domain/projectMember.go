package domain

import (
	"time"

	"github.com/fundwit/go-commons/types"
)

type ProjectMember struct {
	ProjectID types.ID `json:"projectId"`
	MemberID  types.ID `json:"memberId"`

	Role       string    `json:"role"`
	CreateTime time.Time `json:"createTime"`
}

type ProjectMemberDetail struct {
	ProjectMember

	ProjectName string `json:"projectName"`
	MemberName  string `json:"memberName"`
}

type ProjectMemberCreation struct {
	ProjectID types.ID `json:"projectId" binding:"required"`
	MemberID  types.ID `json:"memberId" binding:"required"`
	Role      string   `json:"role" binding:"required,oneof=DIRECTOR COORDINATOR VIEWER"`
}

// EventRoleGrant is the body of a role grant; project and member come from the path.
type EventRoleGrant struct {
	Role string `json:"role" binding:"required,oneof=DIRECTOR COORDINATOR VIEWER"`
}

type ProjectMemberDeletion struct {
	ProjectID types.ID `form:"projectId" binding:"required"`
	MemberID  types.ID `form:"memberId" binding:"required"`
}

type ProjectMemberQuery struct {
	ProjectID *types.ID `form:"projectId"`
	MemberID  *types.ID `form:"memberId"`
}
