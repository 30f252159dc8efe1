package namespace

import (
	"eventdesk/bizerror"
	"eventdesk/domain"
	"eventdesk/misc"
	"eventdesk/session"
	"net/http"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const MemberIDParam = "memberId"

var (
	QueryProjectMembersFunc = QueryProjectMemberDetails
	CreateProjectMemberFunc = CreateProjectMember
	DeleteProjectMemberFunc = DeleteProjectMember
)

// ProjectMembersPath is the event role roster of one project.
func ProjectMembersPath() string {
	return ProjectsApiRoot + "/:" + ProjectIDParam + "/members"
}

func RegisterProjectMembersRestApis(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	members := r.Group(ProjectMembersPath(), middleWares...)
	members.GET("", HandleQueryProjectMembers)
	members.PUT(":"+MemberIDParam, HandleGrantEventRole)
	members.DELETE(":"+MemberIDParam, HandleRevokeEventRole)
}

func HandleQueryProjectMembers(c *gin.Context) {
	projectID := bindPathID(c, ProjectIDParam)
	result, err := QueryProjectMembersFunc(&domain.ProjectMemberQuery{ProjectID: &projectID}, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, &result)
}

// HandleGrantEventRole sets the event role of the member named in the path.
func HandleGrantEventRole(c *gin.Context) {
	projectID, memberID := bindPathID(c, ProjectIDParam), bindPathID(c, MemberIDParam)
	grant := domain.EventRoleGrant{}
	if err := c.ShouldBindBodyWith(&grant, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	d := domain.ProjectMemberCreation{ProjectID: projectID, MemberID: memberID, Role: grant.Role}
	if err := CreateProjectMemberFunc(&d, session.ExtractSessionFromGinContext(c)); err != nil {
		panic(err)
	}
	c.Status(http.StatusOK)
}

func HandleRevokeEventRole(c *gin.Context) {
	d := domain.ProjectMemberDeletion{ProjectID: bindPathID(c, ProjectIDParam), MemberID: bindPathID(c, MemberIDParam)}
	if err := DeleteProjectMemberFunc(&d, session.ExtractSessionFromGinContext(c)); err != nil {
		panic(err)
	}
	c.Status(http.StatusOK)
}

func bindPathID(c *gin.Context, name string) types.ID {
	id, err := misc.BindingPathParamID(c, name)
	if err != nil {
		panic(err)
	}
	return id
}
