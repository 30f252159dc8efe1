package account

import (
	"eventdesk/authority"
	"eventdesk/bizerror"
	"eventdesk/domain"
	"eventdesk/idgen"
	"eventdesk/metrics"
	"eventdesk/session"
	"fmt"
	"sync"

	"github.com/fundwit/go-commons/types"
	"github.com/sirupsen/logrus"
	"github.com/sony/sonyflake"
)

var (
	userIdWorker *sonyflake.Sonyflake

	ActiveDirectory = NewDirectory(Organization{})

	QueryUsersFunc    = QueryUsers
	CreateUserFunc    = CreateUser
	UpdateUserFunc    = UpdateUser
	UpdateOrgRoleFunc = UpdateOrgRole
)

func init() {
	userIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})
}

// Directory is the fixed set of users that may log in, together with the
// single organization and their roles in it.
type Directory struct {
	lock sync.RWMutex

	organization Organization
	users        []User
	orgRoles     map[types.ID]string
}

func NewDirectory(org Organization) *Directory {
	return &Directory{organization: org, orgRoles: map[types.ID]string{}}
}

func (d *Directory) Organization() Organization {
	d.lock.RLock()
	defer d.lock.RUnlock()
	return d.organization
}

// AddUser registers u; orgRole may be empty for users that only hold event roles.
func (d *Directory) AddUser(u User, orgRole string) error {
	if orgRole != "" && !authority.IsOrgRole(orgRole) {
		return &bizerror.ErrBadParam{Cause: fmt.Errorf("unknown organization role %q", orgRole)}
	}
	if u.ID == 0 || u.Name == "" {
		return &bizerror.ErrBadParam{Cause: fmt.Errorf("user id and name are required")}
	}

	d.lock.Lock()
	defer d.lock.Unlock()
	for _, v := range d.users {
		if v.ID == u.ID {
			return &bizerror.ErrBadParam{Cause: fmt.Errorf("duplicated user id %s", u.ID)}
		}
	}
	d.users = append(d.users, u)
	if orgRole != "" {
		d.orgRoles[u.ID] = orgRole
	}
	return nil
}

func (d *Directory) FindUser(id types.ID) (UserInfo, bool) {
	d.lock.RLock()
	defer d.lock.RUnlock()
	for _, u := range d.users {
		if u.ID == id {
			return d.info(u), true
		}
	}
	return UserInfo{}, false
}

// Users lists every user in registration order.
func (d *Directory) Users() []UserInfo {
	d.lock.RLock()
	defer d.lock.RUnlock()
	r := make([]UserInfo, 0, len(d.users))
	for _, u := range d.users {
		r = append(r, d.info(u))
	}
	return r
}

// OrgMemberships returns the organization membership of uid, if any.
func (d *Directory) OrgMemberships(uid types.ID) authority.Memberships {
	d.lock.RLock()
	defer d.lock.RUnlock()
	role, found := d.orgRoles[uid]
	if !found || d.organization.ID == 0 {
		return authority.Memberships{}
	}
	return authority.Memberships{{Kind: authority.ScopeOrganization, ScopeID: d.organization.ID, Role: role}}
}

func (d *Directory) info(u User) UserInfo {
	return UserInfo{ID: u.ID, Name: u.Name, Email: u.Email, Nickname: u.Nickname, OrgRole: d.orgRoles[u.ID]}
}

func orgScope() authority.Scope {
	return authority.OrgScope(ActiveDirectory.Organization().ID)
}

func QueryUsers(sec *session.Session) ([]UserInfo, error) {
	if sec.Principal() == nil {
		return nil, bizerror.ErrUnauthenticated
	}
	return ActiveDirectory.Users(), nil
}

func CreateUser(c *UserCreation, sec *session.Session) (*UserInfo, error) {
	if !sec.HasPermission(authority.PermManageOrg, orgScope()) {
		metrics.Denied(string(authority.PermManageOrg))
		return nil, bizerror.ErrForbidden
	}
	if err := domain.Validate(c); err != nil {
		return nil, &bizerror.ErrBadParam{Cause: err}
	}

	user := User{ID: idgen.NextID(userIdWorker), Name: c.Name, Email: c.Email, Nickname: c.Nickname}
	if err := ActiveDirectory.AddUser(user, c.OrgRole); err != nil {
		return nil, err
	}
	logrus.WithField("userId", user.ID).Info("user created")
	info, _ := ActiveDirectory.FindUser(user.ID)
	return &info, nil
}

func UpdateUser(userId types.ID, c *UserUpdation, sec *session.Session) error {
	if !sec.HasPermission(authority.PermManageOrg, orgScope()) && (sec.Principal() == nil || userId != sec.Identity.ID) {
		return bizerror.ErrForbidden
	}
	if err := domain.Validate(c); err != nil {
		return &bizerror.ErrBadParam{Cause: err}
	}

	d := ActiveDirectory
	d.lock.Lock()
	defer d.lock.Unlock()
	for i, u := range d.users {
		if u.ID == userId {
			d.users[i].Nickname = c.Nickname
			return nil
		}
	}
	return bizerror.ErrNotFound
}

// UpdateOrgRole changes the organization role of another user.
func UpdateOrgRole(userId types.ID, c *OrgRoleUpdation, sec *session.Session) error {
	if !sec.HasPermission(authority.PermManageOrg, orgScope()) {
		metrics.Denied(string(authority.PermManageOrg))
		return bizerror.ErrForbidden
	}
	if userId == sec.Identity.ID {
		return bizerror.ErrProjectMemberSelfGrant
	}
	if !authority.IsOrgRole(c.Role) {
		return &bizerror.ErrBadParam{Cause: fmt.Errorf("unknown organization role %q", c.Role)}
	}

	d := ActiveDirectory
	if _, found := d.FindUser(userId); !found {
		return bizerror.ErrNotFound
	}
	d.lock.Lock()
	defer d.lock.Unlock()
	d.orgRoles[userId] = c.Role
	return nil
}

func QueryAccountNames(ids []types.ID) (map[types.ID]string, error) {
	result := map[types.ID]string{}
	for _, id := range ids {
		if u, found := ActiveDirectory.FindUser(id); found {
			result[id] = u.DisplayName()
		}
	}
	return result, nil
}
