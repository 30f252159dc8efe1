// Package seed builds the initial store and user directory, either from a
// yaml file or from the built-in demo data.
package seed

import (
	"bytes"
	"errors"
	"eventdesk/account"
	"eventdesk/authority"
	"eventdesk/domain"
	"eventdesk/domain/entity"
	"eventdesk/persistence"
	"fmt"
	"os"
	"time"

	"github.com/fundwit/go-commons/types"
	"gopkg.in/yaml.v3"
)

type Seed struct {
	Organization account.Organization `yaml:"organization"`
	Users        []User               `yaml:"users"`
	Projects     []Project            `yaml:"projects"`
}

type User struct {
	account.User `yaml:",inline"`
	OrgRole      string `yaml:"orgRole"`
}

type Member struct {
	UserID types.ID `yaml:"userId"`
	Role   string   `yaml:"role"`
}

type Project struct {
	ID      types.ID           `yaml:"id"`
	Name    string             `yaml:"name"`
	Config  domain.EventConfig `yaml:"config"`
	Members []Member           `yaml:"members"`

	Tasks            []domain.Task            `yaml:"tasks"`
	BudgetItems      []domain.BudgetItem      `yaml:"budgetItems"`
	Speakers         []domain.Speaker         `yaml:"speakers"`
	Sponsors         []domain.Sponsor         `yaml:"sponsors"`
	Universities     []domain.University      `yaml:"universities"`
	Campaigns        []domain.Campaign        `yaml:"campaigns"`
	MarketingMetrics []domain.MarketingMetric `yaml:"marketingMetrics"`
	TeamMembers      []domain.TeamMember      `yaml:"teamMembers"`
	Objectives       []domain.Objective       `yaml:"objectives"`
}

// Load reads and validates a seed file. Unknown keys are rejected.
func Load(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Seed, error) {
	var s Seed
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validate seed: %w", err)
	}
	return &s, nil
}

func (s *Seed) Validate() error {
	if s.Organization.ID == 0 {
		return errors.New("organization id is required")
	}
	users := map[types.ID]bool{}
	for _, u := range s.Users {
		if u.ID == 0 || u.Name == "" {
			return errors.New("user id and name are required")
		}
		if users[u.ID] {
			return fmt.Errorf("duplicated user id %s", u.ID)
		}
		if u.OrgRole != "" && !authority.IsOrgRole(u.OrgRole) {
			return fmt.Errorf("user %s: unknown organization role %q", u.ID, u.OrgRole)
		}
		users[u.ID] = true
	}

	if len(s.Projects) == 0 {
		return errors.New("at least one project is required")
	}
	projects := map[types.ID]bool{}
	for _, p := range s.Projects {
		if p.ID == 0 {
			return fmt.Errorf("project %q: id is required", p.Name)
		}
		if projects[p.ID] {
			return fmt.Errorf("duplicated project id %s", p.ID)
		}
		projects[p.ID] = true
		if p.Name == "" {
			return fmt.Errorf("project %s: name is required", p.ID)
		}
		if err := domain.Validate(p.config()); err != nil {
			return fmt.Errorf("project %s: %w", p.ID, err)
		}
		for _, m := range p.Members {
			if !users[m.UserID] {
				return fmt.Errorf("project %s: unknown member %s", p.ID, m.UserID)
			}
			if !authority.IsEventRole(m.Role) {
				return fmt.Errorf("project %s: unknown event role %q", p.ID, m.Role)
			}
		}
	}
	return nil
}

func (p Project) config() domain.EventConfig {
	c := p.Config
	if c.EventName == "" {
		c.EventName = p.Name
	}
	return c
}

// Build materializes the seed. Collections go through the same coercion as a
// bulk import, so ids are repaired and enum values mapped.
func (s *Seed) Build() (*persistence.MemoryStore, *account.Directory, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}

	dir := account.NewDirectory(s.Organization)
	for _, u := range s.Users {
		if err := dir.AddUser(u.User, u.OrgRole); err != nil {
			return nil, nil, err
		}
	}

	store := persistence.NewMemoryStore()
	now := time.Now()
	for _, p := range s.Projects {
		d, err := p.build(s.Organization.ID, now)
		if err != nil {
			return nil, nil, fmt.Errorf("project %s: %w", p.ID, err)
		}
		store.AddProject(d)
	}
	return store, dir, nil
}

func (p Project) build(orgID types.ID, now time.Time) (*persistence.ProjectData, error) {
	d := persistence.NewProjectData(domain.Project{ID: p.ID, OrganizationID: orgID, Name: p.Name,
		Config: p.config(), CreateTime: now})
	for _, m := range p.Members {
		d.Members = append(d.Members, domain.ProjectMember{ProjectID: p.ID, MemberID: m.UserID, Role: m.Role, CreateTime: now})
	}

	var err error
	if d.Tasks, err = collection(p.Tasks); err != nil {
		return nil, fmt.Errorf("tasks: %w", err)
	}
	if d.BudgetItems, err = collection(p.BudgetItems); err != nil {
		return nil, fmt.Errorf("budget items: %w", err)
	}
	if d.Speakers, err = collection(p.Speakers); err != nil {
		return nil, fmt.Errorf("speakers: %w", err)
	}
	if d.Sponsors, err = collection(p.Sponsors); err != nil {
		return nil, fmt.Errorf("sponsors: %w", err)
	}
	if d.Universities, err = collection(p.Universities); err != nil {
		return nil, fmt.Errorf("universities: %w", err)
	}
	if d.Campaigns, err = collection(p.Campaigns); err != nil {
		return nil, fmt.Errorf("campaigns: %w", err)
	}
	if d.MarketingMetrics, err = collection(p.MarketingMetrics); err != nil {
		return nil, fmt.Errorf("marketing metrics: %w", err)
	}
	if d.TeamMembers, err = collection(p.TeamMembers); err != nil {
		return nil, fmt.Errorf("team members: %w", err)
	}
	if d.Objectives, err = collection(p.Objectives); err != nil {
		return nil, fmt.Errorf("objectives: %w", err)
	}
	return d, nil
}

func collection[T entity.Entity[T]](records []T) (persistence.Collection[T], error) {
	normalized, err := entity.Normalize(records)
	if err != nil {
		return persistence.Collection[T]{}, err
	}
	return persistence.NewCollection(normalized...), nil
}

// Install replaces the active store and directory.
func (s *Seed) Install() error {
	store, dir, err := s.Build()
	if err != nil {
		return err
	}
	persistence.ActiveStore = store
	account.ActiveDirectory = dir
	return nil
}
