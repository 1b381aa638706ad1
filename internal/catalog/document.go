package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/sidoc/internal/portal"
)

type Status string

const (
	StatusPublished Status = "Published"
	StatusDraft     Status = "Draft"
)

// Role is a collaborator's access level on a document.
type Role string

const (
	RoleOwner Role = "owner"
	RoleEdit  Role = "edit"
	RoleView  Role = "view"
	RoleAdmin Role = "admin"
)

func (r Role) Label() string {
	switch r {
	case RoleOwner:
		return "Owner"
	case RoleEdit:
		return "Can Edit"
	case RoleView:
		return "Can View"
	case RoleAdmin:
		return "Admin"
	}
	return string(r)
}

// Date accepts the loose date formats found in hand-written catalog files.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	raw := strings.TrimSpace(value.Value)
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return fmt.Errorf("line %d: invalid date %q: %w", value.Line, raw, err)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalYAML() (interface{}, error) {
	if d.IsZero() {
		return "", nil
	}
	return d.Format("2006-01-02"), nil
}

type Version struct {
	Label  string `yaml:"label"`
	Date   Date   `yaml:"date"`
	Author string `yaml:"author"`
	Note   string `yaml:"note"`
}

type Access struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Role  Role   `yaml:"role"`
}

// Initials is the avatar text for the collaborator.
func (a Access) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(a.Name) {
		b.WriteString(strings.ToUpper(part[:1]))
		if b.Len() == 2 {
			break
		}
	}
	return b.String()
}

type Document struct {
	ID       portal.DocumentID `yaml:"id"`
	Title    string            `yaml:"title"`
	Author   string            `yaml:"author"`
	Modified Date              `yaml:"modified"`
	Tags     []string          `yaml:"tags"`
	Status   Status            `yaml:"status"`
	Type     string            `yaml:"type"`
	Snippet  string            `yaml:"snippet"`
	Body     string            `yaml:"body"`
	Versions []Version         `yaml:"versions"`
	Access   []Access          `yaml:"access"`
}

// Current returns the newest version, if the document has any.
func (d Document) Current() (Version, bool) {
	if len(d.Versions) == 0 {
		return Version{}, false
	}
	return d.Versions[0], true
}

// Shared reports whether anyone besides the owner has access.
func (d Document) Shared() bool {
	return len(d.Access) > 1
}

func (d Document) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func (d Document) validate() error {
	if d.ID <= 0 {
		return fmt.Errorf("document %q: id must be positive", d.Title)
	}
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("document %d: title is required", d.ID)
	}
	switch d.Status {
	case StatusPublished, StatusDraft:
	default:
		return fmt.Errorf("document %d: unknown status %q", d.ID, d.Status)
	}
	return nil
}
