// Package registry declares one descriptor per administered kind. The whole
// console is parametrized by these: which REST path a kind lives at, which
// fields a search matches, how list-valued fields serialize in edit forms,
// which multipart part carries an attachment, and which status graph (if
// any) governs its review lifecycle.
package registry

import (
	"fmt"
	"strings"

	"github.com/campushub/admin-console/api/v1alpha1"
	"github.com/campushub/admin-console/internal/console"
)

// Descriptor configures the generic list/detail/workflow machinery for one
// entity kind.
type Descriptor struct {
	Kind   string
	Plural string
	// Path is the collection path on the backend, e.g. "/api/courses".
	Path       string
	Searchable []string
	Fields     []console.FieldSpec
	Lists      []console.ListFieldSpec
	// AttachmentPart is the multipart field name the backend expects for
	// this kind's file upload. Empty means the kind takes no attachment.
	AttachmentPart string
	// Graph is nil for kinds without a review lifecycle.
	Graph *console.Graph

	// CreatePath overrides Path for creation when the backend registers new
	// entries on a dedicated route, e.g. "/api/mentors/add".
	CreatePath string
	// ItemBase overrides Path as the base of per-entity routes when the
	// backend serves items elsewhere, e.g. "/api/mentors/admin".
	ItemBase string
	// StatusAtItem marks kinds whose backend patches status at the item
	// route itself rather than at {item}/status.
	StatusAtItem bool
}

// HasStatus reports whether the kind carries a review lifecycle.
func (d *Descriptor) HasStatus() bool {
	return d.Graph != nil
}

// Ticket reports whether the kind's review lifecycle is the enquiry ticket
// flow rather than a one-shot acceptance.
func (d *Descriptor) Ticket() bool {
	return d.Graph != nil && d.Graph.Initial() == v1alpha1.StatusNew
}

// CreateRoute is the path new entities are posted to.
func (d *Descriptor) CreateRoute() string {
	if d.CreatePath != "" {
		return d.CreatePath
	}
	return d.Path
}

// ItemRoute is the path of one entity's read, update and delete calls.
func (d *Descriptor) ItemRoute(id string) string {
	if d.ItemBase != "" {
		return d.ItemBase + "/" + id
	}
	return d.Path + "/" + id
}

// StatusRoute is the path of one entity's status patch.
func (d *Descriptor) StatusRoute(id string) string {
	if d.StatusAtItem {
		return d.ItemRoute(id)
	}
	return d.ItemRoute(id) + "/status"
}

// ListField returns the list spec by name.
func (d *Descriptor) ListField(name string) (console.ListFieldSpec, bool) {
	for _, l := range d.Lists {
		if l.Name == name {
			return l, true
		}
	}
	return console.ListFieldSpec{}, false
}

// Field returns the scalar spec by name.
func (d *Descriptor) Field(name string) (console.FieldSpec, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return console.FieldSpec{}, false
}

// Form opens an edit dialog for this kind, pre-populated from initial when
// it is non-nil.
func (d *Descriptor) Form(initial *v1alpha1.Entity) *console.Form {
	return console.NewForm(d.Fields, d.Lists, d.AttachmentPart, initial)
}

var kinds = []*Descriptor{
	{
		Kind:       "company",
		Plural:     "companies",
		Path:       "/api/companies",
		Searchable: []string{"name", "industry"},
		Fields: []console.FieldSpec{
			{Name: "name", Required: true},
			{Name: "industry", Required: true},
			{Name: "location"},
			{Name: "description"},
			{Name: "contact"},
		},
		AttachmentPart: "logo",
	},
	{
		Kind:       "course",
		Plural:     "courses",
		Path:       "/api/courses",
		Searchable: []string{"title"},
		Fields: []console.FieldSpec{
			{Name: "title", Required: true},
			{Name: "instructor", Required: true},
			{Name: "duration"},
			{Name: "description"},
		},
		Lists:          []console.ListFieldSpec{{Name: "prerequisites", Delimiter: ", "}},
		AttachmentPart: "coursePhoto",
	},
	{
		Kind:       "event",
		Plural:     "events",
		Path:       "/api/events",
		Searchable: []string{"title"},
		Fields: []console.FieldSpec{
			{Name: "title", Required: true},
			{Name: "date", Required: true},
			{Name: "venue"},
			{Name: "description"},
		},
		Lists:          []console.ListFieldSpec{{Name: "highlights", Delimiter: ", "}},
		AttachmentPart: "image",
	},
	{
		Kind:       "job",
		Plural:     "jobs",
		Path:       "/api/job-application",
		Searchable: []string{"title", "company"},
		Fields: []console.FieldSpec{
			{Name: "title", Required: true},
			{Name: "company", Required: true},
			{Name: "department"},
			{Name: "type"},
			{Name: "location"},
		},
		Lists: []console.ListFieldSpec{{Name: "responsibilities", Delimiter: "\n"}},
	},
	{
		Kind:       "mentor",
		Plural:     "mentors",
		Path:       "/api/mentors",
		Searchable: []string{"name", "expertise"},
		Fields: []console.FieldSpec{
			{Name: "name", Required: true},
			{Name: "email", Required: true},
			{Name: "expertise"},
			{Name: "bio"},
		},
		Lists:          []console.ListFieldSpec{{Name: "skills", Delimiter: ", "}},
		AttachmentPart: "image",
		CreatePath:     "/api/mentors/add",
		ItemBase:       "/api/mentors/admin",
	},
	{
		Kind:       "mentor-booking",
		Plural:     "mentor-bookings",
		Path:       "/api/mentors/admin/bookings/all",
		ItemBase:   "/api/mentors/admin/bookings",
		Searchable: []string{"email", "mentorId"},
		Fields: []console.FieldSpec{
			{Name: "mentorId", Required: true},
			{Name: "email", Required: true},
			{Name: "phone"},
			{Name: "date"},
			{Name: "time"},
			{Name: "message"},
		},
	},
	{
		Kind:       "membership",
		Plural:     "memberships",
		Path:       "/api/membership",
		Searchable: []string{"name", "email"},
		Fields: []console.FieldSpec{
			{Name: "name", Required: true},
			{Name: "email", Required: true},
			{Name: "plan"},
			{Name: "college"},
		},
	},
	{
		Kind:       "organization",
		Plural:     "organizations",
		Path:       "/api/organization",
		CreatePath: "/api/organization/register",
		Searchable: []string{"name", "collegeUniversity"},
		Fields: []console.FieldSpec{
			{Name: "name", Required: true},
			{Name: "registerAs"},
			{Name: "organizationType"},
			{Name: "activeMembers"},
			{Name: "pastEvents"},
			{Name: "collegeUniversity"},
			{Name: "contactEmail", Required: true},
			{Name: "contactPhone"},
		},
		AttachmentPart: "logo",
	},
	{
		Kind:       "project",
		Plural:     "projects",
		Path:       "/api/projects",
		Searchable: []string{"title"},
		Fields: []console.FieldSpec{
			{Name: "title", Required: true},
			{Name: "description"},
			{Name: "repoUrl"},
		},
		Lists:          []console.ListFieldSpec{{Name: "techStack", Delimiter: ", "}},
		AttachmentPart: "image",
	},
	{
		Kind:       "user",
		Plural:     "users",
		Path:       "/api/users",
		Searchable: []string{"name", "email"},
		Fields: []console.FieldSpec{
			{Name: "name", Required: true},
			{Name: "email", Required: true},
			{Name: "college"},
			{Name: "role"},
		},
	},
	{
		Kind:       "core-team-role",
		Plural:     "core-team-roles",
		Path:       "/api/core-team-role",
		Searchable: []string{"title"},
		Fields: []console.FieldSpec{
			{Name: "title", Required: true},
			{Name: "department"},
			{Name: "description"},
		},
		Lists: []console.ListFieldSpec{{Name: "responsibilities", Delimiter: "\n"}},
	},
	{
		Kind:       "core-team-application",
		Plural:     "core-team-applications",
		Path:       "/api/core-team-application",
		Searchable: []string{"name", "email"},
		Fields: []console.FieldSpec{
			{Name: "name", Required: true},
			{Name: "email", Required: true},
			{Name: "phone"},
			{Name: "role"},
		},
		Lists:          []console.ListFieldSpec{{Name: "skills", Delimiter: ", "}},
		AttachmentPart: "resume",
		Graph:          console.AcceptanceGraph(),
	},
	{
		Kind:       "club-application",
		Plural:     "club-applications",
		Path:       "/api/club-partner/club-applications",
		Searchable: []string{"clubName", "collegeName"},
		Fields: []console.FieldSpec{
			{Name: "clubName", Required: true},
			{Name: "collegeName", Required: true},
			{Name: "phone"},
			{Name: "vision"},
		},
		AttachmentPart: "document",
		Graph:          console.AcceptanceGraph(),
		StatusAtItem:   true,
	},
	{
		Kind:       "club-collaboration",
		Plural:     "club-collaborations",
		Path:       "/api/club-partner/collaboration-requests",
		Searchable: []string{"clubName", "collegeName"},
		Fields: []console.FieldSpec{
			{Name: "clubName", Required: true},
			{Name: "collegeName", Required: true},
			{Name: "phone"},
			{Name: "collaborationDetails"},
		},
		AttachmentPart: "document",
		Graph:          console.AcceptanceGraph(),
		StatusAtItem:   true,
	},
	{
		Kind:       "central-team-application",
		Plural:     "central-team-applications",
		Path:       "/api/club-partner/central-team-applications",
		Searchable: []string{"name", "email"},
		Fields: []console.FieldSpec{
			{Name: "name", Required: true},
			{Name: "email", Required: true},
			{Name: "phone"},
			{Name: "skills"},
		},
		AttachmentPart: "document",
		Graph:          console.AcceptanceGraph(),
		StatusAtItem:   true,
	},
	{
		Kind:       "job-application",
		Plural:     "job-applications",
		Path:       "/api/job-applicants",
		Searchable: []string{"name", "email"},
		Fields: []console.FieldSpec{
			{Name: "name", Required: true},
			{Name: "email", Required: true},
			{Name: "jobTitle"},
			{Name: "phone"},
		},
		AttachmentPart: "resume",
		Graph:          console.AcceptanceGraph(),
	},
	{
		Kind:       "podcast-application",
		Plural:     "podcast-applications",
		Path:       "/api/podcast-partner",
		Searchable: []string{"name", "topic"},
		Fields: []console.FieldSpec{
			{Name: "name", Required: true},
			{Name: "email", Required: true},
			{Name: "topic"},
			{Name: "description"},
		},
		Graph: console.AcceptanceGraph(),
	},
	{
		Kind:       "enquiry",
		Plural:     "enquiries",
		Path:       "/api/contact",
		Searchable: []string{"name", "subject"},
		Fields: []console.FieldSpec{
			{Name: "name", Required: true},
			{Name: "email", Required: true},
			{Name: "subject"},
			{Name: "message"},
		},
		Graph: console.TicketGraph(),
	},
}

var byKind = func() map[string]*Descriptor {
	m := make(map[string]*Descriptor, len(kinds))
	for _, d := range kinds {
		m[d.Kind] = d
	}
	return m
}()

// Get returns the descriptor for a kind name, accepting the plural form too.
func Get(kind string) (*Descriptor, error) {
	if d, ok := byKind[Singular(kind)]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("invalid resource kind: %s", kind)
}

// All returns every registered descriptor in declaration order.
func All() []*Descriptor {
	out := make([]*Descriptor, len(kinds))
	copy(out, kinds)
	return out
}

// Singular maps a plural kind name back to its singular, passing unknown
// names through unchanged.
func Singular(kind string) string {
	for _, d := range kinds {
		if kind == d.Plural {
			return d.Kind
		}
	}
	return kind
}

// ParseKindID splits a "kind" or "kind/id" argument, validating the kind.
func ParseKindID(arg string) (*Descriptor, string, error) {
	kind, id, _ := strings.Cut(arg, "/")
	d, err := Get(kind)
	if err != nil {
		return nil, "", err
	}
	return d, id, nil
}
