// Package v1alpha1 contains the transport-level types shared by the admin
// console and the CampusHub REST backend.
package v1alpha1

import "time"

// Status is the review-lifecycle state of an entity. Only entities whose
// descriptor declares a status graph carry one; for every other kind the
// field stays StatusNone.
type Status string

const (
	StatusNone       Status = ""
	StatusPending    Status = "pending"
	StatusAccepted   Status = "accepted"
	StatusRejected   Status = "rejected"
	StatusNew        Status = "new"
	StatusInProgress Status = "in-progress"
	StatusResolved   Status = "resolved"
)

// Entity is the generic record shape every administered kind shares: an
// opaque backend-assigned id, scalar attributes, ordered list attributes,
// an optional attachment reference (a path resolved against the asset base
// URL, never the bytes) and an optional review status.
type Entity struct {
	ID         string              `json:"id"`
	Kind       string              `json:"kind,omitempty"`
	Fields     map[string]string   `json:"fields,omitempty"`
	ListFields map[string][]string `json:"listFields,omitempty"`
	Attachment string              `json:"attachment,omitempty"`
	Status     Status              `json:"status,omitempty"`
	CreatedAt  *time.Time          `json:"createdAt,omitempty"`
}

// Field returns the named scalar attribute, or "" when absent.
func (e *Entity) Field(name string) string {
	if e.Fields == nil {
		return ""
	}
	return e.Fields[name]
}

// EntityList is the payload of a collection fetch.
type EntityList struct {
	Kind  string   `json:"kind"`
	Items []Entity `json:"items"`
}

// AuthRequest is the login call body sent to /api/auth.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the token issuer's answer. Role is checked client-side
// before a session is written; the backend remains authoritative.
type AuthResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// StatusUpdate is the body of PATCH {collection}/{id}/status.
type StatusUpdate struct {
	Status Status `json:"status"`
}
