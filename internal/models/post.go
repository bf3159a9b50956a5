// Package models contains data structures for the application's domain models.
package models

// PostKind identifies which campus feature a post belongs to.
type PostKind string

const (
	KindLostFound   PostKind = "lost-found"
	KindMarketplace PostKind = "marketplace"
	KindCabPool     PostKind = "cab-pool"
	KindSkill       PostKind = "skill"
	KindClub        PostKind = "club"
	KindFood        PostKind = "food"
)

// Valid reports whether k is one of the known post kinds.
func (k PostKind) Valid() bool {
	switch k {
	case KindLostFound, KindMarketplace, KindCabPool, KindSkill, KindClub, KindFood:
		return true
	}
	return false
}

// ModerationStatus is the lifecycle stage of a post.
type ModerationStatus string

const (
	StatusUnverified ModerationStatus = "unverified"
	StatusVerified   ModerationStatus = "verified"
	StatusRejected   ModerationStatus = "rejected"
)

// Valid reports whether s is a known moderation status.
func (s ModerationStatus) Valid() bool {
	switch s {
	case StatusUnverified, StatusVerified, StatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status machine allows moving from s to
// next. Only the two forward edges out of unverified exist; verified and
// rejected are terminal.
func (s ModerationStatus) CanTransitionTo(next ModerationStatus) bool {
	return s == StatusUnverified && (next == StatusVerified || next == StatusRejected)
}

// ContactInfo is the contact block optionally attached to a post.
type ContactInfo struct {
	Name   string `json:"name"`
	RegNo  string `json:"regNo"`
	Mobile string `json:"mobile"`
	Email  string `json:"email"`
}

// Post represents one unit of user-submitted moderatable content. All six
// kinds share the same shape; kind-specific attributes are optional and
// omitted from JSON when unset.
type Post struct {
	ID          string           `json:"id"`
	Kind        PostKind         `json:"type"`
	Status      ModerationStatus `json:"status"`
	Title       string           `json:"title"`
	Description string           `json:"description"`

	Category     string       `json:"category,omitempty"`
	SubType      string       `json:"subType,omitempty"` // e.g. "lost" | "found"
	Image        string       `json:"image,omitempty"`
	Price        *float64     `json:"price,omitempty"`
	Location     string       `json:"location,omitempty"`
	Date         string       `json:"date,omitempty"`
	Time         string       `json:"time,omitempty"`
	Seats        int          `json:"seats,omitempty"`
	Route        string       `json:"route,omitempty"`
	SkillOffered string       `json:"skillOffered,omitempty"`
	SkillWanted  string       `json:"skillWanted,omitempty"`
	ContactInfo  *ContactInfo `json:"contactInfo,omitempty"`

	CreatedAt string `json:"createdAt"` // ISO-8601, assigned by the store
	CreatedBy string `json:"createdBy"`
}

// PostDraft carries the caller-supplied fields of a new post. Identifier,
// creation timestamp and moderation status are assigned by the store.
type PostDraft struct {
	Kind        PostKind `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`

	Category     string       `json:"category,omitempty"`
	SubType      string       `json:"subType,omitempty"`
	Image        string       `json:"image,omitempty"`
	Price        *float64     `json:"price,omitempty"`
	Location     string       `json:"location,omitempty"`
	Date         string       `json:"date,omitempty"`
	Time         string       `json:"time,omitempty"`
	Seats        int          `json:"seats,omitempty"`
	Route        string       `json:"route,omitempty"`
	SkillOffered string       `json:"skillOffered,omitempty"`
	SkillWanted  string       `json:"skillWanted,omitempty"`
	ContactInfo  *ContactInfo `json:"contactInfo,omitempty"`

	CreatedBy string `json:"createdBy"`
}

// PostStats are the aggregate moderation counters shown on the admin portal.
// Pending + Approved + Rejected always equals Total.
type PostStats struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}
