package domain

import "time"

// Core domain models. Rows come from the backend tables; optional columns are
// pointers so views can fall back to placeholders.

type Role string

const (
	RoleHomeowner Role = "homeowner"
	RoleProvider  Role = "provider"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the marketplace roles that can own claims.
func (r Role) Valid() bool {
	return r == RoleHomeowner || r == RoleProvider
}

type User struct {
	ID       string
	Email    string
	FullName *string
	Role     Role
}

type Section struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
}

type Page struct {
	ID              string
	Slug            string
	Title           string
	MetaTitle       *string
	MetaDescription *string
	MetaKeywords    *string
	OGImage         *string
	Content         string
	Sections        []Section
	CustomCSS       *string
	CustomJS        *string
	TrackingCode    *string
	Published       bool
	UpdatedAt       time.Time
}

// Clone returns a copy that shares no slices or pointers with p.
func (p Page) Clone() Page {
	out := p
	out.MetaTitle = cloneString(p.MetaTitle)
	out.MetaDescription = cloneString(p.MetaDescription)
	out.MetaKeywords = cloneString(p.MetaKeywords)
	out.OGImage = cloneString(p.OGImage)
	out.CustomCSS = cloneString(p.CustomCSS)
	out.CustomJS = cloneString(p.CustomJS)
	out.TrackingCode = cloneString(p.TrackingCode)
	if p.Sections != nil {
		out.Sections = make([]Section, len(p.Sections))
		copy(out.Sections, p.Sections)
	}
	return out
}

type PartySummary struct {
	ID           string
	FullName     *string
	Email        *string
	BusinessName *string
}

type ProjectSummary struct {
	ID    string
	Title string
}

type GuaranteeClaim struct {
	ID              string
	Status          ClaimStatus
	ClaimAmount     float64
	ClaimReason     string
	CreatedAt       time.Time
	ResolutionNotes *string
	ResolutionDate  *time.Time
	Homeowner       PartySummary
	Provider        PartySummary
	Project         ProjectSummary
}

type Project struct {
	ID            string
	Title         string
	Status        ProjectStatus
	Description   *string
	Provider      *string
	Location      *string
	Budget        *float64
	Progress      *int
	StartDate     *time.Time
	HoldReason    *string
	CompletedDate *time.Time
	Position      int
}

type ContactRequest struct {
	ID        string
	Name      string
	Email     string
	Phone     *string
	Message   string
	CreatedAt time.Time
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
