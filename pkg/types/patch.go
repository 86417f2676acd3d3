package types

import (
	"strings"
	"time"
)

// Patch describes a partial update to an application. Nil fields are left
// untouched; non-nil fields are applied per-field. Explicit presence checks
// (rather than merging whole objects) are what let a URL collision reject
// the update in full with no partial apply.
type Patch struct {
	URL       *string `json:"url,omitempty"`
	LinkTitle *string `json:"link_title,omitempty"`
	Company   *string `json:"company,omitempty"`
	RoleTitle *string `json:"role_title,omitempty"`
	Location  *string `json:"location,omitempty"`
	Status    *string `json:"status,omitempty"`
	Priority  *string `json:"priority,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// Filter narrows a listing. Zero-value fields do not constrain the result.
type Filter struct {
	Status   string    // exact status match when non-empty
	Priority string    // exact priority match when non-empty
	Search   string    // case-insensitive substring over company, role, notes, url, link title
	From     time.Time // inclusive lower bound on CreatedAt
	To       time.Time // inclusive upper bound on CreatedAt
}

// Matches reports whether the application passes every set constraint.
func (f Filter) Matches(a Application) bool {
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	if f.Priority != "" && a.Priority != f.Priority {
		return false
	}
	if f.Search != "" && !matchesSearch(a, f.Search) {
		return false
	}
	if !f.From.IsZero() && a.CreatedAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && a.CreatedAt.After(f.To) {
		return false
	}
	return true
}

// matchesSearch checks the free-text fields for a case-insensitive substring.
func matchesSearch(a Application, term string) bool {
	needle := strings.ToLower(term)
	for _, field := range []string{a.Company, a.RoleTitle, a.Notes, a.URL, a.LinkTitle} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Stats aggregates the current record set for dashboards. Advisory only:
// producers return a zero Stats rather than an error when loading fails.
type Stats struct {
	Total       int            `json:"total"`
	ByStatus    map[string]int `json:"by_status"`
	ByPriority  map[string]int `json:"by_priority"`
	RecentCount int            `json:"recent_count"` // created within the trailing 7 days
}
