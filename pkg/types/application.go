package types

import "time"

// Application statuses. A record moves through these during its lifecycle.
// Transitions are not restricted; a rejected application may be reopened.
const (
	StatusTodo      = "TODO"
	StatusApplied   = "APPLIED"
	StatusInterview = "INTERVIEW"
	StatusOffer     = "OFFER"
	StatusRejected  = "REJECTED"
	StatusArchived  = "ARCHIVED"
)

// Application priorities.
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

// validStatuses is the set of recognized status values.
var validStatuses = map[string]bool{
	StatusTodo:      true,
	StatusApplied:   true,
	StatusInterview: true,
	StatusOffer:     true,
	StatusRejected:  true,
	StatusArchived:  true,
}

// validPriorities is the set of recognized priority values.
var validPriorities = map[string]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

// ValidStatus reports whether s is a recognized status value.
func ValidStatus(s string) bool { return validStatuses[s] }

// ValidPriority reports whether p is a recognized priority value.
func ValidPriority(p string) bool { return validPriorities[p] }

// CoerceStatus returns s if it is a recognized status, StatusTodo otherwise.
// Used when loading rows written by older versions of the table schema.
func CoerceStatus(s string) string {
	if validStatuses[s] {
		return s
	}
	return StatusTodo
}

// CoercePriority returns p if it is a recognized priority, PriorityMedium
// otherwise.
func CoercePriority(p string) string {
	if validPriorities[p] {
		return p
	}
	return PriorityMedium
}

// Application is one tracked job-application link.
type Application struct {
	ID        string `json:"id"`         // UUID v7, generated on creation, immutable.
	URL       string `json:"url"`        // May be empty (link cleared); carries a scheme when set.
	LinkTitle string `json:"link_title"` // Optional display label.
	Company   string `json:"company"`
	RoleTitle string `json:"role_title"`
	Location  string `json:"location"`
	Status    string `json:"status"`   // One of the Status constants.
	Priority  string `json:"priority"` // One of the Priority constants.
	Notes     string `json:"notes"`

	// Derived dates, each set at most once on the first transition into the
	// corresponding status. Never overwritten afterwards.
	AppliedDate   *time.Time `json:"applied_date,omitempty"`
	InterviewDate *time.Time `json:"interview_date,omitempty"`
	OfferDate     *time.Time `json:"offer_date,omitempty"`
	RejectedDate  *time.Time `json:"rejected_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DerivedDate returns a pointer to the derived date field that tracks the
// given status, or nil when the status has no derived date (TODO, ARCHIVED).
func (a *Application) DerivedDate(status string) **time.Time {
	switch status {
	case StatusApplied:
		return &a.AppliedDate
	case StatusInterview:
		return &a.InterviewDate
	case StatusOffer:
		return &a.OfferDate
	case StatusRejected:
		return &a.RejectedDate
	default:
		return nil
	}
}

// MarkStatus sets the record status and stamps the matching derived date if
// the status changed and the date was never set before. The stamp is a
// one-way ratchet: revisiting a status later leaves the original date intact.
func (a *Application) MarkStatus(status string, now time.Time) {
	if status == a.Status {
		return
	}
	if d := a.DerivedDate(status); d != nil && *d == nil {
		t := now
		*d = &t
	}
	a.Status = status
}
