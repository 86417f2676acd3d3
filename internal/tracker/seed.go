package tracker

import (
	"time"

	"github.com/jobdeck/jobdeck/pkg/types"
)

// seedApplication returns the example record persisted the first time the
// store is seen empty, so a fresh deployment never presents a blank board.
func seedApplication(id string, now time.Time) types.Application {
	return types.Application{
		ID:        id,
		URL:       "https://github.com/about/careers",
		LinkTitle: "Example: GitHub careers",
		Company:   "GitHub",
		RoleTitle: "Software Engineer",
		Notes:     "Example application. Edit or delete it, then paste your own links.",
		Status:    types.StatusTodo,
		Priority:  types.PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
