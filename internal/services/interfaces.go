package services

import (
	"time"

	"todo-text/internal/domain"
	"todo-text/internal/repository/textfile"
)

// DayGroup holds the tasks that fall on one calendar day, in store order
type DayGroup struct {
	Date  time.Time
	Tasks []domain.Task
}

// Listing is what the listing commands display: malformed store lines first,
// then the selected tasks grouped by day.
type Listing struct {
	Malformed []string
	Groups    []DayGroup
}

// IsEmpty reports whether the listing has no tasks to show
func (l *Listing) IsEmpty() bool {
	return len(l.Groups) == 0
}

// TaskCount returns the number of tasks across all groups
func (l *Listing) TaskCount() int {
	count := 0
	for _, group := range l.Groups {
		count += len(group.Tasks)
	}
	return count
}

// TaskService handles adding and listing tasks in the task store
type TaskService interface {
	// StorePath returns the location of the task file
	StorePath() string

	// StoreExists reports whether the task file is present
	StoreExists() (bool, error)

	// CreateStore creates the task file
	CreateStore() error

	// AddTask appends a task to an existing task file
	AddTask(task domain.Task) error

	// Load reads and parses the whole task file
	Load() (textfile.LoadResult, error)

	// Today lists the tasks dated today
	Today() (*Listing, error)

	// All lists every task from the earliest to the latest date in the store
	All() (*Listing, error)
}
