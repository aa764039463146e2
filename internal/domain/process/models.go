package process

import "time"

type Process struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Active      bool      `json:"active"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	UpdatedAt   time.Time `json:"-"`
}

type HistoryEntry struct {
	Status        string    `json:"status"`
	ChangedAt     time.Time `json:"changedAt"`
	ChangedByID   string    `json:"-"`
	ChangedByName string    `json:"changedBy,omitempty"`
}

// TransitionResult is returned after a successful status change.
type TransitionResult struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previousStatus"`
	ChangedAt      time.Time `json:"changedAt"`
}

// EmployeeWeightSum is the summed goal weight for one employee in a process.
type EmployeeWeightSum struct {
	EmployeeID string
	Total      int
}

type ListFilter struct {
	Status string
	Active *bool
	Limit  int
	Offset int
}
