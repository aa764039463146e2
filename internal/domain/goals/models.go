package goals

import "time"

// Goal is a single performance goal an employee carries within an
// assessment process. Weight is a whole percentage point value.
type Goal struct {
	ID           string    `json:"id"`
	ProcessID    string    `json:"processId"`
	EmployeeID   string    `json:"employeeId"`
	CategoryID   string    `json:"categoryId"`
	CategoryName string    `json:"categoryName,omitempty"`
	Description  string    `json:"description"`
	Weight       int       `json:"weight"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PredefinedGoal is a reusable goal template offered during definition.
type PredefinedGoal struct {
	ID           string `json:"id"`
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName,omitempty"`
	Description  string `json:"description"`
}

// GoalList is a goal collection together with the running weight total,
// so clients can show definition progress without re-summing.
type GoalList struct {
	Goals          Goals `json:"goals"`
	TotalWeight    int   `json:"totalWeight"`
	WeightComplete bool  `json:"weightComplete"`
}

type Goals []Goal

type CreateGoalInput struct {
	CategoryID  string `json:"categoryId"`
	Description string `json:"description"`
	Weight      int    `json:"weight"`
}

type UpdateGoalInput struct {
	CategoryID  string `json:"categoryId"`
	Description string `json:"description"`
	Weight      int    `json:"weight"`
}

type PredefinedFilter struct {
	CategoryID string
	Limit      int
	Offset     int
}
