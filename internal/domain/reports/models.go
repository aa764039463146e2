package reports

import "time"

// SummaryRow is one goal's worth of raw report input: the owning employee,
// the goal weight, and whichever ratings exist so far.
type SummaryRow struct {
	EmployeeID    string
	EmployeeName  string
	ManagerID     string
	GoalID        string
	Weight        int
	SelfRating    *int
	ManagerRating *int
}

// EmployeeSummary is the per-employee rollup. Scores are weighted averages
// over the employee's goals and stay nil until every goal has a rating on
// that track.
type EmployeeSummary struct {
	EmployeeID   string   `json:"employeeId"`
	EmployeeName string   `json:"employeeName"`
	GoalCount    int      `json:"goalCount"`
	TotalWeight  int      `json:"totalWeight"`
	SelfScore    *float64 `json:"selfScore"`
	ManagerScore *float64 `json:"managerScore"`
}

type ProcessSummary struct {
	ProcessID   string            `json:"processId"`
	Title       string            `json:"title"`
	Status      string            `json:"status"`
	GeneratedAt time.Time         `json:"generatedAt"`
	Employees   []EmployeeSummary `json:"employees"`
}

type ProcessInfo struct {
	ID     string
	Title  string
	Status string
}
