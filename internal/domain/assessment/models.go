package assessment

import "time"

// Kind separates the two assessment tracks a goal carries.
type Kind string

const (
	KindSelf    Kind = "self"
	KindManager Kind = "manager"
)

func ValidKind(k Kind) bool {
	return k == KindSelf || k == KindManager
}

// Record is one submitted assessment for a goal. A goal holds at most one
// record per kind; resubmitting replaces the previous values.
type Record struct {
	ID        string    `json:"id"`
	GoalID    string    `json:"goalId"`
	Rating    int       `json:"rating"`
	Comments  string    `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Pair bundles both tracks for a goal. Either side may be nil when not yet
// submitted.
type Pair struct {
	Self    *Record `json:"self"`
	Manager *Record `json:"manager"`
}

type SubmitInput struct {
	Rating   int    `json:"rating"`
	Comments string `json:"comments"`
}

// GoalContext is what the policy needs to know about a goal before an
// assessment write: who owns it and where its process stands.
type GoalContext struct {
	GoalID        string
	EmployeeID    string
	ProcessID     string
	ProcessStatus string
}
