package process

const (
	StatusInDefinition              = "in_definition"
	StatusAwaitingSelfAssessment    = "awaiting_self_assessment"
	StatusInSelfAssessment          = "in_self_assessment"
	StatusAwaitingManagerAssessment = "awaiting_manager_assessment"
	StatusCompleted                 = "completed"
)

// Statuses lists every lifecycle status in workflow order.
var Statuses = []string{
	StatusInDefinition,
	StatusAwaitingSelfAssessment,
	StatusInSelfAssessment,
	StatusAwaitingManagerAssessment,
	StatusCompleted,
}

func ValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}
