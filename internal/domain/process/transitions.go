package process

// allowedTransitions is the single authoritative transition table: a strict
// linear chain with no back-transitions. completed is terminal.
var allowedTransitions = map[string][]string{
	StatusInDefinition:              {StatusAwaitingSelfAssessment},
	StatusAwaitingSelfAssessment:    {StatusInSelfAssessment},
	StatusInSelfAssessment:          {StatusAwaitingManagerAssessment},
	StatusAwaitingManagerAssessment: {StatusCompleted},
	StatusCompleted:                 {},
}

// CanTransition reports whether requested is an allowed next status for
// current. Unknown statuses never transition.
func CanTransition(current, requested string) bool {
	for _, next := range allowedTransitions[current] {
		if next == requested {
			return true
		}
	}
	return false
}

// NextStatuses returns the allowed next statuses for the given status.
func NextStatuses(current string) []string {
	next := allowedTransitions[current]
	out := make([]string, len(next))
	copy(out, next)
	return out
}
