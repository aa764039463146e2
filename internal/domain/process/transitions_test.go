package process

import "testing"

func TestCanTransitionFollowsLinearChain(t *testing.T) {
	allowed := [][2]string{
		{StatusInDefinition, StatusAwaitingSelfAssessment},
		{StatusAwaitingSelfAssessment, StatusInSelfAssessment},
		{StatusInSelfAssessment, StatusAwaitingManagerAssessment},
		{StatusAwaitingManagerAssessment, StatusCompleted},
	}
	for _, pair := range allowed {
		if !CanTransition(pair[0], pair[1]) {
			t.Fatalf("expected %s -> %s to be allowed", pair[0], pair[1])
		}
	}
}

func TestCanTransitionRejectsEverythingElse(t *testing.T) {
	for _, from := range Statuses {
		for _, to := range Statuses {
			if CanTransition(from, to) && !isAdjacent(from, to) {
				t.Fatalf("unexpected transition %s -> %s", from, to)
			}
		}
	}

	if CanTransition(StatusAwaitingSelfAssessment, StatusInDefinition) {
		t.Fatal("back-transition must be rejected")
	}
	if CanTransition(StatusInDefinition, StatusCompleted) {
		t.Fatal("skipping stages must be rejected")
	}
	if CanTransition("bogus", StatusInDefinition) {
		t.Fatal("unknown status must never transition")
	}
}

func TestCompletedIsTerminal(t *testing.T) {
	if len(NextStatuses(StatusCompleted)) != 0 {
		t.Fatal("completed must have no outgoing transitions")
	}
}

func TestEveryStatusReachableFromInDefinition(t *testing.T) {
	reached := map[string]bool{StatusInDefinition: true}
	frontier := []string{StatusInDefinition}
	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]
		for _, next := range NextStatuses(current) {
			if !reached[next] {
				reached[next] = true
				frontier = append(frontier, next)
			}
		}
	}
	for _, status := range Statuses {
		if !reached[status] {
			t.Fatalf("status %s not reachable from %s", status, StatusInDefinition)
		}
	}
}

func isAdjacent(from, to string) bool {
	for i := 0; i < len(Statuses)-1; i++ {
		if Statuses[i] == from && Statuses[i+1] == to {
			return true
		}
	}
	return false
}
