package goals

// weightTarget is the total every employee's goal weights must reach
// before their process can leave definition.
const weightTarget = 100

// SumWeights totals the weights of a goal set.
func SumWeights(list Goals) int {
	total := 0
	for _, g := range list {
		total += g.Weight
	}
	return total
}

// IsComplete reports whether a goal set's weights sum to exactly 100.
// Both undershoot and overshoot are incomplete.
func IsComplete(list Goals) bool {
	return SumWeights(list) == weightTarget
}
