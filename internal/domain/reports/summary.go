package reports

import "sort"

// buildSummary rolls raw goal rows up per employee. A track's weighted score
// is only reported once every goal on that track is rated, so partially
// assessed employees show nil rather than a misleading partial average.
func buildSummary(rows []SummaryRow) []EmployeeSummary {
	type acc struct {
		name         string
		goals        int
		totalWeight  int
		selfSum      float64
		selfRated    int
		managerSum   float64
		managerRated int
	}

	byEmployee := map[string]*acc{}
	order := []string{}
	for _, row := range rows {
		a, ok := byEmployee[row.EmployeeID]
		if !ok {
			a = &acc{name: row.EmployeeName}
			byEmployee[row.EmployeeID] = a
			order = append(order, row.EmployeeID)
		}
		a.goals++
		a.totalWeight += row.Weight
		if row.SelfRating != nil {
			a.selfSum += float64(row.Weight) * float64(*row.SelfRating)
			a.selfRated++
		}
		if row.ManagerRating != nil {
			a.managerSum += float64(row.Weight) * float64(*row.ManagerRating)
			a.managerRated++
		}
	}

	sort.Strings(order)
	out := make([]EmployeeSummary, 0, len(order))
	for _, id := range order {
		a := byEmployee[id]
		summary := EmployeeSummary{
			EmployeeID:   id,
			EmployeeName: a.name,
			GoalCount:    a.goals,
			TotalWeight:  a.totalWeight,
		}
		if a.selfRated == a.goals && a.totalWeight > 0 {
			score := a.selfSum / float64(a.totalWeight)
			summary.SelfScore = &score
		}
		if a.managerRated == a.goals && a.totalWeight > 0 {
			score := a.managerSum / float64(a.totalWeight)
			summary.ManagerScore = &score
		}
		out = append(out, summary)
	}
	return out
}
