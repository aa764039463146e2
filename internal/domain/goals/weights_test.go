package goals

import "testing"

func weighted(weights ...int) Goals {
	list := make(Goals, 0, len(weights))
	for _, w := range weights {
		list = append(list, Goal{Weight: w})
	}
	return list
}

func TestSumWeights(t *testing.T) {
	cases := []struct {
		name    string
		weights []int
		want    int
	}{
		{"empty", nil, 0},
		{"single", []int{40}, 40},
		{"exact hundred", []int{40, 30, 30}, 100},
		{"overshoot", []int{40, 30, 30, 10}, 110},
		{"zero weights count", []int{0, 0, 100}, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SumWeights(weighted(tc.weights...)); got != tc.want {
				t.Fatalf("SumWeights(%v) = %d, want %d", tc.weights, got, tc.want)
			}
		})
	}
}

func TestIsComplete(t *testing.T) {
	if IsComplete(weighted(40, 30, 29)) {
		t.Fatal("99 must be incomplete")
	}
	if !IsComplete(weighted(40, 30, 30)) {
		t.Fatal("exactly 100 must be complete")
	}
	if IsComplete(weighted(40, 30, 30, 10)) {
		t.Fatal("110 must be incomplete, overshoot is not completion")
	}
	if IsComplete(nil) {
		t.Fatal("no goals must be incomplete")
	}
}
