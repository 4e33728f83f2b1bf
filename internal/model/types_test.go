package model

import "testing"

func TestRangeLenAndContains(t *testing.T) {
	tests := []struct {
		r       Range
		wantLen int
		in      []int
		out     []int
	}{
		{Range{0, 10}, 10, []int{0, 9}, []int{10, -1}},
		{Range{5, 5}, 0, nil, []int{5}},
		{Range{7, 3}, 0, nil, []int{3, 5, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.r.String(), func(t *testing.T) {
			if got := tt.r.Len(); got != tt.wantLen {
				t.Fatalf("Len() = %d, want %d", got, tt.wantLen)
			}
			for _, n := range tt.in {
				if !tt.r.Contains(n) {
					t.Errorf("Contains(%d) = false, want true", n)
				}
			}
			for _, n := range tt.out {
				if tt.r.Contains(n) {
					t.Errorf("Contains(%d) = true, want false", n)
				}
			}
		})
	}
}
