package recipe

import (
	"errors"
	"math"
	"testing"

	"weeks-worth/internal/shared"
)

func TestAssignStepOrder(t *testing.T) {
	tests := []struct {
		name     string
		existing []int
		want     int
	}{
		{"Empty", nil, 1},
		{"EmptySlice", []int{}, 1},
		{"GapAfterTwo", []int{1, 2, 4}, 3},
		{"Contiguous", []int{1, 2, 3}, 4},
		{"MissingFirst", []int{2, 3}, 1},
		{"Unsorted", []int{3, 1, 5, 2}, 4},
		{"LowestOfSeveralGaps", []int{1, 3, 5}, 2},
		{"Single", []int{1}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AssignStepOrder(tt.existing); got != tt.want {
				t.Errorf("AssignStepOrder(%v) = %d, want %d", tt.existing, got, tt.want)
			}
		})
	}
}

func TestAssignStepOrder_DoesNotMutateInput(t *testing.T) {
	existing := []int{3, 1, 2}
	AssignStepOrder(existing)
	if existing[0] != 3 || existing[1] != 1 || existing[2] != 2 {
		t.Errorf("input was modified: %v", existing)
	}
}

func TestAssignStepOrder_NeverReusesAnOrder(t *testing.T) {
	existing := []int{}
	for i := 0; i < 50; i++ {
		next := AssignStepOrder(existing)
		for _, o := range existing {
			if o == next {
				t.Fatalf("order %d reused after %v", next, existing)
			}
		}
		existing = append(existing, next)
	}
	// Fifty assignments from empty must yield exactly 1..50.
	if got := AssignStepOrder(existing); got != 51 {
		t.Errorf("Expected 51 after 50 contiguous assignments, got %d", got)
	}
}

func TestValidateStepOrder(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		got, err := ValidateStepOrder(4, []int{1, 2, 3})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if got != 4 {
			t.Errorf("Expected 4, got %d", got)
		}
	})

	for _, bad := range []float64{0, -1, 2.5, 0.999, math.NaN(), math.Inf(1)} {
		bad := bad
		t.Run("Rejects", func(t *testing.T) {
			_, err := ValidateStepOrder(bad, nil)
			if !errors.Is(err, ErrInvalidStepOrder) {
				t.Errorf("ValidateStepOrder(%v): expected ErrInvalidStepOrder, got %v", bad, err)
			}
			if !errors.Is(err, shared.ErrValidation) {
				t.Errorf("ValidateStepOrder(%v): expected a validation error, got %v", bad, err)
			}
		})
	}

	t.Run("Duplicate", func(t *testing.T) {
		_, err := ValidateStepOrder(3, []int{1, 3})
		if !errors.Is(err, ErrDuplicateStepOrder) {
			t.Errorf("Expected ErrDuplicateStepOrder, got %v", err)
		}
	})
}

func TestPlanStepOrders(t *testing.T) {
	order := func(f float64) *float64 { return &f }

	t.Run("MixesExplicitAndAssigned", func(t *testing.T) {
		inputs := []StepInput{
			{Step: "boil", Order: order(2)},
			{Step: "salt"},
			{Step: "serve"},
		}
		got, err := planStepOrders(nil, inputs)
		if err != nil {
			t.Fatalf("planStepOrders failed: %v", err)
		}
		want := []int{2, 1, 3}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("step %d: expected order %d, got %d", i, want[i], got[i])
			}
		}
	})

	t.Run("ExplicitCollidesWithEarlierAssignment", func(t *testing.T) {
		inputs := []StepInput{
			{Step: "first"},
			{Step: "second", Order: order(1)},
		}
		_, err := planStepOrders(nil, inputs)
		if !errors.Is(err, ErrDuplicateStepOrder) {
			t.Errorf("Expected ErrDuplicateStepOrder, got %v", err)
		}
	})

	t.Run("RespectsExisting", func(t *testing.T) {
		got, err := planStepOrders([]int{1, 3}, []StepInput{{Step: "a"}, {Step: "b"}})
		if err != nil {
			t.Fatalf("planStepOrders failed: %v", err)
		}
		if got[0] != 2 || got[1] != 4 {
			t.Errorf("Expected [2 4], got %v", got)
		}
	})
}
