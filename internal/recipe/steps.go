package recipe

import (
	"fmt"
	"math"
	"slices"

	"weeks-worth/internal/shared"
)

var (
	// ErrInvalidStepOrder is returned for orders below 1 or not integral.
	ErrInvalidStepOrder = fmt.Errorf("%w: step order must be an integer greater than or equal to 1", shared.ErrValidation)
	// ErrDuplicateStepOrder is returned when a recipe already uses the order.
	ErrDuplicateStepOrder = fmt.Errorf("%w: recipe already has a step in that order", shared.ErrConflict)
)

// AssignStepOrder returns the order for a new step given the orders already
// used by the recipe: the lowest gap in 1, 2, 3, ... or the next number after
// a contiguous run. An empty recipe starts at 1.
func AssignStepOrder(existing []int) int {
	orders := slices.Clone(existing)
	slices.Sort(orders)
	orders = slices.Compact(orders)

	prev := 0
	for _, cur := range orders {
		if cur != prev+1 {
			return prev + 1
		}
		prev = cur
	}
	return prev + 1
}

// ValidateStepOrder checks an explicitly requested order against the orders
// already used by the recipe and returns it as an int.
func ValidateStepOrder(order float64, existing []int) (int, error) {
	if math.IsNaN(order) || order < 1 || order > math.MaxInt32 || order != math.Trunc(order) {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidStepOrder, order)
	}
	n := int(order)
	if slices.Contains(existing, n) {
		return 0, fmt.Errorf("%w: %d", ErrDuplicateStepOrder, n)
	}
	return n, nil
}

// planStepOrders resolves the order of each input in submission order. Every
// resolved order counts as taken for the inputs after it.
func planStepOrders(existing []int, inputs []StepInput) ([]int, error) {
	taken := slices.Clone(existing)
	orders := make([]int, 0, len(inputs))
	for i, in := range inputs {
		var order int
		if in.Order == nil {
			order = AssignStepOrder(taken)
		} else {
			var err error
			order, err = ValidateStepOrder(*in.Order, taken)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i+1, err)
			}
		}
		taken = append(taken, order)
		orders = append(orders, order)
	}
	return orders, nil
}
