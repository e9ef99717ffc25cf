package planner

import (
	"cmp"
	"fmt"
	"slices"

	"weeks-worth/internal/shared"
)

// ErrDuplicateMeal is returned when two meals of one owner share a slot.
var ErrDuplicateMeal = fmt.Errorf("%w: meal already exists for that day and time", shared.ErrConflict)

// Slot is one (day, time) planning position in a week.
type Slot struct {
	Day  Day
	Time MealTime
}

// Validate rejects slots outside the closed day and time enums.
func (s Slot) Validate() error {
	if !s.Day.Valid() {
		return fmt.Errorf("%w: invalid day %d", shared.ErrValidation, s.Day)
	}
	if !s.Time.Valid() {
		return fmt.Errorf("%w: invalid meal time %d", shared.ErrValidation, s.Time)
	}
	return nil
}

func (s Slot) String() string { return s.Day.Code() + "/" + s.Time.Code() }

// Compare orders slots chronologically within a week starting on Monday,
// and Breakfast < Lunch < Dinner < Other within a day. It returns a negative
// number, zero or a positive number. Both slots must be valid.
func Compare(a, b Slot) int {
	if c := cmp.Compare(a.Day, b.Day); c != 0 {
		return c
	}
	return cmp.Compare(a.Time, b.Time)
}

// SortSlots sorts slots in week order.
func SortSlots(slots []Slot) error {
	for _, s := range slots {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	slices.SortStableFunc(slots, Compare)
	return nil
}

// SortMealInputs validates every slot and sorts the inputs in week order.
func SortMealInputs(meals []MealInput) error {
	for _, m := range meals {
		if err := m.Slot().Validate(); err != nil {
			return err
		}
	}
	slices.SortStableFunc(meals, func(a, b MealInput) int {
		return Compare(a.Slot(), b.Slot())
	})
	return nil
}

// CheckUniqueSlots returns ErrDuplicateMeal when two inputs share a slot.
// The inputs must already be sorted.
func CheckUniqueSlots(meals []MealInput) error {
	for i := 1; i < len(meals); i++ {
		if Compare(meals[i-1].Slot(), meals[i].Slot()) == 0 {
			return fmt.Errorf("%w: %s", ErrDuplicateMeal, meals[i].Slot())
		}
	}
	return nil
}
