package planner

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"weeks-worth/internal/shared"
)

// canonicalWeek lists every slot in the order Compare must produce.
func canonicalWeek() []Slot {
	var week []Slot
	for d := Monday; d <= Sunday; d++ {
		for t := Breakfast; t <= Other; t++ {
			week = append(week, Slot{Day: d, Time: t})
		}
	}
	return week
}

func mustSlot(t *testing.T, day, mealTime string) Slot {
	t.Helper()
	d, err := ParseDay(day)
	if err != nil {
		t.Fatalf("ParseDay(%q): %v", day, err)
	}
	mt, err := ParseMealTime(mealTime)
	if err != nil {
		t.Fatalf("ParseMealTime(%q): %v", mealTime, err)
	}
	return Slot{Day: d, Time: mt}
}

func TestCompare_ConsistentWithCanonicalWeek(t *testing.T) {
	week := canonicalWeek()
	if len(week) != 28 {
		t.Fatalf("Expected 28 slots, got %d", len(week))
	}

	for i, a := range week {
		for j, b := range week {
			got := Compare(a, b)
			switch {
			case i < j && got >= 0:
				t.Errorf("Compare(%s, %s) = %d, want negative", a, b, got)
			case i > j && got <= 0:
				t.Errorf("Compare(%s, %s) = %d, want positive", a, b, got)
			case i == j && got != 0:
				t.Errorf("Compare(%s, %s) = %d, want 0", a, b, got)
			}
		}
	}
}

func TestCompare_StrictTotalOrder(t *testing.T) {
	week := canonicalWeek()
	sign := func(n int) int {
		switch {
		case n < 0:
			return -1
		case n > 0:
			return 1
		}
		return 0
	}

	for _, a := range week {
		for _, b := range week {
			if sign(Compare(a, b)) != -sign(Compare(b, a)) {
				t.Fatalf("antisymmetry violated for %s, %s", a, b)
			}
			for _, c := range week {
				if Compare(a, b) < 0 && Compare(b, c) < 0 && Compare(a, c) >= 0 {
					t.Fatalf("transitivity violated for %s < %s < %s", a, b, c)
				}
			}
		}
	}
}

func TestSortSlots(t *testing.T) {
	t.Run("Example", func(t *testing.T) {
		slots := []Slot{
			mustSlot(t, "SUN", "O"),
			mustSlot(t, "MON", "B"),
			mustSlot(t, "WED", "L"),
		}
		want := []Slot{
			mustSlot(t, "MON", "B"),
			mustSlot(t, "WED", "L"),
			mustSlot(t, "SUN", "O"),
		}

		if err := SortSlots(slots); err != nil {
			t.Fatalf("SortSlots failed: %v", err)
		}
		if diff := cmp.Diff(want, slots); diff != "" {
			t.Errorf("SortSlots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("ReversedWeek", func(t *testing.T) {
		want := canonicalWeek()
		got := slices.Clone(want)
		slices.Reverse(got)

		if err := SortSlots(got); err != nil {
			t.Fatalf("SortSlots failed: %v", err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("SortSlots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("InvalidSlot", func(t *testing.T) {
		slots := []Slot{{Day: Monday, Time: Breakfast}, {Day: Day(7), Time: Lunch}}
		err := SortSlots(slots)
		if !errors.Is(err, shared.ErrValidation) {
			t.Errorf("Expected validation error, got %v", err)
		}
	})
}

func TestParseCodes(t *testing.T) {
	for i, code := range []string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"} {
		d, err := ParseDay(code)
		if err != nil {
			t.Fatalf("ParseDay(%q) failed: %v", code, err)
		}
		if int(d) != i || d.Code() != code {
			t.Errorf("ParseDay(%q) = %d (%s), want rank %d", code, d, d.Code(), i)
		}
	}
	for i, code := range []string{"B", "L", "D", "O"} {
		mt, err := ParseMealTime(code)
		if err != nil {
			t.Fatalf("ParseMealTime(%q) failed: %v", code, err)
		}
		if int(mt) != i || mt.Code() != code {
			t.Errorf("ParseMealTime(%q) = %d (%s), want rank %d", code, mt, mt.Code(), i)
		}
	}

	for _, bad := range []string{"", "mon", "Monday", "X"} {
		if _, err := ParseDay(bad); !errors.Is(err, shared.ErrValidation) {
			t.Errorf("ParseDay(%q) expected validation error, got %v", bad, err)
		}
	}
	for _, bad := range []string{"", "b", "Breakfast", "S"} {
		if _, err := ParseMealTime(bad); !errors.Is(err, shared.ErrValidation) {
			t.Errorf("ParseMealTime(%q) expected validation error, got %v", bad, err)
		}
	}

	if Sunday.Name() != "Sunday" || Dinner.Name() != "Dinner" {
		t.Errorf("unexpected display names %q, %q", Sunday.Name(), Dinner.Name())
	}
}

func TestMealInputJSON(t *testing.T) {
	t.Run("Decode", func(t *testing.T) {
		var in MealInput
		err := json.Unmarshal([]byte(`{"recipe_id": "r1", "text": "leftovers", "day": "FRI", "time": "D"}`), &in)
		if err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if in.Day != Friday || in.Time != Dinner || in.RecipeID != "r1" {
			t.Errorf("unexpected input %+v", in)
		}
	})

	t.Run("RejectsUnknownDay", func(t *testing.T) {
		var in MealInput
		err := json.Unmarshal([]byte(`{"text": "x", "day": "FUN", "time": "D"}`), &in)
		if !errors.Is(err, shared.ErrValidation) {
			t.Errorf("Expected validation error, got %v", err)
		}
	})

	t.Run("RejectsUnknownTime", func(t *testing.T) {
		var in MealInput
		err := json.Unmarshal([]byte(`{"text": "x", "day": "MON", "time": "Z"}`), &in)
		if !errors.Is(err, shared.ErrValidation) {
			t.Errorf("Expected validation error, got %v", err)
		}
	})

	t.Run("RejectsMissingDayOrTime", func(t *testing.T) {
		for _, body := range []string{
			`{"text": "tacos"}`,
			`{"text": "tacos", "time": "D"}`,
			`{"text": "tacos", "day": "MON"}`,
			`{"text": "tacos", "day": null, "time": "B"}`,
		} {
			var in MealInput
			err := json.Unmarshal([]byte(body), &in)
			if !errors.Is(err, shared.ErrValidation) {
				t.Errorf("%s: expected validation error, got %v (slot %s)", body, err, in.Slot())
			}
		}
	})

	t.Run("Encode", func(t *testing.T) {
		data, err := json.Marshal(Meal{ID: "m1", Text: "tacos", Day: Tuesday, Time: Lunch})
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		want := `{"id":"m1","recipe_id":null,"text":"tacos","day":"TUE","time":"L"}`
		if string(data) != want {
			t.Errorf("Expected %s, got %s", want, data)
		}
	})
}

func TestCheckUniqueSlots(t *testing.T) {
	meals := []MealInput{
		{Text: "a", Day: Monday, Time: Lunch},
		{Text: "b", Day: Monday, Time: Lunch},
	}
	if err := CheckUniqueSlots(meals); !errors.Is(err, ErrDuplicateMeal) {
		t.Errorf("Expected ErrDuplicateMeal, got %v", err)
	}
	if !errors.Is(ErrDuplicateMeal, shared.ErrConflict) {
		t.Error("ErrDuplicateMeal should be a conflict")
	}

	meals[1].Time = Dinner
	if err := CheckUniqueSlots(meals); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}
