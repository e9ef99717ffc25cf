package planner

import (
	"bytes"
	"encoding/json"
	"fmt"

	"weeks-worth/internal/shared"
)

// Day is a day of the week. The zero value is Monday and the numeric value is
// the day's rank in the week.
type Day uint8

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// MealTime is a time of day a meal is planned for. The numeric value is its
// rank within the day.
type MealTime uint8

const (
	Breakfast MealTime = iota
	Lunch
	Dinner
	Other
)

var dayCodes = [...]string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var timeCodes = [...]string{"B", "L", "D", "O"}

var timeNames = [...]string{"Breakfast", "Lunch", "Dinner", "Other"}

var (
	daysByCode  = map[string]Day{}
	timesByCode = map[string]MealTime{}
)

func init() {
	for i, code := range dayCodes {
		daysByCode[code] = Day(i)
	}
	for i, code := range timeCodes {
		timesByCode[code] = MealTime(i)
	}
}

// ParseDay maps a three letter code (MON..SUN) to a Day.
func ParseDay(code string) (Day, error) {
	d, ok := daysByCode[code]
	if !ok {
		return 0, fmt.Errorf("%w: invalid day %q", shared.ErrValidation, code)
	}
	return d, nil
}

// ParseMealTime maps a one letter code (B, L, D, O) to a MealTime.
func ParseMealTime(code string) (MealTime, error) {
	t, ok := timesByCode[code]
	if !ok {
		return 0, fmt.Errorf("%w: invalid meal time %q", shared.ErrValidation, code)
	}
	return t, nil
}

// Valid reports whether d is one of the seven days.
func (d Day) Valid() bool { return int(d) < len(dayCodes) }

// Code returns the stored code, e.g. "MON".
func (d Day) Code() string {
	if !d.Valid() {
		return fmt.Sprintf("Day(%d)", d)
	}
	return dayCodes[d]
}

// Name returns the display name, e.g. "Monday".
func (d Day) Name() string {
	if !d.Valid() {
		return d.Code()
	}
	return dayNames[d]
}

func (d Day) String() string { return d.Code() }

func (d Day) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid day %d", d)
	}
	return json.Marshal(d.Code())
}

func (d *Day) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return fmt.Errorf("%w: day must be a string", shared.ErrValidation)
	}
	parsed, err := ParseDay(code)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Valid reports whether t is one of the four meal times.
func (t MealTime) Valid() bool { return int(t) < len(timeCodes) }

// Code returns the stored code, e.g. "B".
func (t MealTime) Code() string {
	if !t.Valid() {
		return fmt.Sprintf("MealTime(%d)", t)
	}
	return timeCodes[t]
}

// Name returns the display name, e.g. "Breakfast".
func (t MealTime) Name() string {
	if !t.Valid() {
		return t.Code()
	}
	return timeNames[t]
}

func (t MealTime) String() string { return t.Code() }

func (t MealTime) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid meal time %d", t)
	}
	return json.Marshal(t.Code())
}

func (t *MealTime) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return fmt.Errorf("%w: time must be a string", shared.ErrValidation)
	}
	parsed, err := ParseMealTime(code)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Meal is a planned meal in one slot of an owner's week.
type Meal struct {
	ID       string   `json:"id"`
	RecipeID *string  `json:"recipe_id"`
	Text     string   `json:"text"`
	Day      Day      `json:"day"`
	Time     MealTime `json:"time"`
}

// Slot returns the (day, time) position of the meal.
func (m Meal) Slot() Slot { return Slot{Day: m.Day, Time: m.Time} }

func (m Meal) String() string {
	return fmt.Sprintf("Meal: %s for %s at %s(%s)", m.Text, m.Day, m.Time, m.ID)
}

// MealInput is a client-submitted meal. A meal needs a recipe, a note, or
// both; inputs with neither are dropped.
type MealInput struct {
	RecipeID string   `json:"recipe_id"`
	Text     string   `json:"text"`
	Day      Day      `json:"day"`
	Time     MealTime `json:"time"`
}

// Slot returns the (day, time) position of the input.
func (m MealInput) Slot() Slot { return Slot{Day: m.Day, Time: m.Time} }

// UnmarshalJSON requires both day and time. Monday and Breakfast are the
// zero values, so an absent field must not decode silently.
func (m *MealInput) UnmarshalJSON(data []byte) error {
	var raw struct {
		RecipeID string    `json:"recipe_id"`
		Text     string    `json:"text"`
		Day      *Day      `json:"day"`
		Time     *MealTime `json:"time"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if raw.Day == nil {
		return fmt.Errorf("%w: meal day is required", shared.ErrValidation)
	}
	if raw.Time == nil {
		return fmt.Errorf("%w: meal time is required", shared.ErrValidation)
	}
	*m = MealInput{RecipeID: raw.RecipeID, Text: raw.Text, Day: *raw.Day, Time: *raw.Time}
	return nil
}
