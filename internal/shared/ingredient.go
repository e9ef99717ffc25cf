package shared

import (
	"fmt"
	"strings"
)

// Ingredient is a named quantity used by recipes and shopping lists.
type Ingredient struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

// Validate checks the field lengths the schema allows.
func (i Ingredient) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("%w: ingredient name is required", ErrValidation)
	}
	if len(i.Name) > 100 {
		return fmt.Errorf("%w: ingredient name must be at most 100 characters", ErrValidation)
	}
	if len(i.Quantity) > 100 {
		return fmt.Errorf("%w: ingredient quantity must be at most 100 characters", ErrValidation)
	}
	if len(i.Unit) > 50 {
		return fmt.Errorf("%w: ingredient unit must be at most 50 characters", ErrValidation)
	}
	return nil
}

func (i Ingredient) String() string {
	return fmt.Sprintf("%s %s of %s", i.Quantity, i.Unit, i.Name)
}
