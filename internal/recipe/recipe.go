package recipe

import (
	"fmt"
	"strings"

	"weeks-worth/internal/shared"
)

const (
	MaxIngredients = 150
	MaxSteps       = 200

	maxNameLength  = 200
	maxPhotoLength = 254
)

// Recipe is a named dish with its ingredients and ordered steps.
type Recipe struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Photo       string              `json:"photo"`
	URL         string              `json:"url"`
	Ingredients []shared.Ingredient `json:"ingredients"`
	Steps       []Step              `json:"steps"`
}

// Step is one preparation step. Order is 1-based and unique per recipe.
type Step struct {
	ID    string `json:"id"`
	Step  string `json:"step"`
	Order int    `json:"order"`
}

// StepInput is a client-submitted step. A nil Order lets the repository pick
// one; Order is a float so non-integral requests can be rejected rather than
// truncated.
type StepInput struct {
	Step  string   `json:"step"`
	Order *float64 `json:"order,omitempty"`
}

// CreateInput holds the fields of a new recipe.
type CreateInput struct {
	Name        string              `json:"name"`
	Photo       string              `json:"photo"`
	URL         string              `json:"url"`
	Ingredients []shared.Ingredient `json:"ingredients"`
	Steps       []StepInput         `json:"steps"`
}

// UpdateInput holds the fields to change. Empty name or photo and empty
// ingredient or step lists leave the stored values untouched; a non-empty
// list replaces the stored one. URL may only repeat the stored value.
type UpdateInput struct {
	Name        string              `json:"name"`
	Photo       string              `json:"photo"`
	URL         *string             `json:"url,omitempty"`
	Ingredients []shared.Ingredient `json:"ingredients"`
	Steps       []StepInput         `json:"steps"`
}

// Lookup selects a recipe by exactly one of ID or Name.
type Lookup struct {
	ID   string
	Name string
}

// Validate enforces the exactly-one rule.
func (l Lookup) Validate() error {
	if l.ID == "" && l.Name == "" {
		return fmt.Errorf("%w: either a name or an ID must be provided", shared.ErrValidation)
	}
	if l.ID != "" && l.Name != "" {
		return fmt.Errorf("%w: both a name and an ID cannot be provided", shared.ErrValidation)
	}
	return nil
}

func (in CreateInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: recipe name is required", shared.ErrValidation)
	}
	return validateFields(in.Name, in.Photo, in.Ingredients, in.Steps)
}

func (in UpdateInput) validate() error {
	return validateFields(in.Name, in.Photo, in.Ingredients, in.Steps)
}

func validateFields(name, photo string, ingredients []shared.Ingredient, steps []StepInput) error {
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: recipe name must be at most %d characters", shared.ErrValidation, maxNameLength)
	}
	if len(photo) > maxPhotoLength {
		return fmt.Errorf("%w: photo must be at most %d characters", shared.ErrValidation, maxPhotoLength)
	}
	if len(ingredients) > MaxIngredients {
		return fmt.Errorf("%w: a recipe may only have %d ingredients", shared.ErrValidation, MaxIngredients)
	}
	if len(steps) > MaxSteps {
		return fmt.Errorf("%w: a recipe may only have %d steps", shared.ErrValidation, MaxSteps)
	}
	for _, ing := range ingredients {
		if err := ing.Validate(); err != nil {
			return err
		}
	}
	for i, s := range steps {
		if strings.TrimSpace(s.Step) == "" {
			return fmt.Errorf("%w: step %d has no text", shared.ErrValidation, i+1)
		}
	}
	return nil
}
