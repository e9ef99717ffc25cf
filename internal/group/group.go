package group

import (
	"fmt"
	"strings"

	"weeks-worth/internal/planner"
	"weeks-worth/internal/shared"
	"weeks-worth/internal/shopping"
)

const maxNameLength = 100

var (
	ErrGroupNotFound    = fmt.Errorf("%w: group not found", shared.ErrNotFound)
	ErrGroupNameTaken   = fmt.Errorf("%w: a group with that name already exists", shared.ErrConflict)
	ErrNotMember        = fmt.Errorf("%w: you are not a member of this group", shared.ErrForbidden)
	ErrAlreadyMember    = fmt.Errorf("%w: already a member of this group", shared.ErrConflict)
	ErrAlreadyRequested = fmt.Errorf("%w: access to this group was already requested", shared.ErrConflict)
	ErrNoRequest        = fmt.Errorf("%w: no pending request for this group", shared.ErrNotFound)
	ErrInviteeNotFound  = fmt.Errorf("%w: individual to invite not found", shared.ErrNotFound)
)

// Member is an individual as seen from a group.
type Member struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Summary is the public face of a group, visible to everyone.
type Summary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Group is a set of individuals sharing a meal plan and a shopping list.
type Group struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Members      []Member        `json:"members"`
	Requests     []Member        `json:"requests"`
	Meals        []planner.Meal  `json:"meals"`
	ShoppingList []shopping.Item `json:"shopping_list"`
}

// UpdateInput changes a group. An empty name is left alone; list fields
// follow account.UpdateInput: nil is untouched, non-nil replaces.
type UpdateInput struct {
	Name         string              `json:"name"`
	ShoppingList []shopping.Item     `json:"shopping_list"`
	Meals        []planner.MealInput `json:"meals"`
}

// Lookup selects a group by exactly one of ID or Name.
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

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: group name is required", shared.ErrValidation)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: group name must be at most %d characters", shared.ErrValidation, maxNameLength)
	}
	return nil
}
