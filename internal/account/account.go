package account

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"weeks-worth/internal/planner"
	"weeks-worth/internal/shared"
	"weeks-worth/internal/shopping"
)

const maxUsernameLength = 150

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

var (
	// ErrIndividualNotFound is returned when no individual matches a lookup.
	ErrIndividualNotFound = fmt.Errorf("%w: individual not found", shared.ErrNotFound)
	// ErrUsernameTaken is returned by Register for a username already in use.
	ErrUsernameTaken = fmt.Errorf("%w: a user with that username already exists", shared.ErrConflict)
	// ErrSuperuserOnly is returned when a regular user asks for another
	// individual's profile.
	ErrSuperuserOnly = fmt.Errorf("%w: only superusers can see other individuals", shared.ErrForbidden)
)

// Individual is the meal-planning profile attached to a user.
type Individual struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Superuser bool   `json:"superuser"`
}

// GroupRef names a group an individual belongs to or asked to join.
type GroupRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Profile is an individual with everything it owns.
type Profile struct {
	Individual
	Groups       []GroupRef      `json:"groups"`
	Requests     []GroupRef      `json:"requests"`
	Meals        []planner.Meal  `json:"meals"`
	ShoppingList []shopping.Item `json:"shopping_list"`
}

// RegisterInput holds the fields of a new account.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *RegisterInput) normalize() error {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	if in.Username == "" {
		return fmt.Errorf("%w: username is required", shared.ErrValidation)
	}
	if len(in.Username) > maxUsernameLength {
		return fmt.Errorf("%w: username must be at most %d characters", shared.ErrValidation, maxUsernameLength)
	}
	if !usernamePattern.MatchString(in.Username) {
		return fmt.Errorf("%w: username may only contain letters, digits and @/./+/-/_", shared.ErrValidation)
	}
	addr, err := mail.ParseAddress(in.Email)
	if err != nil || addr.Address != in.Email {
		return fmt.Errorf("%w: a valid email address is required", shared.ErrValidation)
	}
	return nil
}

// UpdateInput changes what an individual owns. A nil list is left alone;
// a non-nil list, even an empty one, replaces the stored one.
type UpdateInput struct {
	ShoppingList []shopping.Item     `json:"shopping_list"`
	Meals        []planner.MealInput `json:"meals"`
}

// Lookup selects an individual by exactly one of ID or Email.
type Lookup struct {
	ID    string
	Email string
}

// Validate enforces the exactly-one rule.
func (l Lookup) Validate() error {
	if l.ID == "" && l.Email == "" {
		return fmt.Errorf("%w: either an email or an ID must be provided", shared.ErrValidation)
	}
	if l.ID != "" && l.Email != "" {
		return fmt.Errorf("%w: both an email and an ID cannot be provided", shared.ErrValidation)
	}
	return nil
}
