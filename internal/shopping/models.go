package shopping

import "weeks-worth/internal/shared"

// MaxItems caps the length of one shopping list.
const MaxItems = 500

// Item is one line of a shopping list. It shares its shape with a recipe
// ingredient.
type Item = shared.Ingredient
