package planner

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"weeks-worth/internal/database"
	"weeks-worth/internal/planner/plan_db"
	"weeks-worth/internal/shared"
)

// MealRepository is a database-backed repository for planned meals.
type MealRepository struct {
	queries *plan_db.Queries
	db      *sql.DB
}

// NewMealRepository creates a new MealRepository.
func NewMealRepository(d *sql.DB) *MealRepository {
	return &MealRepository{
		queries: plan_db.New(d),
		db:      d,
	}
}

// WithTx returns a new MealRepository that uses the provided transaction.
func (r *MealRepository) WithTx(tx *sql.Tx) *MealRepository {
	return &MealRepository{
		queries: r.queries.WithTx(tx),
		db:      r.db,
	}
}

// List returns the owner's meals in week order.
func (r *MealRepository) List(ctx context.Context, owner shared.Owner) ([]Meal, error) {
	rows, err := r.queries.ListMealsByOwner(ctx, plan_db.ListMealsByOwnerParams{
		OwnerKind: string(owner.Kind),
		OwnerID:   owner.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list meals for %s: %w", owner, err)
	}

	meals := make([]Meal, 0, len(rows))
	for _, row := range rows {
		meal, err := mealFromRow(row)
		if err != nil {
			return nil, err
		}
		meals = append(meals, meal)
	}
	return meals, nil
}

// Replace deletes every meal of the owner and stores inputs in week order.
// Inputs that reference a missing recipe keep only their note; inputs left
// with neither a recipe nor a note are dropped. Two kept inputs in the same
// slot fail with ErrDuplicateMeal. Callers run Replace inside a transaction.
func (r *MealRepository) Replace(ctx context.Context, owner shared.Owner, inputs []MealInput) ([]Meal, error) {
	sorted := make([]MealInput, len(inputs))
	copy(sorted, inputs)
	if err := SortMealInputs(sorted); err != nil {
		return nil, err
	}

	kept, err := r.resolve(ctx, sorted)
	if err != nil {
		return nil, err
	}
	if err := CheckUniqueSlots(kept); err != nil {
		return nil, err
	}

	if err := r.DeleteAll(ctx, owner); err != nil {
		return nil, err
	}

	meals := make([]Meal, 0, len(kept))
	for i, in := range kept {
		meal := Meal{
			ID:   uuid.NewString(),
			Text: in.Text,
			Day:  in.Day,
			Time: in.Time,
		}
		recipeID := sql.NullString{}
		if in.RecipeID != "" {
			id := in.RecipeID
			meal.RecipeID = &id
			recipeID = sql.NullString{String: id, Valid: true}
		}

		err := r.queries.InsertMeal(ctx, plan_db.InsertMealParams{
			ID:        meal.ID,
			OwnerKind: string(owner.Kind),
			OwnerID:   owner.ID,
			RecipeID:  recipeID,
			Text:      meal.Text,
			Day:       meal.Day.Code(),
			Time:      meal.Time.Code(),
			Position:  int64(i),
		})
		if err != nil {
			if database.IsUniqueViolation(err) {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateMeal, meal.Slot())
			}
			return nil, fmt.Errorf("failed to insert meal: %w", err)
		}
		meals = append(meals, meal)
	}
	return meals, nil
}

// DeleteAll removes every meal of the owner.
func (r *MealRepository) DeleteAll(ctx context.Context, owner shared.Owner) error {
	err := r.queries.DeleteMealsByOwner(ctx, plan_db.DeleteMealsByOwnerParams{
		OwnerKind: string(owner.Kind),
		OwnerID:   owner.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete meals for %s: %w", owner, err)
	}
	return nil
}

func (r *MealRepository) resolve(ctx context.Context, inputs []MealInput) ([]MealInput, error) {
	kept := make([]MealInput, 0, len(inputs))
	for _, in := range inputs {
		if in.RecipeID != "" {
			exists, err := r.queries.RecipeExists(ctx, in.RecipeID)
			if err != nil {
				return nil, fmt.Errorf("failed to look up recipe %s: %w", in.RecipeID, err)
			}
			if exists == 0 {
				in.RecipeID = ""
			}
		}
		if in.RecipeID == "" && in.Text == "" {
			continue
		}
		kept = append(kept, in)
	}
	return kept, nil
}

func mealFromRow(row plan_db.Meal) (Meal, error) {
	day, err := ParseDay(row.Day)
	if err != nil {
		return Meal{}, fmt.Errorf("corrupt meal %s: %w", row.ID, err)
	}
	t, err := ParseMealTime(row.Time)
	if err != nil {
		return Meal{}, fmt.Errorf("corrupt meal %s: %w", row.ID, err)
	}

	meal := Meal{ID: row.ID, Text: row.Text, Day: day, Time: t}
	if row.RecipeID.Valid {
		id := row.RecipeID.String
		meal.RecipeID = &id
	}
	return meal, nil
}
