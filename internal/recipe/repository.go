package recipe

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"weeks-worth/internal/database"
	db "weeks-worth/internal/recipe/db"
	"weeks-worth/internal/shared"
)

var (
	// ErrRecipeNotFound is returned when no recipe matches a lookup.
	ErrRecipeNotFound = fmt.Errorf("%w: no recipe found with that ID or name", shared.ErrNotFound)
	// ErrDuplicateName is returned when another recipe uses the name.
	ErrDuplicateName = fmt.Errorf("%w: a recipe with that name already exists", shared.ErrConflict)
	// ErrDuplicateURL is returned when another recipe uses the URL.
	ErrDuplicateURL = fmt.Errorf("%w: a recipe with that URL already exists", shared.ErrConflict)
	// ErrURLImmutable is returned when an update tries to change the URL.
	ErrURLImmutable = fmt.Errorf("%w: recipe URL cannot be changed after creation", shared.ErrValidation)
)

// Repository is a database-backed repository for recipes.
type Repository struct {
	queries *db.Queries
	db      *database.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *database.DB) *Repository {
	return &Repository{
		queries: db.New(d.SQL),
		db:      d,
	}
}

// Create inserts a recipe with its ingredients and steps. Steps are written
// in submission order; steps without an order get one from AssignStepOrder.
func (r *Repository) Create(ctx context.Context, in CreateInput) (*Recipe, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	err := r.db.InTx(ctx, func(tx *sql.Tx) error {
		q := r.queries.WithTx(tx)

		if err := checkNameFree(ctx, q, in.Name, ""); err != nil {
			return err
		}
		if in.URL != "" {
			if _, err := q.GetRecipeByURL(ctx, in.URL); err == nil {
				return ErrDuplicateURL
			} else if !errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("failed to check recipe URL: %w", err)
			}
		}

		err := q.InsertRecipe(ctx, db.InsertRecipeParams{
			ID:    id,
			Name:  in.Name,
			Photo: in.Photo,
			Url:   in.URL,
		})
		if err != nil {
			if database.IsUniqueViolation(err) {
				return fmt.Errorf("%w: %s", shared.ErrConflict, err)
			}
			return fmt.Errorf("failed to insert recipe: %w", err)
		}

		if err := insertIngredients(ctx, q, id, in.Ingredients); err != nil {
			return err
		}
		return insertSteps(ctx, q, id, nil, in.Steps)
	})
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, Lookup{ID: id})
}

// Update changes the name and photo when given, and replaces ingredients or
// steps when a non-empty list is given.
func (r *Repository) Update(ctx context.Context, id string, in UpdateInput) (*Recipe, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	err := r.db.InTx(ctx, func(tx *sql.Tx) error {
		q := r.queries.WithTx(tx)

		current, err := q.GetRecipeByID(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrRecipeNotFound
			}
			return fmt.Errorf("failed to get recipe by ID: %w", err)
		}
		if in.URL != nil && *in.URL != current.Url {
			return ErrURLImmutable
		}

		if in.Name != "" || in.Photo != "" {
			name, photo := current.Name, current.Photo
			if in.Name != "" {
				if err := checkNameFree(ctx, q, in.Name, id); err != nil {
					return err
				}
				name = in.Name
			}
			if in.Photo != "" {
				photo = in.Photo
			}
			err := q.UpdateRecipe(ctx, db.UpdateRecipeParams{Name: name, Photo: photo, ID: id})
			if err != nil {
				if database.IsUniqueViolation(err) {
					return ErrDuplicateName
				}
				return fmt.Errorf("failed to update recipe: %w", err)
			}
		}

		if len(in.Ingredients) > 0 {
			if err := q.DeleteIngredientsByRecipe(ctx, id); err != nil {
				return fmt.Errorf("failed to delete ingredients: %w", err)
			}
			if err := insertIngredients(ctx, q, id, in.Ingredients); err != nil {
				return err
			}
		}

		if len(in.Steps) > 0 {
			if err := q.DeleteStepsByRecipe(ctx, id); err != nil {
				return fmt.Errorf("failed to delete steps: %w", err)
			}
			if err := insertSteps(ctx, q, id, nil, in.Steps); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, Lookup{ID: id})
}

// AddStep appends one step to an existing recipe. The existing orders are
// read and the new one written in the same transaction.
func (r *Repository) AddStep(ctx context.Context, recipeID string, in StepInput) (*Step, error) {
	if err := validateFields("", "", nil, []StepInput{in}); err != nil {
		return nil, err
	}

	var step Step
	err := r.db.InTx(ctx, func(tx *sql.Tx) error {
		q := r.queries.WithTx(tx)

		if _, err := q.GetRecipeByID(ctx, recipeID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrRecipeNotFound
			}
			return fmt.Errorf("failed to get recipe by ID: %w", err)
		}

		rows, err := q.ListStepOrders(ctx, recipeID)
		if err != nil {
			return fmt.Errorf("failed to list step orders: %w", err)
		}
		if len(rows) >= MaxSteps {
			return fmt.Errorf("%w: a recipe may only have %d steps", shared.ErrValidation, MaxSteps)
		}
		existing := make([]int, len(rows))
		for i, o := range rows {
			existing[i] = int(o)
		}

		orders, err := planStepOrders(existing, []StepInput{in})
		if err != nil {
			return err
		}
		step = Step{ID: uuid.NewString(), Step: in.Step, Order: orders[0]}
		return insertStep(ctx, q, recipeID, step)
	})
	if err != nil {
		return nil, err
	}
	return &step, nil
}

// Get retrieves a recipe by ID or name.
func (r *Repository) Get(ctx context.Context, lookup Lookup) (*Recipe, error) {
	if err := lookup.Validate(); err != nil {
		return nil, err
	}
	row, err := findRecipe(ctx, r.queries, lookup)
	if err != nil {
		return nil, err
	}
	return r.load(ctx, r.queries, row)
}

// List retrieves all recipes ordered by name.
func (r *Repository) List(ctx context.Context) ([]Recipe, error) {
	rows, err := r.queries.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	recipes := make([]Recipe, 0, len(rows))
	for _, row := range rows {
		rec, err := r.load(ctx, r.queries, row)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *rec)
	}
	return recipes, nil
}

// URLs returns the URL of every recipe, blank ones included.
func (r *Repository) URLs(ctx context.Context) ([]string, error) {
	urls, err := r.queries.ListRecipeURLs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipe URLs: %w", err)
	}
	if urls == nil {
		urls = []string{}
	}
	return urls, nil
}

// Delete removes a recipe selected by ID or name and returns it as it was.
func (r *Repository) Delete(ctx context.Context, lookup Lookup) (*Recipe, error) {
	if err := lookup.Validate(); err != nil {
		return nil, err
	}

	var deleted *Recipe
	err := r.db.InTx(ctx, func(tx *sql.Tx) error {
		q := r.queries.WithTx(tx)
		row, err := findRecipe(ctx, q, lookup)
		if err != nil {
			return err
		}
		deleted, err = r.load(ctx, q, row)
		if err != nil {
			return err
		}
		if err := q.DeleteRecipe(ctx, row.ID); err != nil {
			return fmt.Errorf("failed to delete recipe: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *Repository) load(ctx context.Context, q *db.Queries, row db.Recipe) (*Recipe, error) {
	ingRows, err := q.ListIngredientsByRecipe(ctx, row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients for recipe %s: %w", row.ID, err)
	}
	stepRows, err := q.ListStepsByRecipe(ctx, row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps for recipe %s: %w", row.ID, err)
	}

	rec := &Recipe{
		ID:          row.ID,
		Name:        row.Name,
		Photo:       row.Photo,
		URL:         row.Url,
		Ingredients: make([]shared.Ingredient, 0, len(ingRows)),
		Steps:       make([]Step, 0, len(stepRows)),
	}
	for _, ing := range ingRows {
		rec.Ingredients = append(rec.Ingredients, shared.Ingredient{
			ID:       ing.ID,
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}
	for _, s := range stepRows {
		rec.Steps = append(rec.Steps, Step{ID: s.ID, Step: s.Step, Order: int(s.StepOrder)})
	}
	return rec, nil
}

func findRecipe(ctx context.Context, q *db.Queries, lookup Lookup) (db.Recipe, error) {
	var (
		row db.Recipe
		err error
	)
	if lookup.ID != "" {
		row, err = q.GetRecipeByID(ctx, lookup.ID)
	} else {
		row, err = q.GetRecipeByName(ctx, lookup.Name)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return db.Recipe{}, ErrRecipeNotFound
		}
		return db.Recipe{}, fmt.Errorf("failed to get recipe: %w", err)
	}
	return row, nil
}

// checkNameFree fails when a recipe other than selfID already uses name.
func checkNameFree(ctx context.Context, q *db.Queries, name, selfID string) error {
	existing, err := q.GetRecipeByName(ctx, name)
	if err == nil {
		if existing.ID != selfID {
			return ErrDuplicateName
		}
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check recipe name: %w", err)
	}
	return nil
}

func insertIngredients(ctx context.Context, q *db.Queries, recipeID string, ingredients []shared.Ingredient) error {
	for i, ing := range ingredients {
		err := q.InsertIngredient(ctx, db.InsertIngredientParams{
			ID:       uuid.NewString(),
			RecipeID: recipeID,
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Position: int64(i),
		})
		if err != nil {
			return fmt.Errorf("failed to insert ingredient %q: %w", ing.Name, err)
		}
	}
	return nil
}

func insertSteps(ctx context.Context, q *db.Queries, recipeID string, existing []int, inputs []StepInput) error {
	orders, err := planStepOrders(existing, inputs)
	if err != nil {
		return err
	}
	for i, in := range inputs {
		step := Step{ID: uuid.NewString(), Step: in.Step, Order: orders[i]}
		if err := insertStep(ctx, q, recipeID, step); err != nil {
			return err
		}
	}
	return nil
}

func insertStep(ctx context.Context, q *db.Queries, recipeID string, step Step) error {
	err := q.InsertStep(ctx, db.InsertStepParams{
		ID:        step.ID,
		RecipeID:  recipeID,
		Step:      step.Step,
		StepOrder: int64(step.Order),
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %d", ErrDuplicateStepOrder, step.Order)
		}
		return fmt.Errorf("failed to insert step: %w", err)
	}
	return nil
}
