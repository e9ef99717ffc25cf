package shopping

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	shoppingdb "weeks-worth/internal/shopping/db"
	"weeks-worth/internal/shared"
)

// Repository handles persistence of shopping lists.
type Repository struct {
	queries *shoppingdb.Queries
	db      *sql.DB
}

// NewRepository creates a new shopping list repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: shoppingdb.New(d),
		db:      d,
	}
}

// WithTx returns a new Repository that uses the provided transaction.
func (r *Repository) WithTx(tx *sql.Tx) *Repository {
	return &Repository{
		queries: r.queries.WithTx(tx),
		db:      r.db,
	}
}

// List returns the owner's shopping list in the order it was submitted.
func (r *Repository) List(ctx context.Context, owner shared.Owner) ([]Item, error) {
	rows, err := r.queries.ListItemsByOwner(ctx, shoppingdb.ListItemsByOwnerParams{
		OwnerKind: string(owner.Kind),
		OwnerID:   owner.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping items for %s: %w", owner, err)
	}

	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, Item{
			ID:       row.ID,
			Name:     row.Name,
			Quantity: row.Quantity,
			Unit:     row.Unit,
		})
	}
	return items, nil
}

// Replace swaps the owner's whole shopping list for items. Callers run it
// inside a transaction.
func (r *Repository) Replace(ctx context.Context, owner shared.Owner, items []Item) ([]Item, error) {
	if len(items) > MaxItems {
		return nil, fmt.Errorf("%w: a shopping list may only have %d items", shared.ErrValidation, MaxItems)
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	if err := r.DeleteAll(ctx, owner); err != nil {
		return nil, err
	}

	saved := make([]Item, 0, len(items))
	for i, item := range items {
		item.ID = uuid.NewString()
		err := r.queries.InsertItem(ctx, shoppingdb.InsertItemParams{
			ID:        item.ID,
			OwnerKind: string(owner.Kind),
			OwnerID:   owner.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
			Position:  int64(i),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to insert shopping item %q: %w", item.Name, err)
		}
		saved = append(saved, item)
	}
	return saved, nil
}

// DeleteAll empties the owner's shopping list.
func (r *Repository) DeleteAll(ctx context.Context, owner shared.Owner) error {
	err := r.queries.DeleteItemsByOwner(ctx, shoppingdb.DeleteItemsByOwnerParams{
		OwnerKind: string(owner.Kind),
		OwnerID:   owner.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete shopping items for %s: %w", owner, err)
	}
	return nil
}
