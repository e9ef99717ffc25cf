package app

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"weeks-worth/internal/recipe"
)

// Importer imports a single recipe from a web page.
type Importer interface {
	ImportURL(ctx context.Context, url string) (*recipe.Recipe, error)
}

// ImportResult is the outcome for one URL of a batch import.
type ImportResult struct {
	URL     string
	Recipe  *recipe.Recipe
	Skipped bool
	Err     error
}

// ImportRecipes imports urls one at a time, waiting delay between
// requests to stay under the model's rate limit. URLs that were already
// imported are skipped; any other failure is recorded and the batch
// carries on. Only context cancellation stops it early.
func ImportRecipes(ctx context.Context, importer Importer, urls []string, delay time.Duration, logger *zap.Logger) ([]ImportResult, error) {
	results := make([]ImportResult, 0, len(urls))

	for i, url := range urls {
		if i > 0 && delay > 0 {
			select {
			case <-ctx.Done():
				return results, ctx.Err()
			case <-time.After(delay):
			}
		}

		rec, err := importer.ImportURL(ctx, url)
		switch {
		case err == nil:
			logger.Info("imported recipe", zap.String("url", url), zap.String("name", rec.Name))
			results = append(results, ImportResult{URL: url, Recipe: rec})
		case errors.Is(err, recipe.ErrDuplicateURL):
			logger.Info("recipe already imported, skipping", zap.String("url", url))
			results = append(results, ImportResult{URL: url, Skipped: true})
		case ctx.Err() != nil:
			return results, ctx.Err()
		default:
			logger.Warn("failed to import recipe", zap.String("url", url), zap.Error(err))
			results = append(results, ImportResult{URL: url, Err: err})
		}
	}
	return results, nil
}
