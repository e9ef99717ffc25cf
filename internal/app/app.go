package app

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"go.uber.org/zap"

	"weeks-worth/internal/account"
	"weeks-worth/internal/api"
	"weeks-worth/internal/auth"
	"weeks-worth/internal/clipper"
	"weeks-worth/internal/config"
	"weeks-worth/internal/database"
	"weeks-worth/internal/group"
	"weeks-worth/internal/llm"
	"weeks-worth/internal/metrics"
	"weeks-worth/internal/recipe"
	"weeks-worth/internal/telegram"
)

// App holds the application's dependencies.
type App struct {
	cfg    *config.Config
	logger *zap.Logger

	db           *database.DB
	issuer       *auth.Issuer
	accounts     *account.Service
	recipeRepo   *recipe.Repository
	groups       *group.Service
	metricsStore *metrics.Store
	notifier     *telegram.Notifier

	// Nil when GEMINI_API_KEY is not set.
	textGen       llm.TextGenerator
	recipeClipper *clipper.Clipper
}

// New opens the database, applies migrations and wires every service.
// Recipe import and admin messages are only enabled when configured.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	db, err := database.NewDB(cfg.DatabasePath, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.JWTExpiration)
	recipeRepo := recipe.NewRepository(db)

	a := &App{
		cfg:          cfg,
		logger:       logger,
		db:           db,
		issuer:       issuer,
		accounts:     account.NewService(db, issuer, logger),
		recipeRepo:   recipeRepo,
		groups:       group.NewService(db, logger),
		metricsStore: metrics.NewStore(db.SQL),
	}

	if cfg.ImportEnabled() {
		geminiClient, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize gemini client: %w", err)
		}
		a.textGen = geminiClient
		a.recipeClipper = clipper.NewClipper(recipeRepo, geminiClient, logger)
	} else {
		logger.Info("recipe import disabled, GEMINI_API_KEY not set")
	}

	if cfg.MessagesEnabled() {
		notifier, err := telegram.NewNotifierFromToken(cfg.TelegramBotToken, cfg.AdminTelegramID, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.notifier = notifier
	} else {
		logger.Info("admin messages disabled, telegram is not configured")
		a.notifier = telegram.NewNotifier(nil, 0, logger)
	}

	return a, nil
}

// Handler returns the HTTP API.
func (a *App) Handler() http.Handler {
	deps := api.Deps{
		Accounts: a.accounts,
		Recipes:  a.recipeRepo,
		Groups:   a.groups,
		Messages: a.notifier,
		Metrics:  a.metricsStore,
		Issuer:   a.issuer,
		DataDir:  filepath.Dir(a.cfg.DatabasePath),
		Logger:   a.logger,
	}
	// Leave the interface nil rather than holding a nil *Clipper.
	if a.recipeClipper != nil {
		deps.Importer = a.recipeClipper
	}
	return api.New(deps).Handler()
}

// Accounts exposes the account service for administrative commands.
func (a *App) Accounts() *account.Service {
	return a.accounts
}

// Importer returns the recipe importer, or nil when import is disabled.
func (a *App) Importer() Importer {
	if a.recipeClipper == nil {
		return nil
	}
	return a.recipeClipper
}

// Close releases the database and the LLM client.
func (a *App) Close() error {
	if closer, ok := a.textGen.(llm.Closer); ok {
		if err := closer.Close(); err != nil {
			a.logger.Warn("failed to close llm client", zap.Error(err))
		}
	}
	return a.db.Close()
}
