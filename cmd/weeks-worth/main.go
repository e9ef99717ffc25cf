package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"weeks-worth/internal/account"
	"weeks-worth/internal/app"
	"weeks-worth/internal/config"
	"weeks-worth/internal/database"
	"weeks-worth/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

type env struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:          "weeks-worth",
		Short:        "Administrative commands for A Week's Worth",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewFromEnv()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			logger, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
			if err != nil {
				return err
			}
			e.cfg, e.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.logger != nil {
				e.logger.Sync()
			}
		},
	}

	root.AddCommand(
		newMigrateCmd(e),
		newImportCmd(e),
		newCreateSuperuserCmd(e),
	)
	return root
}

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(filepath.Dir(e.cfg.DatabasePath), 0755); err != nil {
				return fmt.Errorf("failed to create database directory: %w", err)
			}
			return database.RunMigrations(e.cfg.DatabasePath, e.logger)
		},
	}
}

func newImportCmd(e *env) *cobra.Command {
	var (
		file  string
		delay time.Duration
	)
	cmd := &cobra.Command{
		Use:   "import-recipe [url...]",
		Short: "Import recipes from web pages",
		Long:  "Import recipes from the given URLs, or one URL per line from --file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			urls := args
			if file != "" {
				fromFile, err := readLines(file)
				if err != nil {
					return err
				}
				urls = append(urls, fromFile...)
			}
			if len(urls) == 0 {
				return fmt.Errorf("no URLs to import")
			}

			application, err := app.New(cmd.Context(), e.cfg, e.logger)
			if err != nil {
				return err
			}
			defer application.Close()

			importer := application.Importer()
			if importer == nil {
				return fmt.Errorf("recipe import requires GEMINI_API_KEY")
			}

			results, err := app.ImportRecipes(cmd.Context(), importer, urls, delay, e.logger)
			failed := 0
			for _, r := range results {
				switch {
				case r.Err != nil:
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL  %s: %v\n", r.URL, r.Err)
				case r.Skipped:
					fmt.Fprintf(cmd.OutOrStdout(), "SKIP  %s\n", r.URL)
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "OK    %s -> %s\n", r.URL, r.Recipe.Name)
				}
			}
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d imports failed", failed, len(urls))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "file with one URL per line")
	// Stay under Gemini Free Tier Rate Limits (15 RPM).
	cmd.Flags().DurationVar(&delay, "delay", 5*time.Second, "pause between imports")
	return cmd
}

func newCreateSuperuserCmd(e *env) *cobra.Command {
	var in account.RegisterInput
	cmd := &cobra.Command{
		Use:   "create-superuser",
		Short: "Create an account that can see every individual",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := app.New(cmd.Context(), e.cfg, e.logger)
			if err != nil {
				return err
			}
			defer application.Close()

			ind, err := application.Accounts().CreateSuperuser(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Superuser %s created (individual %s)\n", ind.Username, ind.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Username, "username", "", "username")
	cmd.Flags().StringVar(&in.Email, "email", "", "email address")
	cmd.Flags().StringVar(&in.Password, "password", "", "password")
	for _, name := range []string{"username", "email", "password"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Fatalf("Failed to mark flag %s required: %v", name, err)
		}
	}
	return cmd
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}
