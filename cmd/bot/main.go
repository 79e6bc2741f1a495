package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/joho/godotenv"
	shopmateroot "github.com/shopmate/shopmate"
	"github.com/shopmate/shopmate/internal/api"
	"github.com/shopmate/shopmate/internal/config"
	"github.com/shopmate/shopmate/internal/handler"
	"github.com/shopmate/shopmate/internal/middleware"
	"github.com/shopmate/shopmate/internal/render"
	"github.com/shopmate/shopmate/internal/repository"
	"github.com/shopmate/shopmate/internal/telegram"
)

func main() {
	// A local .env is optional.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Run migrations
	migrationsFS, err := fs.Sub(shopmateroot.MigrationsFS, "migrations")
	if err != nil {
		slog.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	sessions := repository.NewPostgresSessions(pool)
	apiClient := api.NewClient(cfg.APIBaseURL)

	// The ops logger gets its bot instance after creation; until then it
	// only needs to exist for the middleware chain.
	ops := &telegram.OpsLogger{}

	// Create bot
	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(ops),
			middleware.Logging(),
			middleware.SessionLoader(sessions),
		),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}
	*ops = *telegram.NewOpsLogger(b, cfg.OpsChatID)

	// Get bot info
	me, err := b.GetMe(ctx)
	if err != nil {
		slog.Error("failed to get bot info", "error", err)
		os.Exit(1)
	}
	slog.Info("bot info retrieved", "id", me.ID, "username", me.Username)

	// Initialize handler
	h := handler.New(handler.Deps{
		Bot:       b,
		Cfg:       cfg,
		API:       apiClient,
		Sessions:  sessions,
		View:      telegram.NewView(b),
		Converter: render.NewTelegramConverter(),
		Ops:       ops,
	})

	// Register all command and callback handlers
	h.Register()

	// Default text handler: plain messages go to the chat exchange
	b.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if update.Message == nil {
			return
		}
		// Skip commands
		if strings.HasPrefix(update.Message.Text, "/") {
			return
		}
		h.HandleText(ctx, b, update)
	})

	// Start bot
	slog.Info("starting bot", "username", me.Username, "id", me.ID)
	b.Start(ctx)

	slog.Info("bot stopped gracefully")
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
