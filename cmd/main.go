package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/marcelomiracles/storefront-service/internal/app"
	"github.com/marcelomiracles/storefront-service/internal/config"
	"github.com/marcelomiracles/storefront-service/internal/events"
	"github.com/marcelomiracles/storefront-service/internal/handler"
	"github.com/marcelomiracles/storefront-service/internal/postgres"
	"github.com/marcelomiracles/storefront-service/internal/repo"
	"github.com/marcelomiracles/storefront-service/internal/service"
	"github.com/marcelomiracles/storefront-service/internal/telegram"
	"github.com/marcelomiracles/storefront-service/pkg/cache"
	"github.com/marcelomiracles/storefront-service/pkg/trm"

	"github.com/joho/godotenv"
	_ "github.com/marcelomiracles/storefront-service/docs"
)

// @title           Storefront API
// @version         1.0
// @description     HTTP API магазина Marcelo Miracles
// @BasePath        /api
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	storeRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	cache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	verifier := telegram.NewVerifier(conf.Telegram.BotToken)
	bot := telegram.NewClient(conf.Telegram.BotToken,
		telegram.WithBaseURL(conf.Telegram.APIBaseURL),
		telegram.WithTimeout(conf.Telegram.SendTimeout),
	)
	publisher := events.NewOrderPublisher(conf.Kafka)

	orderService := service.NewOrderService(logger, txManager, storeRepo, verifier, bot, publisher, cache)
	adminService := service.NewAdminService(logger, txManager, storeRepo, verifier, cache, conf.Admin)

	httpHandler := handler.NewHTTPHandler(logger, orderService, adminService)

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler)
	app.SetClosers(publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cache.StartJanitor(ctx)

	app.Start()
	<-ctx.Done()
	app.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
