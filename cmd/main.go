package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DWARA-KESH/EpiCircleDemo/internal/app"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/auth"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/config"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/events"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/handler"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/pickupapi"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/repo"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/service"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/storage"
	"github.com/DWARA-KESH/EpiCircleDemo/pkg/cache"
	"github.com/DWARA-KESH/EpiCircleDemo/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Pickup Agent API
// @version         1.0
// @description     Local API of the pickup agent for customer and partner apps
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := storage.New(ctx, conf.Drafts)
	panicIfErr("failed to open draft store", err)
	defer db.Close()
	logger.Info("draft store opened", slog.String("driver", conf.Drafts.Driver))

	txManager := trm.NewManager(db)
	draftRepo := repo.NewDraftRepo(db, txManager)
	snapshots := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	pickupAPI := pickupapi.NewClient(logger, conf.PickupAPI)

	var publisher interface {
		service.EventPublisher
		Close() error
	} = events.NopPublisher{}
	if conf.Kafka.Enabled {
		publisher = events.NewPublisher(logger, conf.Kafka)
	}

	sync := service.NewSync(logger, pickupAPI, snapshots, conf.Polling)
	customerService := service.NewCustomerService(logger, pickupAPI, snapshots, publisher, conf.StrictTransitions)
	partnerService := service.NewPartnerService(logger, pickupAPI, draftRepo, txManager, snapshots, publisher, sync, conf.StrictTransitions)

	handler.RegisterMetrics()

	app := app.New(logger, conf, auth.NewVerifier(conf.Auth.JWTSecret))
	app.SetHTTPHandlers(
		handler.NewCustomerHandler(logger, customerService, sync),
		handler.NewPartnerHandler(logger, partnerService, sync),
	)
	if conf.Kafka.Enabled {
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, sync))
	}
	app.SetStarters(snapshots, sync)
	app.SetClosers(publisher)

	logger.Info("pickup agent configured",
		slog.String("pickup_api", conf.PickupAPI.BaseURL),
		slog.Bool("strict_transitions", conf.StrictTransitions),
		slog.Bool("kafka", conf.Kafka.Enabled),
	)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	sync.Stop()
	panicIfErr("failed to stop app", app.Stop())
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
