package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"classping/config"
	"classping/internal/delivery"
	"classping/internal/delivery/http"
	"classping/internal/delivery/http/router/handler"
	"classping/internal/domain/service"
	logs "classping/internal/infra/log"
	"classping/internal/infra/persistence/postgres"
	"classping/internal/infra/pubsub"
	"classping/internal/infra/push"
	"classping/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		newLocation,
	)
}

// newLocation resolves the reference timezone once so every component shares
// the same *time.Location instance.
func newLocation(cfg *config.Config) (*time.Location, error) {
	return cfg.Location()
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTokenRepository,
			postgres.NewAttendanceRepository,
			postgres.NewTimetableRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPushService,
			pubsub.NewEventPublisher,
		),
	)
}

// newPushService creates the FCM transport with dependency injection.
func newPushService(ctx context.Context, cfg *config.Config) (service.PushService, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	svc, err := push.NewFCMService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create FCM service")
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTokenService,
			impl.NewAttendanceService,
			impl.NewDispatchService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewTokenHandler,
			handler.NewDispatchHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
