package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"classping/config"
	"classping/internal/delivery"
	logs "classping/internal/infra/log"
	"classping/internal/trigger"

	"go.uber.org/fx"
)

type startTriggerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectDelivery(),
		fx.Invoke(
			startTrigger,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newLocation,
	)
}

func newLocation(cfg *config.Config) (*time.Location, error) {
	return cfg.Location()
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				trigger.New,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startTrigger(ctx context.Context, params startTriggerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start scheduling trigger", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
