package main

import (
	"context"
	"log/slog"
	"os"

	"cotiza/config"
	"cotiza/internal/delivery"
	"cotiza/internal/delivery/http"
	"cotiza/internal/delivery/http/router/handler"
	"cotiza/internal/infra/async"
	logs "cotiza/internal/infra/log"
	"cotiza/internal/infra/mail"
	"cotiza/internal/infra/persistence/postgres"
	"cotiza/internal/infra/pubsub"
	"cotiza/internal/infra/realtime"
	"cotiza/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProposalRepository,
			postgres.NewSolicitudRepository,
			postgres.NewCityRepository,
			postgres.NewNotificationRepository,
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			pubsub.NewEventPublisher,
			realtime.NewRealtimePublisher,
			mail.NewMailSender,
			async.NewMailPool,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationDispatcher,
			impl.NewNotificationService,
			impl.NewCityService,
			impl.NewSolicitudService,
			impl.NewProposalService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProposalHandler,
			handler.NewSolicitudHandler,
			handler.NewNotificationHandler,
			handler.NewCityHandler,
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
