package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"nearby/config"
	logs "nearby/internal/infra/log"
	"nearby/internal/infra/persistence/mongodb"
	"nearby/internal/usecase"
	"nearby/internal/usecase/impl"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		fx.Invoke(
			runLocator,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		mongodb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongodb.NewEventRepository,
			mongodb.NewPlaceRepository,
			mongodb.NewGeoSearcher,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLocatorService,
		),
	)
}

type runParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	DB        *mongo.Database
	Locator   usecase.Locator
}

func runLocator(params runParams) {
	ctx, cancel := context.WithCancel(context.Background())

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if err := mongodb.EnsureIndexes(startCtx, params.DB, params.Cfg); err != nil {
				return err
			}
			go loop(ctx, params)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
}

// loop runs Locate until the context is canceled, backing off when a run
// finds nothing to do.
func loop(ctx context.Context, params runParams) {
	for {
		logger := params.Logger.With(slog.String("run_id", uuid.NewString()))
		logger.Info("Setting events' locations...")

		foundWork := params.Locator.Locate(ctx, params.Cfg.Locator.ProcessAll)
		if foundWork {
			select {
			case <-ctx.Done():
				return
			default:
			}

			continue
		}

		delay := idleDelay(params.Cfg.Locator.IdleWait)
		logger.Info("Did not find any work. Sleeping...",
			slog.Duration("delay", delay))
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

// idleDelay jitters the idle wait by up to a second either way so
// multiple workers drift apart.
func idleDelay(wait time.Duration) time.Duration {
	jitter := time.Duration(rand.IntN(3)-1) * time.Second

	return wait + jitter
}
