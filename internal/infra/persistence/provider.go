// Package persistence selects the user record store configured for the process.
package persistence

import (
	"log/slog"

	"account/config"
	"account/internal/domain/repository"
	"account/internal/errors"
	"account/internal/infra/persistence/mongodb"
	"account/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// RepositoryParams holds dependencies for the user store, injected by Fx
type RepositoryParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewUserRepository opens the store named by store.driver and returns its UserRepository.
// Connections are verified in the lifecycle start hooks registered by each driver.
func NewUserRepository(params RepositoryParams) (repository.UserRepository, error) {
	logger := params.Logger

	switch params.Config.Store.Driver {
	case config.StoreDriverMongo:
		logger.Info("Using MongoDB user store",
			slog.String("database", params.Config.Store.Mongo.Database),
			slog.String("collection", params.Config.Store.Mongo.Collection),
		)

		coll, err := mongodb.New(mongodb.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}

		return mongodb.NewUserRepository(coll), nil

	case config.StoreDriverPostgres:
		logger.Info("Using PostgreSQL user store")

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewUserRepository(db), nil

	default:
		return nil, errors.Errorf("unsupported store driver: %s", params.Config.Store.Driver)
	}
}
