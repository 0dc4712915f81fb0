// Package mongodb contains the document-store implementation of the persistence layer.
package mongodb

import (
	"context"
	"log/slog"

	"account/config"
	"account/internal/domain/lifecycle"
	"account/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client and returns the configured users collection.
// The connection is verified and the email index ensured when the application starts.
func New(params Params) (*mongo.Collection, error) {
	storeCfg := params.Config.Store.Mongo

	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI(storeCfg.URI).
		SetAppName(params.Config.Env.ServiceName))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	collection := client.Database(storeCfg.Database).Collection(storeCfg.Collection)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := EnsureIndexes(ctx, collection); err != nil {
				return err
			}

			params.Logger.Info("Connection established with MongoDB",
				slog.String("database", storeCfg.Database),
				slog.String("collection", storeCfg.Collection),
			)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return collection, nil
}
