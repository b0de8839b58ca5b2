// Package mongo contains the concrete implementation of the persistence layer
// using the official MongoDB driver.
package mongo

import (
	"context"
	"log/slog"

	"rolodex/config"
	"rolodex/internal/domain/lifecycle"
	"rolodex/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the shared MongoDB client. The client is acquired once at startup
// and released only at shutdown; repositories must not connect per call.
func New(params Params) (*mongo.Client, error) {
	if params.Config.Mongo == nil {
		return nil, errors.New("mongo configuration is missing")
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := ensureContactNameIndex(ctx, client, params.Config); err != nil {
				return err
			}

			params.Logger.Info("Connected to MongoDB",
				slog.String("database", params.Config.Mongo.Database),
				slog.String("collection", params.Config.Mongo.Collection),
			)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(client.Disconnect(ctx), "failed to disconnect MongoDB client")
		},
	})

	return client, nil
}

// ensureContactNameIndex creates the unique index backing atomic insert-if-absent.
// Duplicate detection relies on this constraint rather than a check-then-insert read.
func ensureContactNameIndex(ctx context.Context, client *mongo.Client, cfg *config.Config) error {
	coll := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "contact_name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.Wrap(err, "failed to ensure unique index on contact_name")
	}

	return nil
}
