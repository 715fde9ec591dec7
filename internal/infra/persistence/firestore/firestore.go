// Package firestore contains the concrete implementation of the persistence
// layer using Cloud Firestore document collections.
package firestore

import (
	"context"
	"log/slog"

	"chocoshop/config"
	"chocoshop/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

const (
	// CollectionProducts holds the catalog documents, keyed by product slug.
	CollectionProducts = "products"

	// CollectionManagers holds the authorized store manager records.
	CollectionManagers = "store_managers"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New initializes the Firebase app from the configured service account and
// opens the Firestore client used by every repository.
func New(params Params) (*firestore.Client, error) {
	ctx := context.Background()

	opt := option.WithCredentialsFile(params.Config.Firestore.CredentialsPath)

	var appCfg *firebase.Config
	if params.Config.Firestore.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: params.Config.Firestore.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.Wrap(client.Close(), "failed to close Firestore client")
		},
	})

	return client, nil
}
