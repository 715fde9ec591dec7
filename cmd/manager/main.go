// Command manager provisions store manager accounts out of band. Manager
// records are never created through the web surface; this tool is the only
// write path into the store_managers collection.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"chocoshop/config"
	"chocoshop/internal/domain/entity"
	"chocoshop/internal/infra/auth"
	fsinfra "chocoshop/internal/infra/persistence/firestore"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

func main() {
	username := flag.String("username", "", "Manager username (required)")
	password := flag.String("password", "", "Manager password (required)")
	flag.Parse()

	if *username == "" || *password == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*username, *password); err != nil {
		fmt.Fprintf(os.Stderr, "manager: %+v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Manager %q provisioned.\n", *username)
}

func run(username, password string) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	ctx := context.Background()

	var appCfg *firebase.Config
	if cfg.Firestore.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.Firestore.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, option.WithCredentialsFile(cfg.Firestore.CredentialsPath))
	if err != nil {
		return errors.Wrap(err, "failed to initialize firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to open firestore client")
	}
	defer client.Close()

	hasher := auth.NewBcryptHasher(cfg)
	hash, err := hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	managerRepo := fsinfra.NewManagerRepository(client)

	return managerRepo.Create(ctx, &entity.Manager{
		Username:     username,
		PasswordHash: hash,
	})
}
