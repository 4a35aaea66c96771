// Command createuser adds a User directly to the content store. There is no
// registration endpoint; this is the only way users are created.
//
//	createuser -u andrew -p 's3cret'
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/aTrapDeer/portfolio-backend/internal/account"
	"github.com/aTrapDeer/portfolio-backend/internal/config"
	"github.com/aTrapDeer/portfolio-backend/internal/storage"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("createuser failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("createuser", flag.ContinueOnError)
	username := fs.String("u", "", "Username")
	password := fs.String("p", "", "Password (prefer CREATEUSER_PASSWORD env)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *password == "" {
		*password = os.Getenv("CREATEUSER_PASSWORD")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	store, err := storage.Open(storage.Options{Driver: cfg.DatabaseType, DSN: cfg.DatabaseURL})
	if err != nil {
		return err
	}
	defer store.Close()

	user, err := account.Register(context.Background(), store, *username, *password)
	if errors.Is(err, storage.ErrUniqueViolation) {
		return fmt.Errorf("user %q already exists", *username)
	}
	if err != nil {
		return err
	}

	slog.Info("User created", "id", user.ID, "username", user.Username)
	return nil
}
