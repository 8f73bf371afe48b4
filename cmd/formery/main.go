// Command formery manages Google Forms from declarative YAML specs.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/formery-dev/formery/internal/adapters/driven/auth"
	"github.com/formery-dev/formery/internal/adapters/driven/config/file"
	"github.com/formery-dev/formery/internal/adapters/driven/schema"
	"github.com/formery-dev/formery/internal/adapters/driven/storage/sqlite"
	"github.com/formery-dev/formery/internal/adapters/driving/cli"
	"github.com/formery-dev/formery/internal/connectors/google"
	"github.com/formery-dev/formery/internal/connectors/google/forms"
	"github.com/formery-dev/formery/internal/core/services"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("init config store: %w", err)
	}
	configDir := filepath.Dir(configStore.Path())

	tokenFile := auth.NewTokenFile(
		configDir,
		google.TokenURL,
		configStore.GetString("google.client_id"),
		configStore.GetString("google.client_secret"),
	)

	catalog, err := sqlite.NewCatalog("")
	if err != nil {
		return fmt.Errorf("init catalog: %w", err)
	}
	defer catalog.Close()

	ctx := context.Background()
	tokenSource := google.NewTokenSource(ctx, tokenFile)

	formsSvc, err := google.NewFormsService(ctx, tokenSource)
	if err != nil {
		return fmt.Errorf("init forms service: %w", err)
	}
	driveSvc, err := google.NewDriveService(ctx, tokenSource)
	if err != nil {
		return fmt.Errorf("init drive service: %w", err)
	}
	client := forms.NewClient(formsSvc, driveSvc)

	formService := services.NewFormService(client, schema.NewLoader(), catalog)

	cli.SetVersion(version)
	cli.SetServices(formService, configStore, tokenFile)
	return cli.Execute()
}
