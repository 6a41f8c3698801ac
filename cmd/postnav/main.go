// Command postnav resolves previous, next, first and last posts and
// renders their navigation links.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/custodia-labs/postnav/internal/adapters/driving/cli"
	"github.com/custodia-labs/postnav/internal/core/ports/driven"
	"github.com/custodia-labs/postnav/internal/core/ports/driving"
	"github.com/custodia-labs/postnav/internal/core/services"
	"github.com/custodia-labs/postnav/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	cli.SetWiring(&cli.Wiring{
		Config: openConfig,
		Settings: func(cfg driven.ConfigStore) driving.SettingsService {
			return services.NewSettingsService(cfg)
		},
		Open: openServices,
	})

	err := cli.Execute(ctx)
	if cerr := cli.Close(); cerr != nil {
		logger.Warn("closing services: %v", cerr)
	}
	stop()

	if err != nil {
		os.Exit(1)
	}
}
