package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/vanda-app/vanda-client/internal/client/cli"
	"github.com/vanda-app/vanda-client/internal/client/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("error initializing application: %s", err.Error())
	}

	app.Run(ctx)
}
