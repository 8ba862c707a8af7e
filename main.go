package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"messagemural/internal/api"
	"messagemural/internal/config"
	"messagemural/internal/repository"
	"messagemural/internal/service"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/mama165/sdk-go/logs"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

//	@title			Message Mural API
//	@version		1.0
//	@description	List and post messages on the mural.
//	@BasePath		/api
func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Message mural terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires the store, the service and the router once, then either serves
// them locally or hands the router to the Lambda runtime.
func run() (int, error) {
	cfg, err := config.Load()
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := repository.NewMessageStore(ctx, cfg, log)
	if err != nil {
		return exitRuntime, fmt.Errorf("store initialisation failed: %w", err)
	}
	defer func() {
		log.Info("Closing message store...")
		_ = closeStore()
	}()

	svc := service.NewMessageService(store, service.NewMessageFactory())
	router := api.NewRouter(svc, log)

	if !cfg.UseLocalStore {
		log.Info("Starting Lambda handler", "table", cfg.CollectionName, "driver", cfg.StoreDriver)
		lambda.StartWithOptions(router.Handle, lambda.WithContext(ctx))
		return exitOK, nil
	}

	server := api.NewLocalServer(router.Handle, log, cfg.SwaggerEnabled)
	log.Info("Using local store", "driver", cfg.StoreDriver, "table", cfg.CollectionName)
	if err := server.Run(ctx, cfg.Addr()); err != nil {
		return exitRuntime, err
	}
	log.Info("Program stopped cleanly")
	return exitOK, nil
}
