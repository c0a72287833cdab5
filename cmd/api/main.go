package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/zkoymen/Dime-Darling/internal/config"
	"github.com/zkoymen/Dime-Darling/internal/handlers"
	"github.com/zkoymen/Dime-Darling/internal/logger"
	"github.com/zkoymen/Dime-Darling/internal/storage"
	"github.com/zkoymen/Dime-Darling/internal/store"
	"github.com/zkoymen/Dime-Darling/internal/suggest"
	"github.com/zkoymen/Dime-Darling/internal/validator"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	adapter, err := storage.NewSQLiteAdapter(cfg.DataPath, cfg.StorageSlot)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := adapter.Close(); err != nil {
			log.Warnf("failed to close storage: %v", err)
		}
	}()

	// The store must finish its initial load before the router starts
	// serving, otherwise a mutation could overwrite persisted data with
	// empty defaults.
	st := store.New(adapter)
	st.Load()

	suggester := suggest.NewClient(&http.Client{Timeout: cfg.SuggestTimeout}, cfg.SuggestURL)

	validator.Register()
	router := handlers.NewRouter(st, suggester)

	log.Infow("starting server", "port", cfg.Port, "env", cfg.Env, "data_path", cfg.DataPath)
	return router.Run(":" + cfg.Port)
}
