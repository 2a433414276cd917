// Package server owns the boot sequence and HTTP lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Bamimore2000/borokini/app/routes"
	"github.com/Bamimore2000/borokini/config"
	"github.com/Bamimore2000/borokini/pkg/cache"
	"github.com/Bamimore2000/borokini/pkg/database"
	"github.com/Bamimore2000/borokini/pkg/logger"
	"github.com/Bamimore2000/borokini/pkg/router"
	"github.com/Bamimore2000/borokini/pkg/storage"
)

// Start boots config, database, cache and storage, then serves HTTP until
// SIGINT or SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		return err
	}
	if err := cache.Connect(); err != nil {
		// The cache is an accelerator, not a dependency. Reads fall
		// through to the database when Redis is away.
		logger.Warn("redis unavailable, running without cache", "error", err)
	}
	storage.Connect()

	r := router.New()
	routes.RegisterAPI(r)

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:              addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("borokini listening", "addr", addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
