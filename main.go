package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"launchdash/internal"
	"launchdash/internal/config"
	"launchdash/internal/dashboard"
	"launchdash/internal/dataset"
	"launchdash/ui"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	internal.DefaultLogger.SetLevel(appConfig.Logging.Level)

	table, err := dataset.Load(appConfig.Data.File)
	if err != nil {
		log.Fatalf("Failed to load launch records: %v", err)
	}
	bounds, err := dataset.Bounds(table)
	if err != nil {
		log.Fatalf("Failed to load launch records: %v", err)
	}

	dash := dashboard.New(table, bounds)
	server, err := ui.NewServer(dash, ui.Config{
		GinMode:           appConfig.Server.GinMode,
		SummaryConfidence: appConfig.Data.SummaryConfidence,
	})
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	servers := []*http.Server{{
		Addr:              ":" + appConfig.Server.Port,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}}
	if appConfig.Profiling.Enabled {
		servers = append(servers, &http.Server{
			Addr:              ":" + appConfig.Profiling.Port,
			Handler:           ui.NewProfilingHandler(),
			ReadHeaderTimeout: 10 * time.Second,
		})
		log.Printf("Profiling server on :%s (go tool pprof http://localhost:%s/debug/pprof/profile?seconds=30)", appConfig.Profiling.Port, appConfig.Profiling.Port)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
		defer cancel()
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Printf("Shutdown of %s failed: %v", srv.Addr, err)
			}
		}
		return nil
	})

	log.Printf("Starting launch records dashboard on http://localhost:%s (%d records from %s)", appConfig.Server.Port, table.Len(), table.Source())
	if err := g.Wait(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
	log.Println("Server stopped")
}
