package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"btd_party/internal/app"
	"btd_party/internal/handler"
	"btd_party/internal/service"
	"btd_party/internal/storage"

	"github.com/rs/zerolog/log"
)

func main() {
	app.SetupEnvironment()

	// Parse command line flags
	store := flag.String("store", "", "Roster backend: file, redis or sheets (overrides ROSTER_STORE)")
	file := flag.String("file", "", "Roster file for the file backend (overrides ROSTER_FILE)")
	addr := flag.String("addr", "", "Listen address for serve (overrides HTTP_ADDR)")
	flag.Parse()

	// Load configuration
	config, err := app.LoadConfigWith(app.Overrides{
		Store:      *store,
		RosterFile: *file,
		HTTPAddr:   *addr,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx := context.Background()

	rosterStore, closeStore, err := storage.Open(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Str("store", config.Store).Msg("Failed to open roster store")
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn().Err(err).Msg("Failed to close roster store")
		}
	}()

	roster, err := service.NewRosterService(ctx, rosterStore)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load roster")
	}

	if flag.Arg(0) == "serve" {
		serve(config.HTTPAddr, roster)
		return
	}

	if err := runCommand(ctx, roster, flag.Args(), os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Command failed")
	}
}

// serve runs the HTTP API until SIGINT or SIGTERM
func serve(addr string, roster *service.RosterService) {
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler.NewRouter(handler.NewRosterHandler(roster)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("Starting roster API")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down roster API")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
}
