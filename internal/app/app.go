package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"scrapquote/internal/client"
	"scrapquote/internal/config"
	"scrapquote/internal/env"
	"scrapquote/internal/handler"
	"scrapquote/internal/ivr"
	"scrapquote/internal/service"
	"scrapquote/internal/storage"
	"scrapquote/internal/wrapper"
)

type App struct {
	flags *pflag.FlagSet
}

const (
	successCode = 0
	failureCode = 1
)

func New(flags *pflag.FlagSet) *App {
	return &App{flags: flags}
}

func (a *App) Run() (exitCode int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env.LoadEnv()
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	cfg, err := config.Load(a.flags)
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return failureCode
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	vpicClient, err := client.NewClient(cfg.VpicURL, 0)
	if err != nil {
		log.Error().Err(err).Msg("couldn't initialize a vpic client")
		return failureCode
	}
	specs := wrapper.New(vpicClient, cfg.VpicTimeout)
	quotes := service.New(specs)

	store, release, err := newDocumentStore(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Str("backend", cfg.StoreBackend).Msg("couldn't initialize a document store")
		return failureCode
	}
	defer release()

	h := handler.New(quotes, storage.New(store))
	router := NewRouter(h, ivr.New(cfg.IVR))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.StoreBackend).Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info().Msg("shutting down the server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server crashed")
		return failureCode
	}

	return successCode
}
