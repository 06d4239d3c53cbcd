// Command deckserver publishes deck documents at /decks/<name>.json and runs
// the deck editor API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"magecards/config"
	"magecards/crypto"
	"magecards/deck"
	"magecards/deckserver"
	"magecards/logger"
	"magecards/migrations"
	"magecards/storage"
)

const shutdownGrace = 10 * time.Second

func main() {
	envs, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := logger.Setup(envs.LOG_LEVEL, envs.Release())
	if envs.Release() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openStore(ctx, envs, log)
	if err != nil {
		log.Fatal().Err(err).Str("store", envs.DECK_STORE).Msg("cannot open deck store")
	}
	defer closeRepo()

	editor := deckserver.Editor{Username: envs.EDITOR_USERNAME, PasswordHash: envs.EDITOR_PASSWORD_HASH}
	if editor.PasswordHash != "" && len(envs.JWT_KEY) == 0 {
		log.Fatal().Msg("EDITOR_PASSWORD_HASH is set but JWT_KEY is missing")
	}
	if editor.PasswordHash == "" {
		log.Warn().Msg("no EDITOR_PASSWORD_HASH, deck editing is disabled")
	}

	handler := deckserver.NewHandler(
		repo,
		editor,
		crypto.NewDefaultHasher(),
		crypto.NewJWTManager(string(envs.JWT_KEY), config.EditorCookie.MaxAge),
		deck.NewUUIDGenerator(),
		envs.PUBLIC_URL,
		logger.Component(log, "deckserver"),
	)
	r := deckserver.CreateServer(envs.ALLOWED_ORIGINS, logger.Component(log, "http"))
	handler.Register(r)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", envs.PORT),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info().Int("port", envs.PORT).Str("store", envs.DECK_STORE).Msg("deck server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("listen failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

// openStore picks the deck store named by DECK_STORE and returns a func that
// releases it.
func openStore(ctx context.Context, envs config.Envs, log zerolog.Logger) (deckserver.DeckRepo, func(), error) {
	switch envs.DECK_STORE {
	case config.StorePostgres:
		n, err := migrations.MigratePostgres(ctx, envs.POSTGRES_URL)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Int("applied", n).Msg("postgres migrations")
		repo, err := storage.NewPostgresRepo(ctx, envs.POSTGRES_URL)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil

	case config.StoreSQLite:
		repo, err := storage.NewSQLiteRepo(ctx, envs.SQLITE_PATH)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {
			if err := repo.Close(); err != nil {
				log.Error().Err(err).Msg("closing sqlite")
			}
		}, nil

	default:
		repo, err := storage.NewFSRepo(envs.DECKS_DIR)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
}
