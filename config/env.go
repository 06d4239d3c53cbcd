// Package config reads process settings from the environment, after merging an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	ErrMissingEnv = errors.New("missing-env")
	ErrInvalidEnv = errors.New("invalid-env")
)

const (
	StoreFS       = "fs"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

type Envs struct {
	SERVER_URL           string
	NICKNAME             string
	DECKS_DIR            string
	DECK_STORE           string
	POSTGRES_URL         string
	SQLITE_PATH          string
	ALLOWED_ORIGINS      []string
	JWT_KEY              []byte
	EDITOR_USERNAME      string
	EDITOR_PASSWORD_HASH string
	PUBLIC_URL           string
	PORT                 int
	GIN_MODE             string
	LOG_LEVEL            string
}

var defaults = map[string]string{
	"SERVER_URL":  "ws://localhost:8000/ws",
	"DECKS_DIR":   "decks",
	"DECK_STORE":  StoreFS,
	"SQLITE_PATH": "decks.db",
	"PUBLIC_URL":  "http://localhost:8080",
	"PORT":        "8080",
	"LOG_LEVEL":   "info",
}

// Load merges ./.env (when present, without overriding real env vars) and
// reads the process environment. Every key in required must end up non-empty.
func Load(required ...string) (Envs, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Envs{}, fmt.Errorf("%w: .env: %w", ErrInvalidEnv, err)
	}
	return LoadFrom(os.LookupEnv, required...)
}

// LoadFrom is Load over an arbitrary lookup, without touching .env.
func LoadFrom(lookup func(string) (string, bool), required ...string) (Envs, error) {
	get := func(key string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return defaults[key]
	}

	var missing []string
	for _, key := range required {
		if get(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return Envs{}, fmt.Errorf("%w: %s", ErrMissingEnv, strings.Join(missing, ", "))
	}

	port, err := strconv.Atoi(get("PORT"))
	if err != nil || port <= 0 || port > 65535 {
		return Envs{}, fmt.Errorf("%w: PORT=%q", ErrInvalidEnv, get("PORT"))
	}

	store := get("DECK_STORE")
	if !slices.Contains([]string{StoreFS, StorePostgres, StoreSQLite}, store) {
		return Envs{}, fmt.Errorf("%w: DECK_STORE=%q", ErrInvalidEnv, store)
	}
	if store == StorePostgres && get("POSTGRES_URL") == "" {
		return Envs{}, fmt.Errorf("%w: POSTGRES_URL", ErrMissingEnv)
	}

	return Envs{
		SERVER_URL:           get("SERVER_URL"),
		NICKNAME:             get("NICKNAME"),
		DECKS_DIR:            get("DECKS_DIR"),
		DECK_STORE:           store,
		POSTGRES_URL:         get("POSTGRES_URL"),
		SQLITE_PATH:          get("SQLITE_PATH"),
		ALLOWED_ORIGINS:      splitList(get("ALLOWED_ORIGINS")),
		JWT_KEY:              []byte(get("JWT_KEY")),
		EDITOR_USERNAME:      get("EDITOR_USERNAME"),
		EDITOR_PASSWORD_HASH: get("EDITOR_PASSWORD_HASH"),
		PUBLIC_URL:           strings.TrimRight(get("PUBLIC_URL"), "/"),
		PORT:                 port,
		GIN_MODE:             get("GIN_MODE"),
		LOG_LEVEL:            get("LOG_LEVEL"),
	}, nil
}

func (e Envs) Release() bool {
	return e.GIN_MODE == "release"
}

func splitList(s string) []string {
	out := []string{}
	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
