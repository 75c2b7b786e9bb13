package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/sashabaranov/go-openai"

	"github.com/imposterparty/imposterparty/internal/dependencies/clock"
	"github.com/imposterparty/imposterparty/internal/dependencies/random"
	"github.com/imposterparty/imposterparty/internal/services/roster"
	"github.com/imposterparty/imposterparty/internal/services/session"
	"github.com/imposterparty/imposterparty/internal/services/wordsource"
	"github.com/imposterparty/imposterparty/internal/sse"
	"github.com/imposterparty/imposterparty/internal/storage"
	"github.com/imposterparty/imposterparty/internal/storage/memory"
	redisstorage "github.com/imposterparty/imposterparty/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// WordClient is nil when no generation provider is configured;
	// the word endpoint then only accepts the manual source
	WordClient wordsource.Completer

	// Services
	RosterController  *roster.Controller
	SessionController *session.Controller
	HubManager        *sse.HubManager
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// OpenAIAPIKey enables AI word generation when set
	OpenAIAPIKey string
	// OpenAIBaseURL overrides the provider endpoint (optional, for
	// OpenAI-compatible providers)
	OpenAIBaseURL string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	var wordClient wordsource.Completer
	if cfg.OpenAIAPIKey != "" {
		clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
		if cfg.OpenAIBaseURL != "" {
			clientCfg.BaseURL = cfg.OpenAIBaseURL
		}
		wordClient = openai.NewClientWithConfig(clientCfg)
	}

	return newWithDependencies(store, clk, rnd, wordClient, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	wordClient wordsource.Completer,
	logger *slog.Logger,
) *App {
	rosterController := roster.NewController(store, clk, rnd)
	sessionController := session.NewController(store, clk, rnd, logger)
	hubManager := sse.NewHubManager(logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		WordClient:        wordClient,
		RosterController:  rosterController,
		SessionController: sessionController,
		HubManager:        hubManager,
	}
}
