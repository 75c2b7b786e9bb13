package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type serverConfig struct {
	host          string
	port          int
	storageType   string
	redisURL      string
	openAIAPIKey  string
	openAIBaseURL string
	shareBaseURL  string
	verbose       bool
}

func (c *serverConfig) validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.storageType == "redis" && c.redisURL == "" {
		return fmt.Errorf("--redis-url is required when --storage is redis")
	}
	return nil
}

func newServerCmd(cfg *serverConfig) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("IMPOSTERPARTY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "imposterparty-server",
		Short:         "API server for the imposter party game",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.StringVarP(&cfg.host, "host", "b", "", "address to bind to (env: IMPOSTERPARTY_HOST)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: IMPOSTERPARTY_PORT)")
	fs.StringVar(&cfg.storageType, "storage", "memory", "storage backend: memory, redis (env: IMPOSTERPARTY_STORAGE)")
	fs.StringVar(&cfg.redisURL, "redis-url", "", "redis connection URL (env: IMPOSTERPARTY_REDIS_URL)")
	fs.StringVar(&cfg.openAIAPIKey, "openai-api-key", "", "API key enabling AI word generation (env: IMPOSTERPARTY_OPENAI_API_KEY)")
	fs.StringVar(&cfg.openAIBaseURL, "openai-base-url", "", "override provider endpoint (env: IMPOSTERPARTY_OPENAI_BASE_URL)")
	fs.StringVar(&cfg.shareBaseURL, "share-base-url", "http://localhost:8080", "base URL embedded in share links (env: IMPOSTERPARTY_SHARE_BASE_URL)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "debug-level logging (env: IMPOSTERPARTY_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})

	return cmd
}
