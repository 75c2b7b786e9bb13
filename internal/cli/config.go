package cli

import (
	"os"
	"path/filepath"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	StateFile string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("IMPOSTERPARTY_SERVER", "http://localhost:8080"),
		StateFile: getEnvOrDefault("IMPOSTERPARTY_STATE_FILE", defaultStateFile()),
		Output:    "text",
		Verbose:   false,
	}
}

func defaultStateFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".imposterparty/state.json"
	}
	return filepath.Join(home, ".imposterparty", "state.json")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
