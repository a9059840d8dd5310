package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sghaida/beanbox/di"
	"go.uber.org/zap/zapcore"
)

// Config holds the runtime settings of the beanbox CLI.
type Config struct {
	// Env is "local", "production" or "testing". Production selects JSON logs.
	Env string

	// Manifest is the path of the component manifest.
	Manifest string

	// SlotPolicy overrides the manifest's policy when set.
	SlotPolicy di.SlotPolicy

	// LogLevel is a zap level name.
	LogLevel string
}

// Load reads .env files (missing files are fine) and then the environment.
// With no arguments it tries ".env".
func Load(envFiles ...string) (Config, error) {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		// Non-fatal: .env is optional outside local development
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	cfg := Config{
		Env:      getenv("BEANBOX_ENV", "local"),
		Manifest: getenv("BEANBOX_MANIFEST", "beanbox.yaml"),
		LogLevel: strings.ToLower(getenv("BEANBOX_LOG_LEVEL", "info")),
	}

	if raw := os.Getenv("BEANBOX_SLOT_POLICY"); raw != "" {
		p, err := di.ParseSlotPolicy(raw)
		if err != nil {
			return Config{}, fmt.Errorf("config: BEANBOX_SLOT_POLICY: %w", err)
		}
		cfg.SlotPolicy = p
	}

	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("config: BEANBOX_LOG_LEVEL: %w", err)
	}
	return cfg, nil
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
