package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir   string
	ExportDir string

	APIBaseURL   string
	APILocale    string
	APITimeoutMs int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DataDir:   getEnv("WUWA_DATA_DIR", filepath.Join(cwd, "data")),
		ExportDir: getEnv("WUWA_EXPORT_DIR", filepath.Join(cwd, "export")),

		APIBaseURL:   getEnv("WUWA_API_BASE_URL", "https://api-v2.encore.moe"),
		APILocale:    getEnv("WUWA_API_LOCALE", "zh-Hans"),
		APITimeoutMs: getEnvInt("WUWA_API_TIMEOUT_MS", 10000),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
