package config

import (
	"log"
	"os"
	"strconv"

	yaml "gopkg.in/yaml.v2"
)

type Config struct {
	Port          string `yaml:"port"`
	DatabaseDSN   string `yaml:"database_dsn"`
	Env           string `yaml:"env"`
	SessionSecret string `yaml:"session_secret"`
	AdminEmail    string `yaml:"admin_email"`
	AdminPassword string `yaml:"admin_password"`
	UploadDir     string `yaml:"upload_dir"`
}

// Load loads configuration from environment with sensible defaults.
// If CONFIG_FILE points at a YAML file, its values fill anything the
// environment left unset. Precedence: explicit env var > config file > default.
func Load() Config {
	var file Config
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("could not read config file %s: %v", path, err)
		} else if err := yaml.Unmarshal(data, &file); err != nil {
			log.Printf("could not parse config file %s: %v", path, err)
		}
	}

	cfg := Config{}
	cfg.Port = getEnv("PORT", choose(file.Port, "8080"))
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", choose(file.DatabaseDSN, "file:jobboard.db?cache=shared"))
	cfg.Env = getEnv("APP_ENV", choose(file.Env, "development"))
	cfg.SessionSecret = getEnv("SESSION_SECRET", choose(file.SessionSecret, "dev-only-secret-key"))
	cfg.AdminEmail = getEnv("ADMIN_EMAIL", choose(file.AdminEmail, "admin@gmail.com"))
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", choose(file.AdminPassword, "Admin@123"))
	cfg.UploadDir = getEnv("UPLOAD_DIR", choose(file.UploadDir, "uploads/resumes"))
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func choose(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

// ParseBool reads an env var as bool with default.
func ParseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %s", key, v)
			return def
		}
		return b
	}
	return def
}
