package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Client.
	APIBaseURL string
	HomeDir    string

	// Stub server.
	StubAddr             string
	StubDBPath           string
	JWTSecret            string
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		APIBaseURL:           getenv("CALTRACK_API_URL", "http://localhost:5001/api"),
		HomeDir:              getenv("CALTRACK_HOME", defaultHome()),
		StubAddr:             getenv("STUB_ADDR", ":5001"),
		StubDBPath:           getenv("STUB_DB", "caltrack-stub.db"),
		JWTSecret:            getenv("JWT_SECRET", "caltrack-dev-secret"),
		CORSAllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false") == "true",
	}

	origins := strings.Split(getenv("CORS_ALLOWED_ORIGINS", ""), ",")
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	return cfg, nil
}

// SessionPath is the fixed on-disk location of the persisted auth session.
func (c Config) SessionPath() string {
	return filepath.Join(c.HomeDir, "session.json")
}

func defaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".caltrack"
	}
	return filepath.Join(home, ".caltrack")
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
