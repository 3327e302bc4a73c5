package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings. Values come from the environment with
// defaults matching the original deployment: HTTP on 3000, ingest socket on
// 5000, MongoDB reachable as "mongodb" (the compose service name).
type Config struct {
	HTTPHost      string
	HTTPPort      int
	SocketHost    string
	SocketPort    int
	BufferSize    int
	MongoURI      string
	MongoDatabase string
	TemplateGlob  string
	StaticDir     string
}

// Load reads configuration from the environment. A .env file is loaded first
// when one can be found near the working directory.
func Load() (*Config, error) {
	loadDotenv()

	cfg := &Config{
		HTTPHost:      getEnv("HTTP_HOST", "0.0.0.0"),
		SocketHost:    getEnv("SOCKET_HOST", "127.0.0.1"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://mongodb:27017/"),
		MongoDatabase: getEnv("MONGO_DATABASE", "final_home_work"),
		TemplateGlob:  getEnv("TEMPLATE_GLOB", "templates/*.html"),
		StaticDir:     getEnv("STATIC_DIR", "static"),
	}

	var err error
	if cfg.HTTPPort, err = getEnvInt("PORT", 3000); err != nil {
		return nil, err
	}
	if cfg.SocketPort, err = getEnvInt("SOCKET_PORT", 5000); err != nil {
		return nil, err
	}
	if cfg.BufferSize, err = getEnvInt("BUFFER_SIZE", 1024); err != nil {
		return nil, err
	}

	return cfg, nil
}

// HTTPAddr returns the listen address for the HTTP server.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.HTTPHost, c.HTTPPort)
}

// SocketAddr returns the listen address for the UDP ingest server.
func (c *Config) SocketAddr() string {
	return fmt.Sprintf("%s:%d", c.SocketHost, c.SocketPort)
}

// loadDotenv loads the first .env file it finds. The file is optional; when
// running under compose all settings arrive through the environment.
func loadDotenv() {
	paths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			if err := godotenv.Load(p); err == nil {
				return
			}
		}
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q", key, v)
	}
	return n, nil
}
