package config

import (
	"log"
	"os"
	"time"
)

type Config struct {
	Port             string
	Env              string
	DispatchInterval time.Duration
	ContentTemplate  string
}

func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("ENV", "development"),
		DispatchInterval: getDurationEnv("DISPATCH_INTERVAL", 2*time.Second),
		ContentTemplate:  getEnv("NOTIFY_CONTENT_TEMPLATE", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid %s value %q, using default %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
