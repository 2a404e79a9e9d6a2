// Package env reads configuration from environment variables.
package env

import (
	"go.uber.org/zap"
	"os"
)

// OrDefault return the result of searching an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Debug("env var ", env, " empty, using default")
		return def
	}
	return value
}

// Must return the result of searching an env var, panics if the env var value is empty
func Must(log *zap.SugaredLogger, env string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Panic(env, " must be set")
	}
	return value
}
