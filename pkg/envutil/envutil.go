// Package envutil reads typed configuration values from environment variables.
package envutil

import (
	"os"
	"strconv"
	"strings"

	"github.com/githubnext/timeout-lint/pkg/logger"
)

// GetStringFromEnv returns the trimmed value of the environment variable, or
// defaultValue when it is unset or blank.
func GetStringFromEnv(envVar, defaultValue string, log *logger.Logger) string {
	value := strings.TrimSpace(os.Getenv(envVar))
	if value == "" {
		return defaultValue
	}
	if log != nil {
		log.Printf("Using %s=%s from environment", envVar, value)
	}
	return value
}

// GetBoolFromEnv parses the environment variable with strconv.ParseBool.
// Unset or unparseable values yield defaultValue; the latter is logged.
func GetBoolFromEnv(envVar string, defaultValue bool, log *logger.Logger) bool {
	raw := strings.TrimSpace(os.Getenv(envVar))
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		if log != nil {
			log.Printf("Invalid boolean in %s=%q, using default %v", envVar, raw, defaultValue)
		}
		return defaultValue
	}
	return value
}
