// SPDX-License-Identifier: MIT

// Package config loads binary settings from the environment.
package config

import (
	"os"
	"strconv"
)

// Config holds the settings shared by leftstim and leftstimd.
type Config struct {
	Port         string
	Environment  string
	ReadTimeout  int
	WriteTimeout int

	CanvasSize int
	FrameSize  int
	ExtraLines int
	OutputDir  string
}

// Load reads the configuration from environment variables, falling back to
// defaults for unset or malformed values.
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "3000"),
		Environment:  getEnv("ENV", "development"),
		ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),
		CanvasSize:   getEnvAsInt("LEFTSTIM_CANVAS", 500),
		FrameSize:    getEnvAsInt("LEFTSTIM_FRAME", 300),
		ExtraLines:   getEnvAsInt("LEFTSTIM_EXTRA_LINES", 5),
		OutputDir:    getEnv("LEFTSTIM_OUT", "generated_images"),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
