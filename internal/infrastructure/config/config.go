package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the service configuration, sourced from the environment.
type Config struct {
	GRPCPort int
	HTTPPort int

	// KafkaBrokers empty disables event publication.
	KafkaBrokers []string
	KafkaTopic   string

	// RulesFile overrides the embedded product rulebook.
	RulesFile string

	LogLevel  string
	LogFormat string

	ServiceName string
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	return Config{
		GRPCPort:     getEnvInt("GRPC_PORT", 9090),
		HTTPPort:     getEnvInt("HTTP_PORT", 8080),
		KafkaBrokers: splitNonEmpty(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "affordability.events"),
		RulesFile:    getEnv("RULES_FILE", ""),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
		ServiceName:  "affordability-service",
	}
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// KafkaEnabled reports whether event publication is configured.
func (c Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitNonEmpty(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
