package app

import (
	"os"
	"strconv"
	"time"

	"go-workboard/internal/shared/connection"
)

const defaultPollInterval = 3 * time.Second

func postgresConfigFromEnv() connection.PostgresConfig {
	return connection.PostgresConfig{
		Host:     os.Getenv("DB_HOST"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		DBName:   os.Getenv("DB_NAME"),
		Port:     os.Getenv("DB_PORT"),
		SSLMode:  os.Getenv("DB_SSLMODE"),
	}
}

func pollIntervalFromEnv() time.Duration {
	d, err := time.ParseDuration(os.Getenv("OUTBOX_POLL_INTERVAL"))
	if err != nil || d <= 0 {
		return defaultPollInterval
	}
	return d
}

func autoMigrateEnabled() bool {
	ok, _ := strconv.ParseBool(os.Getenv("DB_AUTO_MIGRATE"))
	return ok
}
