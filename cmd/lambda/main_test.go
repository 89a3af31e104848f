package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aadithya-J/time_management/internal/config"
)

func TestLambdaConfig(t *testing.T) {
	cfg := lambdaConfig(config.Config{DBDriver: "sqlite", DatabaseURL: "time_entries.db", ServeFrontend: true})
	assert.Equal(t, "/tmp/time_entries.db", cfg.DatabaseURL)
	assert.False(t, cfg.ServeFrontend)

	cfg = lambdaConfig(config.Config{DBDriver: "sqlite", DatabaseURL: "/mnt/efs/entries.db"})
	assert.Equal(t, "/mnt/efs/entries.db", cfg.DatabaseURL)

	cfg = lambdaConfig(config.Config{DBDriver: "sqlite", DatabaseURL: ":memory:"})
	assert.Equal(t, ":memory:", cfg.DatabaseURL)

	dsn := "host=db port=5432 user=u password=p dbname=d sslmode=disable"
	cfg = lambdaConfig(config.Config{DBDriver: "postgres", DatabaseURL: dsn})
	assert.Equal(t, dsn, cfg.DatabaseURL)
}
