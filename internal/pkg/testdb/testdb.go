// Package testdb starts a throwaway PostgreSQL container for integration tests.
package testdb

import (
	"fmt"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/gorm"

	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/db"
)

const (
	user     = "treasures"
	password = "secret"
	dbName   = "nc_rare_treasures_test"
)

// Start runs postgres in Docker and returns an open connection and a teardown func.
// It fails fast when no Docker daemon is reachable so callers can skip.
func Start() (*gorm.DB, func(), error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, fmt.Errorf("dockertest.NewPool -> %w", err)
	}
	if err = pool.Client.Ping(); err != nil {
		return nil, nil, fmt.Errorf("pool.Client.Ping -> %w", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=" + user,
			"POSTGRES_PASSWORD=" + password,
			"POSTGRES_DB=" + dbName,
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, nil, fmt.Errorf("pool.RunWithOptions -> %w", err)
	}

	// Kill the container even if the test binary dies.
	_ = resource.Expire(180)

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=disable",
		user, password, resource.GetHostPort("5432/tcp"), dbName,
	)

	var conn *gorm.DB
	pool.MaxWait = 120 * time.Second
	if err = pool.Retry(func() error {
		var err error
		conn, err = db.OpenPostgresWithURL(dsn)
		return err
	}); err != nil {
		_ = pool.Purge(resource)
		return nil, nil, fmt.Errorf("pool.Retry -> %w", err)
	}

	teardown := func() {
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
		_ = pool.Purge(resource)
	}

	return conn, teardown, nil
}
