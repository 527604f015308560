package testutils

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/goto/lineage/internal/store/postgres"
	"github.com/goto/salt/log"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

var snapshotTables = []string{
	"lineage_snapshot_assets",
	"lineage_snapshot_relations",
	"lineage_snapshots",
}

// NewSnapshotStore starts a throwaway postgres 14 container, applies the
// snapshot migrations and returns a client connected to it. The container is
// purged when the test finishes.
func NewSnapshotStore(t *testing.T, logger log.Logger) (*postgres.Client, error) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("snapshot store: connect to docker: %w", err)
	}

	cfg := postgres.Config{
		Host:     "localhost",
		Name:     "lineage_test",
		User:     "lineage",
		Password: "lineage",
		SSLMode:  "disable",
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "14",
		Env: []string{
			"POSTGRES_DB=" + cfg.Name,
			"POSTGRES_USER=" + cfg.User,
			"POSTGRES_PASSWORD=" + cfg.Password,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot store: start postgres: %w", err)
	}
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			logger.Error("could not purge postgres container", "error", err)
		}
	})

	if err := resource.Expire(120); err != nil {
		return nil, err
	}
	if cfg.Port, err = strconv.Atoi(resource.GetPort("5432/tcp")); err != nil {
		return nil, fmt.Errorf("snapshot store: parse container port: %w", err)
	}

	var client *postgres.Client
	pool.MaxWait = time.Minute
	if err := pool.Retry(func() error {
		c, err := postgres.NewClient(cfg)
		if err != nil {
			return err
		}
		client = c
		return nil
	}); err != nil {
		return nil, fmt.Errorf("snapshot store: wait for postgres: %w", err)
	}

	if _, err := client.Migrate(cfg); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("snapshot store: migrate: %w", err)
	}
	logger.Debug("snapshot store ready", "port", cfg.Port)

	return client, nil
}

// TruncateSnapshots empties every snapshot table.
func TruncateSnapshots(ctx context.Context, client *postgres.Client) error {
	queries := make([]string, 0, len(snapshotTables))
	for _, table := range snapshotTables {
		queries = append(queries, "TRUNCATE TABLE "+table+" CASCADE")
	}
	return client.ExecQueries(ctx, queries)
}
