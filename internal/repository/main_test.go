//go:build integration

package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	testPostgresDB       = "postgres"
	testPostgresUser     = "postgres"
	testPostgresPassword = "postgres"
)

var (
	testPool               *pgxpool.Pool
	testRedis              *redis.Client
	testPositionRepository *Position
	testLedger             *PgLedger
	testTransactor         *PgxTransactor
)

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		logrus.Fatalf("Could not construct pool: %s", err)
	}
	if err = pool.Client.Ping(); err != nil {
		logrus.Fatalf("Could not connect to Docker: %s", err)
	}

	migrations, err := filepath.Abs("../../migrations")
	if err != nil {
		logrus.Fatalf("Could not resolve migrations: %s", err)
	}

	postgres, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			fmt.Sprintf("POSTGRES_USER=%s", testPostgresUser),
			fmt.Sprintf("POSTGRES_PASSWORD=%s", testPostgresPassword),
			fmt.Sprintf("POSTGRES_DB=%s", testPostgresDB),
		},
		Mounts: []string{fmt.Sprintf("%s:/docker-entrypoint-initdb.d", migrations)},
	}, autoRemove)
	if err != nil {
		logrus.Fatalf("Could not start postgres: %s", err)
	}
	_ = postgres.Expire(120)

	redisResource, err := pool.RunWithOptions(&dockertest.RunOptions{Repository: "redis", Tag: "7-alpine"}, autoRemove)
	if err != nil {
		logrus.Fatalf("Could not start redis: %s", err)
	}
	_ = redisResource.Expire(120)

	ctx := context.Background()
	if err = pool.Retry(func() error {
		var retryErr error
		testPool, retryErr = pgxpool.New(ctx, fmt.Sprintf("postgres://%s:%s@localhost:%s/%s?sslmode=disable",
			testPostgresUser, testPostgresPassword, postgres.GetPort("5432/tcp"), testPostgresDB))
		if retryErr != nil {
			return fmt.Errorf("could not connect to db %w", retryErr)
		}
		if retryErr = testPool.Ping(ctx); retryErr != nil {
			return retryErr
		}
		_, retryErr = testPool.Exec(ctx, "select 1 from positions limit 1")
		return retryErr
	}); err != nil {
		logrus.Fatalf("Could not connect to postgres: %s", err)
	}

	if err = pool.Retry(func() error {
		testRedis = redis.NewClient(&redis.Options{Addr: "localhost:" + redisResource.GetPort("6379/tcp")})
		return testRedis.Ping(ctx).Err()
	}); err != nil {
		logrus.Fatalf("Could not connect to redis: %s", err)
	}

	runner := NewPgxWithinTransactionRunner(testPool)
	testPositionRepository = NewPositionRepository(runner)
	testTransactor = NewPgxTransactor(testPool)
	testLedger = NewPgLedger(testTransactor, runner, 100)

	code := m.Run()

	testPool.Close()
	_ = testRedis.Close()
	for _, r := range []*dockertest.Resource{postgres, redisResource} {
		if err = pool.Purge(r); err != nil {
			logrus.Errorf("Could not purge resource: %s", err)
		}
	}
	os.Exit(code)
}

func autoRemove(config *docker.HostConfig) {
	config.AutoRemove = true
	config.RestartPolicy = docker.RestartPolicy{Name: "no"}
}
