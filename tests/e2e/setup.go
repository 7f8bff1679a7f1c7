//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"event-booking/cmd/bootstrap"
	"event-booking/cmd/bootstrap/components"
	"event-booking/internal/infra/db"
	"event-booking/internal/pkg/config"
	"event-booking/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	schemaFile = "migrations/001_initial_schema.sql"
)

// ContainerInfo is the host-side address of a container port.
type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (c ContainerInfo) Addr() string {
	return c.Host + ":" + c.Port.Port()
}

// sharedContainer starts one container per test process and hands every suite the same address.
type sharedContainer struct {
	once sync.Once
	info ContainerInfo
	err  error
}

func (s *sharedContainer) get(t *testing.T, req testcontainers.ContainerRequest, port string) ContainerInfo {
	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		if err != nil {
			s.err = fmt.Errorf("start %s: %w", req.Image, err)
			return
		}
		// ryuk reaps the container when the process exits
		host, err := c.Host(ctx)
		if err != nil {
			s.err = err
			return
		}
		mapped, err := c.MappedPort(ctx, nat.Port(port))
		if err != nil {
			s.err = err
			return
		}
		s.info = ContainerInfo{Host: host, Port: mapped}
	})
	require.NoError(t, s.err, "コンテナの起動に失敗")
	return s.info
}

var (
	postgresContainer sharedContainer
	redisContainer    sharedContainer
)

func startPostgres(t *testing.T) ContainerInfo {
	return postgresContainer.get(t, testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		// data on tmpfs with durability off; these databases are thrown away
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "full_page_writes=off",
			"-c", "synchronous_commit=off",
			"-c", "max_connections=200",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
		Labels: map[string]string{"purpose": "e2e-tests"},
	}, "5432/tcp")
}

func startRedis(t *testing.T) ContainerInfo {
	return redisContainer.get(t, testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
		WaitingFor:   wait.ForListeningPort(nat.Port("6379/tcp")).WithStartupTimeout(30 * time.Second),
		Labels:       map[string]string{"purpose": "e2e-tests"},
	}, "6379/tcp")
}

// createDatabase makes a throwaway database for one suite and drops it on cleanup.
func createDatabase(t *testing.T, pg ContainerInfo) config.DBConfig {
	t.Helper()

	name := "e2e_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", pgUser, pgPassword, pg.Addr())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// the server can refuse CREATE DATABASE while another suite is copying template1
	for attempt := range 5 {
		if _, err = admin.Exec(ctx, "CREATE DATABASE "+name); err == nil {
			break
		}
		slog.Warn("データベース作成を再試行中", "attempt", attempt+1, "error", err.Error())
		time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		pool, err := pgxpool.New(ctx, adminDSN)
		if err != nil {
			slog.Warn("クリーンアップ用の接続に失敗しました", "database", name, "error", err.Error())
			return
		}
		defer pool.Close()
		if _, err := pool.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     pg.Host,
		Port:     pg.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 30,
	}
}

// readSchema finds the migration from whichever package directory `go test` runs in.
func readSchema() ([]byte, error) {
	for _, dir := range []string{".", "..", "../..", "../../.."} {
		b, err := os.ReadFile(filepath.Join(dir, schemaFile))
		if err == nil {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%s not found from %s", schemaFile, mustGetwd())
}

func mustGetwd() string {
	wd, _ := os.Getwd()
	return wd
}

func connectAndMigrate(t *testing.T, dbCfg config.DBConfig) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, closePool, err := db.Connect(ctx, dbCfg)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(closePool)

	schema, err := readSchema()
	require.NoError(t, err)
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err, "データベースマイグレーションに失敗")

	return pool
}

// testConfig gives each suite its own database, upload directory and Redis key space.
func testConfig(t *testing.T, dbCfg config.DBConfig, redis ContainerInfo) config.Config {
	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	cfg.Upload.Dir = t.TempDir()
	cfg.Redis = config.RedisConfig{
		Enabled:   true,
		Addr:      redis.Addr(),
		KeyPrefix: "e2e:" + dbCfg.DBName + ":",
	}
	return cfg
}

// startApp builds the production fx graph around an existing pool and returns the router.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.RedisModule,
		bootstrap.StorageModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		bootstrap.SeedModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
	return router
}

// SharedSuite wires a fresh database and router for each e2e suite.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pg := startPostgres(t)
	redis := startRedis(t)

	dbCfg := createDatabase(t, pg)
	s.DB = connectAndMigrate(t, dbCfg)
	s.Config = testConfig(t, dbCfg, redis)
	s.Router = startApp(t, s.DB, s.Config)

	slog.Info("E2E環境の準備が完了しました", "database", dbCfg.DBName, "postgres", pg.Addr(), "redis", redis.Addr())
}

// SetupSubTest truncates every table so each s.Run starts empty.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
}
