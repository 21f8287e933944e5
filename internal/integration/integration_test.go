package integration

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
	"quiz-author/internal/app"
	"quiz-author/internal/form"
	"quiz-author/internal/infra/memory"
	pgprofile "quiz-author/internal/infra/postgres"
	pgmigrations "quiz-author/internal/infra/postgres/migrations"
	infraredis "quiz-author/internal/infra/redis"
	transport "quiz-author/internal/transport/http"
)

func TestProfileFromPostgres(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()

	migrateAndSeed(t, ctx, pgURL)

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	view, err := app.NewProfileService(pgprofile.NewProfileLoader(pool, "me")).View(ctx)
	if err != nil {
		t.Fatalf("profile view: %v", err)
	}
	if view.Profile.Rating != 1500 || len(view.Profile.Achievements) != 3 {
		t.Fatalf("unexpected profile %+v", view.Profile)
	}
	if len(view.Featured) != 2 {
		t.Fatalf("expected 2 featured achievements, got %d", len(view.Featured))
	}
}

func TestEditFlowWithRedisCache(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	gets := 0
	var updated string
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/quiz/5":
			gets++
			_, _ = io.WriteString(w, `{"result":{"id":5,"category":"NETWORK","content":"Port of HTTPS?","options":[{"optionNumber":1,"content":"80"},{"optionNumber":2,"content":"443"},{"optionNumber":3,"content":"22"},{"optionNumber":4,"content":"25"}],"tags":["tls"],"answerNumber":2,"explanation":"443 is the TLS default."}}`)
		case r.Method == http.MethodPut && r.URL.Path == "/quiz/5":
			body, _ := io.ReadAll(r.Body)
			updated = string(body)
		default:
			http.NotFound(w, r)
		}
	}))
	defer api.Close()

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	client := transport.NewClient(api.URL, "", api.Client())
	repo := infraredis.NewQuizRepository(redisClient, client, 5*time.Minute)

	if _, err := repo.GetQuiz(ctx, 5); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	page := app.NewEditQuizPage(5, client, repo, noopNotifier{}, noopNavigator{})
	if err := page.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if gets != 1 {
		t.Fatalf("expected cached hydration, GET count %d", gets)
	}
	page.Update(func(f form.QuizForm) form.QuizForm { return f.SetExplanation("HTTPS listens on 443.") })
	if err := page.Submit(ctx); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !strings.Contains(updated, "HTTPS listens on 443.") {
		t.Fatalf("update body missing explanation: %s", updated)
	}
	if n, _ := redisClient.Exists(ctx, "quiz:5:record").Result(); n != 0 {
		t.Fatalf("expected cache invalidated after update")
	}
}

type noopNotifier struct{}

func (noopNotifier) Success(string) {}
func (noopNotifier) Warning(string) {}

type noopNavigator struct{}

func (noopNavigator) Navigate(string, any) {}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "author", "POSTGRES_PASSWORD": "authorpass", "POSTGRES_DB": "authordb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://author:authorpass@%s:%s/authordb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func migrateAndSeed(t *testing.T, ctx context.Context, dsn string) {
	t.Helper()
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := pgprofile.SeedProfile(ctx, db, "me", memory.DefaultProfile()); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
