package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"quiz-author/internal/app"
	"quiz-author/internal/config"
	"quiz-author/internal/infra/memory"
	pgprofile "quiz-author/internal/infra/postgres"
	rediscache "quiz-author/internal/infra/redis"
	"quiz-author/internal/notify"
	transport "quiz-author/internal/transport/http"
)

// deps is everything a page command needs.
type deps struct {
	cfg     config.Config
	client  *transport.Client
	quizzes app.QuizRepository
	toast   *notify.Toast
	nav     *printNavigator
	closers []func()
}

func (d *deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

func loadDeps(configPath, apiFlag string, out io.Writer) (*deps, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	baseURL := apiFlag
	if baseURL == "" {
		baseURL = cfg.API.BaseURL
	}
	httpClient := &http.Client{Timeout: config.TTLDuration(cfg.API.Timeout, 10*time.Second)}
	client := transport.NewClient(baseURL, cfg.API.Token, httpClient)

	d := &deps{
		cfg:    cfg,
		client: client,
		toast:  notify.NewToast(config.TTLDuration(cfg.Toast.Duration, notify.DefaultDuration), printToast(out)),
		nav:    &printNavigator{out: out},
	}

	quizTTL := config.TTLDuration(cfg.Quiz.TTL, 10*time.Minute)
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		d.closers = append(d.closers, func() { _ = redisClient.Close() })
		d.quizzes = rediscache.NewQuizRepository(redisClient, client, quizTTL)
	} else {
		d.quizzes = memory.NewQuizRepository(client, quizTTL)
	}
	return d, nil
}

func loadProfileLoader(ctx context.Context, cfg config.Config) (app.ProfileLoader, func(), error) {
	if cfg.Postgres.URL == "" {
		return memory.NewStaticProfileLoader(memory.DefaultProfile()), func() {}, nil
	}
	pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		return nil, nil, err
	}
	return pgprofile.NewProfileLoader(pool, profileID(cfg)), pool.Close, nil
}

func profileID(cfg config.Config) string {
	if cfg.Postgres.ProfileID == "" {
		return "me"
	}
	return cfg.Postgres.ProfileID
}

func printToast(out io.Writer) func(notify.Message) {
	return func(m notify.Message) {
		mark := "✓"
		if m.Icon == notify.IconWarning {
			mark = "!"
		}
		fmt.Fprintf(out, "[%s] %s\n", mark, m.Text)
	}
}

// printNavigator reports navigation instead of switching views.
type printNavigator struct {
	out   io.Writer
	path  string
	state any
}

func (n *printNavigator) Navigate(path string, state any) {
	n.path, n.state = path, state
	if state == nil {
		fmt.Fprintf(n.out, "-> %s\n", path)
		return
	}
	fmt.Fprintf(n.out, "-> %s %+v\n", path, state)
}
