package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
	"quiz-author/internal/domain"
)

// QuizLoader fetches a quiz record from the backend API.
type QuizLoader interface {
	LoadQuiz(ctx context.Context, quizID int64) (domain.QuizRecord, error)
}

// QuizRepository caches fetched quiz records in Redis so several CLI
// invocations share hydrated quizzes.
// Records are stored as: SET quiz:{quizID}:record <json> EX ttl
type QuizRepository struct {
	client *redis.Client
	loader QuizLoader
	ttl    time.Duration
	sf     singleflight.Group

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func NewQuizRepository(client *redis.Client, loader QuizLoader, ttl time.Duration) *QuizRepository {
	return &QuizRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *QuizRepository) GetQuiz(ctx context.Context, quizID int64) (domain.QuizRecord, error) {
	if rec, ok := r.cached(ctx, quizID); ok {
		return rec, nil
	}

	result, err, _ := r.sf.Do(strconv.FormatInt(quizID, 10), func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if rec, ok := r.cached(ctx, quizID); ok {
			return rec, nil
		}

		rec, err := r.loader.LoadQuiz(ctx, quizID)
		if err != nil {
			return domain.QuizRecord{}, err
		}

		if data, err := json.Marshal(rec); err == nil {
			_ = r.client.Set(ctx, r.key(quizID), data, r.ttlWithJitter()).Err()
		}
		return rec, nil
	})
	if err != nil {
		return domain.QuizRecord{}, err
	}
	return result.(domain.QuizRecord), nil
}

// Invalidate removes the cached record.
func (r *QuizRepository) Invalidate(ctx context.Context, quizID int64) error {
	return r.client.Del(ctx, r.key(quizID)).Err()
}

func (r *QuizRepository) cached(ctx context.Context, quizID int64) (domain.QuizRecord, bool) {
	data, err := r.client.Get(ctx, r.key(quizID)).Bytes()
	if err != nil {
		return domain.QuizRecord{}, false
	}
	var rec domain.QuizRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.QuizRecord{}, false
	}
	return rec, true
}

func (r *QuizRepository) key(quizID int64) string {
	return "quiz:" + strconv.FormatInt(quizID, 10) + ":record"
}

func (r *QuizRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	r.rndMu.Lock()
	defer r.rndMu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
