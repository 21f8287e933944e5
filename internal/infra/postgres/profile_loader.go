package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
	"quiz-author/internal/domain"
)

// ProfileLoader loads a profile and its achievements from JSONB in Postgres.
type ProfileLoader struct {
	pool      *pgxpool.Pool
	profileID string
}

func NewProfileLoader(pool *pgxpool.Pool, profileID string) *ProfileLoader {
	return &ProfileLoader{pool: pool, profileID: profileID}
}

func (l *ProfileLoader) LoadProfile(ctx context.Context) (domain.Profile, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM profiles WHERE id=$1`, l.profileID).Scan(&raw)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	var profile domain.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return domain.Profile{}, fmt.Errorf("unmarshal profile: %w", err)
	}
	return profile, nil
}
