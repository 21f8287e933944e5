package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/uptrace/bun"
	"quiz-author/internal/domain"
)

// SeedProfile inserts profile under id unless a row already exists.
func SeedProfile(ctx context.Context, db *bun.DB, id string, profile domain.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	_, err = db.ExecContext(ctx, `INSERT INTO profiles (id, data) VALUES (?, ?::jsonb) ON CONFLICT (id) DO NOTHING`, id, string(data))
	if err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}
	return nil
}
