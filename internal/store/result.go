package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StoredResult is the durable record of the most recent successful
// submission. AdditionalData is kept as the JSON the payload carried;
// the cache never inspects it.
type StoredResult struct {
	Timestamp      time.Time
	Score          int
	Level          string
	AdditionalData json.RawMessage
}

// ResultRepo manages the single result slot. Writes are last-write-wins;
// there is no history.
type ResultRepo interface {
	// Save overwrites the slot with the given result.
	Save(ctx context.Context, r StoredResult) error

	// Latest returns the stored result, or nil if the slot is empty.
	Latest(ctx context.Context) (*StoredResult, error)

	// Clear empties the slot.
	Clear(ctx context.Context) error
}

type resultRepo struct {
	db *sql.DB
}

func (r *resultRepo) Save(ctx context.Context, res StoredResult) error {
	additional := res.AdditionalData
	if additional == nil {
		additional = json.RawMessage("{}")
	}

	const q = `
INSERT INTO result_slot (slot, timestamp, score, level, additional_data)
VALUES (1, ?, ?, ?, ?)
ON CONFLICT (slot) DO UPDATE SET
    timestamp = excluded.timestamp,
    score = excluded.score,
    level = excluded.level,
    additional_data = excluded.additional_data;`

	_, err := r.db.ExecContext(ctx, q,
		res.Timestamp.UTC().Format(time.RFC3339),
		res.Score,
		res.Level,
		string(additional),
	)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

func (r *resultRepo) Latest(ctx context.Context) (*StoredResult, error) {
	const q = `SELECT timestamp, score, level, additional_data FROM result_slot WHERE slot = 1;`

	var (
		ts         string
		res        StoredResult
		additional string
	)
	err := r.db.QueryRowContext(ctx, q).Scan(&ts, &res.Score, &res.Level, &additional)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load result: %w", err)
	}

	res.Timestamp, err = time.Parse(time.RFC3339, ts)
	if err != nil {
		return nil, fmt.Errorf("parse stored timestamp %q: %w", ts, err)
	}
	res.AdditionalData = json.RawMessage(additional)

	return &res, nil
}

func (r *resultRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM result_slot;`); err != nil {
		return fmt.Errorf("clear result: %w", err)
	}
	return nil
}
