package vitals

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/27piyush27/folio/internal/db"
)

// Sample is one browser's performance report.
type Sample struct {
	ID         string    `json:"id"`
	Page       string    `json:"page"`
	LoadTimeMS float64   `json:"load_time_ms"`
	FPS        int       `json:"fps"`
	MemoryMB   float64   `json:"memory_mb"`
	UserAgent  string    `json:"user_agent,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Summary aggregates samples.
type Summary struct {
	Page          string  `json:"page,omitempty"`
	Count         int     `json:"count"`
	AvgLoadTimeMS float64 `json:"avg_load_time_ms"`
	AvgFPS        float64 `json:"avg_fps"`
	AvgMemoryMB   float64 `json:"avg_memory_mb"`
}

// Store persists vitals samples.
type Store struct {
	db *db.DB
}

// NewStore creates a new vitals store.
func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

// Record saves s, assigning an ID and timestamp when missing.
func (s *Store) Record(ctx context.Context, sample *Sample) error {
	if sample.ID == "" {
		sample.ID = uuid.New().String()
	}
	if sample.Page == "" {
		sample.Page = "/"
	}
	if sample.CreatedAt.IsZero() {
		sample.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO vitals_samples (id, page, load_time_ms, fps, memory_mb, user_agent, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sample.ID, sample.Page, sample.LoadTimeMS, sample.FPS, sample.MemoryMB, sample.UserAgent, sample.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("recording vitals sample: %w", err)
	}
	return nil
}

// Summarize aggregates samples for page, or for every page when page is "".
func (s *Store) Summarize(ctx context.Context, page string) (*Summary, error) {
	query := `SELECT COUNT(*), COALESCE(AVG(load_time_ms), 0), COALESCE(AVG(fps), 0), COALESCE(AVG(memory_mb), 0)
		FROM vitals_samples`
	var args []interface{}
	if page != "" {
		query += ` WHERE page = ?`
		args = append(args, page)
	}

	sum := &Summary{Page: page}
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&sum.Count, &sum.AvgLoadTimeMS, &sum.AvgFPS, &sum.AvgMemoryMB)
	if err != nil {
		return nil, fmt.Errorf("summarizing vitals: %w", err)
	}
	return sum, nil
}

// Recent returns the latest samples, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Sample, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, page, load_time_ms, fps, memory_mb, user_agent, created_at
		 FROM vitals_samples ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing vitals: %w", err)
	}
	defer rows.Close()

	var samples []Sample
	for rows.Next() {
		var sm Sample
		if err := rows.Scan(&sm.ID, &sm.Page, &sm.LoadTimeMS, &sm.FPS, &sm.MemoryMB, &sm.UserAgent, &sm.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning vitals sample: %w", err)
		}
		samples = append(samples, sm)
	}
	return samples, rows.Err()
}
