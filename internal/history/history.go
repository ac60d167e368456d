// Package history provides PostgreSQL-backed storage of resume generation
// records.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// GenerationType records how the job requirement was obtained.
type GenerationType string

const (
	// TypeURL means the job was scraped from a posting URL
	TypeURL GenerationType = "url"
	// TypeDescription means the job came from pasted free text
	TypeDescription GenerationType = "description"
	// TypeTemplate means the job was loaded from a stored template
	TypeTemplate GenerationType = "template"
)

// Record is one saved generation run.
type Record struct {
	ID             uuid.UUID       `json:"id"`
	JobTitle       string          `json:"job_title"`
	CompanyName    string          `json:"company_name"`
	GenerationType GenerationType  `json:"generation_type"`
	Job            json.RawMessage `json:"job,omitempty"`
	OutputPath     string          `json:"output_path"`
	MatchScore     float64         `json:"match_score"`
	Suggestions    []string        `json:"suggestions"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Statistics summarizes the stored history.
type Statistics struct {
	TotalGenerations int            `json:"total_generations"`
	ByType           map[string]int `json:"by_type"`
	AverageScore     float64        `json:"average_score"`
	RecentWeek       int            `json:"recent_week"`
}

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the history table when it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS generation_history (
			id UUID PRIMARY KEY,
			job_title TEXT NOT NULL,
			company_name TEXT,
			generation_type TEXT NOT NULL,
			job JSONB,
			output_path TEXT,
			match_score DOUBLE PRECISION,
			suggestions JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create history schema: %w", err)
	}
	return nil
}

// Save stores a generation record and returns its ID.
func (s *Store) Save(ctx context.Context, genType GenerationType, job types.JobRequirement, outputPath string, matchScore float64, suggestions []string) (uuid.UUID, error) {
	jobJSON, err := json.Marshal(job)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal job: %w", err)
	}
	suggestionsJSON, err := json.Marshal(suggestions)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal suggestions: %w", err)
	}

	id := uuid.New()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO generation_history
		 (id, job_title, company_name, generation_type, job, output_path, match_score, suggestions)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, job.Title, job.Company, string(genType), jobJSON, outputPath, matchScore, suggestionsJSON,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save generation record: %w", err)
	}
	return id, nil
}

// List returns the most recent records, newest first.
func (s *Store) List(ctx context.Context, limit, offset int) ([]Record, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, job_title, company_name, generation_type, output_path, match_score, suggestions, created_at
		 FROM generation_history
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Get fetches one record by ID. Returns (nil, nil) when not found.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	var (
		record          Record
		suggestionsJSON []byte
	)
	err := s.pool.QueryRow(ctx,
		`SELECT id, job_title, company_name, generation_type, job, output_path, match_score, suggestions, created_at
		 FROM generation_history WHERE id = $1`,
		id,
	).Scan(&record.ID, &record.JobTitle, &record.CompanyName, &record.GenerationType,
		&record.Job, &record.OutputPath, &record.MatchScore, &suggestionsJSON, &record.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	if err := json.Unmarshal(suggestionsJSON, &record.Suggestions); err != nil {
		return nil, fmt.Errorf("failed to decode suggestions: %w", err)
	}
	return &record, nil
}

// Delete removes a record by ID. Returns false when nothing was deleted.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM generation_history WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete record: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Search returns records whose title or company contains the keyword.
func (s *Store) Search(ctx context.Context, keyword string, limit int) ([]Record, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, job_title, company_name, generation_type, output_path, match_score, suggestions, created_at
		 FROM generation_history
		 WHERE job_title ILIKE '%' || $1 || '%' OR company_name ILIKE '%' || $1 || '%'
		 ORDER BY created_at DESC
		 LIMIT $2`,
		keyword, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search history: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Stats aggregates the stored history: totals, per-type counts, average
// score over scored runs, and the count for the last seven days.
func (s *Store) Stats(ctx context.Context) (*Statistics, error) {
	stats := &Statistics{ByType: map[string]int{}}

	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM generation_history`).Scan(&stats.TotalGenerations)
	if err != nil {
		return nil, fmt.Errorf("failed to count history: %w", err)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT generation_type, COUNT(*) FROM generation_history GROUP BY generation_type`)
	if err != nil {
		return nil, fmt.Errorf("failed to count by type: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			genType string
			count   int
		)
		if err := rows.Scan(&genType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan type count: %w", err)
		}
		stats.ByType[genType] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate type counts: %w", err)
	}

	err = s.pool.QueryRow(ctx,
		`SELECT COALESCE(AVG(match_score), 0) FROM generation_history WHERE match_score > 0`,
	).Scan(&stats.AverageScore)
	if err != nil {
		return nil, fmt.Errorf("failed to average scores: %w", err)
	}

	err = s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM generation_history WHERE created_at >= NOW() - INTERVAL '7 days'`,
	).Scan(&stats.RecentWeek)
	if err != nil {
		return nil, fmt.Errorf("failed to count recent history: %w", err)
	}

	return stats, nil
}

func scanRecords(rows pgx.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		var (
			record          Record
			suggestionsJSON []byte
		)
		if err := rows.Scan(&record.ID, &record.JobTitle, &record.CompanyName, &record.GenerationType,
			&record.OutputPath, &record.MatchScore, &suggestionsJSON, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		if err := json.Unmarshal(suggestionsJSON, &record.Suggestions); err != nil {
			return nil, fmt.Errorf("failed to decode suggestions: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return records, nil
}
