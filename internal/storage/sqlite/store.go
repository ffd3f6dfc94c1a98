package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/fairdice/internal/core/fairness"
	apperrors "github.com/louisbranch/fairdice/internal/platform/errors"
	sqlitemigrate "github.com/louisbranch/fairdice/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/fairdice/internal/storage"
	"github.com/louisbranch/fairdice/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// timeFormat is fixed width so created_at sorts as text in time order.
// Values are always stored in UTC.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// defaultListLimit bounds ListRounds when callers pass a non-positive limit.
const defaultListLimit = 50

// Store provides a SQLite-backed round archive.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return store, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutRound persists a revealed round.
func (s *Store) PutRound(ctx context.Context, round storage.Round) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(round.ID) == "" {
		return fmt.Errorf("round id is required")
	}
	if round.CreatedAt.IsZero() {
		round.CreatedAt = time.Now().UTC()
	}

	blob, err := round.Transcript.Marshal()
	if err != nil {
		return fmt.Errorf("encode transcript: %w", err)
	}

	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO rounds (id, label, range_size, commitment, result, transcript, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		round.ID,
		round.Label,
		round.Transcript.Range,
		round.Transcript.Commitment,
		round.Transcript.Result,
		blob,
		round.CreatedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("put round %s: %w", round.ID, err)
	}
	return nil
}

// GetRound loads an archived round by ID.
func (s *Store) GetRound(ctx context.Context, id string) (storage.Round, error) {
	if err := ctx.Err(); err != nil {
		return storage.Round{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Round{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.Round{}, fmt.Errorf("round id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, label, transcript, created_at FROM rounds WHERE id = ?`, id)
	round, err := scanRound(row)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Round{}, apperrors.WithMetadata(apperrors.CodeNotFound, "round not found",
			map[string]string{"ID": id})
	}
	if err != nil {
		return storage.Round{}, fmt.Errorf("get round %s: %w", id, err)
	}
	return round, nil
}

// ListRounds returns the most recent rounds first.
func (s *Store) ListRounds(ctx context.Context, limit int) ([]storage.Round, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, label, transcript, created_at FROM rounds ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}
	defer rows.Close()

	var rounds []storage.Round
	for rows.Next() {
		round, err := scanRound(rows)
		if err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		rounds = append(rounds, round)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rounds: %w", err)
	}
	return rounds, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRound(row rowScanner) (storage.Round, error) {
	var (
		round     storage.Round
		blob      []byte
		createdAt string
	)
	if err := row.Scan(&round.ID, &round.Label, &blob, &createdAt); err != nil {
		return storage.Round{}, err
	}
	transcript, err := fairness.UnmarshalTranscript(blob)
	if err != nil {
		return storage.Round{}, err
	}
	round.Transcript = transcript
	parsed, err := time.Parse(timeFormat, createdAt)
	if err != nil {
		return storage.Round{}, fmt.Errorf("parse created_at: %w", err)
	}
	round.CreatedAt = parsed
	return round, nil
}

var _ storage.RoundStore = (*Store)(nil)
