// Package sqlite_repo хранит состояние игрока в файле SQLite.
package sqlite_repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"virtual_casino/internal/model"
	"virtual_casino/internal/repository"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS casino_state (
	profile    TEXT PRIMARY KEY,
	balance    INTEGER,
	total_won  INTEGER,
	total_lost INTEGER,
	theme      TEXT
)`

// Store Хранилище состояния в SQLite
type Store struct {
	sqlDB   *sql.DB
	profile string
}

// Open открывает файл SQLite и создает таблицу, если ее нет
func Open(path, profile string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if strings.TrimSpace(profile) == "" {
		return nil, fmt.Errorf("profile is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{sqlDB: sqlDB, profile: profile}, nil
}

// Close закрывает соединение
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetState - читает строку профиля. NULL-колонки возвращаются как nil
func (s *Store) GetState(ctx context.Context) (*repository.StateRecord, error) {
	var (
		balance, won, lost sql.NullInt64
		theme              sql.NullString
	)
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT balance, total_won, total_lost, theme FROM casino_state WHERE profile = ?`,
		s.profile,
	).Scan(&balance, &won, &lost, &theme)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrStateNotFound
		}
		return nil, fmt.Errorf("select state: %w", err)
	}

	rec := &repository.StateRecord{
		Balance:   nullInt(balance),
		TotalWon:  nullInt(won),
		TotalLost: nullInt(lost),
	}
	if theme.Valid {
		rec.Theme = &theme.String
	}
	return rec, nil
}

// SaveState - upsert строки профиля
func (s *Store) SaveState(ctx context.Context, state model.PersistedState) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO casino_state (profile, balance, total_won, total_lost, theme)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(profile) DO UPDATE SET
		   balance = excluded.balance,
		   total_won = excluded.total_won,
		   total_lost = excluded.total_lost,
		   theme = excluded.theme`,
		s.profile, state.Balance, state.TotalWon, state.TotalLost, string(state.Theme),
	)
	if err != nil {
		return fmt.Errorf("upsert state: %w", err)
	}
	return nil
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
