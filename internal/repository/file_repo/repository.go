package file_repo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"virtual_casino/internal/model"
	"virtual_casino/internal/repository"

	jsoniter "github.com/json-iterator/go"
)

// DefaultPath Файл сохранения по умолчанию
const DefaultPath = "casino_data.json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// document - формат файла. Отсутствующие ключи остаются nil
type document struct {
	Balance   *int    `json:"balance,omitempty"`
	TotalWon  *int    `json:"total_won,omitempty"`
	TotalLost *int    `json:"total_lost,omitempty"`
	Theme     *string `json:"theme,omitempty"`
}

type repo struct {
	path string
}

func NewStateRepository(path string) repository.StateRepository {
	if path == "" {
		path = DefaultPath
	}
	return &repo{
		path: path,
	}
}

// GetState - читает JSON-документ с состоянием.
// Возвращает repository.ErrStateNotFound, если файла нет
func (r *repo) GetState(ctx context.Context) (*repository.StateRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, repository.ErrStateNotFound
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.path, err)
	}

	return &repository.StateRecord{
		Balance:   doc.Balance,
		TotalWon:  doc.TotalWon,
		TotalLost: doc.TotalLost,
		Theme:     doc.Theme,
	}, nil
}

// SaveState - записывает состояние целиком.
// Пишем во временный файл и переименовываем, чтобы не оставить обрезанный документ
func (r *repo) SaveState(ctx context.Context, state model.PersistedState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rec := repository.RecordFromState(state)
	raw, err := json.MarshalIndent(document{
		Balance:   rec.Balance,
		TotalWon:  rec.TotalWon,
		TotalLost: rec.TotalLost,
		Theme:     rec.Theme,
	}, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", r.path, err)
	}
	return nil
}
