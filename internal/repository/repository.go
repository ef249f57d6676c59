package repository

import (
	"context"
	"errors"
	"virtual_casino/internal/model"
)

// ErrStateNotFound Сохраненного состояния нет
var ErrStateNotFound = errors.New("saved state not found")

// StateRecord Сохраненное состояние как есть.
// nil означает, что поле отсутствует в хранилище
type StateRecord struct {
	Balance   *int
	TotalWon  *int
	TotalLost *int
	Theme     *string
}

// StateRepository Хранилище состояния игрока
type StateRepository interface {
	// GetState Возвращает ErrStateNotFound, если записи нет
	GetState(ctx context.Context) (*StateRecord, error)
	SaveState(ctx context.Context, state model.PersistedState) error
}

// RecordFromState Полная запись из состояния
func RecordFromState(state model.PersistedState) *StateRecord {
	balance, won, lost, theme := state.Balance, state.TotalWon, state.TotalLost, string(state.Theme)
	return &StateRecord{
		Balance:   &balance,
		TotalWon:  &won,
		TotalLost: &lost,
		Theme:     &theme,
	}
}
