package service

import (
	"context"
	"virtual_casino/internal/model"
)

// Ledger Баланс, который сессия берет на время одного розыгрыша
type Ledger interface {
	Balance() int
	ApplyOutcome(delta int, isWin bool)
}

// SymbolSource Источник случайных символов
type SymbolSource interface {
	Draw() model.Symbol
	DrawMany(n int) []model.Symbol
	Perm(n int) []int
}

type SlotService interface {
	Play(ctx context.Context, ledger Ledger, spin model.SlotSpin) (*model.SlotResult, error)
}

type ScratchService interface {
	Play(ctx context.Context, ledger Ledger) (*model.ScratchResult, error)
	NewCard()
	Cost() int
	Scratched() bool
}

type PersistenceService interface {
	// Load никогда не возвращает ошибку: при любой проблеме отдает значения по умолчанию
	Load(ctx context.Context) model.PersistedState
	Save(ctx context.Context, state model.PersistedState) error
}
