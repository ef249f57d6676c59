// Package ledger хранит баланс игрока и накопленную статистику выигрышей и проигрышей.
package ledger

import (
	"sync"
	"virtual_casino/internal/model"
)

// Ledger Баланс и статистика игрока.
// Баланс меняется только через ApplyOutcome
type Ledger struct {
	mtx       sync.RWMutex
	balance   int
	totalWon  int
	totalLost int
}

// New Конструктор с начальным балансом и пустой статистикой
func New(initialBalance int) *Ledger {
	return NewFromState(model.DefaultState(initialBalance))
}

// NewFromState Восстановление из сохраненного состояния
func NewFromState(state model.PersistedState) *Ledger {
	return &Ledger{
		balance:   state.Balance,
		totalWon:  state.TotalWon,
		totalLost: state.TotalLost,
	}
}

// ApplyOutcome Применяет изменение баланса.
// Выигрыш учитывается только при isWin и delta > 0,
// проигрыш только при !isWin и delta < 0. Остальные дельты меняют
// только баланс
func (l *Ledger) ApplyOutcome(delta int, isWin bool) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	l.balance += delta
	if isWin && delta > 0 {
		l.totalWon += delta
	} else if !isWin && delta < 0 {
		l.totalLost += -delta
	}
}

// Balance Текущий баланс
func (l *Ledger) Balance() int {
	l.mtx.RLock()
	defer l.mtx.RUnlock()
	return l.balance
}

// Stats Копия баланса и статистики
func (l *Ledger) Stats() model.Stats {
	l.mtx.RLock()
	defer l.mtx.RUnlock()
	return model.Stats{
		Balance:   l.balance,
		TotalWon:  l.totalWon,
		TotalLost: l.totalLost,
	}
}

// Restore Заменяет состояние целиком (загрузка сохранения)
func (l *Ledger) Restore(state model.PersistedState) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.balance = state.Balance
	l.totalWon = state.TotalWon
	l.totalLost = state.TotalLost
}
