// Package payout содержит чистые функции расчета выигрыша для обеих игр.
package payout

import "virtual_casino/internal/model"

// SlotTable Множители выплат слота (в кратности ставки)
type SlotTable struct {
	AllMatch  int // Все три символа совпали
	PairMatch int // Ровно два разных символа
}

// DefaultSlotTable Таблица выплат слота по умолчанию
func DefaultSlotTable() SlotTable {
	return SlotTable{
		AllMatch:  5,
		PairMatch: 2,
	}
}

// SlotEvaluation Результат оценки спина
type SlotEvaluation struct {
	Tier     model.Tier
	Winnings int
	Delta    int
	IsWin    bool
}

// Evaluate Оценка спина по количеству различных символов.
// Выигрыш начисляется целиком, ставка при выигрыше не списывается
func (t SlotTable) Evaluate(symbols [model.SlotReels]model.Symbol, bet int) SlotEvaluation {
	switch distinctCount(symbols[:]) {
	case 1:
		winnings := bet * t.AllMatch
		return SlotEvaluation{Tier: model.TierAllMatch, Winnings: winnings, Delta: winnings, IsWin: true}
	case 2:
		winnings := bet * t.PairMatch
		return SlotEvaluation{Tier: model.TierPairMatch, Winnings: winnings, Delta: winnings, IsWin: true}
	default:
		return SlotEvaluation{Tier: model.TierNoMatch, Winnings: 0, Delta: -bet, IsWin: false}
	}
}

// distinctCount Количество различных символов
func distinctCount(symbols []model.Symbol) int {
	seen := make(map[model.Symbol]struct{}, len(symbols))
	for _, s := range symbols {
		seen[s] = struct{}{}
	}
	return len(seen)
}
