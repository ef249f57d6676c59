package payout

import "virtual_casino/internal/model"

// minWinningCount Минимальное количество одинаковых символов для выигрыша.
// Пара (2 символа) не выигрывает никогда
const minWinningCount = 3

// ScratchTable Множители выплат скретч-карты (в кратности стоимости карты)
type ScratchTable struct {
	Jackpot int // 9 одинаковых
	Big     int // 5-8 одинаковых
	Good    int // 4 одинаковых
	Small   int // 3 одинаковых
}

// DefaultScratchTable Таблица выплат скретч-карты по умолчанию
func DefaultScratchTable() ScratchTable {
	return ScratchTable{
		Jackpot: 100,
		Big:     10,
		Good:    5,
		Small:   2,
	}
}

// ScratchEvaluation Результат оценки карты
type ScratchEvaluation struct {
	Tier     model.Tier
	MaxCount int
	Winnings int
}

// IsWin Выиграла ли карта
func (e ScratchEvaluation) IsWin() bool {
	return e.Winnings > 0
}

// Evaluate Оценка карты по максимальной частоте символа.
// Стоимость карты здесь не учитывается, она списывается отдельно
func (t ScratchTable) Evaluate(grid [model.CardSize][model.CardSize]model.Symbol, cost int) ScratchEvaluation {
	maxCount := MaxCount(grid)

	if maxCount < minWinningCount {
		return ScratchEvaluation{Tier: model.TierNoWin, MaxCount: maxCount}
	}

	var (
		tier model.Tier
		mult int
	)
	switch {
	case maxCount == model.CardCells:
		tier, mult = model.TierJackpot, t.Jackpot
	case maxCount >= 5:
		tier, mult = model.TierBig, t.Big
	case maxCount == 4:
		tier, mult = model.TierGood, t.Good
	default:
		tier, mult = model.TierSmall, t.Small
	}

	return ScratchEvaluation{
		Tier:     tier,
		MaxCount: maxCount,
		Winnings: cost * mult,
	}
}

// MaxCount Наибольшее количество вхождений одного символа на карте
func MaxCount(grid [model.CardSize][model.CardSize]model.Symbol) int {
	counts := make(map[model.Symbol]int, model.CardCells)
	maxCount := 0
	for r := 0; r < model.CardSize; r++ {
		for c := 0; c < model.CardSize; c++ {
			counts[grid[r][c]]++
			if counts[grid[r][c]] > maxCount {
				maxCount = counts[grid[r][c]]
			}
		}
	}
	return maxCount
}
