package model

// Tier - выигрышная категория розыгрыша
type Tier string

// Категории слота
const (
	TierAllMatch  Tier = "all_match"
	TierPairMatch Tier = "pair_match"
	TierNoMatch   Tier = "no_match"
)

// Категории скретч-карты
const (
	TierJackpot Tier = "jackpot"
	TierBig     Tier = "big"
	TierGood    Tier = "good"
	TierSmall   Tier = "small"
	TierNoWin   Tier = "no_win"
)

// IsWin Является ли категория выигрышной
func (t Tier) IsWin() bool {
	switch t {
	case TierAllMatch, TierPairMatch, TierJackpot, TierBig, TierGood, TierSmall:
		return true
	}
	return false
}

const (
	// SlotReels Количество барабанов слота
	SlotReels = 3
	// CardSize Размер стороны скретч-карты
	CardSize = 3
	// CardCells Количество ячеек скретч-карты
	CardCells = CardSize * CardSize
)

type SlotSpin struct {
	Bet int
}

// SlotResult Результат одного спина слота
type SlotResult struct {
	Symbols  [SlotReels]Symbol
	Tier     Tier
	Winnings int // Выигрыш (0 при проигрыше)
	Delta    int // Изменение баланса: выигрыш или -ставка
	Balance  int // Баланс после спина
}

// Position - координата ячейки скретч-карты
type Position struct {
	Row int
	Col int
}

// ScratchResult Результат одной скретч-карты
type ScratchResult struct {
	Grid        [CardSize][CardSize]Symbol
	Tier        Tier
	MaxCount    int        // Максимальное количество одинаковых символов
	Cost        int        // Стоимость карты, списывается всегда
	Winnings    int        // Выигрыш (0 при проигрыше)
	Balance     int        // Баланс после розыгрыша
	RevealOrder []Position // Порядок открытия ячеек для анимации
}
