package casino

type SlotSpinRequest struct {
	Bet int `json:"bet"` // Размер ставки (положительное целое, >0)
}

type SlotSpinResponse struct {
	Symbols  [3]string `json:"symbols"`  // Символы на барабанах
	Tier     string    `json:"tier"`     // all_match, pair_match, no_match
	Winnings int       `json:"winnings"` // Выигрыш
	Delta    int       `json:"delta"`    // Изменение баланса
	Balance  int       `json:"balance"`  // Баланс после
}

type ScratchResponse struct {
	Grid        [3][3]string `json:"grid"`         // Символы карты
	Tier        string       `json:"tier"`         // jackpot, big, good, small, no_win
	MaxCount    int          `json:"max_count"`    // Максимум одинаковых символов
	Cost        int          `json:"cost"`         // Стоимость карты
	Winnings    int          `json:"winnings"`     // Выигрыш
	Balance     int          `json:"balance"`      // Баланс после
	RevealOrder []Position   `json:"reveal_order"` // Порядок открытия ячеек
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type CardResponse struct {
	Cost  int  `json:"cost"`  // Стоимость карты
	Ready bool `json:"ready"` // Карту можно стирать
}

type BalanceResponse struct {
	Balance int `json:"balance"` // Текущий баланс
}

type StatsResponse struct {
	Balance   int         `json:"balance"`    // Текущий баланс
	TotalWon  int         `json:"total_won"`  // Всего выиграно
	TotalLost int         `json:"total_lost"` // Всего проиграно
	Theme     string      `json:"theme"`      // light или dark
	Games     []GameStats `json:"games"`      // Статистика розыгрышей за сессию
}

type GameStats struct {
	Game      string  `json:"game"`
	Plays     int     `json:"plays"`
	Wins      int     `json:"wins"`
	Wagered   int     `json:"wagered"`    // Сумма ставок
	Paid      int     `json:"paid"`       // Сумма выплат
	RTP       float64 `json:"rtp"`        // Возврат игроку, %
	WindowRTP float64 `json:"window_rtp"` // RTP в окне последних розыгрышей, %
}

type ThemeResponse struct {
	Theme string `json:"theme"`
}

type StateResponse struct {
	Balance   int    `json:"balance"`
	TotalWon  int    `json:"total_won"`
	TotalLost int    `json:"total_lost"`
	Theme     string `json:"theme"`
}
