package model

// GameStats Статистика по одной игре за сессию
type GameStats struct {
	Plays     int // Сколько всего розыгрышей
	Wins      int // Сколько из них выигрышных
	TotalBet  int // Сумма всех ставок (стоимостей карт)
	TotalPaid int // Сумма всех выплат

	RTP float64 // TotalPaid/TotalBet*100

	Window     []PlayResult // Окно последних розыгрышей
	WindowRTP  float64      // RTP в окне последних розыгрышей
	WindowSize int          // Размер окна
}

// PlayResult Результат розыгрыша для окна
type PlayResult struct {
	Bet    int
	Payout int
}
