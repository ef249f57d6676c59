package model

// InitialMoney Стартовый баланс нового игрока
const InitialMoney = 1000

// Theme - предпочтение отображения
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme Тема по умолчанию
const DefaultTheme = ThemeLight

// Toggle Переключает тему на противоположную
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Valid Известна ли тема
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Stats - снимок баланса и накопленной статистики
type Stats struct {
	Balance   int
	TotalWon  int
	TotalLost int
}

// PersistedState Сохраняемое состояние игрока
type PersistedState struct {
	Balance   int
	TotalWon  int
	TotalLost int
	Theme     Theme
}

// DefaultState Состояние по умолчанию для нового игрока
func DefaultState(initialBalance int) PersistedState {
	return PersistedState{
		Balance:   initialBalance,
		TotalWon:  0,
		TotalLost: 0,
		Theme:     DefaultTheme,
	}
}

// PlayStats Статистика розыгрышей одной игры за сессию
type PlayStats struct {
	Game      string
	Plays     int
	Wins      int
	Wagered   int
	Paid      int
	RTP       float64
	WindowRTP float64
}
