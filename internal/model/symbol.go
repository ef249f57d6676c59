package model

// Symbol - иконка барабана или ячейки скретч-карты.
// Сравнивается только на равенство
type Symbol string

const (
	Cherry  Symbol = "cherry"
	Diamond Symbol = "diamond"
	Bell    Symbol = "bell"
	Lemon   Symbol = "lemon"
	Seven   Symbol = "seven"
)

// DefaultSymbols Набор символов по умолчанию (общий для обеих игр)
func DefaultSymbols() []Symbol {
	return []Symbol{Cherry, Diamond, Bell, Lemon, Seven}
}
