package scratch

import (
	"virtual_casino/internal/service"
	"virtual_casino/internal/service/payout"

	"go.uber.org/zap"
)

type serv struct {
	source service.SymbolSource
	table  payout.ScratchTable
	cost   int
	logger *zap.Logger

	// scratched Карта уже сыграна, нужна новая
	scratched bool
}

// NewScratchService Создать скретч-карту 3x3 с фиксированной стоимостью
func NewScratchService(
	source service.SymbolSource,
	table payout.ScratchTable,
	cost int,
	logger *zap.Logger,
) service.ScratchService {
	return &serv{
		source: source,
		table:  table,
		cost:   cost,
		logger: logger,
	}
}

// Cost Стоимость одной карты
func (s *serv) Cost() int {
	return s.cost
}

// Scratched Сыграна ли текущая карта
func (s *serv) Scratched() bool {
	return s.scratched
}

// NewCard Берет новую карту. Баланс не меняется
func (s *serv) NewCard() {
	s.scratched = false
}
