package slot

import (
	"virtual_casino/internal/service"
	"virtual_casino/internal/service/payout"

	"go.uber.org/zap"
)

type serv struct {
	source service.SymbolSource
	table  payout.SlotTable
	logger *zap.Logger
}

// NewSlotService Создать новый слот на 3 барабана
func NewSlotService(
	source service.SymbolSource,
	table payout.SlotTable,
	logger *zap.Logger,
) service.SlotService {
	return &serv{
		source: source,
		table:  table,
		logger: logger,
	}
}
