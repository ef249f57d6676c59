package scratch

import (
	"context"
	"virtual_casino/internal/model"
	"virtual_casino/internal/service"

	"go.uber.org/zap"
)

// Play стирает карту.
// Стоимость списывается всегда как проигрыш, выигрыш начисляется отдельной
// операцией, поэтому выигрышная карта попадает в обе статистики
func (s *serv) Play(ctx context.Context, ledger service.Ledger) (*model.ScratchResult, error) {
	if s.scratched {
		return nil, model.ErrCardAlreadyScratched
	}
	if s.cost > ledger.Balance() {
		return nil, model.ErrInsufficientBalance
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	grid := s.generateGrid()
	order := s.revealOrder()

	// 1. Списание стоимости карты
	ledger.ApplyOutcome(-s.cost, false)

	// 2. Оценка и начисление выигрыша
	eval := s.table.Evaluate(grid, s.cost)
	if eval.IsWin() {
		ledger.ApplyOutcome(eval.Winnings, true)
	}

	s.scratched = true

	res := &model.ScratchResult{
		Grid:        grid,
		Tier:        eval.Tier,
		MaxCount:    eval.MaxCount,
		Cost:        s.cost,
		Winnings:    eval.Winnings,
		Balance:     ledger.Balance(),
		RevealOrder: order,
	}

	s.logger.Debug("scratch card",
		zap.Int("cost", s.cost),
		zap.Int("max_count", res.MaxCount),
		zap.String("tier", string(res.Tier)),
		zap.Int("winnings", res.Winnings),
		zap.Int("balance", res.Balance),
	)

	return res, nil
}

// generateGrid заполняет карту 3x3 независимыми символами
func (s *serv) generateGrid() [model.CardSize][model.CardSize]model.Symbol {
	var grid [model.CardSize][model.CardSize]model.Symbol
	cells := s.source.DrawMany(model.CardCells)
	for i, sym := range cells {
		grid[i/model.CardSize][i%model.CardSize] = sym
	}
	return grid
}

// revealOrder случайный порядок открытия ячеек (только для анимации)
func (s *serv) revealOrder() []model.Position {
	perm := s.source.Perm(model.CardCells)
	order := make([]model.Position, len(perm))
	for i, idx := range perm {
		order[i] = model.Position{Row: idx / model.CardSize, Col: idx % model.CardSize}
	}
	return order
}
