package slot

import (
	"context"
	"virtual_casino/internal/model"
	"virtual_casino/internal/service"

	"go.uber.org/zap"
)

// Play выполняет спин: проверка ставки, генерация барабанов, оценка и одно изменение баланса
func (s *serv) Play(ctx context.Context, ledger service.Ledger, spin model.SlotSpin) (*model.SlotResult, error) {
	// Валидация ставки
	if spin.Bet <= 0 {
		return nil, model.ErrInvalidBet
	}
	if spin.Bet > ledger.Balance() {
		return nil, model.ErrInsufficientBalance
	}

	// После генерации символов розыгрыш уже не отменяется
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reels := s.generateReels()
	eval := s.table.Evaluate(reels, spin.Bet)

	ledger.ApplyOutcome(eval.Delta, eval.IsWin)

	res := &model.SlotResult{
		Symbols:  reels,
		Tier:     eval.Tier,
		Winnings: eval.Winnings,
		Delta:    eval.Delta,
		Balance:  ledger.Balance(),
	}

	s.logger.Debug("slot spin",
		zap.Int("bet", spin.Bet),
		zap.String("tier", string(res.Tier)),
		zap.Int("delta", res.Delta),
		zap.Int("balance", res.Balance),
	)

	return res, nil
}

// generateReels генерирует символы трех барабанов
func (s *serv) generateReels() [model.SlotReels]model.Symbol {
	var reels [model.SlotReels]model.Symbol
	copy(reels[:], s.source.DrawMany(model.SlotReels))
	return reels
}
