package persistence

import (
	"context"
	"errors"
	"fmt"
	"virtual_casino/internal/model"
	"virtual_casino/internal/repository"
	"virtual_casino/internal/service"

	"go.uber.org/zap"
)

type serv struct {
	repo           repository.StateRepository
	initialBalance int
	logger         *zap.Logger
}

// NewPersistenceService Адаптер сохранения поверх хранилища состояния
func NewPersistenceService(repo repository.StateRepository, initialBalance int, logger *zap.Logger) service.PersistenceService {
	return &serv{
		repo:           repo,
		initialBalance: initialBalance,
		logger:         logger,
	}
}

// Load Загружает состояние. Отсутствующие поля заменяются значениями по умолчанию
// по отдельности. Ошибки чтения логируются и не пробрасываются
func (s *serv) Load(ctx context.Context) model.PersistedState {
	state := model.DefaultState(s.initialBalance)

	rec, err := s.repo.GetState(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrStateNotFound) {
			s.logger.Info("no saved state, starting fresh", zap.Int("balance", state.Balance))
			return state
		}
		s.logger.Warn("falling back to default state",
			zap.Error(fmt.Errorf("%w: %w", model.ErrPersistenceRead, err)))
		return state
	}

	if rec.Balance != nil {
		state.Balance = *rec.Balance
	}
	if rec.TotalWon != nil {
		state.TotalWon = *rec.TotalWon
	}
	if rec.TotalLost != nil {
		state.TotalLost = *rec.TotalLost
	}
	if rec.Theme != nil {
		if theme := model.Theme(*rec.Theme); theme.Valid() {
			state.Theme = theme
		} else {
			s.logger.Warn("unknown theme in saved state", zap.String("theme", *rec.Theme))
		}
	}

	s.logger.Info("state loaded",
		zap.Int("balance", state.Balance),
		zap.Int("total_won", state.TotalWon),
		zap.Int("total_lost", state.TotalLost),
		zap.String("theme", string(state.Theme)),
	)
	return state
}

// Save Сохраняет состояние целиком. Ошибка логируется и оборачивается в ErrPersistenceWrite
func (s *serv) Save(ctx context.Context, state model.PersistedState) error {
	if err := s.repo.SaveState(ctx, state); err != nil {
		err = fmt.Errorf("%w: %w", model.ErrPersistenceWrite, err)
		s.logger.Error("failed to save state", zap.Error(err))
		return err
	}
	s.logger.Info("state saved", zap.Int("balance", state.Balance))
	return nil
}
