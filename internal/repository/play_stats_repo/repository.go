// Package play_stats_repo хранит в памяти статистику розыгрышей по играм:
// количество, ставки, выплаты и RTP за сессию и в скользящем окне.
package play_stats_repo

import (
	"sync"
	repoModel "virtual_casino/internal/repository/play_stats_repo/model"
)

// DefaultWindowSize Размер окна последних розыгрышей
const DefaultWindowSize = 100

// Game - название игры в статистике
type Game string

const (
	GameSlot    Game = "slot"
	GameScratch Game = "scratch"
)

// StatsRepo Статистика розыгрышей, не сохраняется между запусками
type StatsRepo struct {
	mtx        sync.RWMutex
	windowSize int
	games      map[Game]*repoModel.GameStats
}

// NewPlayStatsRepository Конструктор. windowSize <= 0 заменяется на DefaultWindowSize
func NewPlayStatsRepository(windowSize int) *StatsRepo {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &StatsRepo{
		windowSize: windowSize,
		games:      make(map[Game]*repoModel.GameStats),
	}
}

// Record Учитывает один розыгрыш
func (r *StatsRepo) Record(game Game, bet, payout int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	st, ok := r.games[game]
	if !ok {
		st = &repoModel.GameStats{WindowSize: r.windowSize}
		r.games[game] = st
	}

	st.Plays++
	if payout > 0 {
		st.Wins++
	}
	st.TotalBet += bet
	st.TotalPaid += payout
	st.RTP = rtp(st.TotalBet, st.TotalPaid)

	// Добавляем розыгрыш в окно
	st.Window = append(st.Window, repoModel.PlayResult{Bet: bet, Payout: payout})
	if len(st.Window) > st.WindowSize {
		st.Window = st.Window[1:]
	}

	var windowBet, windowPaid int
	for _, p := range st.Window {
		windowBet += p.Bet
		windowPaid += p.Payout
	}
	st.WindowRTP = rtp(windowBet, windowPaid)
}

// GameStats Копия статистики игры. Для игры без розыгрышей - нулевая статистика
func (r *StatsRepo) GameStats(game Game) repoModel.GameStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	st, ok := r.games[game]
	if !ok {
		return repoModel.GameStats{WindowSize: r.windowSize}
	}
	out := *st
	out.Window = append([]repoModel.PlayResult(nil), st.Window...)
	return out
}

// Reset Обнуляет статистику всех игр
func (r *StatsRepo) Reset() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.games = make(map[Game]*repoModel.GameStats)
}

func rtp(bet, paid int) float64 {
	if bet <= 0 {
		return 0
	}
	return float64(paid) / float64(bet) * 100
}
