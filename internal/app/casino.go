package app

import (
	"context"
	"sync"
	"virtual_casino/internal/ledger"
	"virtual_casino/internal/model"
	"virtual_casino/internal/repository/play_stats_repo"
	"virtual_casino/internal/service"

	"go.uber.org/zap"
)

// Casino Верхний контроллер: владеет балансом и темой,
// передает баланс в сессии игр. Розыгрыши выполняются по одному
type Casino struct {
	mtx sync.Mutex

	ledger  *ledger.Ledger
	theme   model.Theme
	symbols []model.Symbol

	slotServ    service.SlotService
	scratchServ service.ScratchService
	persistServ service.PersistenceService
	statsRepo   *play_stats_repo.StatsRepo

	logger *zap.Logger
}

type CasinoDeps struct {
	InitialBalance int
	Symbols        []model.Symbol

	SlotServ    service.SlotService
	ScratchServ service.ScratchService
	PersistServ service.PersistenceService
	StatsRepo   *play_stats_repo.StatsRepo

	Logger *zap.Logger
}

func NewCasino(deps CasinoDeps) *Casino {
	statsRepo := deps.StatsRepo
	if statsRepo == nil {
		statsRepo = play_stats_repo.NewPlayStatsRepository(play_stats_repo.DefaultWindowSize)
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Casino{
		ledger:      ledger.New(deps.InitialBalance),
		theme:       model.DefaultTheme,
		symbols:     append([]model.Symbol(nil), deps.Symbols...),
		slotServ:    deps.SlotServ,
		scratchServ: deps.ScratchServ,
		persistServ: deps.PersistServ,
		statsRepo:   statsRepo,
		logger:      logger,
	}
}

// Balance Текущий баланс. Ждет окончания текущего розыгрыша
func (c *Casino) Balance() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.ledger.Balance()
}

// Stats Баланс и накопленная статистика
func (c *Casino) Stats() model.Stats {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.ledger.Stats()
}

func (c *Casino) Theme() model.Theme {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.theme
}

// ToggleTheme Переключает тему и возвращает новую
func (c *Casino) ToggleTheme() model.Theme {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.theme = c.theme.Toggle()
	return c.theme
}

func (c *Casino) ScratchCost() int {
	return c.scratchServ.Cost()
}

func (c *Casino) Symbols() []model.Symbol {
	return append([]model.Symbol(nil), c.symbols...)
}

// PlaySlot Один спин слота
func (c *Casino) PlaySlot(ctx context.Context, bet int) (*model.SlotResult, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	res, err := c.slotServ.Play(ctx, c.ledger, model.SlotSpin{Bet: bet})
	if err != nil {
		return nil, err
	}
	c.statsRepo.Record(play_stats_repo.GameSlot, bet, res.Winnings)
	return res, nil
}

// PlayScratch Стирает текущую карту
func (c *Casino) PlayScratch(ctx context.Context) (*model.ScratchResult, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	res, err := c.scratchServ.Play(ctx, c.ledger)
	if err != nil {
		return nil, err
	}
	c.statsRepo.Record(play_stats_repo.GameScratch, res.Cost, res.Winnings)
	return res, nil
}

// ResetScratchCard Новая карта, баланс не меняется
func (c *Casino) ResetScratchCard() {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.scratchServ.NewCard()
}

// ScratchReady Можно ли стирать текущую карту
func (c *Casino) ScratchReady() bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return !c.scratchServ.Scratched()
}

// PlayStats Статистика розыгрышей по играм
func (c *Casino) PlayStats() []model.PlayStats {
	games := []play_stats_repo.Game{play_stats_repo.GameSlot, play_stats_repo.GameScratch}
	out := make([]model.PlayStats, 0, len(games))
	for _, g := range games {
		st := c.statsRepo.GameStats(g)
		out = append(out, model.PlayStats{
			Game:      string(g),
			Plays:     st.Plays,
			Wins:      st.Wins,
			Wagered:   st.TotalBet,
			Paid:      st.TotalPaid,
			RTP:       st.RTP,
			WindowRTP: st.WindowRTP,
		})
	}
	return out
}

// LoadState Загружает сохранение. Ошибки чтения заменяются значениями
// по умолчанию, но отмененный ctx оставляет текущее состояние нетронутым
func (c *Casino) LoadState(ctx context.Context) (model.PersistedState, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if err := ctx.Err(); err != nil {
		return c.snapshot(), err
	}
	state := c.persistServ.Load(ctx)
	if err := ctx.Err(); err != nil {
		c.logger.Warn("state load cancelled, keeping current state", zap.Error(err))
		return c.snapshot(), err
	}

	c.ledger.Restore(state)
	c.theme = state.Theme
	c.statsRepo.Reset()

	c.logger.Debug("ledger restored", zap.Int("balance", state.Balance))
	return state, nil
}

// SaveState Сохраняет баланс, статистику и тему. Возвращает то, что было записано
func (c *Casino) SaveState(ctx context.Context) (model.PersistedState, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	state := c.snapshot()
	return state, c.persistServ.Save(ctx, state)
}

// snapshot текущее состояние, вызывается под c.mtx
func (c *Casino) snapshot() model.PersistedState {
	stats := c.ledger.Stats()
	return model.PersistedState{
		Balance:   stats.Balance,
		TotalWon:  stats.TotalWon,
		TotalLost: stats.TotalLost,
		Theme:     c.theme,
	}
}
