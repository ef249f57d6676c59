package app

import (
	"context"
	casinoAPI "virtual_casino/internal/api/casino"
	"virtual_casino/internal/config"
	"virtual_casino/internal/config/env"
	"virtual_casino/internal/logger"
	"virtual_casino/internal/middleware"
	"virtual_casino/internal/repository"
	"virtual_casino/internal/repository/file_repo"
	"virtual_casino/internal/repository/pg_repo"
	"virtual_casino/internal/repository/play_stats_repo"
	"virtual_casino/internal/repository/sqlite_repo"
	"virtual_casino/internal/rng"
	"virtual_casino/internal/service"
	"virtual_casino/internal/service/payout"
	"virtual_casino/internal/service/persistence"
	"virtual_casino/internal/service/scratch"
	"virtual_casino/internal/service/slot"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const gameConfigPath = "config.yaml"

type ServiceProvider struct {
	// Configs
	gameCfg    config.GameConfig
	storageCfg config.StorageConfig
	httpCfg    config.HTTPConfig
	loggerCfg  config.LoggerConfig
	rngCfg     config.RNGConfig

	logger *zap.Logger

	//TXManager
	txManager trm.Manager

	// Database
	dbClient *pgxpool.Pool

	// State bits
	stateRepo   repository.StateRepository
	statsRepo   *play_stats_repo.StatsRepo
	persistServ service.PersistenceService

	// Game bits
	source      *rng.Source
	slotServ    service.SlotService
	scratchServ service.ScratchService
	casino      *Casino

	casinoHand *casinoAPI.Handler
	router     chi.Router

	closers []func() error
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML(gameConfigPath)
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) StorageCfg() config.StorageConfig {
	if sp.storageCfg == nil {
		cfg, err := env.NewStorageConfig()
		if err != nil {
			panic("failed to get storage config: " + err.Error())
		}
		sp.storageCfg = cfg
	}
	return sp.storageCfg
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) LoggerCfg() config.LoggerConfig {
	if sp.loggerCfg == nil {
		cfg, err := env.NewLoggerConfig()
		if err != nil {
			panic("failed to get logger config: " + err.Error())
		}
		sp.loggerCfg = cfg
	}
	return sp.loggerCfg
}

func (sp *ServiceProvider) RNGCfg() config.RNGConfig {
	if sp.rngCfg == nil {
		cfg, err := env.NewRNGConfig()
		if err != nil {
			panic("failed to get rng config: " + err.Error())
		}
		sp.rngCfg = cfg
	}
	return sp.rngCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		l, err := logger.New(sp.LoggerCfg())
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.logger = l
	}
	return sp.logger
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.StorageCfg().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		err = pg_repo.EnsureSchema(ctx, dbc)
		if err != nil {
			panic("failed to apply db schema: " + err.Error())
		}
		sp.dbClient = dbc
		sp.closers = append(sp.closers, func() error {
			dbc.Close()
			return nil
		})
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

// StateRepository Хранилище сохранения, выбирается по STATE_DRIVER
func (sp *ServiceProvider) StateRepository(ctx context.Context) repository.StateRepository {
	if sp.stateRepo == nil {
		cfg := sp.StorageCfg()
		switch cfg.Driver() {
		case config.StorageSQLite:
			store, err := sqlite_repo.Open(cfg.Path(), cfg.Profile())
			if err != nil {
				panic("failed to open sqlite store: " + err.Error())
			}
			sp.closers = append(sp.closers, store.Close)
			sp.stateRepo = store
		case config.StoragePostgres:
			sp.stateRepo = pg_repo.NewStateRepository(sp.DBClient(ctx), sp.TXManager(ctx), cfg.Profile())
		default:
			sp.stateRepo = file_repo.NewStateRepository(cfg.Path())
		}
		sp.Logger().Info("state storage selected", zap.String("driver", cfg.Driver()))
	}
	return sp.stateRepo
}

func (sp *ServiceProvider) PlayStatsRepository() *play_stats_repo.StatsRepo {
	if sp.statsRepo == nil {
		sp.statsRepo = play_stats_repo.NewPlayStatsRepository(play_stats_repo.DefaultWindowSize)
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) PersistenceService(ctx context.Context) service.PersistenceService {
	if sp.persistServ == nil {
		sp.persistServ = persistence.NewPersistenceService(
			sp.StateRepository(ctx),
			sp.GameCfg().InitialBalance(),
			sp.Logger().Named("persistence"),
		)
	}
	return sp.persistServ
}

// SymbolSource Общий генератор символов. С RNG_SEED результаты воспроизводимы
func (sp *ServiceProvider) SymbolSource() *rng.Source {
	if sp.source == nil {
		var (
			src *rng.Source
			err error
		)
		if seed, ok := sp.RNGCfg().Seed(); ok {
			src, err = rng.NewSeeded(sp.GameCfg().Symbols(), seed)
			sp.Logger().Info("seeded rng", zap.Uint64("seed", seed))
		} else {
			src, err = rng.New(sp.GameCfg().Symbols())
		}
		if err != nil {
			panic("failed to create symbol source: " + err.Error())
		}
		sp.source = src
	}
	return sp.source
}

func (sp *ServiceProvider) SlotService() service.SlotService {
	if sp.slotServ == nil {
		p := sp.GameCfg().SlotPayouts()
		sp.slotServ = slot.NewSlotService(
			sp.SymbolSource(),
			payout.SlotTable{AllMatch: p.AllMatch, PairMatch: p.PairMatch},
			sp.Logger().Named("slot"),
		)
	}
	return sp.slotServ
}

func (sp *ServiceProvider) ScratchService() service.ScratchService {
	if sp.scratchServ == nil {
		p := sp.GameCfg().ScratchPayouts()
		sp.scratchServ = scratch.NewScratchService(
			sp.SymbolSource(),
			payout.ScratchTable{Jackpot: p.Jackpot, Big: p.Big, Good: p.Good, Small: p.Small},
			sp.GameCfg().ScratchCost(),
			sp.Logger().Named("scratch"),
		)
	}
	return sp.scratchServ
}

func (sp *ServiceProvider) Casino(ctx context.Context) *Casino {
	if sp.casino == nil {
		sp.casino = NewCasino(CasinoDeps{
			InitialBalance: sp.GameCfg().InitialBalance(),
			Symbols:        sp.SymbolSource().Symbols(),
			SlotServ:       sp.SlotService(),
			ScratchServ:    sp.ScratchService(),
			PersistServ:    sp.PersistenceService(ctx),
			StatsRepo:      sp.PlayStatsRepository(),
			Logger:         sp.Logger().Named("casino"),
		})
	}
	return sp.casino
}

func (sp *ServiceProvider) CasinoHandler(ctx context.Context) *casinoAPI.Handler {
	if sp.casinoHand == nil {
		sp.casinoHand = casinoAPI.NewHandler(casinoAPI.HandlerDeps{
			Casino: sp.Casino(ctx),
			Logger: sp.Logger().Named("http"),
		})
	}
	return sp.casinoHand
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(middleware.Logger(sp.Logger().Named("http")))
		r.Use(chimw.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		casinoHandler := sp.CasinoHandler(ctx)
		r.Route("/casino", func(rr chi.Router) {
			rr.Get("/balance", casinoHandler.Balance)
			rr.Get("/stats", casinoHandler.Stats)
			rr.Post("/slot/spin", casinoHandler.Spin)
			rr.Post("/scratch/play", casinoHandler.Scratch)
			rr.Post("/scratch/new-card", casinoHandler.NewCard)
			rr.Post("/theme/toggle", casinoHandler.ToggleTheme)
			rr.Post("/state/save", casinoHandler.Save)
			rr.Post("/state/load", casinoHandler.Load)
		})

		sp.router = r
	}
	return sp.router
}

// Close Освобождает соединения с хранилищем
func (sp *ServiceProvider) Close() {
	for i := len(sp.closers) - 1; i >= 0; i-- {
		if err := sp.closers[i](); err != nil && sp.logger != nil {
			sp.logger.Warn("close failed", zap.Error(err))
		}
	}
	sp.closers = nil
}
