package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"virtual_casino/internal/config"
	"virtual_casino/internal/model"

	"gopkg.in/yaml.v3"
)

const (
	defaultScratchCost = 20
)

type gameYAML struct {
	Game struct {
		InitialBalance int      `yaml:"initial_balance"`
		Symbols        []string `yaml:"symbols"`
		Slot           struct {
			AllMatch  int `yaml:"all_match"`
			PairMatch int `yaml:"pair_match"`
		} `yaml:"slot"`
		Scratch struct {
			Cost    int `yaml:"cost"`
			Jackpot int `yaml:"jackpot"`
			Big     int `yaml:"big"`
			Good    int `yaml:"good"`
			Small   int `yaml:"small"`
		} `yaml:"scratch"`
	} `yaml:"game"`
}

type gameConfig struct {
	symbols        []model.Symbol
	initialBalance int
	scratchCost    int
	slot           config.SlotPayouts
	scratch        config.ScratchPayouts
}

// DefaultGameConfig Параметры игр по умолчанию
func DefaultGameConfig() config.GameConfig {
	return &gameConfig{
		symbols:        model.DefaultSymbols(),
		initialBalance: model.InitialMoney,
		scratchCost:    defaultScratchCost,
		slot:           config.SlotPayouts{AllMatch: 5, PairMatch: 2},
		scratch:        config.ScratchPayouts{Jackpot: 100, Big: 10, Good: 5, Small: 2},
	}
}

// NewGameConfigFromYAML Читает секцию game из YAML файла.
// Если файла нет, возвращаются значения по умолчанию.
// Незаданные поля берутся из значений по умолчанию
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultGameConfig(), nil
		}
		return nil, fmt.Errorf("read game config: %w", err)
	}
	return parseGameConfig(raw)
}

func parseGameConfig(raw []byte) (config.GameConfig, error) {
	var doc gameYAML
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode game config: %w", err)
	}

	cfg := DefaultGameConfig().(*gameConfig)
	g := doc.Game

	if len(g.Symbols) > 0 {
		cfg.symbols = make([]model.Symbol, len(g.Symbols))
		for i, s := range g.Symbols {
			cfg.symbols[i] = model.Symbol(s)
		}
	}
	if g.InitialBalance != 0 {
		cfg.initialBalance = g.InitialBalance
	}
	if g.Scratch.Cost != 0 {
		cfg.scratchCost = g.Scratch.Cost
	}
	cfg.slot.AllMatch = orDefault(g.Slot.AllMatch, cfg.slot.AllMatch)
	cfg.slot.PairMatch = orDefault(g.Slot.PairMatch, cfg.slot.PairMatch)
	cfg.scratch.Jackpot = orDefault(g.Scratch.Jackpot, cfg.scratch.Jackpot)
	cfg.scratch.Big = orDefault(g.Scratch.Big, cfg.scratch.Big)
	cfg.scratch.Good = orDefault(g.Scratch.Good, cfg.scratch.Good)
	cfg.scratch.Small = orDefault(g.Scratch.Small, cfg.scratch.Small)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *gameConfig) validate() error {
	if len(c.symbols) == 0 {
		return errors.New("symbol set is empty")
	}
	seen := make(map[model.Symbol]struct{}, len(c.symbols))
	for _, s := range c.symbols {
		if s == "" {
			return errors.New("symbol must not be empty")
		}
		if _, ok := seen[s]; ok {
			return fmt.Errorf("duplicate symbol %q", s)
		}
		seen[s] = struct{}{}
	}
	if c.initialBalance <= 0 {
		return fmt.Errorf("initial balance must be positive, got %d", c.initialBalance)
	}
	if c.scratchCost <= 0 {
		return fmt.Errorf("scratch cost must be positive, got %d", c.scratchCost)
	}
	for name, v := range map[string]int{
		"slot.all_match":  c.slot.AllMatch,
		"slot.pair_match": c.slot.PairMatch,
		"scratch.jackpot": c.scratch.Jackpot,
		"scratch.big":     c.scratch.Big,
		"scratch.good":    c.scratch.Good,
		"scratch.small":   c.scratch.Small,
	} {
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, v)
		}
	}
	return nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func (c *gameConfig) Symbols() []model.Symbol {
	out := make([]model.Symbol, len(c.symbols))
	copy(out, c.symbols)
	return out
}

func (c *gameConfig) InitialBalance() int {
	return c.initialBalance
}

func (c *gameConfig) ScratchCost() int {
	return c.scratchCost
}

func (c *gameConfig) SlotPayouts() config.SlotPayouts {
	return c.slot
}

func (c *gameConfig) ScratchPayouts() config.ScratchPayouts {
	return c.scratch
}
