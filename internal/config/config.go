package config

import (
	"virtual_casino/internal/model"

	"github.com/joho/godotenv"
)

// Load Загружает переменные окружения из .env файла
func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// GameConfig Параметры игр
type GameConfig interface {
	Symbols() []model.Symbol
	InitialBalance() int
	ScratchCost() int
	SlotPayouts() SlotPayouts
	ScratchPayouts() ScratchPayouts
}

// SlotPayouts Множители слота в кратности ставки
type SlotPayouts struct {
	AllMatch  int
	PairMatch int
}

// ScratchPayouts Множители скретч-карты в кратности стоимости
type ScratchPayouts struct {
	Jackpot int
	Big     int
	Good    int
	Small   int
}

const (
	StorageFile     = "file"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

type StorageConfig interface {
	Driver() string
	Path() string
	DSN() string
	Profile() string
}

type HTTPConfig interface {
	Address() string
}

type LoggerConfig interface {
	Level() string
	File() string
	MaxSizeMB() int
}

type RNGConfig interface {
	// Seed Возвращает false, если сид не задан
	Seed() (uint64, bool)
}
