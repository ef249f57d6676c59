// Package rng выдает символы из фиксированного набора с равномерным распределением.
package rng

import (
	"errors"
	"math/rand/v2"
	"virtual_casino/internal/model"
)

// RNG - источник случайных целых чисел.
// Intn возвращает число в диапазоне [0, n)
type RNG interface {
	Intn(n int) int
}

type randRNG struct {
	r *rand.Rand
}

func (g *randRNG) Intn(n int) int {
	return g.r.IntN(n)
}

type globalRNG struct{}

func (globalRNG) Intn(n int) int {
	return rand.IntN(n)
}

// Source Источник символов
type Source struct {
	symbols []model.Symbol
	rng     RNG
}

// New Создает источник поверх глобального генератора (автосид)
func New(symbols []model.Symbol) (*Source, error) {
	return NewFromIntn(symbols, globalRNG{})
}

// NewSeeded Создает детерминированный источник с фиксированным сидом
func NewSeeded(symbols []model.Symbol, seed uint64) (*Source, error) {
	return NewFromIntn(symbols, &randRNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))})
}

// NewFromIntn Создает источник с подменяемым генератором
func NewFromIntn(symbols []model.Symbol, rng RNG) (*Source, error) {
	if len(symbols) == 0 {
		return nil, errors.New("symbol set is empty")
	}
	if rng == nil {
		return nil, errors.New("rng is nil")
	}

	seen := make(map[model.Symbol]struct{}, len(symbols))
	for _, s := range symbols {
		if _, ok := seen[s]; ok {
			return nil, errors.New("duplicate symbol " + string(s))
		}
		seen[s] = struct{}{}
	}

	set := make([]model.Symbol, len(symbols))
	copy(set, symbols)

	return &Source{
		symbols: set,
		rng:     rng,
	}, nil
}

// Draw Случайный символ из набора
func (s *Source) Draw() model.Symbol {
	return s.symbols[s.rng.Intn(len(s.symbols))]
}

// DrawMany n независимых символов (с возвращением)
func (s *Source) DrawMany(n int) []model.Symbol {
	if n <= 0 {
		return []model.Symbol{}
	}
	out := make([]model.Symbol, n)
	for i := range out {
		out[i] = s.Draw()
	}
	return out
}

// Perm Случайная перестановка чисел [0, n) (Фишер-Йетс)
func (s *Source) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// Symbols Копия набора символов
func (s *Source) Symbols() []model.Symbol {
	out := make([]model.Symbol, len(s.symbols))
	copy(out, s.symbols)
	return out
}
