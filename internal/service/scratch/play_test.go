package scratch_test

import (
	"context"
	"testing"
	"virtual_casino/internal/ledger"
	"virtual_casino/internal/model"
	"virtual_casino/internal/rng"
	"virtual_casino/internal/service"
	"virtual_casino/internal/service/payout"
	"virtual_casino/internal/service/scratch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const cost = 20

type fixedSource struct {
	symbols []model.Symbol
	draws   int
}

func (f *fixedSource) Draw() model.Symbol {
	s := f.symbols[f.draws%len(f.symbols)]
	f.draws++
	return s
}

func (f *fixedSource) DrawMany(n int) []model.Symbol {
	out := make([]model.Symbol, n)
	for i := range out {
		out[i] = f.Draw()
	}
	return out
}

func (f *fixedSource) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = n - 1 - i
	}
	return p
}

// recordingLedger записывает каждое изменение баланса
type recordingLedger struct {
	*ledger.Ledger
	calls []call
}

type call struct {
	delta int
	isWin bool
}

func (r *recordingLedger) ApplyOutcome(delta int, isWin bool) {
	r.calls = append(r.calls, call{delta, isWin})
	r.Ledger.ApplyOutcome(delta, isWin)
}

var _ service.Ledger = (*recordingLedger)(nil)

func newService(symbols ...model.Symbol) (service.ScratchService, *fixedSource) {
	src := &fixedSource{symbols: symbols}
	return scratch.NewScratchService(src, payout.DefaultScratchTable(), cost, zap.NewNop()), src
}

func TestPlay_Jackpot(t *testing.T) {
	svc, _ := newService(model.Seven)
	l := &recordingLedger{Ledger: ledger.New(100)}

	res, err := svc.Play(context.Background(), l)
	require.NoError(t, err)

	// Сначала списание 20 (баланс 80), затем выигрыш 2000 (баланс 2080)
	assert.Equal(t, []call{{-20, false}, {2000, true}}, l.calls)
	assert.Equal(t, model.TierJackpot, res.Tier)
	assert.Equal(t, 9, res.MaxCount)
	assert.Equal(t, 2000, res.Winnings)
	assert.Equal(t, 2080, res.Balance)
	assert.Equal(t, model.Stats{Balance: 2080, TotalWon: 2000, TotalLost: 20}, l.Stats())
}

func TestPlay_NoWin(t *testing.T) {
	// Пара — известная особенность: не выигрывает
	svc, _ := newService(model.Cherry, model.Cherry, model.Diamond, model.Diamond, model.Bell, model.Bell, model.Lemon, model.Lemon, model.Seven)
	l := &recordingLedger{Ledger: ledger.New(100)}

	res, err := svc.Play(context.Background(), l)
	require.NoError(t, err)

	assert.Equal(t, []call{{-20, false}}, l.calls)
	assert.Equal(t, model.TierNoWin, res.Tier)
	assert.Equal(t, 2, res.MaxCount)
	assert.Zero(t, res.Winnings)
	assert.Equal(t, model.Stats{Balance: 80, TotalLost: 20}, l.Stats())
}

func TestPlay_GridAndRevealOrder(t *testing.T) {
	symbols := []model.Symbol{
		model.Cherry, model.Diamond, model.Bell,
		model.Lemon, model.Seven, model.Cherry,
		model.Diamond, model.Bell, model.Cherry,
	}
	svc, _ := newService(symbols...)
	l := ledger.New(100)

	res, err := svc.Play(context.Background(), l)
	require.NoError(t, err)

	assert.Equal(t, [3][3]model.Symbol{
		{model.Cherry, model.Diamond, model.Bell},
		{model.Lemon, model.Seven, model.Cherry},
		{model.Diamond, model.Bell, model.Cherry},
	}, res.Grid)
	assert.Equal(t, model.TierSmall, res.Tier)
	assert.Equal(t, 40, res.Winnings)

	require.Len(t, res.RevealOrder, 9)
	assert.Equal(t, model.Position{Row: 2, Col: 2}, res.RevealOrder[0])
	assert.Equal(t, model.Position{Row: 0, Col: 0}, res.RevealOrder[8])
}

func TestPlay_AlreadyScratchedUntilNewCard(t *testing.T) {
	svc, src := newService(model.Seven)
	l := ledger.New(100)
	ctx := context.Background()

	_, err := svc.Play(ctx, l)
	require.NoError(t, err)
	assert.True(t, svc.Scratched())
	balance := l.Balance()

	_, err = svc.Play(ctx, l)
	require.ErrorIs(t, err, model.ErrCardAlreadyScratched)
	assert.Equal(t, balance, l.Balance())
	assert.Equal(t, 9, src.draws)

	// Новая карта не трогает баланс
	svc.NewCard()
	assert.False(t, svc.Scratched())
	assert.Equal(t, balance, l.Balance())

	_, err = svc.Play(ctx, l)
	require.NoError(t, err)
}

func TestPlay_InsufficientBalance(t *testing.T) {
	svc, src := newService(model.Seven)
	l := ledger.New(cost - 1)

	_, err := svc.Play(context.Background(), l)
	require.ErrorIs(t, err, model.ErrInsufficientBalance)
	assert.Zero(t, src.draws)
	assert.False(t, svc.Scratched())

	// Ровно стоимость карты — можно играть
	l = ledger.New(cost)
	_, err = svc.Play(context.Background(), l)
	require.NoError(t, err)
}

func TestPlay_ConservationWithSeededSource(t *testing.T) {
	src, err := rng.NewSeeded(model.DefaultSymbols(), 99)
	require.NoError(t, err)
	svc := scratch.NewScratchService(src, payout.DefaultScratchTable(), cost, zap.NewNop())
	l := ledger.New(1000)

	for i := 0; i < 300 && l.Balance() >= cost; i++ {
		res, err := svc.Play(context.Background(), l)
		require.NoError(t, err)
		svc.NewCard()

		if res.MaxCount <= 2 {
			assert.Zero(t, res.Winnings)
		}
		s := l.Stats()
		require.Equal(t, 1000+s.TotalWon-s.TotalLost, s.Balance)
	}
}
