package play_stats_repo

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_Totals(t *testing.T) {
	r := NewPlayStatsRepository(10)

	r.Record(GameSlot, 10, 0)
	r.Record(GameSlot, 10, 50)
	r.Record(GameScratch, 20, 40)

	slot := r.GameStats(GameSlot)
	assert.Equal(t, 2, slot.Plays)
	assert.Equal(t, 1, slot.Wins)
	assert.Equal(t, 20, slot.TotalBet)
	assert.Equal(t, 50, slot.TotalPaid)
	assert.InDelta(t, 250.0, slot.RTP, 1e-9)
	assert.InDelta(t, 250.0, slot.WindowRTP, 1e-9)

	scratch := r.GameStats(GameScratch)
	assert.Equal(t, 1, scratch.Plays)
	assert.InDelta(t, 200.0, scratch.RTP, 1e-9)
}

func TestRecord_WindowSlides(t *testing.T) {
	r := NewPlayStatsRepository(2)

	r.Record(GameSlot, 10, 100)
	r.Record(GameSlot, 10, 0)
	r.Record(GameSlot, 10, 0)

	st := r.GameStats(GameSlot)
	require.Len(t, st.Window, 2)
	assert.Zero(t, st.WindowRTP)
	assert.InDelta(t, 100.0/30.0*100, st.RTP, 1e-9)
}

func TestGameStats_EmptyAndCopy(t *testing.T) {
	r := NewPlayStatsRepository(0)

	empty := r.GameStats(GameScratch)
	assert.Zero(t, empty.Plays)
	assert.Zero(t, empty.RTP)
	assert.Equal(t, DefaultWindowSize, empty.WindowSize)

	r.Record(GameScratch, 20, 0)
	st := r.GameStats(GameScratch)
	st.Window[0].Payout = 999
	assert.Zero(t, r.GameStats(GameScratch).Window[0].Payout)

	r.Reset()
	assert.Zero(t, r.GameStats(GameScratch).Plays)
}

func TestRecord_Concurrent(t *testing.T) {
	r := NewPlayStatsRepository(50)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Record(GameSlot, 1, 1)
			}
		}()
	}
	wg.Wait()

	st := r.GameStats(GameSlot)
	assert.Equal(t, 800, st.Plays)
	assert.Equal(t, 800, st.TotalBet)
	assert.Len(t, st.Window, 50)
}
