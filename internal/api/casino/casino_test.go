package casino_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"virtual_casino/internal/api/casino"
	"virtual_casino/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCasino - заглушка игрового контроллера
type fakeCasino struct {
	balance  int
	theme    model.Theme
	ready    bool
	spinErr  error
	saveErr  error
	lastBet  int
	newCards int
}

func (f *fakeCasino) Balance() int { return f.balance }
func (f *fakeCasino) Stats() model.Stats {
	return model.Stats{Balance: f.balance, TotalWon: 50, TotalLost: 20}
}
func (f *fakeCasino) PlayStats() []model.PlayStats {
	return []model.PlayStats{{Game: "slot", Plays: 1, Wagered: 10, Paid: 50, RTP: 500}}
}
func (f *fakeCasino) Theme() model.Theme { return f.theme }
func (f *fakeCasino) ToggleTheme() model.Theme {
	f.theme = f.theme.Toggle()
	return f.theme
}
func (f *fakeCasino) ScratchCost() int   { return 20 }
func (f *fakeCasino) ScratchReady() bool { return f.ready }

func (f *fakeCasino) PlaySlot(_ context.Context, bet int) (*model.SlotResult, error) {
	f.lastBet = bet
	if f.spinErr != nil {
		return nil, f.spinErr
	}
	return &model.SlotResult{
		Symbols:  [3]model.Symbol{model.Seven, model.Seven, model.Seven},
		Tier:     model.TierAllMatch,
		Winnings: bet * 5,
		Delta:    bet * 5,
		Balance:  f.balance + bet*5,
	}, nil
}

func (f *fakeCasino) PlayScratch(context.Context) (*model.ScratchResult, error) {
	if !f.ready {
		return nil, model.ErrCardAlreadyScratched
	}
	f.ready = false
	return &model.ScratchResult{
		Tier:        model.TierNoWin,
		MaxCount:    2,
		Cost:        20,
		Balance:     f.balance - 20,
		RevealOrder: []model.Position{{Row: 1, Col: 2}},
	}, nil
}

func (f *fakeCasino) ResetScratchCard() {
	f.newCards++
	f.ready = true
}

func (f *fakeCasino) LoadState(ctx context.Context) (model.PersistedState, error) {
	if err := ctx.Err(); err != nil {
		return model.PersistedState{}, err
	}
	return model.PersistedState{Balance: 700, TotalWon: 1, TotalLost: 2, Theme: model.ThemeDark}, nil
}

func (f *fakeCasino) SaveState(context.Context) (model.PersistedState, error) {
	state := model.PersistedState{Balance: f.balance, TotalWon: 50, TotalLost: 20, Theme: f.theme}
	return state, f.saveErr
}

func newRouter(c *fakeCasino) http.Handler {
	h := casino.NewHandler(casino.HandlerDeps{Casino: c})
	r := chi.NewRouter()
	r.Route("/casino", func(rr chi.Router) {
		rr.Get("/balance", h.Balance)
		rr.Get("/stats", h.Stats)
		rr.Post("/slot/spin", h.Spin)
		rr.Post("/scratch/play", h.Scratch)
		rr.Post("/scratch/new-card", h.NewCard)
		rr.Post("/theme/toggle", h.ToggleTheme)
		rr.Post("/state/save", h.Save)
		rr.Post("/state/load", h.Load)
	})
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestHandler_BalanceAndStats(t *testing.T) {
	h := newRouter(&fakeCasino{balance: 1030, theme: model.ThemeLight})

	rec := do(t, h, http.MethodGet, "/casino/balance", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"balance":1030}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/casino/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"balance":1030,"total_won":50,"total_lost":20,"theme":"light",
		"games":[{"game":"slot","plays":1,"wins":0,"wagered":10,"paid":50,"rtp":500,"window_rtp":0}]
	}`, rec.Body.String())
}

func TestHandler_Spin(t *testing.T) {
	c := &fakeCasino{balance: 1000}
	h := newRouter(c)

	rec := do(t, h, http.MethodPost, "/casino/slot/spin", `{"bet":10}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, c.lastBet)
	assert.JSONEq(t, `{"symbols":["seven","seven","seven"],"tier":"all_match","winnings":50,"delta":50,"balance":1050}`, rec.Body.String())
}

func TestHandler_SpinErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"not a number", `{"bet":"abc"}`, nil, http.StatusBadRequest},
		{"empty body", ``, nil, http.StatusBadRequest},
		{"invalid bet", `{"bet":0}`, model.ErrInvalidBet, http.StatusBadRequest},
		{"insufficient", `{"bet":1001}`, model.ErrInsufficientBalance, http.StatusPaymentRequired},
		{"unexpected", `{"bet":1}`, errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newRouter(&fakeCasino{balance: 1000, spinErr: tt.err})

			rec := do(t, h, http.MethodPost, "/casino/slot/spin", tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestHandler_ScratchFlow(t *testing.T) {
	c := &fakeCasino{balance: 100, ready: true}
	h := newRouter(c)

	rec := do(t, h, http.MethodPost, "/casino/scratch/play", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reveal_order":[{"row":1,"col":2}]`)

	rec = do(t, h, http.MethodPost, "/casino/scratch/play", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, "/casino/scratch/new-card", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"cost":20,"ready":true}`, rec.Body.String())
	assert.Equal(t, 1, c.newCards)
}

func TestHandler_ThemeAndState(t *testing.T) {
	c := &fakeCasino{balance: 900, theme: model.ThemeLight}
	h := newRouter(c)

	rec := do(t, h, http.MethodPost, "/casino/theme/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"theme":"dark"}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/casino/state/save", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"balance":900,"total_won":50,"total_lost":20,"theme":"dark"}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/casino/state/load", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"balance":700,"total_won":1,"total_lost":2,"theme":"dark"}`, rec.Body.String())

	c.saveErr = fmt.Errorf("%w: disk full", model.ErrPersistenceWrite)
	rec = do(t, h, http.MethodPost, "/casino/state/save", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandler_LoadCancelled(t *testing.T) {
	h := newRouter(&fakeCasino{balance: 900})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/casino/state/load", nil).WithContext(ctx))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
