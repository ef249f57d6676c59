package casino

import (
	"context"
	"errors"
	"net/http"
	dto "virtual_casino/internal/api/dto/casino"
	"virtual_casino/internal/converter"
	"virtual_casino/internal/model"
	"virtual_casino/pkg/req"
	"virtual_casino/pkg/resp"

	"go.uber.org/zap"
)

// Casino - то, что handler'у нужно от игрового контроллера
type Casino interface {
	Balance() int
	Stats() model.Stats
	PlayStats() []model.PlayStats
	Theme() model.Theme
	ToggleTheme() model.Theme
	ScratchCost() int
	ScratchReady() bool
	PlaySlot(ctx context.Context, bet int) (*model.SlotResult, error)
	PlayScratch(ctx context.Context) (*model.ScratchResult, error)
	ResetScratchCard()
	LoadState(ctx context.Context) (model.PersistedState, error)
	SaveState(ctx context.Context) (model.PersistedState, error)
}

type HandlerDeps struct {
	Casino Casino
	Logger *zap.Logger
}

type Handler struct {
	casino Casino
	logger *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{casino: deps.Casino, logger: logger}
}

func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: h.casino.Balance()})
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	response := converter.ToStatsResponse(h.casino.Stats(), h.casino.Theme(), h.casino.PlayStats())

	resp.WriteJSONResponse(w, http.StatusOK, response)
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SlotSpinRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, model.ErrInvalidBet.Error())
		return
	}

	spin := converter.ToSlotSpin(payload)
	result, err := h.casino.PlaySlot(r.Context(), spin.Bet)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSlotSpinResponse(*result))
}

func (h *Handler) Scratch(w http.ResponseWriter, r *http.Request) {
	result, err := h.casino.PlayScratch(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToScratchResponse(*result))
}

func (h *Handler) NewCard(w http.ResponseWriter, r *http.Request) {
	h.casino.ResetScratchCard()

	resp.WriteJSONResponse(w, http.StatusOK, dto.CardResponse{
		Cost:  h.casino.ScratchCost(),
		Ready: h.casino.ScratchReady(),
	})
}

func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	theme := h.casino.ToggleTheme()

	resp.WriteJSONResponse(w, http.StatusOK, dto.ThemeResponse{Theme: string(theme)})
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	state, err := h.casino.SaveState(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(state))
}

func (h *Handler) Load(w http.ResponseWriter, r *http.Request) {
	state, err := h.casino.LoadState(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(state))
}

// writeError переводит ошибку движка в HTTP статус
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidBet):
		resp.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrInsufficientBalance):
		resp.WriteError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, model.ErrCardAlreadyScratched):
		resp.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		resp.WriteError(w, http.StatusServiceUnavailable, err.Error())
	default:
		h.logger.Error("request failed", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
