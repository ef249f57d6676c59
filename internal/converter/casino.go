package converter

import (
	"virtual_casino/internal/api/dto/casino"
	"virtual_casino/internal/model"
)

func ToSlotSpin(req casino.SlotSpinRequest) model.SlotSpin {
	return model.SlotSpin{
		Bet: req.Bet,
	}
}

func ToSlotSpinResponse(res model.SlotResult) casino.SlotSpinResponse {
	var symbols [model.SlotReels]string
	for i, s := range res.Symbols {
		symbols[i] = string(s)
	}
	return casino.SlotSpinResponse{
		Symbols:  symbols,
		Tier:     string(res.Tier),
		Winnings: res.Winnings,
		Delta:    res.Delta,
		Balance:  res.Balance,
	}
}

func ToScratchResponse(res model.ScratchResult) casino.ScratchResponse {
	var grid [model.CardSize][model.CardSize]string
	for r, row := range res.Grid {
		for c, s := range row {
			grid[r][c] = string(s)
		}
	}
	return casino.ScratchResponse{
		Grid:        grid,
		Tier:        string(res.Tier),
		MaxCount:    res.MaxCount,
		Cost:        res.Cost,
		Winnings:    res.Winnings,
		Balance:     res.Balance,
		RevealOrder: toPositions(res.RevealOrder),
	}
}

func toPositions(order []model.Position) []casino.Position {
	result := make([]casino.Position, len(order))
	for i, p := range order {
		result[i] = casino.Position{Row: p.Row, Col: p.Col}
	}
	return result
}

func ToStatsResponse(stats model.Stats, theme model.Theme, games []model.PlayStats) casino.StatsResponse {
	return casino.StatsResponse{
		Balance:   stats.Balance,
		TotalWon:  stats.TotalWon,
		TotalLost: stats.TotalLost,
		Theme:     string(theme),
		Games:     toGameStats(games),
	}
}

func toGameStats(games []model.PlayStats) []casino.GameStats {
	result := make([]casino.GameStats, len(games))
	for i, g := range games {
		result[i] = casino.GameStats{
			Game:      g.Game,
			Plays:     g.Plays,
			Wins:      g.Wins,
			Wagered:   g.Wagered,
			Paid:      g.Paid,
			RTP:       g.RTP,
			WindowRTP: g.WindowRTP,
		}
	}
	return result
}

func ToStateResponse(state model.PersistedState) casino.StateResponse {
	return casino.StateResponse{
		Balance:   state.Balance,
		TotalWon:  state.TotalWon,
		TotalLost: state.TotalLost,
		Theme:     string(state.Theme),
	}
}
