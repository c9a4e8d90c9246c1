// selfplay.go - Engine-versus-engine games
package main

import (
	"github.com/rs/zerolog"

	"github.com/lgbarn/marblechess-go/internal/chess"
	"github.com/lgbarn/marblechess-go/internal/config"
	"github.com/lgbarn/marblechess-go/internal/engine"
	"github.com/lgbarn/marblechess-go/internal/output"
	"github.com/lgbarn/marblechess-go/internal/processing"
	"github.com/lgbarn/marblechess-go/internal/search"
)

// startState returns the configured starting position.
func startState(cfg *config.Config) (chess.GameState, error) {
	if cfg.StartFEN == "" {
		return engine.InitialState(), nil
	}
	return engine.StateFromFEN(cfg.StartFEN)
}

// playSelf lets the engine play both sides from start until the game ends
// or maxPly plies have been played (0 = no limit). Threefold repetition and
// insufficient material end the game as a draw.
func playSelf(start chess.GameState, s *search.Searcher, depth, maxPly int, logger zerolog.Logger) chess.GameState {
	state := start
	seen := processing.NewRepetitionTracker(start)
	for played := 0; !state.IsOver() && (maxPly == 0 || played < maxPly); played++ {
		move, ok := s.FindBestMove(state, depth)
		if !ok {
			break
		}
		promo := chess.Queen
		if move.Promotion {
			promo = move.PromotionType
		}
		state = engine.MakeMove(state, move.From, move.To, promo)
		stats := s.Stats()
		logger.Debug().
			Int("ply", state.Ply()).
			Str("move", move.String()).
			Uint64("nodes", stats.Nodes).
			Dur("elapsed", stats.Elapsed).
			Msg("selfplay move")

		if reason := drawReason(state, seen); reason != "" {
			state.Status = chess.Draw
			state.Winner = chess.DrawResult
			logger.Info().Int("ply", state.Ply()).Str("reason", reason).Msg("selfplay adjudicated draw")
		}
	}
	return state
}

// drawReason records state and names the rule that draws it, if any.
func drawReason(state chess.GameState, seen *processing.RepetitionTracker) string {
	if state.IsOver() {
		return ""
	}
	if seen.Add(state) >= 3 {
		return "threefold repetition"
	}
	if processing.HasInsufficientMaterial(&state.Board) {
		return "insufficient material"
	}
	return ""
}

// runSelfPlay plays one game and writes it in the configured format.
func runSelfPlay(cfg *config.Config, logger zerolog.Logger) error {
	start, err := startState(cfg)
	if err != nil {
		return err
	}
	w, err := output.NewWriter(cfg.OutputFile, cfg)
	if err != nil {
		return err
	}

	s := search.NewSearcher(search.WithLogger(logger), search.WithMoveOrdering(cfg.Search.MoveOrdering))
	final := playSelf(start, s, cfg.Search.Depth, cfg.MaxPly, logger)

	game := output.NewGame(start, final)
	logger.Info().
		Str("game", game.ID.String()).
		Int("plies", len(game.Moves())).
		Str("status", final.Status.String()).
		Str("result", final.Winner.Result()).
		Msg("selfplay finished")

	if err := w.WriteGame(game); err != nil {
		return err
	}
	return w.Close()
}
