package output

import (
	"fmt"
	"io"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/marblechess-go/internal/chess"
	"github.com/lgbarn/marblechess-go/internal/config"
	"github.com/lgbarn/marblechess-go/internal/engine"
	"github.com/lgbarn/marblechess-go/internal/errors"
)

// PGNWriter writes games in PGN format with SAN moves.
type PGNWriter struct {
	w     io.Writer
	cfg   *config.OutputConfig
	round int
}

// NewPGNWriter creates a new PGN writer.
func NewPGNWriter(w io.Writer, cfg *config.OutputConfig) *PGNWriter {
	return &PGNWriter{w: w, cfg: cfg}
}

// WriteAnalysis is not supported: PGN holds games only.
func (pw *PGNWriter) WriteAnalysis(*Analysis) error {
	return fmt.Errorf("%w: PGN output holds games, not analyses", errors.ErrInvalidConfig)
}

// WriteGame writes a game in PGN format.
func (pw *PGNWriter) WriteGame(g *Game) error {
	pw.round++
	pg, err := ToPGNGame(g, pw.cfg, pw.round)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(pw.w, "%s\n\n", pg.String())
	return err
}

// Flush flushes the PGN writer (no-op for PGN as it writes immediately).
func (pw *PGNWriter) Flush() error {
	return nil
}

// Close closes the PGN writer.
func (pw *PGNWriter) Close() error {
	return nil
}

// ToPGNGame replays g into a PGN game with the seven tag roster, plus
// SetUp and FEN tags when the game did not start from the standard position.
func ToPGNGame(g *Game, cfg *config.OutputConfig, round int) (*nchess.Game, error) {
	startFEN := engine.StateToFEN(g.Start)
	opts := []func(*nchess.Game){}
	if startFEN != engine.InitialFEN {
		opt, err := nchess.FEN(startFEN)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidFEN, "exporting game %s", g.ID)
		}
		opts = append(opts, opt)
	}
	pg := nchess.NewGame(opts...)

	pg.AddTagPair("Event", cfg.Event)
	pg.AddTagPair("Site", cfg.Site)
	pg.AddTagPair("Date", g.Date.Format("2006.01.02"))
	pg.AddTagPair("Round", fmt.Sprint(round))
	pg.AddTagPair("White", g.White)
	pg.AddTagPair("Black", g.Black)
	pg.AddTagPair("Result", g.Final.Winner.Result())
	if startFEN != engine.InitialFEN {
		pg.AddTagPair("SetUp", "1")
		pg.AddTagPair("FEN", startFEN)
	}
	pg.AddTagPair("GameId", g.ID.String())

	for i, m := range g.Moves() {
		move, err := nchess.UCINotation{}.Decode(pg.Position(), m.String())
		if err == nil {
			err = pg.Move(move)
		}
		if err != nil {
			return nil, &errors.GameError{Err: errors.ErrIllegalMove, Ply: g.Start.Ply() + i + 1, Move: m.String(), FEN: pg.Position().String()}
		}
	}
	// Repetition draws must be claimed; insufficient material ends the replay
	// by itself. A draw the replay will not accept as a repetition is
	// recorded as agreed.
	if g.Final.Status == chess.Draw && pg.Outcome() == nchess.NoOutcome {
		if err := pg.Draw(nchess.ThreefoldRepetition); err != nil {
			if err := pg.Draw(nchess.DrawOffer); err != nil {
				return nil, errors.Wrapf(err, "exporting game %s", g.ID)
			}
		}
	}
	// The movetext ends with the replay's outcome; the Result tag must agree.
	if outcome := string(pg.Outcome()); outcome != g.Final.Winner.Result() {
		pg.AddTagPair("Result", outcome)
	}
	return pg, nil
}
