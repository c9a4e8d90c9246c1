// play.go - Interactive game against the engine
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/marblechess-go/internal/chess"
	"github.com/lgbarn/marblechess-go/internal/config"
	"github.com/lgbarn/marblechess-go/internal/engine"
	"github.com/lgbarn/marblechess-go/internal/session"
)

const playHelp = `commands:
  <move>      play a move in coordinate notation, e.g. e2e4 or e7e8n
  moves <sq>  list legal destinations from a square
  undo        take back your last move and the reply
  redo        restore what undo took back
  new         start a new game
  fen         print the position as FEN
  board       print the board
  help        show this text
  quit        leave
`

// runPlay reads commands from in and writes replies to out until quit or
// end of input.
func runPlay(cfg *config.Config, logger zerolog.Logger, in io.Reader, out io.Writer) error {
	start, err := startState(cfg)
	if err != nil {
		return err
	}
	human := chess.White
	if cfg.HumanColour == "black" {
		human = chess.Black
	}
	s := session.New(
		session.WithHuman(human),
		session.WithDepth(cfg.Search.Depth),
		session.WithStart(start),
		session.WithLogger(logger),
	)
	logger.Info().Str("game", s.ID.String()).Str("human", human.String()).Msg("play started")

	p := &player{s: s, out: out}
	p.reply()

	scanner := bufio.NewScanner(in)
	for p.prompt(); scanner.Scan(); p.prompt() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if !p.command(fields) {
			return nil
		}
	}
	return scanner.Err()
}

type player struct {
	s   *session.Session
	out io.Writer
}

func (p *player) prompt() {
	fmt.Fprintf(p.out, "%s> ", p.s.State().Turn())
}

// command runs one input line. It returns false on quit.
func (p *player) command(fields []string) bool {
	switch fields[0] {
	case "quit", "exit":
		return false
	case "help", "?":
		fmt.Fprint(p.out, playHelp)
	case "fen":
		fmt.Fprintln(p.out, p.s.FEN())
	case "board":
		state := p.s.State()
		fmt.Fprintln(p.out, state.Board.String())
	case "new":
		p.s.Reset()
		fmt.Fprintln(p.out, "new game")
		p.reply()
	case "undo":
		n := p.s.Undo()
		fmt.Fprintf(p.out, "took back %d ply\n", n)
		if n > 0 {
			p.reply()
		}
	case "redo":
		if err := p.s.Redo(); err != nil {
			fmt.Fprintf(p.out, "error: %v\n", err)
		} else {
			fmt.Fprintln(p.out, "redone")
			p.reply()
		}
	case "moves":
		p.listMoves(fields[1:])
	default:
		if err := p.s.PlayUCI(fields[0]); err != nil {
			fmt.Fprintf(p.out, "error: %v\n", err)
			return true
		}
		p.reply()
	}
	return true
}

func (p *player) listMoves(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(p.out, "usage: moves <square>")
		return
	}
	sq, err := chess.ParseSquare(args[0])
	if err != nil {
		fmt.Fprintf(p.out, "error: %v\n", err)
		return
	}
	targets := p.s.ValidMoves(sq)
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.String()
	}
	fmt.Fprintf(p.out, "%s: %s\n", sq, strings.Join(names, " "))
}

// reply lets the computer move when it is its turn and reports the end of
// the game.
func (p *player) reply() {
	state := p.s.State()
	if !state.IsOver() && state.Turn() != p.s.Human {
		move, err := p.s.ComputerMove()
		if err != nil {
			fmt.Fprintf(p.out, "error: %v\n", err)
			return
		}
		fmt.Fprintf(p.out, "computer plays %s\n", move)
		state = p.s.State()
	}
	if state.IsOver() {
		fmt.Fprintf(p.out, "game over: %s %s\n", state.Status, state.Winner.Result())
	} else if engine.IsInCheck(state, state.Turn()) {
		fmt.Fprintln(p.out, "check")
	}
}
