package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lgbarn/marblechess-go/internal/chess"
	"github.com/lgbarn/marblechess-go/internal/config"
	"github.com/lgbarn/marblechess-go/internal/engine"
	chesserrors "github.com/lgbarn/marblechess-go/internal/errors"
	"github.com/lgbarn/marblechess-go/internal/output"
	"github.com/lgbarn/marblechess-go/internal/testutil"
)

const queenForPawn = "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1"

func TestParsePositionLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantPly int
		wantFEN string
	}{
		{"startpos", "startpos", 0, engine.InitialFEN},
		{"position keyword", "position startpos moves e2e4 e7e5", 2,
			"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2"},
		{"fen", "fen " + queenForPawn, 0, queenForPawn},
		{"fen with moves", "fen " + queenForPawn + " moves e4d5", 1, "4k3/8/8/3P4/8/8/8/4K3 b - - 0 1"},
		{"short fen", "fen 4k3/8/8/8/8/8/8/4K3 w - -", 0, "4k3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"hyphenated moves", "startpos moves g1-f3", 1,
			"rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := parsePositionLine(tt.line)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, state.Ply(), tt.wantPly)
			testutil.AssertEqual(t, engine.StateToFEN(state), tt.wantFEN)
		})
	}
}

func TestParsePositionLine_Promotion(t *testing.T) {
	state, err := parsePositionLine("fen 1r5k/P7/8/8/8/8/7K/8 w - - 0 1 moves a7a8n")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, state.PieceAt(chess.MustSquare("a8")), chess.W(chess.Knight))
}

func TestParsePositionLine_Errors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    error
		wantPly int
	}{
		{"empty", "", chesserrors.ErrParseFailure, 0},
		{"only keyword", "position", chesserrors.ErrParseFailure, 0},
		{"unknown keyword", "bogus", chesserrors.ErrParseFailure, 0},
		{"fen without fields", "fen", chesserrors.ErrParseFailure, 0},
		{"moves keyword missing", "startpos e2e4", chesserrors.ErrParseFailure, 0},
		{"bad fen", "fen notafen", chesserrors.ErrInvalidFEN, 0},
		{"too many fen fields", "fen " + queenForPawn + " e4d5", chesserrors.ErrInvalidFEN, 0},
		{"bad move text", "startpos moves e2e9", chesserrors.ErrInvalidMoveText, 1},
		{"illegal move", "startpos moves e2e4 e7e4", chesserrors.ErrIllegalMove, 2},
		{"move after mate", "startpos moves f2f3 e7e5 g2g4 d8h4 a2a3", chesserrors.ErrGameOver, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parsePositionLine(tt.line)
			if !errors.Is(err, tt.want) {
				t.Fatalf("parsePositionLine(%q) error = %v; want %v", tt.line, err, tt.want)
			}
			var gameErr *chesserrors.GameError
			if errors.As(err, &gameErr) {
				testutil.AssertEqual(t, gameErr.Ply, tt.wantPly)
			} else if tt.wantPly != 0 {
				t.Errorf("error %v is not a GameError", err)
			}
		})
	}
}

func TestReadPositions(t *testing.T) {
	input := "# positions\n\nstartpos\nbogus\n   startpos moves e2e4   \n"
	items, err := readPositions(strings.NewReader(input), "test.txt", 3)
	testutil.AssertNoError(t, err)
	if len(items) != 3 {
		t.Fatalf("got %d items; want 3", len(items))
	}

	for i, item := range items {
		testutil.AssertEqual(t, item.Index, 3+i)
		testutil.AssertEqual(t, item.Line, 3+i)
	}
	testutil.AssertEqual(t, items[2].Text, "startpos moves e2e4")
	testutil.AssertEqual(t, items[2].State.Ply(), 1)
	testutil.AssertNoError(t, items[0].Err)

	var parseErr *chesserrors.ParseError
	if !errors.As(items[1].Err, &parseErr) {
		t.Fatalf("items[1].Err = %v; want ParseError", items[1].Err)
	}
	testutil.AssertEqual(t, parseErr.File, "test.txt")
	testutil.AssertEqual(t, parseErr.Line, 4)
	testutil.AssertContains(t, items[1].Err.Error(), "test.txt:4")
}

func TestReadPositions_GameErrorLocation(t *testing.T) {
	items, err := readPositions(strings.NewReader("startpos moves e2e5\n"), "games.txt", 0)
	testutil.AssertNoError(t, err)

	var gameErr *chesserrors.GameError
	if !errors.As(items[0].Err, &gameErr) {
		t.Fatalf("items[0].Err = %v; want GameError", items[0].Err)
	}
	testutil.AssertEqual(t, gameErr.File, "games.txt")
	testutil.AssertEqual(t, gameErr.Line, 1)
	testutil.AssertEqual(t, gameErr.FEN, engine.InitialFEN)
	testutil.AssertTrue(t, errors.Is(items[0].Err, chesserrors.ErrIllegalMove))
	testutil.AssertEqual(t, items[0].Err.Error(),
		`games.txt:1: move "e2e5" at ply 1 from "`+engine.InitialFEN+`": illegal move`)
}

func TestReadPositions_FENFieldLocation(t *testing.T) {
	input := "startpos\nfen 4k3/8/8/8/8/8/8/4K3 w - d6 0 1\n"
	items, err := readPositions(strings.NewReader(input), "games.txt", 0)
	testutil.AssertNoError(t, err)

	var parseErr *chesserrors.ParseError
	if !errors.As(items[1].Err, &parseErr) {
		t.Fatalf("items[1].Err = %v; want ParseError", items[1].Err)
	}
	testutil.AssertEqual(t, parseErr.Field, "en passant")
	testutil.AssertEqual(t, parseErr.Line, 2)
	testutil.AssertTrue(t, errors.Is(items[1].Err, chesserrors.ErrInvalidFEN))
	testutil.AssertContains(t, items[1].Err.Error(), "games.txt:2: en passant field:")
}

// analyseConfig returns a single-worker configuration writing to buf.
func analyseConfig(buf *bytes.Buffer) *config.Config {
	cfg := config.NewConfig()
	cfg.Workers = 1
	cfg.Search.Depth = 2
	cfg.SetOutput(buf)
	return cfg
}

func TestRunAnalyse_Text(t *testing.T) {
	var buf bytes.Buffer
	cfg := analyseConfig(&buf)

	input := strings.Join([]string{
		"fen " + queenForPawn,
		"bogus",
		"fen " + queenForPawn,
		"fen rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
	}, "\n")
	err := runAnalyse(newProcessingContext(cfg, zerolog.Nop()), strings.NewReader(input))
	testutil.AssertNoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines; want 4:\n%s", len(lines), buf.String())
	}
	testutil.AssertContains(t, lines[0], "1 (line 1): bestmove e4d5")
	testutil.AssertContains(t, lines[0], "depth 2")
	testutil.AssertNotContains(t, lines[0], "(cached)")
	testutil.AssertContains(t, lines[1], "2 (line 2): error:")
	testutil.AssertContains(t, lines[2], "3 (line 3): bestmove e4d5")
	testutil.AssertContains(t, lines[2], "(cached)")
	testutil.AssertContains(t, lines[3], "bestmove (none)")
	testutil.AssertContains(t, lines[3], "checkmate")
}

func TestRunAnalyse_NoCache(t *testing.T) {
	var buf bytes.Buffer
	cfg := analyseConfig(&buf)
	cfg.Cache.Enabled = false

	input := "fen " + queenForPawn + "\nfen " + queenForPawn + "\n"
	err := runAnalyse(newProcessingContext(cfg, zerolog.Nop()), strings.NewReader(input))
	testutil.AssertNoError(t, err)
	testutil.AssertNotContains(t, buf.String(), "(cached)")
}

func TestRunAnalyse_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := analyseConfig(&buf)
	cfg.Output.Format = config.JSON
	cfg.Output.IncludeStats = true

	input := "fen " + queenForPawn + "\nbogus\n"
	err := runAnalyse(newProcessingContext(cfg, zerolog.Nop()), strings.NewReader(input))
	testutil.AssertNoError(t, err)

	var out output.JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(out.Analyses) != 2 {
		t.Fatalf("got %d analyses; want 2", len(out.Analyses))
	}
	first := out.Analyses[0]
	testutil.AssertEqual(t, first.Index, 1)
	testutil.AssertEqual(t, first.BestMove, "e4d5")
	testutil.AssertEqual(t, first.Depth, 2)
	testutil.AssertTrue(t, first.Nodes > 0, "nodes should be reported with stats")
	testutil.AssertEqual(t, len(first.Hash), 16)
	testutil.AssertTrue(t, out.Analyses[1].Error != "", "bad line should carry an error")
}

func TestRunAnalyse_InputFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(first, []byte("startpos\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("# none\nfen "+queenForPawn+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	cfg := analyseConfig(&buf)
	cfg.Search.Depth = 1
	cfg.InputFiles = []string{first, second}

	err := runAnalyse(newProcessingContext(cfg, zerolog.Nop()), strings.NewReader("bogus\n"))
	testutil.AssertNoError(t, err)

	out := buf.String()
	testutil.AssertContains(t, out, "1 (line 1): bestmove")
	testutil.AssertContains(t, out, "2 (line 2): bestmove e4d5")
	testutil.AssertNotContains(t, out, "error", "stdin is not read when files are given")
}

func TestRunAnalyse_MissingFile(t *testing.T) {
	var buf bytes.Buffer
	cfg := analyseConfig(&buf)
	cfg.InputFiles = []string{filepath.Join(t.TempDir(), "missing.txt")}

	err := runAnalyse(newProcessingContext(cfg, zerolog.Nop()), strings.NewReader(""))
	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), "opening")
}

func TestRunAnalyse_Logs(t *testing.T) {
	var buf, logBuf bytes.Buffer
	cfg := analyseConfig(&buf)
	logger := zerolog.New(&logBuf).Level(zerolog.InfoLevel)

	err := runAnalyse(newProcessingContext(cfg, logger), strings.NewReader("startpos\nbogus\nstartpos\n"))
	testutil.AssertNoError(t, err)

	logs := logBuf.String()
	testutil.AssertContains(t, logs, `"message":"skipping position"`)
	testutil.AssertContains(t, logs, `"message":"analysis finished"`)
	testutil.AssertContains(t, logs, `"positions":3`)
	testutil.AssertContains(t, logs, `"failed":1`)
	testutil.AssertContains(t, logs, `"cached":1`)
	testutil.AssertContains(t, logs, `"workers":1`)
	testutil.AssertContains(t, logs, `"cache_hits":1`)
	testutil.AssertContains(t, logs, `"cache_misses":1`)
	testutil.AssertContains(t, logs, `"cache_entries":1`)
	testutil.AssertContains(t, logs, `"cache_full":false`)
}

func TestRunAnalyse_LogsWithoutCache(t *testing.T) {
	var buf, logBuf bytes.Buffer
	cfg := analyseConfig(&buf)
	cfg.Cache.Enabled = false
	logger := zerolog.New(&logBuf).Level(zerolog.InfoLevel)

	err := runAnalyse(newProcessingContext(cfg, logger), strings.NewReader("startpos\n"))
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, logBuf.String(), `"message":"analysis finished"`)
	testutil.AssertNotContains(t, logBuf.String(), "cache_hits")
}

// failingWriter rejects every write.
type failingWriter struct {
	writes int
}

func (f *failingWriter) Write([]byte) (int, error) {
	f.writes++
	return 0, errors.New("disk full")
}

func TestRunAnalyse_WriteErrorStops(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Workers = 1
	cfg.Search.Depth = 1
	out := &failingWriter{}
	cfg.SetOutput(out)

	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf).Level(zerolog.InfoLevel)

	input := strings.Repeat("startpos\n", 20)
	err := runAnalyse(newProcessingContext(cfg, logger), strings.NewReader(input))
	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), "disk full")
	testutil.AssertEqual(t, out.writes, 1)

	logs := logBuf.String()
	testutil.AssertContains(t, logs, `"message":"analysis aborted"`)
	testutil.AssertContains(t, logs, `"written":0`)
	testutil.AssertNotContains(t, logs, "analysis finished")
}

func TestNewProcessingContext(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Workers = 3
	ctx := newProcessingContext(cfg, zerolog.Nop())
	testutil.AssertEqual(t, len(ctx.searchers), 3)
	testutil.AssertTrue(t, ctx.cache != nil, "cache enabled by default")

	cfg.Workers = 0
	cfg.Cache.Enabled = false
	ctx = newProcessingContext(cfg, zerolog.Nop())
	testutil.AssertTrue(t, len(ctx.searchers) >= 1, "auto-detected worker count")
	testutil.AssertTrue(t, ctx.cache == nil, "cache disabled")
}
