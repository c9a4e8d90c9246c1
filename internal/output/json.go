package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/marblechess-go/internal/config"
	"github.com/lgbarn/marblechess-go/internal/engine"
	"github.com/lgbarn/marblechess-go/internal/hashing"
	"github.com/lgbarn/marblechess-go/internal/processing"
)

// JSONAnalysis represents an analysed position in JSON format.
type JSONAnalysis struct {
	Index     int     `json:"index"`
	Line      int     `json:"line,omitempty"`
	Input     string  `json:"input,omitempty"`
	FEN       string  `json:"fen,omitempty"`
	Hash      string  `json:"hash,omitempty"`
	Depth     int     `json:"depth,omitempty"`
	BestMove  string  `json:"bestmove,omitempty"`
	Score     float64 `json:"score"`
	Status    string  `json:"status,omitempty"`
	Nodes     uint64  `json:"nodes,omitempty"`
	Cutoffs   uint64  `json:"cutoffs,omitempty"`
	ElapsedMS float64 `json:"elapsedMs,omitempty"`
	Cached    bool    `json:"cached,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID       string   `json:"id"`
	Date     string   `json:"date"`
	White    string   `json:"white"`
	Black    string   `json:"black"`
	StartFEN string   `json:"startFEN"`
	FinalFEN string   `json:"finalFEN"`
	Moves    []string `json:"moves"`
	PlyCount int      `json:"plyCount"`
	Status   string   `json:"status"`
	Result   string   `json:"result"`

	Captures   int  `json:"captures"`
	Checks     int  `json:"checks"`
	Promotions int  `json:"promotions,omitempty"`
	Castles    int  `json:"castles,omitempty"`
	Repetition bool `json:"repetition,omitempty"`
}

// JSONOutput holds every record for array output.
type JSONOutput struct {
	Analyses []*JSONAnalysis `json:"analyses,omitempty"`
	Games    []*JSONGame     `json:"games,omitempty"`
}

// AnalysisToJSON converts an analysis to JSON form.
func AnalysisToJSON(a *Analysis, cfg *config.OutputConfig) *JSONAnalysis {
	ja := &JSONAnalysis{
		Index: a.Index + 1,
		Line:  a.Line,
		Input: a.Input,
	}
	if a.Err != nil {
		ja.Error = a.Err.Error()
		return ja
	}
	ja.FEN = engine.StateToFEN(a.State)
	ja.Hash = fmt.Sprintf("%016x", hashing.HashState(a.State))
	ja.Depth = a.Depth
	ja.Score = a.Result.Score
	ja.Status = a.State.Status.String()
	ja.Cached = a.Cached
	if a.Result.Found {
		ja.BestMove = a.Result.Move.String()
	}
	if cfg.IncludeStats {
		ja.Nodes = a.Stats.Nodes
		ja.Cutoffs = a.Stats.Cutoffs
		ja.ElapsedMS = float64(a.Stats.Elapsed.Microseconds()) / 1000
	}
	return ja
}

// GameToJSON converts a game to JSON form.
func GameToJSON(g *Game) *JSONGame {
	moves := g.Moves()
	summary := processing.AnalyzeGame(g.Start, g.Final)
	jg := &JSONGame{
		ID:       g.ID.String(),
		Date:     g.Date.Format("2006.01.02"),
		White:    g.White,
		Black:    g.Black,
		StartFEN: engine.StateToFEN(g.Start),
		FinalFEN: engine.StateToFEN(g.Final),
		Moves:    make([]string, len(moves)),
		PlyCount: len(moves),
		Status:   g.Final.Status.String(),
		Result:   g.Final.Winner.Result(),

		Captures:   summary.Captures,
		Checks:     summary.Checks,
		Promotions: summary.Promotions,
		Castles:    summary.Castles,
		Repetition: summary.HasRepetition,
	}
	for i, m := range moves {
		jg.Moves[i] = m.String()
	}
	return jg
}

// JSONWriter writes results in JSON format.
// It buffers records and writes them as one document on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.OutputConfig
	out    JSONOutput
	single bool // If true, write each record immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches records and writes them as one document on Close().
func NewJSONWriter(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

// NewJSONWriterSingle creates a JSON writer that writes each record immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg, single: true}
}

// WriteAnalysis buffers an analysis (or writes it immediately in single mode).
func (jw *JSONWriter) WriteAnalysis(a *Analysis) error {
	ja := AnalysisToJSON(a, jw.cfg)
	if jw.single {
		return jw.encode(ja)
	}
	jw.out.Analyses = append(jw.out.Analyses, ja)
	return nil
}

// WriteGame buffers a game (or writes it immediately in single mode).
func (jw *JSONWriter) WriteGame(g *Game) error {
	jg := GameToJSON(g)
	if jw.single {
		return jw.encode(jg)
	}
	jw.out.Games = append(jw.out.Games, jg)
	return nil
}

// Flush writes all buffered records as a JSON document.
func (jw *JSONWriter) Flush() error {
	if jw.single || (len(jw.out.Analyses) == 0 && len(jw.out.Games) == 0) {
		return nil
	}
	err := jw.encode(&jw.out)

	// Clear buffer after writing
	jw.out = JSONOutput{}
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
