// Package telemetry writes per-tick traces of a round as CSV.
package telemetry

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/vovakirdan/lightcycle/internal/casting"
	"github.com/vovakirdan/lightcycle/internal/core"
	"github.com/vovakirdan/lightcycle/internal/directing"
)

// TickRecord is one row of the trace.
type TickRecord struct {
	Tick    uint64 `csv:"tick"`
	P1X     int    `csv:"p1_x"`
	P1Y     int    `csv:"p1_y"`
	P1Alive bool   `csv:"p1_alive"`
	P2X     int    `csv:"p2_x"`
	P2Y     int    `csv:"p2_y"`
	P2Alive bool   `csv:"p2_alive"`
	Trails  int    `csv:"trails"`
	Over    bool   `csv:"over"`
	Winner  string `csv:"winner"`
}

// Capture builds the record for the tick that produced result.
func Capture(result directing.RoundResult, cast *casting.Cast) TickRecord {
	rec := TickRecord{
		Tick:   result.Tick,
		Trails: cast.Count(casting.RoleTrails),
		Over:   result.Over,
		Winner: result.Winner.String(),
	}
	if c, err := casting.CycleFor(cast, core.Player1); err == nil {
		rec.P1X, rec.P1Y, rec.P1Alive = c.Position().X, c.Position().Y, c.Alive()
	}
	if c, err := casting.CycleFor(cast, core.Player2); err == nil {
		rec.P2X, rec.P2Y, rec.P2Alive = c.Position().X, c.Position().Y, c.Alive()
	}
	return rec
}

// TraceWriter appends tick records to a CSV stream.
// A nil *TraceWriter discards everything, so callers need not check
// whether tracing is enabled.
type TraceWriter struct {
	out           io.Writer
	closer        io.Closer
	headerWritten bool
}

// NewTraceWriter writes records to w.
func NewTraceWriter(w io.Writer) *TraceWriter {
	return &TraceWriter{out: w}
}

// CreateTraceFile creates (or truncates) path and writes records to it.
// Returns nil if path is empty (tracing disabled).
func CreateTraceFile(path string) (*TraceWriter, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating trace %s: %w", path, err)
	}
	return &TraceWriter{out: f, closer: f}, nil
}

// Write appends one record. The header row is written before the first one.
func (tw *TraceWriter) Write(rec TickRecord) error {
	if tw == nil {
		return nil
	}

	records := []TickRecord{rec}

	if !tw.headerWritten {
		if err := gocsv.Marshal(records, tw.out); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		tw.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, tw.out); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}

// Close closes the underlying file, if the writer owns one.
func (tw *TraceWriter) Close() error {
	if tw == nil || tw.closer == nil {
		return nil
	}
	return tw.closer.Close()
}
