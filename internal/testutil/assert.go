// Package testutil provides shared test utilities for the marblechess-go project.
package testutil

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/marblechess-go/internal/chess"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		reportf(t, formatMessage(msgAndArgs...), "mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		reportf(t, formatMessage(msgAndArgs...), "unexpected error: %v", err)
	}
}

// AssertError fails if err is nil when an error was expected.
func AssertError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		reportf(t, formatMessage(msgAndArgs...), "expected error but got nil")
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t *testing.T, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		reportf(t, formatMessage(msgAndArgs...), "%q does not contain %q", got, substr)
	}
}

// AssertNotContains fails if substr is found in got.
func AssertNotContains(t *testing.T, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if strings.Contains(got, substr) {
		reportf(t, formatMessage(msgAndArgs...), "%q should not contain %q", got, substr)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		reportf(t, formatMessage(msgAndArgs...), "expected true but got false")
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		reportf(t, formatMessage(msgAndArgs...), "expected false but got true")
	}
}

// AssertSquares compares two square lists ignoring order. want is given in
// algebraic names ("e4") for readability.
func AssertSquares(t *testing.T, got []chess.Square, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	gotNames := make([]string, len(got))
	for i, sq := range got {
		gotNames[i] = sq.String()
	}
	sortStrings := cmpopts.SortSlices(func(a, b string) bool { return a < b })
	if diff := cmp.Diff(want, gotNames, sortStrings, cmpopts.EquateEmpty()); diff != "" {
		reportf(t, formatMessage(msgAndArgs...), "squares mismatch (-want +got):\n%s", diff)
	}
}

// AssertMoves compares move pairs in coordinate notation ignoring order.
func AssertMoves(t *testing.T, got []chess.MovePair, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	gotNames := make([]string, len(got))
	for i, mp := range got {
		gotNames[i] = mp.String()
	}
	sort.Strings(gotNames)
	sorted := append([]string(nil), want...)
	sort.Strings(sorted)
	if diff := cmp.Diff(sorted, gotNames, cmpopts.EquateEmpty()); diff != "" {
		reportf(t, formatMessage(msgAndArgs...), "moves mismatch (-want +got):\n%s", diff)
	}
}

// AssertBoardEqual compares the squares of two boards and prints both
// diagrams on mismatch.
func AssertBoardEqual(t *testing.T, got, want chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if got.Squares != want.Squares {
		reportf(t, formatMessage(msgAndArgs...), "board mismatch (-want +got):\n%s",
			cmp.Diff(want.String(), got.String()))
	}
}

// reportf reports a failure, prefixing the optional caller message.
func reportf(t *testing.T, msg, format string, args ...interface{}) {
	t.Helper()
	text := fmt.Sprintf(format, args...)
	if msg != "" {
		t.Errorf("%s: %s", msg, text)
	} else {
		t.Error(text)
	}
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
