package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akedrou/textdiff"
)

// HasInvocations is implemented by test doubles that record the calls they
// receive. The returned pointer gives read and write access to the whole log.
type HasInvocations[I any] interface {
	InvocationLog() *[]I
}

// Log is an ordered record of invocations, meant to be embedded in a test
// double. The zero value is an empty log ready to use.
type Log[I any] struct {
	invocations []I
}

// AssertInvocations reports a failure on t unless the log holds exactly
// expected, in order.
func (l *Log[I]) AssertInvocations(t TestReporter, expected ...I) {
	t.Helper()
	AssertInvocationsAt(t, l, Caller(1), expected...)
}

// AssertInvocationsAt is AssertInvocations with an explicit failure location.
func (l *Log[I]) AssertInvocationsAt(t TestReporter, loc Location, expected ...I) {
	t.Helper()
	AssertInvocationsAt(t, l, loc, expected...)
}

// ClearInvocations empties the log.
func (l *Log[I]) ClearInvocations() {
	ClearInvocations[I](l)
}

// InvocationLog implements HasInvocations.
func (l *Log[I]) InvocationLog() *[]I {
	return &l.invocations
}

// Invocations returns a copy of the recorded invocations.
func (l *Log[I]) Invocations() []I {
	out := make([]I, len(l.invocations))
	copy(out, l.invocations)

	return out
}

// Record appends calls to the log.
func (l *Log[I]) Record(calls ...I) {
	l.invocations = append(l.invocations, calls...)
}

// AssertInvocations reports a failure on t unless double's log holds exactly
// expected, in order.
func AssertInvocations[I any](t TestReporter, double HasInvocations[I], expected ...I) {
	t.Helper()
	AssertInvocationsAt(t, double, Caller(1), expected...)
}

// AssertInvocationsAt compares double's log against expected and reports
// failures on t, attributed to loc.
//
// A length mismatch is reported once, with both full sequences, and no
// element is compared. Otherwise every mismatching pair is reported, in
// order. The log is never modified.
func AssertInvocationsAt[I any](t TestReporter, double HasInvocations[I], loc Location, expected ...I) {
	t.Helper()

	actual := *double.InvocationLog()

	if len(actual) != len(expected) {
		t.Errorf(
			"invocations mismatch at %s: expected %v but got %v\n%s",
			loc, expected, actual, diffInvocations(expected, actual),
		)

		return
	}

	for i := range actual {
		if ok, msg := matchInvocation(actual[i], expected[i]); !ok {
			t.Errorf("invocation %d mismatch at %s: %s", i, loc, msg)
		}
	}
}

// ClearInvocations empties double's log.
func ClearInvocations[I any](double HasInvocations[I]) {
	*double.InvocationLog() = nil
}

// diffInvocations renders one invocation per line and diffs the two sequences.
func diffInvocations[I any](expected, actual []I) string {
	return textdiff.Unified("expected", "actual", renderLines(expected), renderLines(actual))
}

// renderLines quotes any invocation whose text spans lines, so each
// invocation occupies exactly one line of the diff.
func renderLines[I any](invocations []I) string {
	var builder strings.Builder

	for _, invocation := range invocations {
		line := fmt.Sprintf("%+v", invocation)
		if strings.ContainsAny(line, "\r\n") {
			line = strconv.Quote(line)
		}

		builder.WriteString(line)
		builder.WriteByte('\n')
	}

	return builder.String()
}
