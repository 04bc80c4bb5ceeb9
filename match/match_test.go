package match_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive

	"github.com/toejough/testdouble"
	"github.com/toejough/testdouble/match"
)

type recordingT struct {
	testdouble.Log[string]
}

func (r *recordingT) Errorf(format string, args ...any) { r.Record(fmt.Sprintf(format, args...)) }

func (r *recordingT) Helper() {}

//nolint:varnamelen // ok is idiomatic
func TestBeAny(t *testing.T) {
	t.Parallel()

	ok, err := match.BeAny.Match(42)
	if !ok || err != nil {
		t.Errorf("BeAny.Match(42) = (%v, %v), want (true, nil)", ok, err)
	}

	ok, err = match.BeAny.Match(nil)
	if !ok || err != nil {
		t.Errorf("BeAny.Match(nil) = (%v, %v), want (true, nil)", ok, err)
	}

	if msg := match.BeAny.FailureMessage(42); msg != "" {
		t.Errorf("BeAny.FailureMessage(42) = %q, want empty string", msg)
	}
}

func TestBeDescribedAs(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	ok, err := match.BeDescribedAs(42).Match(42)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(ok).To(BeTrue())

	ok, err = match.BeDescribedAs(42).Match(43)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(ok).To(BeFalse())

	_, err = match.BeDescribedAs(42).Match("42")
	g.Expect(errors.Is(err, testdouble.ErrTypeMismatch)).To(BeTrue())
}

func TestSatisfy(t *testing.T) {
	t.Parallel()

	flushed := match.Satisfy(func(call string) error {
		if call != "flush" {
			return fmt.Errorf("buffer not flushed before %q", call)
		}

		return nil
	})

	for _, tc := range []struct {
		name    string
		actual  string
		matches bool
		message string
	}{
		{name: "accepted", actual: "flush", matches: true, message: "invocation flush rejected"},
		{name: "rejected", actual: "close", matches: false, message: `invocation close rejected: buffer not flushed before "close"`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := flushed.Match(tc.actual)
			if ok != tc.matches || err != nil {
				t.Errorf("Match(%q) = (%v, %v), want (%v, nil)", tc.actual, ok, err, tc.matches)
			}

			if msg := flushed.FailureMessage(tc.actual); msg != tc.message {
				t.Errorf("FailureMessage(%q) = %q, want %q", tc.actual, msg, tc.message)
			}
		})
	}
}

func TestSatisfy_TypeMismatch(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	ok, err := match.Satisfy(func(int) error { return nil }).Match("five")

	g.Expect(ok).To(BeFalse())
	g.Expect(errors.Is(err, testdouble.ErrTypeMismatch)).To(BeTrue())
	g.Expect(err.Error()).To(Equal("type mismatch: expected int, got string"))
}

func TestMatchers_AsExpectedInvocations(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	reporter := &recordingT{}

	var double testdouble.Log[any]
	double.Record("open /tmp/a", 3, "close")

	opens := match.Satisfy(func(call string) error {
		if !strings.HasPrefix(call, "open") {
			return fmt.Errorf("expected an open, got %q", call)
		}

		return nil
	})

	double.AssertInvocations(reporter, opens, match.BeAny, match.BeDescribedAs("close"))
	g.Expect(reporter.Invocations()).To(BeEmpty())

	double.AssertInvocations(reporter, match.BeAny, match.BeAny, opens)
	g.Expect(reporter.Invocations()).To(ConsistOf(And(
		HavePrefix("invocation 2 mismatch"),
		ContainSubstring(`expected an open, got "close"`),
	)))
}

func TestMatchers_RenderInLengthMismatch(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	reporter := &recordingT{}

	var double testdouble.Log[any]
	double.Record("open")

	double.AssertInvocations(reporter, match.BeAny, match.Satisfy(func(string) error { return nil }))

	g.Expect(reporter.Invocations()).To(ConsistOf(
		ContainSubstring("expected [<any> <satisfies string check>] but got [open]"),
	))
}
