// Package testutil provides shared test helpers for ludo-go: go-cmp based
// assertions and board fixtures built through the public move API.
package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%smismatch (-want +got):\n%s", prefix(msgAndArgs...), diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		t.Errorf("%sunexpected error: %v", prefix(msgAndArgs...), err)
	}
}

// RequireNoError is AssertNoError followed by t.FailNow.
func RequireNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		t.Fatalf("%sunexpected error: %v", prefix(msgAndArgs...), err)
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("%serror = %v; want %v", prefix(msgAndArgs...), err, target)
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t *testing.T, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		t.Errorf("%s%q does not contain %q", prefix(msgAndArgs...), got, substr)
	}
}

// AssertNotContains fails if substr is found in got.
func AssertNotContains(t *testing.T, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if strings.Contains(got, substr) {
		t.Errorf("%s%q should not contain %q", prefix(msgAndArgs...), got, substr)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		t.Errorf("%sexpected true but got false", prefix(msgAndArgs...))
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		t.Errorf("%sexpected false but got true", prefix(msgAndArgs...))
	}
}

// prefix renders the optional message as "msg: ", or "" when absent.
func prefix(msgAndArgs ...interface{}) string {
	if msg := formatMessage(msgAndArgs...); msg != "" {
		return msg + ": "
	}
	return ""
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	s, ok := msgAndArgs[0].(string)
	if !ok {
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if len(msgAndArgs) == 1 {
		return s
	}
	return fmt.Sprintf(s, msgAndArgs[1:]...)
}
