// File: helpers_test.go
// Role: Minimal hand-rolled assertion helpers, stdlib-only, for the tight
// invariant checks that don't warrant pulling in testify.
package graph

import (
	"errors"
	"testing"
)

func MustNoError(t *testing.T, err error, op string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", op, err)
	}
}

func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: want errors.Is(err, %v)=true; got err=%v", op, target, err)
	}
}

func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()
	if !cond {
		t.Fatalf("%s: predicate is false", op)
	}
}
