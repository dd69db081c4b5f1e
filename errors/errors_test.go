package errors

import (
	stderrors "errors"
	"testing"
)

func TestRegisterDuplicateCodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	// Code 2 is taken by ErrUnauthorized.
	Register(2, "duplicate registration")
}

func TestIs(t *testing.T) {
	cases := map[string]struct {
		kind   *Error
		err    error
		wantIs bool
	}{
		"instance of the same root": {
			kind:   ErrNotFound,
			err:    ErrNotFound,
			wantIs: true,
		},
		"wrapped once": {
			kind:   ErrNotFound,
			err:    Wrap(ErrNotFound, "contract"),
			wantIs: true,
		},
		"wrapped multiple times": {
			kind:   ErrNotFound,
			err:    Wrap(Wrap(ErrNotFound, "inner"), "outer"),
			wantIs: true,
		},
		"different root": {
			kind:   ErrNotFound,
			err:    Wrap(ErrDuplicate, "contract"),
			wantIs: false,
		},
		"stdlib error": {
			kind:   ErrNotFound,
			err:    stderrors.New("not found"),
			wantIs: false,
		},
		"nil error": {
			kind:   ErrNotFound,
			err:    nil,
			wantIs: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.wantIs {
				t.Fatalf("want %v, got %v", tc.wantIs, got)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "description"); err != nil {
		t.Fatalf("want nil, got %+v", err)
	}
}

func TestWrapPreservesMessageChain(t *testing.T) {
	err := Wrap(Wrap(ErrEmpty, "no owners"), "roster")
	const want = "roster: no owners: value is empty"
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestCode(t *testing.T) {
	cases := map[string]struct {
		err  error
		want uint32
	}{
		"nil":           {err: nil, want: 0},
		"root":          {err: ErrUnauthorized, want: 2},
		"wrapped":       {err: Wrap(ErrUnauthorized, "signer"), want: 2},
		"deeply nested": {err: Wrap(Wrap(ErrNotFound, "a"), "b"), want: 3},
		"stdlib":        {err: stderrors.New("x"), want: internalCode},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := Code(tc.err); got != tc.want {
				t.Fatalf("want %d, got %d", tc.want, got)
			}
		})
	}
}

func TestRecover(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		panic("the unthinkable happened")
	}()
	if !ErrPanic.Is(err) {
		t.Fatalf("want ErrPanic, got %+v", err)
	}
}

func TestWrapAttachesStackTraceOnce(t *testing.T) {
	inner := Wrap(ErrState, "inner")
	if stackTrace(inner) == nil {
		t.Fatal("want a stack trace attached")
	}
	outer := Wrap(inner, "outer")
	if stackTrace(outer) == nil {
		t.Fatal("stack trace lost by wrapping")
	}
}
