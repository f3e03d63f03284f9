package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnsatisfiableBond, "width %d mm not tileable", 400)

	if err.Code != ErrCodeUnsatisfiableBond {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeUnsatisfiableBond)
	}
	want := "UNSATISFIABLE_BOND: width 400 mm not tileable"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("file missing")
	err := Wrap(ErrCodeInvalidConfig, cause, "load %s", "wall.toml")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	want := "INVALID_CONFIG: load wall.toml: file missing"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeStuckEnvelope, "envelope too small")

	if !Is(err, ErrCodeStuckEnvelope) {
		t.Error("Is(err, STUCK_ENVELOPE) = false, want true")
	}
	if Is(err, ErrCodeInfeasible) {
		t.Error("Is(err, INFEASIBLE) = true, want false")
	}
	if Is(stderrors.New("plain"), ErrCodeStuckEnvelope) {
		t.Error("Is(plain error) = true, want false")
	}
}

func TestIs_WrappedChain(t *testing.T) {
	inner := New(ErrCodeInfeasible, "step budget exceeded")
	outer := fmt.Errorf("generate wall: %w", inner)

	if !Is(outer, ErrCodeInfeasible) {
		t.Error("Is(wrapped, INFEASIBLE) = false, want true")
	}
	if GetCode(outer) != ErrCodeInfeasible {
		t.Errorf("GetCode(wrapped) = %q, want %q", GetCode(outer), ErrCodeInfeasible)
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if code := GetCode(stderrors.New("plain")); code != "" {
		t.Errorf("GetCode(plain) = %q, want empty", code)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidSupport, "brick R2B3 has no supports")
	if got := UserMessage(err); got != "brick R2B3 has no supports" {
		t.Errorf("UserMessage() = %q", got)
	}

	plain := stderrors.New("boom")
	if got := UserMessage(plain); got != "boom" {
		t.Errorf("UserMessage(plain) = %q, want %q", got, "boom")
	}
}
