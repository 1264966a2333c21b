package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestWrapKeepsCode(t *testing.T) {
	base := DataLoad("missing column class")
	wrapped := Wrap(base, "load launches.csv")

	if GetCode(wrapped) != CodeDataLoad {
		t.Errorf("Expected code %s, got %s", CodeDataLoad, GetCode(wrapped))
	}
	if wrapped.Error() != "load launches.csv: missing column class" {
		t.Errorf("Unexpected message: %s", wrapped.Error())
	}
	if !stderrors.Is(wrapped, base) {
		t.Error("Expected wrapped error to unwrap to base")
	}
}

func TestWrapPlainError(t *testing.T) {
	wrapped := Wrapf(fmt.Errorf("boom"), "step %d", 2)
	if GetCode(wrapped) != CodeInternalError {
		t.Errorf("Expected code %s, got %s", CodeInternalError, GetCode(wrapped))
	}
	if Wrap(nil, "nothing") != nil {
		t.Error("Expected Wrap(nil) to be nil")
	}
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeDataLoad, fmt.Errorf("open: no such file"))
	if !Is(err, CodeDataLoad) {
		t.Errorf("Expected DATA_LOAD_ERROR, got %s", GetCode(err))
	}
	if !IsAppError(err) {
		t.Error("Expected AppError")
	}
}

func TestGetCodeUnknown(t *testing.T) {
	if GetCode(fmt.Errorf("plain")) != "UNKNOWN" {
		t.Error("Expected UNKNOWN for non-AppError")
	}
	if GetCode(fmt.Errorf("ctx: %w", NotFound("output x"))) != CodeNotFound {
		t.Error("Expected code through fmt wrapping")
	}
}
