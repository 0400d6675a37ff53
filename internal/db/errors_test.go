package db

import (
	"errors"
	"testing"
)

func TestError_WrapsOp(t *testing.T) {
	inner := errors.New("connection reset")
	err := error(&Error{Op: OpIncrBy, Err: inner})

	if err.Error() != "INCRBY: connection reset" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("errors.Is should see the wrapped error")
	}
}
