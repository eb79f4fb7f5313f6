// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
)

func TestErrInvalidDstSize(t *testing.T) {
	t.Parallel()

	if ErrInvalidDstSize == nil {
		t.Fatal("ErrInvalidDstSize is nil")
	}

	expectedMsg := "dst size must be multiple of channels"
	if ErrInvalidDstSize.Error() != expectedMsg {
		t.Errorf("ErrInvalidDstSize.Error() = %q, want %q", ErrInvalidDstSize.Error(), expectedMsg)
	}
}

func TestErrInvalidDstSize_Comparison(t *testing.T) {
	t.Parallel()

	if !errors.Is(ErrInvalidDstSize, ErrInvalidDstSize) {
		t.Error("errors.Is() failed for ErrInvalidDstSize")
	}

	otherErr := errors.New("some other error")
	if errors.Is(otherErr, ErrInvalidDstSize) {
		t.Error("errors.Is() should return false for different error")
	}
}

func TestErrInvalidDstSize_Wrapping(t *testing.T) {
	t.Parallel()

	wrappedErr := errors.Join(ErrInvalidDstSize, errors.New("additional context"))
	if !errors.Is(wrappedErr, ErrInvalidDstSize) {
		t.Error("errors.Is() failed for wrapped ErrInvalidDstSize")
	}
}
