// SPDX-License-Identifier: EPL-2.0

package blockbuf

import "errors"

var (
	ErrInvalidBlockSize = errors.New("block size must be > 0")
	ErrInvalidHopSize   = errors.New("hop size must be > 0")
	ErrHopExceedsBlock  = errors.New("hop size must be <= block size")
	ErrInvalidChannels  = errors.New("channel count must be > 0")
	ErrCapacityTooSmall = errors.New("capacity must be >= block size + hop size")
	ErrChannelMismatch  = errors.New("invalid number of channels in frames")
	ErrBufferFull       = errors.New("block buffer overflowed")
)
