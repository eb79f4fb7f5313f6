// SPDX-License-Identifier: EPL-2.0

package blockbuf

import "fmt"

// DefaultCapacityBlocks is how many blocks the ring holds by default when
// no explicit capacity is given.
const DefaultCapacityBlocks = 8

// Sample is the set of PCM sample representations a Buffer can store.
type Sample interface {
	~int | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Buffer is a fixed-capacity ring that accumulates streamed frames and
// returns them as blocks of exactly BlockSize frames, advancing by HopSize
// frames per read.
//
// Buffer does no internal locking: it assumes a single writer calling
// Extend and a single reader calling Get, with any cross-goroutine
// coordination handled by the caller.
type Buffer[T Sample] struct {
	blockSize  int
	hopSize    int
	channels   int
	capacity   int // frames
	autoResize bool

	queue   []T // capacity * channels, ring storage
	scratch []T // blockSize * channels, reused for reads that wrap

	readPos  int // frame index in [0, capacity)
	writePos int // frame index in [0, capacity)
	length   int // unread frames from readPos
}

// New creates a Buffer returning blockSize frames per Get. See the Option
// functions for hop size, channel count, capacity, and overflow policy;
// the defaults are hop = blockSize, mono, capacity = blockSize *
// DefaultCapacityBlocks, and auto-resize on overflow.
func New[T Sample](blockSize int, opts ...Option) (*Buffer[T], error) {
	cfg := config{
		hopSize:    blockSize,
		channels:   1,
		capacity:   blockSize * DefaultCapacityBlocks,
		autoResize: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if blockSize <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidBlockSize, blockSize)
	}
	if cfg.hopSize <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidHopSize, cfg.hopSize)
	}
	if cfg.hopSize > blockSize {
		return nil, fmt.Errorf("%w (hop %d, block %d)", ErrHopExceedsBlock, cfg.hopSize, blockSize)
	}
	if cfg.channels <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidChannels, cfg.channels)
	}
	if cfg.capacity < blockSize+cfg.hopSize {
		return nil, fmt.Errorf("%w (capacity %d, block %d, hop %d)",
			ErrCapacityTooSmall, cfg.capacity, blockSize, cfg.hopSize)
	}

	return &Buffer[T]{
		blockSize:  blockSize,
		hopSize:    cfg.hopSize,
		channels:   cfg.channels,
		capacity:   cfg.capacity,
		autoResize: cfg.autoResize,
		queue:      make([]T, cfg.capacity*cfg.channels),
		scratch:    make([]T, blockSize*cfg.channels),
	}, nil
}

// BlockSize returns the number of frames per block.
func (b *Buffer[T]) BlockSize() int { return b.blockSize }

// HopSize returns the read-position advance per block, in frames.
func (b *Buffer[T]) HopSize() int { return b.hopSize }

// Channels returns the number of interleaved channels per frame.
func (b *Buffer[T]) Channels() int { return b.channels }

// Len returns the number of frames buffered ahead of the read position.
// Overlap frames stay counted until the read position moves past them.
func (b *Buffer[T]) Len() int { return b.length }

// Cap returns the current storage capacity in frames.
func (b *Buffer[T]) Cap() int { return b.capacity }

// Extend appends interleaved, frame-major samples to the buffer. The sample
// count must be a multiple of Channels; otherwise ErrChannelMismatch is
// returned and nothing is written.
//
// If the incoming frames do not fit, the buffer either grows by exactly the
// overflow amount (auto-resize enabled, the default) or fails with
// ErrBufferFull leaving its contents untouched. Without growth the call is
// allocation-free.
func (b *Buffer[T]) Extend(samples []T) error {
	if len(samples)%b.channels != 0 {
		return fmt.Errorf("%w (%d samples is not a whole number of %d-channel frames)",
			ErrChannelMismatch, len(samples), b.channels)
	}

	numFrames := len(samples) / b.channels
	if err := b.reserve(numFrames); err != nil {
		return err
	}

	if b.writePos+numFrames <= b.capacity {
		copy(b.queue[b.writePos*b.channels:], samples)
	} else {
		tail := (b.capacity - b.writePos) * b.channels
		copy(b.queue[b.writePos*b.channels:], samples[:tail])
		copy(b.queue, samples[tail:])
	}

	b.length += numFrames
	b.writePos = (b.writePos + numFrames) % b.capacity
	return nil
}

// ExtendFrames appends row-major frames, each row holding exactly one
// sample per channel. A row of the wrong width fails the whole call with
// ErrChannelMismatch before anything is written.
func (b *Buffer[T]) ExtendFrames(frames [][]T) error {
	for _, frame := range frames {
		if len(frame) != b.channels {
			return fmt.Errorf("%w (expected %d, got %d)",
				ErrChannelMismatch, b.channels, len(frame))
		}
	}

	if err := b.reserve(len(frames)); err != nil {
		return err
	}

	for i, frame := range frames {
		pos := ((b.writePos + i) % b.capacity) * b.channels
		copy(b.queue[pos:pos+b.channels], frame)
	}

	b.length += len(frames)
	b.writePos = (b.writePos + len(frames)) % b.capacity
	return nil
}

// Get returns the next block of BlockSize frames as BlockSize*Channels
// interleaved samples, or nil when fewer than BlockSize frames are
// buffered. It then advances the read position by HopSize frames, so with
// HopSize < BlockSize the trailing frames of this block reappear at the
// start of the next one.
//
// The returned slice aliases internal storage (the ring itself when the
// block is physically contiguous, a reused scratch buffer when it wraps)
// and is only valid until the next call to Get or Extend. Copy it to
// retain it. Get never allocates.
func (b *Buffer[T]) Get() []T {
	if b.length < b.blockSize {
		return nil
	}

	var block []T
	if b.readPos+b.blockSize <= b.capacity {
		block = b.queue[b.readPos*b.channels : (b.readPos+b.blockSize)*b.channels]
	} else {
		tail := (b.capacity - b.readPos) * b.channels
		copy(b.scratch, b.queue[b.readPos*b.channels:])
		copy(b.scratch[tail:], b.queue[:b.blockSize*b.channels-tail])
		block = b.scratch
	}

	b.length -= b.hopSize
	b.readPos = (b.readPos + b.hopSize) % b.capacity
	return block
}

// reserve ensures room for numFrames more frames, growing the storage when
// auto-resize is enabled.
func (b *Buffer[T]) reserve(numFrames int) error {
	if b.length+numFrames <= b.capacity {
		return nil
	}
	if !b.autoResize {
		return fmt.Errorf("%w (%d frames buffered, %d incoming, capacity %d)",
			ErrBufferFull, b.length, numFrames, b.capacity)
	}
	b.grow(b.length + numFrames - b.capacity)
	return nil
}

// grow extends the storage by the given number of frames, inserting the new
// space at the logical end of the buffered data (the write position) so all
// unread frames keep their order. When the live region wraps past the
// physical end, its tail segment shifts up and the read position is rebased
// to follow it.
func (b *Buffer[T]) grow(frames int) {
	newCapacity := b.capacity + frames
	next := make([]T, newCapacity*b.channels)

	copy(next, b.queue[:b.writePos*b.channels])
	copy(next[(b.writePos+frames)*b.channels:], b.queue[b.writePos*b.channels:])

	if b.length > 0 && b.readPos >= b.writePos {
		b.readPos += frames
	}

	b.queue = next
	b.capacity = newCapacity
}
