// SPDX-License-Identifier: EPL-2.0

package blockbuf

type config struct {
	hopSize    int
	channels   int
	capacity   int
	autoResize bool
}

// Option configures a Buffer at construction time.
type Option func(*config)

// WithHopSize sets how many frames the read position advances per block.
// Defaults to the block size (non-overlapping blocks). A hop smaller than
// the block size makes consecutive blocks overlap.
func WithHopSize(frames int) Option {
	return func(c *config) {
		c.hopSize = frames
	}
}

// WithChannels sets the number of interleaved channels per frame.
// Defaults to 1 (mono).
func WithChannels(n int) Option {
	return func(c *config) {
		c.channels = n
	}
}

// WithCapacity sets the ring storage size in frames. Defaults to
// blockSize * DefaultCapacityBlocks. Must be at least blockSize + hopSize.
func WithCapacity(frames int) Option {
	return func(c *config) {
		c.capacity = frames
	}
}

// WithAutoResize controls the overflow policy. When enabled (the default)
// extending past the capacity grows the storage to fit; when disabled it
// fails with ErrBufferFull instead and Extend never allocates, which is the
// mode to use from real-time threads.
func WithAutoResize(enabled bool) Option {
	return func(c *config) {
		c.autoResize = enabled
	}
}
