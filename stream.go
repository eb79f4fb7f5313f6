// SPDX-License-Identifier: EPL-2.0

package blockbuf

import (
	"fmt"
	"io"

	"github.com/ik5/blockbuf/audio"
)

// Streamer pulls samples from an audio.Source on demand and hands them back
// as fixed, optionally overlapping blocks. It is the ready-made pipeline for
// feeding block-based analysis from a decoder:
//
//	st, err := blockbuf.NewStreamer(src, 1024, 256)
//	...
//	for {
//	    block, err := st.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	}
type Streamer struct {
	src   audio.Source
	buf   *Buffer[float32]
	chunk []float32
	eof   bool
}

// NewStreamer couples src to a new block buffer. Block and hop sizes are in
// frames; the channel count is taken from the source.
func NewStreamer(src audio.Source, blockSize, hopSize int) (*Streamer, error) {
	bb, err := New[float32](blockSize,
		WithHopSize(hopSize),
		WithChannels(src.Channels()),
	)
	if err != nil {
		return nil, err
	}

	// Read in source-preferred chunks, rounded down to whole frames.
	size := src.BufSize()
	if size < src.Channels() {
		size = 4096 * src.Channels()
	}
	size -= size % src.Channels()

	return &Streamer{
		src:   src,
		buf:   bb,
		chunk: make([]float32, size),
	}, nil
}

// BlockSize returns the number of frames per block.
func (s *Streamer) BlockSize() int { return s.buf.BlockSize() }

// HopSize returns the read-position advance per block, in frames.
func (s *Streamer) HopSize() int { return s.buf.HopSize() }

// Channels returns the number of interleaved channels per frame.
func (s *Streamer) Channels() int { return s.buf.Channels() }

// Next returns the next block of BlockSize*Channels interleaved samples,
// reading more from the source as needed. It returns io.EOF once the source
// is exhausted and no full block remains; trailing frames shorter than a
// block are discarded. The returned slice is valid until the next call.
func (s *Streamer) Next() ([]float32, error) {
	for {
		if block := s.buf.Get(); block != nil {
			return block, nil
		}
		if s.eof {
			return nil, io.EOF
		}

		n, err := s.src.ReadSamples(s.chunk)
		if n > 0 {
			if exterr := s.buf.Extend(s.chunk[:n]); exterr != nil {
				return nil, exterr
			}
		}
		if err == io.EOF {
			s.eof = true
		} else if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}
}

// Close closes the underlying source.
func (s *Streamer) Close() error {
	err := s.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
