// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/blockbuf/audio"
)

// vorbisReader is the slice of oggvorbis.Reader the source needs, kept as
// an interface so tests can substitute a mock.
type vorbisReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type oggSource struct {
	dec        vorbisReader
	sampleRate int
	channels   int
}

func (s *oggSource) SampleRate() int { return s.sampleRate }
func (s *oggSource) Channels() int   { return s.channels }
func (s *oggSource) Close() error    { return nil }
func (s *oggSource) BufSize() int    { return 4096 }

func (s *oggSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	// oggvorbis decodes float32 directly and only ever returns whole
	// frames, so the values pass through untouched.
	n, err := s.dec.Read(dst)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}
	if n == 0 && err == nil {
		return 0, io.EOF
	}
	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &oggSource{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
