// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/blockbuf/audio"
	"github.com/ik5/blockbuf/utils"
)

// go-mp3 always emits 16-bit little-endian stereo PCM.
const (
	numChannels    = 2
	bytesPerSample = 2
)

// streamReader is the slice of gomp3.Decoder the source needs, kept as an
// interface so tests can substitute a mock.
type streamReader interface {
	io.Reader
	SampleRate() int
}

type mp3Source struct {
	dec        streamReader
	sampleRate int
	buf        []byte
}

func (s *mp3Source) SampleRate() int { return s.sampleRate }
func (s *mp3Source) Channels() int   { return numChannels }
func (s *mp3Source) Close() error    { return nil }
func (s *mp3Source) BufSize() int    { return cap(s.buf) / bytesPerSample }

func (s *mp3Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%numChannels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	need := len(dst) * bytesPerSample
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := io.ReadFull(s.dec, s.buf)

	samples := n / bytesPerSample
	samples -= samples % numChannels // whole frames only
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[i*bytesPerSample:]))
		dst[i] = utils.Int16ToFloat32(v)
	}

	if err == io.EOF || err == io.ErrUnexpectedEOF {
		if samples == 0 {
			return 0, io.EOF
		}
		return samples, io.EOF
	}
	if err != nil {
		return samples, fmt.Errorf("%w", err)
	}
	return samples, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &mp3Source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
