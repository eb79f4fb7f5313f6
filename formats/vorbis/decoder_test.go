// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/blockbuf/audio"
)

// mockReader simulates the oggvorbis.Reader sample stream.
type mockReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	failRead   bool
}

func (m *mockReader) SampleRate() int { return m.sampleRate }
func (m *mockReader) Channels() int   { return m.channels }

func (m *mockReader) Read(p []float32) (int, error) {
	if m.failRead {
		return 0, io.ErrUnexpectedEOF
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}
	n := copy(p, m.samples[m.offset:])
	m.offset += n
	return n, nil
}

func newTestSource(mock *mockReader) *oggSource {
	return &oggSource{
		dec:        mock,
		sampleRate: mock.SampleRate(),
		channels:   mock.Channels(),
	}
}

func TestReadSamples_PassesThrough(t *testing.T) {
	t.Parallel()

	samples := []float32{0, 0.5, -0.5, 1, -1, 0.25}
	src := newTestSource(&mockReader{sampleRate: 48000, channels: 2, samples: samples})

	dst := make([]float32, len(samples))
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(samples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(samples))
	}
	for i, want := range samples {
		if dst[i] != want {
			t.Errorf("sample %d = %v, want %v", i, dst[i], want)
		}
	}
}

func TestReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockReader{sampleRate: 48000, channels: 1, samples: []float32{0.1}})

	dst := make([]float32, 4)
	if n, _ := src.ReadSamples(dst); n != 1 {
		t.Errorf("ReadSamples() n = %d, want 1", n)
	}

	n, err := src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() at end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestReadSamples_InvalidDstSize(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockReader{sampleRate: 48000, channels: 2})

	dst := make([]float32, 5) // not a whole number of stereo frames
	_, err := src.ReadSamples(dst)
	if !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestReadSamples_PropagatesError(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockReader{sampleRate: 48000, channels: 1, failRead: true})

	dst := make([]float32, 4)
	_, err := src.ReadSamples(dst)
	if err == nil || err == io.EOF {
		t.Errorf("ReadSamples() error = %v, want a read failure", err)
	}
}

func TestSource_Properties(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockReader{sampleRate: 44100, channels: 2})

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestDecoder_InvalidData(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("not an ogg container")))
	if err == nil {
		t.Error("Decode() of garbage succeeded, want error")
	}
}
