// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/blockbuf/audio"
	"github.com/ik5/blockbuf/utils"
)

// mockStream simulates the gomp3.Decoder byte stream: 16-bit LE stereo PCM.
type mockStream struct {
	sampleRate int
	data       []byte
	offset     int
	failRead   bool
}

func newMockStream(sampleRate int, samples []int16) *mockStream {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s))
	}
	return &mockStream{sampleRate: sampleRate, data: data}
}

func (m *mockStream) SampleRate() int { return m.sampleRate }

func (m *mockStream) Read(p []byte) (int, error) {
	if m.failRead {
		return 0, io.ErrUnexpectedEOF
	}
	if m.offset >= len(m.data) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.offset:])
	m.offset += n
	return n, nil
}

func newTestSource(mock *mockStream) *mp3Source {
	return &mp3Source{
		dec:        mock,
		sampleRate: mock.SampleRate(),
		buf:        make([]byte, 64),
	}
}

func TestReadSamples_ConvertsPCM(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, -100, 32767, -32768, 7}
	src := newTestSource(newMockStream(44100, samples))

	dst := make([]float32, len(samples))
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(samples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(samples))
	}

	for i, s := range samples {
		if want := utils.Int16ToFloat32(s); dst[i] != want {
			t.Errorf("sample %d = %v, want %v", i, dst[i], want)
		}
	}
}

func TestReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := newTestSource(newMockStream(44100, []int16{1, 2}))

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if n != 2 {
		t.Errorf("ReadSamples() n = %d, want 2", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after EOF = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestReadSamples_InvalidDstSize(t *testing.T) {
	t.Parallel()

	src := newTestSource(newMockStream(44100, []int16{1, 2, 3, 4}))

	dst := make([]float32, 3) // not a whole number of stereo frames
	_, err := src.ReadSamples(dst)
	if !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestReadSamples_PropagatesError(t *testing.T) {
	t.Parallel()

	mock := newMockStream(44100, []int16{1, 2})
	mock.failRead = true
	src := newTestSource(mock)

	dst := make([]float32, 2)
	_, err := src.ReadSamples(dst)
	if err == nil || err == io.EOF {
		t.Errorf("ReadSamples() error = %v, want a read failure", err)
	}
}

func TestSource_Properties(t *testing.T) {
	t.Parallel()

	src := newTestSource(newMockStream(22050, nil))

	if src.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2 (go-mp3 is always stereo)", src.Channels())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestDecoder_InvalidData(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("definitely not an mp3 stream")))
	if err == nil {
		t.Error("Decode() of garbage succeeded, want error")
	}
}
