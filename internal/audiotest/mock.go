// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides deterministic audio sources for tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates audio data from a waveform function. It satisfies
// the audio.Source interface (without importing it, to stay usable from any
// package in the module).
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int // frames to generate
	generated   int // frames generated so far
	bufSize     int // preferred read size reported by BufSize
	waveform    func(frame int, channel int) float32
}

// NewMockSource creates a source producing totalFrames frames, each sample
// computed by waveform from its frame index and channel.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		bufSize:     4096,
		waveform:    waveform,
	}
}

// NewSilentSource creates a source of all-zero samples.
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		return 0.0
	})
}

// NewSineSource creates a source generating a sine wave at frequency Hz on
// every channel.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewRampSource creates a source whose samples count upward, one value per
// interleaved slot: frame f, channel c carries f*channels + c. Tests use it
// to assert block positions exactly.
func NewRampSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		return float32(frame*channels + channel)
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return m.bufSize }
func (m *MockSource) Close() error    { return nil }

// SetBufSize overrides the preferred read size, letting tests force odd
// chunking patterns.
func (m *MockSource) SetBufSize(n int) { m.bufSize = n }

// Reset rewinds the source so it can be read again from the start.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if remaining := m.totalFrames - m.generated; frames > remaining {
		frames = remaining
	}

	for f := range frames {
		for c := range m.channels {
			dst[f*m.channels+c] = m.waveform(m.generated+f, c)
		}
	}

	m.generated += frames
	samples := frames * m.channels

	if m.generated >= m.totalFrames {
		return samples, io.EOF
	}
	return samples, nil
}
