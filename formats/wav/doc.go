// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes PCM 16-bit WAV audio, built on
// github.com/go-audio/wav.
//
// # Decoding
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//
// The decoder returns an audio.Source yielding normalized float32 samples
// in [-1.0, 1.0]. Mono and stereo at any sample rate are supported; only
// 16-bit PCM data is accepted (ErrOnlyPCM16bitSupported otherwise). When
// the input does not implement io.ReadSeeker it is buffered in memory
// first, since the underlying go-audio decoder needs to seek between
// chunks.
//
// # Encoding
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 8000, samples)
//
// WriteWAV16 writes a complete mono 16-bit PCM file, headers included. The
// writer must support seeking because the RIFF chunk sizes are patched in
// on Close.
//
// # Errors
//
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: data is not 16-bit PCM
//   - ErrUnsupportedWavLayout: the file parsed but exposes no usable format
package wav
