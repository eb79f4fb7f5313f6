// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio via github.com/hajimehoshi/go-mp3.
//
//	decoder := mp3.Decoder{}
//	source, err := decoder.Decode(file)
//
// The returned audio.Source yields normalized float32 samples in
// [-1.0, 1.0]. go-mp3 always produces 16-bit stereo output, so the source
// reports two channels regardless of the encoded channel layout.
package mp3
