// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio via github.com/go-audio/aiff.
//
//	decoder := aiff.Decoder{}
//	source, err := decoder.Decode(file)
//
// The returned audio.Source yields normalized float32 samples in
// [-1.0, 1.0]. Only 16-bit PCM data is accepted
// (ErrOnlyPCM16bitSupported otherwise). Non-seekable input is buffered in
// memory because the underlying go-audio decoder needs to seek.
package aiff
