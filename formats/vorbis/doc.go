// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio via
// github.com/jfreymuth/oggvorbis.
//
//	decoder := vorbis.Decoder{}
//	source, err := decoder.Decode(file)
//
// The returned audio.Source yields normalized float32 samples in
// [-1.0, 1.0] with the channel count of the encoded stream.
package vorbis
