// SPDX-License-Identifier: EPL-2.0

package blockbuf

import (
	"fmt"

	goaudio "github.com/go-audio/audio"
)

// The functions below bridge go-audio PCM buffer types to Buffer, so frames
// produced by go-audio based decoders can be queued without manual
// repacking. The buffer's channel count must match the PCM format.

// ExtendIntBuffer appends the frames of pcm to b.
func ExtendIntBuffer(b *Buffer[int], pcm *goaudio.IntBuffer) error {
	if err := matchChannels(b.Channels(), pcm.Format); err != nil {
		return err
	}
	return b.Extend(pcm.Data)
}

// ExtendFloatBuffer appends the frames of pcm to b.
func ExtendFloatBuffer(b *Buffer[float64], pcm *goaudio.FloatBuffer) error {
	if err := matchChannels(b.Channels(), pcm.Format); err != nil {
		return err
	}
	return b.Extend(pcm.Data)
}

// ExtendFloat32Buffer appends the frames of pcm to b.
func ExtendFloat32Buffer(b *Buffer[float32], pcm *goaudio.Float32Buffer) error {
	if err := matchChannels(b.Channels(), pcm.Format); err != nil {
		return err
	}
	return b.Extend(pcm.Data)
}

// BlockIntBuffer materializes the next block as a go-audio IntBuffer with
// the given format, or nil when no full block is buffered. Unlike Get, the
// returned buffer owns its data and stays valid indefinitely.
func BlockIntBuffer(b *Buffer[int], format *goaudio.Format) *goaudio.IntBuffer {
	block := b.Get()
	if block == nil {
		return nil
	}
	data := make([]int, len(block))
	copy(data, block)
	return &goaudio.IntBuffer{Data: data, Format: format}
}

// BlockFloat32Buffer materializes the next block as a go-audio
// Float32Buffer with the given format, or nil when no full block is
// buffered. The returned buffer owns its data.
func BlockFloat32Buffer(b *Buffer[float32], format *goaudio.Format) *goaudio.Float32Buffer {
	block := b.Get()
	if block == nil {
		return nil
	}
	data := make([]float32, len(block))
	copy(data, block)
	return &goaudio.Float32Buffer{Data: data, Format: format}
}

func matchChannels(want int, format *goaudio.Format) error {
	if format == nil || format.NumChannels == want {
		return nil
	}
	return fmt.Errorf("%w (expected %d, got %d)", ErrChannelMismatch, want, format.NumChannels)
}
