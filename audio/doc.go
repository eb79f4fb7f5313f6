// SPDX-License-Identifier: EPL-2.0

// Package audio defines the producer-side interfaces of the blockbuf
// pipeline.
//
// # Source Interface
//
// A Source is any stream of interleaved float32 samples in [-1, 1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// The decoders under formats/ all return a Source, and blockbuf.Streamer
// consumes one, so any decoded stream can be cut into fixed analysis
// blocks:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
//
// ReadSamples reports the number of float32 values written, not frames, and
// delivers whole frames only. io.EOF with n == 0 means the stream is
// finished.
//
// # Format Registry
//
// The registry allows dynamic decoder registration, useful when the input
// format is only known at runtime:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Sample Format
//
// Samples are normalized float32 in [-1.0, 1.0]: 0.0 is silence, the
// extremes are full amplitude. Decoders convert from their native PCM width
// on read; the block buffer itself stores whatever width it was
// instantiated with and never converts.
package audio
