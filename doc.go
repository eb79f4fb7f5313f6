// SPDX-License-Identifier: EPL-2.0

// Package blockbuf buffers streamed audio samples into fixed-size,
// optionally overlapping blocks.
//
// Block-based algorithms (FFT analysis, windowed DSP, feature extraction)
// need exactly N frames per call, while real-world producers (capture
// callbacks, decoders, network streams) deliver chunks of arbitrary length.
// Buffer sits between the two: feed it whatever arrives, read back exact
// blocks whenever enough data has accumulated.
//
// # Quick Start
//
//	bb, err := blockbuf.New[float32](1024, blockbuf.WithHopSize(128))
//	if err != nil {
//	    // Handle error
//	}
//
//	bb.Extend(chunk) // any number of samples, any call pattern
//
//	for block := range bb.Blocks() {
//	    // len(block) == 1024, overlapping its predecessor by 896 samples
//	}
//
// # Blocks and Hops
//
// Each call to Get returns exactly BlockSize frames and then advances the
// read position by HopSize frames. With HopSize equal to BlockSize the
// blocks are contiguous and non-overlapping. With a smaller HopSize each
// block shares its first BlockSize-HopSize frames with the previous block,
// which is the usual setup for windowed spectral analysis.
//
// # Multi-channel Audio
//
// Frames are stored interleaved, one sample per channel per frame:
//
//	bb, _ := blockbuf.New[int16](512, blockbuf.WithChannels(2))
//	bb.Extend([]int16{l0, r0, l1, r1}) // two stereo frames
//
// Blocks come back in the same interleaved, frame-major layout with
// BlockSize*Channels samples. Row-major input is accepted via ExtendFrames,
// and go-audio PCM buffers via the adapter functions in this package.
//
// # Sample Types
//
// Buffer is generic over the stored sample representation (int16, int32,
// float32, float64, ...). Samples are copied verbatim; no conversion,
// scaling, or precision loss ever occurs inside the buffer.
//
// # Capacity and Growth
//
// The ring holds Cap frames. By default, extending past the capacity grows
// the storage by exactly the overflow amount, preserving all buffered data.
// Disable this with WithAutoResize(false) to get a hard ErrBufferFull on
// overflow instead; in that mode Extend and Get never allocate, which makes
// them safe to call from a real-time audio callback.
//
// # Concurrency
//
// Buffer performs no internal locking. It assumes a single writer and a
// single reader; coordinating Extend and Get across goroutines is the
// caller's responsibility.
//
// # Streaming from Decoders
//
// The Streamer type couples an audio.Source (see the audio and formats
// subpackages) to a Buffer, turning any decoded stream into a sequence of
// fixed blocks:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	st, _ := blockbuf.NewStreamer(src, 1024, 256)
//	defer st.Close()
//
//	for {
//	    block, err := st.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    // analyze block
//	}
package blockbuf
