// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives behind the audition
// pipeline: decoding arbitrary capture files and conforming them to the
// sample rate and channel count the dataset core expects.
//
// # Source Interface
//
// The Source interface is the foundation of the pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float64) (int, error)
//	    Close() error
//	}
//
// All format decoders and processors implement this interface, allowing
// them to be chained.
//
// # Conforming a capture
//
// A reference ripped to MP3 at 44.1 kHz stereo becomes training-rate
// mono material with:
//
//	res := audio.NewResampler(src, 48000)
//	mono := audio.NewMonoMixer(res)
//	samples, err := audio.Collect(mono, 4096)
//
// The collected buffer feeds dataset.NewPair directly.
//
// # Format Registry
//
// The registry allows decoder lookup by format key:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Sample Format
//
// Samples are float64 in [-1.0, 1.0], the same representation the
// dataset core and the strict WAV loader use, so no conversion happens
// at the boundary.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available; other errors
// indicate problems with the underlying stream:
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
package audio
