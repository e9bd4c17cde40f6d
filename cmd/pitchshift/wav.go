package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-binshift/dsp/core"
)

const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	pcmFormat = 1
)

// track is one channel of a decoded WAV file scaled to [-1, 1].
type track struct {
	samples    []float64
	sampleRate int
	bitDepth   int
	channels   int
}

// fullScale returns the largest positive sample value for bitDepth.
func fullScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
		return float64(int64(1)<<(bitDepth-1) - 1), nil
	default:
		return 0, fmt.Errorf("unsupported bit depth %d", bitDepth)
	}
}

// readWAV decodes channel of the PCM WAV file at path.
func readWAV(path string, channel int) (*track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return decodeWAV(f, path, channel)
}

func decodeWAV(r io.ReadSeeker, name string, channel int) (*track, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", name)
	}

	format := decoder.Format()
	bitDepth := int(decoder.BitDepth)

	scale, err := fullScale(bitDepth)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	channels := format.NumChannels
	if channel >= channels {
		return nil, fmt.Errorf("%s: channel %d out of range (%d channels)", name, channel, channels)
	}

	if int(decoder.WavAudioFormat) != pcmFormat {
		return nil, fmt.Errorf("%s: only PCM WAV is supported, got format %d", name, decoder.WavAudioFormat)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	t := &track{
		samples:    make([]float64, 0, len(buf.Data)/channels),
		sampleRate: format.SampleRate,
		bitDepth:   bitDepth,
		channels:   channels,
	}

	inv := 1 / scale
	for i := channel; i < len(buf.Data); i += channels {
		t.samples = append(t.samples, float64(buf.Data[i])*inv)
	}

	return t, nil
}

// writeWAV encodes samples as a mono PCM WAV file. Samples outside [-1, 1]
// are clipped.
func writeWAV(path string, samples []float64, sampleRate, bitDepth int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
	}()

	return encodeWAV(f, samples, sampleRate, bitDepth)
}

func encodeWAV(w io.WriteSeeker, samples []float64, sampleRate, bitDepth int) error {
	scale, err := fullScale(bitDepth)
	if err != nil {
		return err
	}

	data := make([]int, len(samples))
	for i, x := range samples {
		data[i] = int(core.Clamp(x, -1, 1) * scale)
	}

	encoder := wav.NewEncoder(w, sampleRate, bitDepth, 1, pcmFormat)

	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
	}

	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}

	return nil
}
