// Command pitchshift runs a WAV file through the bin-remapping pitch shifter.
//
// Usage:
//
//	pitchshift [flags] input.wav output.wav
//
// The selected channel is processed in host-sized blocks, the same way an
// audio callback would drive the shifter, and written as a mono WAV file at
// the input's sample rate and bit depth.
//
// Examples:
//
//	pitchshift -shift 2 voice.wav voice_up.wav
//	pitchshift -semitones -5 -compensate -report loop.wav loop_down.wav
//	pitchshift -block 512 -channel 1 stereo.wav right_shifted.wav
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/cwbudde/algo-binshift/dsp/core"
	"github.com/cwbudde/algo-binshift/dsp/effects/pitch"
	timestats "github.com/cwbudde/algo-binshift/stats/time"
)

const minRequiredArgs = 2

var errUsage = errors.New("usage: pitchshift [flags] input.wav output.wav")

type options struct {
	shift      float64
	semitones  float64
	compensate bool
	report     bool
	play       bool
	verbose    bool
	config     core.ProcessorConfig
}

func main() {
	log.SetFlags(0)

	if err := run(os.Args[1:]); err != nil && !errors.Is(err, flag.ErrHelp) {
		log.Fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("pitchshift", flag.ContinueOnError)
	shift := fs.Float64("shift", 1, "pitch ratio (2 = octave up, 0.5 = octave down)")
	semitones := fs.Float64("semitones", math.NaN(), "pitch shift in semitones (overrides -shift when set)")
	block := fs.Int("block", core.DefaultProcessorConfig().BlockSize, "host block size in samples")
	channel := fs.Int("channel", 0, "channel to process for multi-channel input")
	compensate := fs.Bool("compensate", false, "trim the processing latency so output aligns with input")
	report := fs.Bool("report", false, "print dominant frequency and level of input and output")
	play := fs.Bool("play", false, "play the result (requires build tag oto)")
	verbose := fs.Bool("v", false, "verbose logging")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: pitchshift [flags] input.wav output.wav\n\n")
		fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < minRequiredArgs {
		fs.Usage()
		return errUsage
	}

	if *block <= 0 {
		return fmt.Errorf("invalid block size %d", *block)
	}

	if *channel < 0 {
		return fmt.Errorf("invalid channel %d", *channel)
	}

	opts := options{
		shift:      *shift,
		semitones:  *semitones,
		compensate: *compensate,
		report:     *report,
		play:       *play,
		verbose:    *verbose,
		config: core.ApplyProcessorOptions(
			core.WithBlockSize(*block),
			core.WithChannel(*channel),
		),
	}

	return convert(fs.Arg(0), fs.Arg(1), opts)
}

func convert(inputPath, outputPath string, opts options) error {
	in, err := readWAV(inputPath, opts.config.Channel)
	if err != nil {
		return err
	}

	opts.config = core.ApplyProcessorOptions(
		core.WithSampleRate(float64(in.sampleRate)),
		core.WithBlockSize(opts.config.BlockSize),
		core.WithChannel(opts.config.Channel),
	)

	shifter, err := newShifter(opts)
	if err != nil {
		return err
	}

	if opts.verbose {
		log.Printf("Input: %s (%d Hz, %d-bit, %d channels, using %d)",
			inputPath, in.sampleRate, in.bitDepth, in.channels, opts.config.Channel)
		log.Printf("Shift: %.4f (%+.2f semitones)", shifter.Shift(), shifter.ShiftSemitones())
		log.Printf("Block: %d samples, latency %d samples", opts.config.BlockSize, shifter.Latency())
	}

	start := time.Now()

	levels := timestats.NewStreamingStats()

	out, err := render(shifter, in.samples, opts.config.BlockSize, opts.compensate, levels)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	if opts.verbose {
		lv := levels.Result()
		log.Printf("Output: RMS %.2f dB, peak %.2f dB", lv.RMS_dB, lv.Peak_dB)
	}

	if err := writeWAV(outputPath, out, in.sampleRate, in.bitDepth); err != nil {
		return err
	}

	fmt.Printf("Shifted %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  ratio %.4f, %d samples at %d Hz\n", shifter.Shift(), len(out), in.sampleRate)

	if seconds := elapsed.Seconds(); seconds > 0 {
		fmt.Printf("  %.1fx realtime\n", float64(len(in.samples))/float64(in.sampleRate)/seconds)
	}

	if opts.report {
		if err := writeReport(os.Stdout, opts.config.SampleRate, in.samples, out, levels.Result()); err != nil {
			return err
		}
	}

	if opts.play {
		if opts.verbose {
			log.Printf("Playing %.2fs", float64(len(out))/float64(in.sampleRate))
		}

		if err := play(out, in.sampleRate); err != nil {
			return fmt.Errorf("playback: %w", err)
		}
	}

	return nil
}

func newShifter(opts options) (*pitch.BinShifter, error) {
	shifter, err := pitch.NewBinShifter(opts.shift)
	if err != nil {
		return nil, err
	}

	if !math.IsNaN(opts.semitones) {
		if err := shifter.SetShiftSemitones(opts.semitones); err != nil {
			return nil, err
		}
	}

	return shifter, nil
}

// render feeds samples through p in blocks of blockSize. With compensate the
// stream is padded by the processor latency and the leading latency samples
// are dropped, so out[i] lines up with samples[i]. levels, if not nil, is
// updated with every block of returned output as it is produced.
func render(p pitch.Processor, samples []float64, blockSize int, compensate bool, levels *timestats.StreamingStats) ([]float64, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("invalid block size %d", blockSize)
	}

	skip := 0
	total := len(samples)

	if compensate {
		skip = p.Latency()
		total += skip
	}

	out := make([]float64, total)
	block := make([]float64, blockSize)

	for start := 0; start < total; start += blockSize {
		end := min(start+blockSize, total)
		buf := block[:end-start]

		clear(buf)

		if start < len(samples) {
			copy(buf, samples[start:min(end, len(samples))])
		}

		if err := p.Process(buf, out[start:end]); err != nil {
			return nil, fmt.Errorf("process block at %d: %w", start, err)
		}

		if levels != nil && end > skip {
			levels.Update(out[max(start, skip):end])
		}
	}

	return out[skip:], nil
}
