package pitch

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-binshift/dsp/buffer"
	"github.com/cwbudde/algo-binshift/dsp/core"
	"github.com/cwbudde/algo-binshift/dsp/spectrum"
	"github.com/cwbudde/algo-binshift/dsp/window"
)

// FrameSize is the fixed STFT frame length in samples.
const FrameSize = 4096

var (
	// ErrInvalidShift reports a shift factor that is not positive and finite.
	ErrInvalidShift = errors.New("pitch: shift must be positive and finite")
	// ErrLengthMismatch reports input and output blocks of different length.
	ErrLengthMismatch = errors.New("pitch: input and output length mismatch")
)

// BinShifter is a streaming STFT pitch shifter that moves each spectral bin
// to floor(bin*shift).
//
// Frames of [FrameSize] samples overlap by half. Every frame is weighted by a
// periodic sine window before the forward transform and again after the
// inverse transform; at shift 1 the squared windows of neighbouring frames sum
// to one and the output reproduces the input delayed by [BinShifter.Latency].
// Bins that collide are summed and no phase correction is made between
// frames, which gives the effect its characteristic roughness.
//
// All buffers and the FFT plan are allocated by [NewBinShifter]; Process does
// not allocate. BinShifter is mono and not safe for concurrent use. Reset must
// not run concurrently with Process.
type BinShifter struct {
	shift float64

	window    []float64
	transform *spectrum.Transform

	input  *buffer.Accumulator
	output *buffer.OverlapAdder

	frame    []float64
	analysis []complex128
	shifted  []complex128
}

// NewBinShifter creates a bin shifter with the given pitch ratio.
// 1 leaves the pitch unchanged, 2 raises it one octave and 0.5 lowers it one
// octave.
func NewBinShifter(shift float64) (*BinShifter, error) {
	if err := validateShift(shift); err != nil {
		return nil, err
	}

	win, err := window.Sine(FrameSize)
	if err != nil {
		return nil, fmt.Errorf("pitch: window: %w", err)
	}

	transform, err := spectrum.NewTransform(FrameSize)
	if err != nil {
		return nil, fmt.Errorf("pitch: %w", err)
	}

	input, err := buffer.NewAccumulator(FrameSize)
	if err != nil {
		return nil, fmt.Errorf("pitch: %w", err)
	}

	output, err := buffer.NewOverlapAdder(FrameSize)
	if err != nil {
		return nil, fmt.Errorf("pitch: %w", err)
	}

	return &BinShifter{
		shift:     shift,
		window:    win,
		transform: transform,
		input:     input,
		output:    output,
		frame:     make([]float64, FrameSize),
		analysis:  make([]complex128, FrameSize),
		shifted:   make([]complex128, FrameSize),
	}, nil
}

// Shift returns the pitch ratio.
func (b *BinShifter) Shift() float64 { return b.shift }

// ShiftSemitones returns the pitch shift in semitones.
func (b *BinShifter) ShiftSemitones() float64 { return core.RatioToSemitones(b.shift) }

// FrameSize returns the STFT frame length.
func (b *BinShifter) FrameSize() int { return FrameSize }

// Latency returns the delay in samples between an input sample and its
// reconstruction in the output. FrameSize/2 is only the hop between frames;
// the end-to-end delay from input to output is FrameSize-1 samples.
func (b *BinShifter) Latency() int { return FrameSize - 1 }

// SetShift replaces the pitch ratio. The new value is used from the next
// completed frame on; frames already synthesized keep the old one.
func (b *BinShifter) SetShift(shift float64) error {
	if err := validateShift(shift); err != nil {
		return err
	}

	b.shift = shift

	return nil
}

// SetShiftSemitones sets the pitch ratio from an interval in semitones.
func (b *BinShifter) SetShiftSemitones(semitones float64) error {
	if err := b.SetShift(core.SemitonesToRatio(semitones)); err != nil {
		return fmt.Errorf("pitch: semitones %f: %w", semitones, err)
	}

	return nil
}

// Reset discards all buffered input and synthesized output. The shift
// factor, window and FFT plan are kept.
func (b *BinShifter) Reset() {
	b.input.Reset()
	b.output.Reset()
	clear(b.frame)
	clear(b.analysis)
	clear(b.shifted)
}

// Process writes one output sample per input sample. input and output must
// have the same length; they may be the same slice.
func (b *BinShifter) Process(input, output []float64) error {
	if len(input) != len(output) {
		return fmt.Errorf("%w: input=%d output=%d", ErrLengthMismatch, len(input), len(output))
	}

	for i, x := range input {
		y, err := b.step(x)
		if err != nil {
			return err
		}

		output[i] = y
	}

	return nil
}

// ProcessInPlace replaces every sample of buf with its processed value.
func (b *BinShifter) ProcessInPlace(buf []float64) error {
	return b.Process(buf, buf)
}

// ProcessSample processes one sample. A failed frame transform leaves the
// previous frames in place, so the sample is still drawn from valid output.
func (b *BinShifter) ProcessSample(x float64) float64 {
	y, _ := b.step(x)
	return y
}

func (b *BinShifter) step(x float64) (float64, error) {
	var err error
	if b.input.Write(x) {
		err = b.processFrame()
		b.input.Advance()
	}

	return b.output.At(b.input.Cursor()), err
}

// processFrame synthesizes the next output frame from the full input frame.
func (b *BinShifter) processFrame() error {
	b.output.Swap()

	copy(b.frame, b.input.Frame())
	if err := window.ApplyCoefficientsInPlace(b.frame, b.window); err != nil {
		return fmt.Errorf("pitch: analysis window: %w", err)
	}

	if err := b.transform.Forward(b.analysis, b.frame); err != nil {
		return fmt.Errorf("pitch: %w", err)
	}

	spectrum.ShiftBins(b.shifted, b.analysis, b.shift)

	current := b.output.Current()
	if err := b.transform.Inverse(current, b.shifted); err != nil {
		return fmt.Errorf("pitch: %w", err)
	}

	if err := window.ApplyCoefficientsInPlace(current, b.window); err != nil {
		return fmt.Errorf("pitch: synthesis window: %w", err)
	}

	return nil
}

func validateShift(shift float64) error {
	if !core.IsFinitePositive(shift) {
		return fmt.Errorf("%w: %f", ErrInvalidShift, shift)
	}

	return nil
}
