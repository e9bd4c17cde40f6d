package pitch

// Processor is the block API a host drives a pitch shifter through.
type Processor interface {
	Shift() float64
	ShiftSemitones() float64
	SetShift(shift float64) error
	SetShiftSemitones(semitones float64) error

	Latency() int
	Reset()
	Process(input, output []float64) error
	ProcessInPlace(buf []float64) error
}

var _ Processor = (*BinShifter)(nil)
