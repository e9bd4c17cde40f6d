// Package pitch provides a real-time, allocation-free pitch shifter.
//
// [BinShifter] frames a mono stream into 50%-overlapping [FrameSize]-sample
// blocks, moves every spectral bin k to floor(k*shift) and resynthesizes the
// result by overlap-add. It keeps no phase state between frames, so it is
// cheap and deterministic but colours the sound on anything but a pure tone.
package pitch
