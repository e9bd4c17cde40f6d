//go:build oto

package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"
)

const playbackPoll = 50 * time.Millisecond

// play renders samples through the default output device and blocks until
// the player has drained.
func play(samples []float64, sampleRate int) error {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(bytes.NewReader(float32LE(samples)))
	defer func() { _ = player.Close() }()

	player.Play()

	for player.IsPlaying() {
		time.Sleep(playbackPoll)
	}

	return player.Err()
}

func float32LE(samples []float64) []byte {
	out := make([]byte, 4*len(samples))
	for i, x := range samples {
		binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(float32(x)))
	}

	return out
}
