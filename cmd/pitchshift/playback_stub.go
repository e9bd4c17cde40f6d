//go:build !oto

package main

import "errors"

var errNoPlayback = errors.New("built without audio output; rebuild with -tags oto")

func play([]float64, int) error {
	return errNoPlayback
}
