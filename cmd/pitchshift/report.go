package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	frequencystats "github.com/cwbudde/algo-binshift/stats/frequency"
	timestats "github.com/cwbudde/algo-binshift/stats/time"
)

// Samples taken from the middle of a signal for frequency analysis.
const analysisBlock = 8192

type signalSummary struct {
	name     string
	levels   timestats.Stats
	peak     frequencystats.Peak
	spectrum frequencystats.Stats
}

// summarize pairs the given level statistics with a spectral analysis of the
// middle of samples.
func summarize(name string, samples []float64, levels timestats.Stats, sampleRate float64) (signalSummary, error) {
	s := signalSummary{name: name, levels: levels}

	block := centerBlock(samples, analysisBlock)
	if len(block) < 2 {
		return s, nil
	}

	a, err := frequencystats.NewAnalyzer(len(block))
	if err != nil {
		return s, fmt.Errorf("analyze %s: %w", name, err)
	}

	if s.peak, err = a.Peak(block, sampleRate); err != nil {
		return s, fmt.Errorf("analyze %s: %w", name, err)
	}

	if s.spectrum, err = a.Stats(block, sampleRate); err != nil {
		return s, fmt.Errorf("analyze %s: %w", name, err)
	}

	return s, nil
}

// centerBlock returns at most size samples from the middle of samples.
func centerBlock(samples []float64, size int) []float64 {
	if len(samples) <= size {
		return samples
	}

	start := (len(samples) - size) / 2

	return samples[start : start+size]
}

// writeReport prints a level and spectrum table for in and out. outLevels
// holds the statistics accumulated while out was rendered.
func writeReport(w io.Writer, sampleRate float64, in, out []float64, outLevels timestats.Stats) error {
	rows := make([]signalSummary, 0, 2)

	for _, sig := range []struct {
		name    string
		samples []float64
		levels  timestats.Stats
	}{
		{"input", in, timestats.Calculate(in)},
		{"output", out, outLevels},
	} {
		s, err := summarize(sig.name, sig.samples, sig.levels, sampleRate)
		if err != nil {
			return err
		}

		rows = append(rows, s)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Signal\tSamples\tDominant [Hz]\tAmplitude\tCentroid [Hz]\tRolloff [Hz]\tRMS [dB]\tPeak [dB]\tCrest [dB]\n"); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.1f\t%.3f\t%.1f\t%.1f\t%.2f\t%.2f\t%.2f\n",
			r.name,
			r.levels.Length,
			r.peak.Frequency,
			r.peak.Amplitude,
			r.spectrum.Centroid,
			r.spectrum.Rolloff,
			r.levels.RMS_dB,
			r.levels.Peak_dB,
			r.levels.CrestFactor_dB,
		); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}

	return nil
}
