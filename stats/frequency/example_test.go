package frequency_test

import (
	"fmt"
	"math"

	frequencystats "github.com/cwbudde/algo-binshift/stats/frequency"
)

func ExampleCalculate() {
	s := frequencystats.Calculate([]float64{0, 1, 2, 1, 0}, 8000)
	fmt.Printf("peak=%.0f centroid=%.0f rolloff=%.0f\n", s.PeakFreq, s.Centroid, s.Rolloff)

	// Output:
	// peak=2000 centroid=2000 rolloff=3000
}

func ExampleAnalyzer_Peak() {
	signal := make([]float64, 4096)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * 750 * float64(i) / 48000)
	}

	a, err := frequencystats.NewAnalyzer(len(signal))
	if err != nil {
		fmt.Println(err)
		return
	}

	p, err := a.Peak(signal, 48000)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%.0f Hz, amplitude %.2f\n", p.Frequency, p.Amplitude)

	// Output:
	// 750 Hz, amplitude 1.00
}
