package peak_test

import (
	"fmt"

	"github.com/cwbudde/algo-cwtpeaks/measure/peak"
)

func ExampleDetector_Detect() {
	d, err := peak.NewDetector(peak.WithScales(2, 5))
	if err != nil {
		panic(err)
	}

	signal := []float64{0, 0, 0, 5, 10, 5, 0, 0, 0, 0}
	times := []float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4, 4.5}

	res, err := d.Detect(signal, times, 0)
	if err != nil {
		panic(err)
	}

	for _, p := range res.Peaks {
		fmt.Printf("apex %d at t=%.1f intensity %.0f\n", p.ApexIndex, p.ApexTime, p.ApexIntensity)
	}

	// Output:
	// apex 4 at t=2.0 intensity 10
}
