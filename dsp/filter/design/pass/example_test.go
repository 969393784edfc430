package pass_test

import (
	"fmt"

	"github.com/cwbudde/algo-eeg/dsp/filter/design/pass"
)

func ExampleBandpass() {
	chain, ok, err := pass.Bandpass(4, 0.5, 40, 250)
	if err != nil || !ok {
		fmt.Println("no band")
		return
	}

	fmt.Printf("order=%d\n", chain.Order())
	fmt.Printf("10 Hz: %.2f dB\n", chain.MagnitudeDB(10, 250))
	fmt.Printf("40 Hz: %.2f dB\n", chain.MagnitudeDB(40, 250))
	// Output:
	// order=8
	// 10 Hz: -0.00 dB
	// 40 Hz: -3.01 dB
}
