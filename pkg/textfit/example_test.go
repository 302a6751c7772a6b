package textfit_test

import (
	"fmt"

	"github.com/matzehuels/chartkit/pkg/textfit"
)

func ExampleFit() {
	available := textfit.Size{Width: 300, Height: 100}

	r := textfit.Fit(textfit.Size{Width: 100, Height: 20}, available, 1)
	fmt.Printf("%.2f %v\n", r.Scale, r.NeedsAnotherPass)

	// Measured again after the scale was applied.
	r = textfit.Fit(textfit.Size{Width: 300, Height: 60}, available, r.Scale)
	fmt.Printf("%.2f %v\n", r.Scale, r.NeedsAnotherPass)
	// Output:
	// 3.00 true
	// 3.00 false
}
