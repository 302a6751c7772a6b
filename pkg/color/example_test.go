package color_test

import (
	"fmt"

	"github.com/matzehuels/chartkit/pkg/color"
)

func ExampleEncoder_Resolve() {
	scheme, _ := color.Lookup("cool")
	enc := color.NewEncoder(scheme, []string{"Germany", "France", "Spain"},
		color.WithOverrides(map[string]string{"Spain": "#ff0000"}))

	fmt.Println(enc.Resolve("Germany"))
	fmt.Println(enc.Resolve("France"))
	fmt.Println(enc.Resolve("Spain"))
	fmt.Println(enc.Resolve("Italy"))
	// Output:
	// #a8385d
	// #7aa3e5
	// #ff0000
	// #a8a8a8
}

func ExampleEncoder_ResolveValue() {
	scheme, _ := color.NewScheme("mono", color.Linear, []string{"#000000", "#ffffff"})
	enc := color.NewEncoder(scheme, nil, color.WithValues([]float64{0, 10}))

	fmt.Println(enc.ResolveValue(0))
	fmt.Println(enc.ResolveValue(10))
	// Output:
	// #000000
	// #ffffff
}
