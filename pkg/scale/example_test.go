package scale_test

import (
	"fmt"

	"github.com/matzehuels/chartkit/pkg/scale"
)

func ExampleNewLinear() {
	s := scale.NewLinear(scale.Domain{Min: 0, Max: 100}, 0, 360)
	fmt.Println(s.Map(50))
	// Output:
	// 180
}

func ExampleDomain_Include() {
	d := scale.DomainOf(20, 80)
	d = d.Include(95) // new value observed
	d = d.Include(50) // inside: no change
	fmt.Println(d.Min, d.Max)
	// Output:
	// 20 95
}
