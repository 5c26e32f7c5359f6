package integrate_test

import (
	"fmt"
	"math"

	"github.com/YuminosukeSato/scinum/integrate"
)

func ExampleSimpson() {
	v, err := integrate.Simpson(math.Sin, 1e-10, 0, math.Pi)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.6f\n", v)

	// reversed bounds negate the result
	v, _ = integrate.Simpson(math.Sin, 1e-10, math.Pi, 0)
	fmt.Printf("%.6f\n", v)
	// Output:
	// 2.000000
	// -2.000000
}

func ExampleAdaptiveSimpson_Quad() {
	s := integrate.NewAdaptiveSimpson(integrate.WithMaxDepth(30))
	res, err := s.Quad(func(x float64) float64 { return x * x }, 1e-10, 0, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("value=%.4f evaluations=%d intervals=%d\n", res.Value, res.Evaluations, res.Intervals)
	// Output:
	// value=9.0000 evaluations=5 intervals=1
}
