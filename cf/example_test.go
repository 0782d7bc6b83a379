package cf_test

import (
	"fmt"

	"github.com/katalvlaran/cfrac/cf"
	"github.com/katalvlaran/cfrac/rational"
)

func ExampleAdd() {
	x, _ := cf.SqrtRational(rational.FromInt(2))
	y, _ := cf.Add(x, cf.FromInt(1))
	s, _ := y.DecimalString(10)
	fmt.Println(s)
	// Output: 2.4142135624
}

func ExampleQuadraticSurd() {
	phi, _ := cf.QuadraticSurd(rational.FromInt(5), rational.One(), rational.FromInt(2))
	fmt.Println(phi)
	// Output: Periodic[init=[] repeat=[1]]
}

func ExampleSqrt() {
	x, _ := cf.SqrtRational(rational.FromInt(2))
	y, _ := cf.SqrtRational(rational.FromInt(3))
	sum, _ := cf.Add(x, y)
	root, _ := cf.Sqrt(sum)
	s, _ := root.DecimalString(10)
	fmt.Println(root.Kind(), s)
	// Output: Sqrt 1.7737712282
}

func ExampleConvergents() {
	x, _ := cf.SqrtRational(rational.FromInt(2))
	cs, _ := cf.Convergents(x, 5)
	fmt.Println(cs)
	// Output: [1 3/2 7/5 17/12 41/29]
}
