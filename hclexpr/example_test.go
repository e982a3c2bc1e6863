package hclexpr_test

import (
	"fmt"

	"github.com/katalvlaran/valgraph/hclexpr"
	"github.com/katalvlaran/valgraph/render"
	"github.com/katalvlaran/valgraph/value"
)

// ExampleParse builds a neuron-like expression from source text.
func ExampleParse() {
	g := value.NewGraph()
	vars := hclexpr.Leaves(g, map[string]float64{"x": 1, "w": 0.5})

	o, err := hclexpr.Parse(g, "tanh(x*w + -0.5)", vars)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = g.SetLabel(o, "o")

	out, _ := render.Render(g, o)
	fmt.Print(out)

	// Output:
	// (o=0, 'tanh', grad=0.000)
	// |----(=0, '+', grad=0.000)
	//       |----(=0.5, '*', grad=0.000)
	//             |----(x=1, grad=0.000)
	//             |----(w=0.5, grad=0.000)
	//       |----(=-0.5, grad=0.000)
}
