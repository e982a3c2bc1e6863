// Package render prints the dependency structure below a node of a
// value.Graph as an indented text tree.
//
// The walk is pre-order and depth first, dependencies in operand order, and
// a node reachable along several paths is printed once per path. With the
// default options the scenario L = (a*b + c) * f, L.grad = 1 renders as:
//
//	(L=-8, '*', grad=1.000)
//	|----(d=4, '+', grad=0.000)
//	      |----(e=-6, '*', grad=0.000)
//	            |----(a=2, grad=0.000)
//	            |----(b=-3, grad=0.000)
//	      |----(c=10, grad=0.000)
//	|----(f=-2, grad=0.000)
//
// Layout:
//
//   - depth 0: the description alone.
//   - depth d > 0: Step*(d-1) spaces, the connector, the description. Depth 1
//     sits flush with the root; indentation grows from depth 2 onward.
//
// Styles:
//
//   - StyleFull:  "(label=value, 'op', grad=g)", leaves omit the op segment.
//   - StyleValue: "(value)".
//
// Values use the shortest decimal representation; gradients use three
// decimals. Every line ends in '\n' and output is deterministic.
package render
