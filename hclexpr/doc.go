// Package hclexpr builds value.Graph nodes from an arithmetic expression
// written in HCL native syntax, e.g.
//
//	(a*b + c) * f
//	tanh(x*w + 0.5)
//
// Supported terms are numeric literals (an optional leading '-' is folded
// into the literal), bare variable names, '+', '*', tanh(x) and
// parentheses. Every reference to the same name resolves to the same node
// ID, so repeated variables produce a shared DAG rather than copies.
//
// Anything else, including '-', '/', conditionals, attribute access and
// other function calls, is rejected with ErrUnsupported. Syntax errors are
// returned as hcl.Diagnostics.
package hclexpr
