// Package shape builds vector shapes from skin options and combines them
// with boolean operations.
//
// A section declares shapes under the keys Shape, Shape2, Shape3 and so on,
// read until the first empty key. Each declaration is a '|' separated list
// whose first token is the kind and whose remaining tokens are modifiers:
//
//	Shape  = Rectangle 0,0,100,50 | FillColor 255,0,0 | StrokeWidth 2
//	Shape2 = Rectangle 20,20,100,50,8 | Rotate 15
//	Shape3 = Combine Shape | Union Shape2 | Offset 10,10
//
// A Combine declaration clones its parent shape and folds the operands
// into it in order. Shapes used as a parent or operand are marked combined
// and are neither drawn nor hit-tested on their own.
package shape
