// Package meter draws the sections of a skin onto a canvas.
//
// A section with a Meter key is a meter. The kinds are Shape, String and
// Image; every kind reads the common keys X, Y, W, H, Hidden, SolidColor
// and AntiAlias:
//
//	[Box]
//	Meter = "Shape"
//	X = 10
//	Shape = "Rectangle 0,0,80,30,4 | FillColor 40,40,40,220"
//
//	[Title]
//	Meter = "String"
//	X = 14
//	Y = 6
//	Text = "CPU #Load#%"
//	FontSize = 12
//	FontColor = "255,255,255"
//
// Meters without a fixed W or H take their size from their content. A
// Window lays the meters of a skin out on one canvas and renders them in
// file order.
package meter
