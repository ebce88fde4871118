// Package script interprets line-oriented scene scripts.
//
// # Format
//
// A script holds one command keyword per line. Lines starting with '#' or
// "//" and blank lines are ignored. Commands that take arguments read them
// from the following line as whitespace-separated values:
//
//	# a box, turned and scaled
//	box
//	-50 50 50 100 100 100
//	rotate
//	y 30
//	scale
//	2 2 2
//	move
//	250 250 0
//	apply
//	save
//	box.png
//
// Commands:
//
//	sphere   cx cy cz r                     add a sphere to the polygons
//	torus    cx cy cz r1 r2                 add a torus to the polygons
//	box      x y z w h d                    add a rectangular prism to the polygons
//	clear                                   empty both buffers
//	circle   cx cy cz r                     add a circle to the edges
//	hermite  x0 y0 x1 y1 rx0 ry0 rx1 ry1    add a Hermite curve to the edges
//	bezier   x0 y0 x1 y1 x2 y2 x3 y3        add a Bézier curve to the edges
//	line     x0 y0 z0 x1 y1 z1              add a segment to the edges
//	ident                                   reset the transform
//	scale    sx sy sz                       compose a scale into the transform
//	move     tx ty tz                       compose a translation into the transform
//	rotate   axis degrees                   compose a rotation about x, y or z
//	apply                                   transform both buffers in place
//	display                                 draw and present
//	save     filename                       draw and write an image file
//	quit                                    stop
//
// circle, hermite, bezier, line, scale and move take integers; sphere,
// torus, box and the rotate angle take floating-point numbers. The rotate
// axis may be written fused to its angle, as in "x90". A '#' anywhere in a
// numeric argument line is invalid.
//
// Any argument line with the wrong number of values, or values of the wrong
// kind, aborts the whole run, as does an unknown rotate axis. A missing
// argument line counts as a wrong number of values, and so does a final
// argument line without a terminating newline. Unknown commands are
// reported and skipped.
package script
