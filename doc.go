// Package wireframe provides the geometry and rendering core of a 3D
// wireframe scene scripting tool.
//
// # Overview
//
// Geometry is held in two buffers of homogeneous points: an [EdgeBuffer]
// whose columns pair up into line segments, and a [PolygonBuffer] whose
// columns group into triangles. Shape generators ([AddSphere], [AddTorus],
// [AddBox], [AddCircle], [AddCurve], [AddEdge]) append to them, a 4x4
// [Matrix] transforms them in place, and a [Renderer] draws them.
//
// # Quick Start
//
//	edges := wireframe.NewEdgeBuffer()
//	wireframe.AddCircle(edges, 250, 250, 0, 100, wireframe.CurveSteps)
//
//	t := wireframe.Compose(wireframe.Scale(2, 2, 2), wireframe.Identity())
//	edges.Transform(t)
//
//	r, _ := wireframe.NewSoftwareRenderer()
//	r.DrawLines(edges, wireframe.Black)
//	r.Export("circle.png")
//
// The script package drives all of this from a line-oriented text format.
//
// # Coordinate System
//
// Points are column vectors; a matrix M maps p to M·p. Composing a new
// elementary matrix E into a transform T yields E·T. The software renderer
// projects orthographically with the origin at the bottom-left pixel and
// y increasing upwards; faces wound counter-clockwise face the viewer.
package wireframe

// Version is the current version of the library
const Version = "0.1.0"
