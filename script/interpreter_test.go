package script

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/gogpu/wireframe"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// recorder is a wireframe.Renderer that records calls.
type recorder struct {
	clears   int
	segments []int // segment count per DrawLines call
	faces    []int // face count per DrawPolygons call
	colors   []wireframe.RGBA
	presents int
	exports  []string
	failWith error
}

func (r *recorder) Clear() { r.clears++ }

func (r *recorder) DrawLines(e *wireframe.EdgeBuffer, c wireframe.RGBA) {
	r.segments = append(r.segments, e.NumSegments())
	r.colors = append(r.colors, c)
}

func (r *recorder) DrawPolygons(p *wireframe.PolygonBuffer, c wireframe.RGBA) {
	r.faces = append(r.faces, p.NumFaces())
	r.colors = append(r.colors, c)
}

func (r *recorder) Present() error {
	r.presents++
	return r.failWith
}

func (r *recorder) Export(path string) error {
	r.exports = append(r.exports, path)
	return r.failWith
}

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

func run(t *testing.T, src string, opts ...Option) (*State, *recorder, error) {
	t.Helper()
	st := NewState()
	rec := &recorder{}
	err := Run(strings.NewReader(src), st, rec, opts...)
	return st, rec, err
}

func columns(seq func(func(int, wireframe.Point) bool)) []wireframe.Point {
	var pts []wireframe.Point
	for _, p := range seq {
		pts = append(pts, p)
	}
	return pts
}

// snapshot captures everything a failing command must leave untouched.
type snapshot struct {
	Transform wireframe.Matrix
	Edges     []wireframe.Point
	Polygons  []wireframe.Point
}

func snap(st *State) snapshot {
	return snapshot{
		Transform: st.Transform,
		Edges:     columns(st.Edges.Columns()),
		Polygons:  columns(st.Polygons.Columns()),
	}
}

func TestScaleApplyDisplayScenario(t *testing.T) {
	st, rec, err := run(t, lines("line", "0 0 0 10 10 10", "ident", "scale", "2 2 2", "apply", "display", "quit"))
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}

	want := []wireframe.Point{wireframe.Pt(0, 0, 0), wireframe.Pt(20, 20, 20)}
	if d := cmp.Diff(want, columns(st.Edges.Columns()), approx); d != "" {
		t.Errorf("edges (-want +got):\n%s", d)
	}
	if d := cmp.Diff(wireframe.Scale(2, 2, 2), st.Transform); d != "" {
		t.Errorf("transform (-want +got):\n%s", d)
	}
	if !slices.Equal(rec.segments, []int{1}) {
		t.Errorf("DrawLines segments = %v, want [1]", rec.segments)
	}
	if len(rec.faces) != 0 {
		t.Errorf("DrawPolygons called %d times for an empty polygon buffer", len(rec.faces))
	}
	if rec.clears != 1 || rec.presents != 1 {
		t.Errorf("clears = %d, presents = %d, want 1, 1", rec.clears, rec.presents)
	}
}

func TestInvalidAxisScenario(t *testing.T) {
	st, _, err := run(t, lines("rotate", "w 90", "quit"))
	if !errors.Is(err, ErrInvalidAxis) {
		t.Fatalf("Run() = %v, want ErrInvalidAxis", err)
	}
	var cerr *CommandError
	if !errors.As(err, &cerr) {
		t.Fatalf("Run() error %T is not a *CommandError", err)
	}
	if cerr.Line != 1 || cerr.Command != "rotate" || cerr.Args != "w 90" {
		t.Errorf("CommandError = %+v", cerr)
	}
	if !st.Transform.IsIdentity() {
		t.Errorf("transform = %v, want identity", st.Transform)
	}
}

func TestMissingArgumentLineScenario(t *testing.T) {
	for _, src := range []string{"sphere\n0 0 0 5", "sphere", "sphere\n"} {
		st, _, err := run(t, src)
		if !errors.Is(err, ErrArgumentArity) {
			t.Errorf("%q: Run() = %v, want ErrArgumentArity", src, err)
		}
		if st.Polygons.Len() != 0 {
			t.Errorf("%q: polygon buffer has %d columns, want 0", src, st.Polygons.Len())
		}
	}
}

func TestLastLineWithoutNewline(t *testing.T) {
	st, rec, err := run(t, "sphere\n0 0 0 5\ndisplay")
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if got, want := st.Polygons.NumFaces(), wireframe.SurfaceSteps*(2*wireframe.SurfaceSteps-2); got != want {
		t.Errorf("faces = %d, want %d", got, want)
	}
	if rec.presents != 1 {
		t.Errorf("unterminated display did not present")
	}
}

func TestArityMismatchLeavesStateUnchanged(t *testing.T) {
	setup := lines("line", "1 2 3 4 5 6", "box", "0 0 0 1 1 1", "move", "5 5 5")

	tests := []struct {
		name string
		cmd  string
		args string
		want error
	}{
		{"scale two values", "scale", "2 2", ErrArgumentArity},
		{"scale four values", "scale", "2 2 2 2", ErrArgumentArity},
		{"move float", "move", "1.5 0 0", ErrArgumentArity},
		{"line short", "line", "1 2 3", ErrArgumentArity},
		{"circle word", "circle", "0 0 0 r", ErrArgumentArity},
		{"hermite seven", "hermite", "1 2 3 4 5 6 7", ErrArgumentArity},
		{"bezier nine", "bezier", "1 2 3 4 5 6 7 8 9", ErrArgumentArity},
		{"sphere letters", "sphere", "a b c d", ErrArgumentArity},
		{"torus short", "torus", "0 0 0 1", ErrArgumentArity},
		{"box empty", "box", "", ErrArgumentArity},
		{"sphere nan", "sphere", "0 0 0 NaN", ErrArgumentArity},
		{"rotate no angle", "rotate", "x", ErrArgumentArity},
		{"rotate bad angle", "rotate", "x ninety", ErrArgumentArity},
		{"rotate bad axis", "rotate", "q 45", ErrInvalidAxis},
		{"rotate long axis", "rotate", "xy 45", ErrInvalidAxis},
		{"rotate upper axis", "rotate", "X 45", ErrInvalidAxis},
		{"save empty", "save", "   ", ErrArgumentArity},
		{"unterminated quote", "scale", `"2 2 2`, ErrArgumentArity},
		{"scale trailing comment", "scale", "2 2 2 # c", ErrArgumentArity},
		{"line trailing comment", "line", "0 0 0 1 1 1 # note", ErrArgumentArity},
		{"comment replaces value", "move", "1 2 #3", ErrArgumentArity},
		{"sphere fused comment", "sphere", "0 0 0 5#r", ErrArgumentArity},
		{"rotate fused bad axis", "rotate", "w90", ErrInvalidAxis},
		{"rotate fused bad angle", "rotate", "xninety", ErrArgumentArity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewState()
			rec := &recorder{}
			it := newInterpreter(st, rec, nil)
			if err := it.Run(strings.NewReader(setup)); err != nil {
				t.Fatalf("setup: %v", err)
			}
			before := snap(st)

			err := it.Run(strings.NewReader(lines(tt.cmd, tt.args, "ident", "clear")))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Run() = %v, want %v", err, tt.want)
			}
			if d := cmp.Diff(before, snap(st)); d != "" {
				t.Errorf("state changed (-before +after):\n%s", d)
			}
			if len(rec.exports) != 0 {
				t.Errorf("exported %v after a failed command", rec.exports)
			}
		})
	}
}

func TestTransformIsProductOfElementaryMatrices(t *testing.T) {
	st, _, err := run(t, lines(
		"scale", "2 3 4",
		"rotate", "z 90",
		"move", "10 0 -5",
		"rotate", "x 30",
	))
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	want := wireframe.RotateX(wireframe.Radians(30)).
		Multiply(wireframe.Translate(10, 0, -5)).
		Multiply(wireframe.RotateZ(wireframe.Radians(90))).
		Multiply(wireframe.Scale(2, 3, 4))
	if d := cmp.Diff(want, st.Transform, approx); d != "" {
		t.Errorf("transform (-want +got):\n%s", d)
	}
}

func TestRotateFusedAxisAndAngle(t *testing.T) {
	st, _, err := run(t, lines("rotate", "x90", "rotate", "  y-45 "))
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	want := wireframe.RotateY(wireframe.Radians(-45)).Multiply(wireframe.RotateX(wireframe.Radians(90)))
	if d := cmp.Diff(want, st.Transform, approx); d != "" {
		t.Errorf("transform (-want +got):\n%s", d)
	}
}

func TestIdentResets(t *testing.T) {
	st, _, err := run(t, lines("scale", "5 5 5", "rotate", "y 33.3", "move", "1 2 3", "ident"))
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if !st.Transform.IsIdentity() {
		t.Errorf("transform after ident = %v", st.Transform)
	}
}

func TestRotateThenApply(t *testing.T) {
	st, _, err := run(t, lines("line", "10 0 0 0 0 0", "rotate", "z 90", "apply"))
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	want := []wireframe.Point{wireframe.Pt(0, 10, 0), wireframe.Pt(0, 0, 0)}
	if d := cmp.Diff(want, columns(st.Edges.Columns()), approx); d != "" {
		t.Errorf("edges (-want +got):\n%s", d)
	}
}

// apply does not reset the transform, so applying twice transforms twice.
func TestApplyTwiceCompounds(t *testing.T) {
	st, _, err := run(t, lines(
		"line", "1 1 1 2 2 2",
		"box", "0 1 1 1 1 1",
		"scale", "2 2 2",
		"move", "1 0 0",
		"apply",
		"apply",
	))
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	tr := wireframe.Translate(1, 0, 0).Multiply(wireframe.Scale(2, 2, 2))
	t2 := tr.Multiply(tr)

	want := []wireframe.Point{
		t2.TransformPoint(wireframe.Pt(1, 1, 1)),
		t2.TransformPoint(wireframe.Pt(2, 2, 2)),
	}
	if d := cmp.Diff(want, columns(st.Edges.Columns()), approx); d != "" {
		t.Errorf("edges (-want +got):\n%s", d)
	}
	if d := cmp.Diff(wireframe.Pt(7, 4, 4), st.Edges.At(0), approx); d != "" {
		t.Errorf("first endpoint (-want +got):\n%s", d)
	}

	ref := wireframe.NewPolygonBuffer()
	wireframe.AddBox(ref, 0, 1, 1, 1, 1, 1)
	ref.Transform(t2)
	if d := cmp.Diff(columns(ref.Columns()), columns(st.Polygons.Columns()), approx); d != "" {
		t.Errorf("polygons (-want +got):\n%s", d)
	}
}

func TestClearEmptiesBuffersAndReusesStorage(t *testing.T) {
	st := NewState()
	rec := &recorder{}
	it := newInterpreter(st, rec, nil)
	err := it.Run(strings.NewReader(lines(
		"circle", "0 0 0 10",
		"sphere", "0 0 0 10",
		"clear",
	)))
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if st.Edges.Len() != 0 || st.Polygons.Len() != 0 {
		t.Fatalf("after clear: edges %d, polygons %d, want 0, 0", st.Edges.Len(), st.Polygons.Len())
	}
	edgeCap, polyCap := st.Edges.Cap(), st.Polygons.Cap()

	if err := it.Run(strings.NewReader(lines("line", "1 1 1 2 2 2", "box", "0 0 0 1 1 1", "display"))); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if st.Edges.Cap() != edgeCap || st.Polygons.Cap() != polyCap {
		t.Errorf("storage reallocated after clear: caps %d/%d, want %d/%d",
			st.Edges.Cap(), st.Polygons.Cap(), edgeCap, polyCap)
	}
	if !slices.Equal(rec.segments, []int{1}) || !slices.Equal(rec.faces, []int{12}) {
		t.Errorf("drew segments %v faces %v, want [1] [12]", rec.segments, rec.faces)
	}
}

func TestBufferLengthInvariants(t *testing.T) {
	st, _, err := run(t, lines(
		"line", "0 0 0 1 1 1",
		"circle", "0 0 0 5",
		"hermite", "0 0 10 10 5 5 5 5",
		"bezier", "0 0 1 1 2 2 3 3",
		"sphere", "0 0 0 10",
		"torus", "0 0 0 1 5",
		"box", "0 0 0 1 2 3",
		"rotate", "y 45",
		"apply",
	))
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if n := st.Edges.Len(); n%2 != 0 {
		t.Errorf("edge length %d is odd", n)
	}
	if n := st.Polygons.Len(); n%3 != 0 {
		t.Errorf("polygon length %d is not a multiple of 3", n)
	}
	if got, want := st.Edges.NumSegments(), 1+3*wireframe.CurveSteps; got != want {
		t.Errorf("segments = %d, want %d", got, want)
	}
}

func TestCommentsBlankAndUnknown(t *testing.T) {
	var diag bytes.Buffer
	st, _, err := run(t, lines(
		"# a comment",
		"// another",
		"",
		"   ",
		"frobnicate",
		"Line",
		"  line  ",
		"0 0 0 1 1 1",
	), WithDiagnostics(&diag))
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if st.Edges.NumSegments() != 1 {
		t.Errorf("segments = %d, want 1", st.Edges.NumSegments())
	}
	want := "frobnicate: command not found\nLine: command not found\n"
	if diag.String() != want {
		t.Errorf("diagnostics = %q, want %q", diag.String(), want)
	}
}

func TestQuitStopsRun(t *testing.T) {
	st, rec, err := run(t, lines("line", "0 0 0 1 1 1", "quit", "clear", "display", "scale", "bad"))
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if st.Edges.Len() != 2 {
		t.Errorf("edges = %d columns, want 2", st.Edges.Len())
	}
	if rec.presents != 0 {
		t.Errorf("commands after quit ran")
	}
}

func TestSave(t *testing.T) {
	_, rec, err := run(t, lines("box", "0 0 0 1 1 1", "save", "  my scene.png  ", "save", "b.ppm"))
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if !slices.Equal(rec.exports, []string{"my scene.png", "b.ppm"}) {
		t.Errorf("exports = %q", rec.exports)
	}
	if rec.clears != 2 || !slices.Equal(rec.faces, []int{12, 12}) {
		t.Errorf("clears = %d, faces = %v", rec.clears, rec.faces)
	}
	if len(rec.segments) != 0 {
		t.Errorf("DrawLines called for an empty edge buffer")
	}
}

func TestRenderFailureAborts(t *testing.T) {
	boom := errors.New("boom")
	for _, cmd := range []string{lines("display", "line", "0 0 0 1 1 1"), lines("save", "x.png", "line", "0 0 0 1 1 1")} {
		st := NewState()
		rec := &recorder{failWith: boom}
		err := Run(strings.NewReader(cmd), st, rec)
		if !errors.Is(err, ErrRender) || !errors.Is(err, boom) {
			t.Errorf("Run() = %v, want ErrRender wrapping boom", err)
		}
		if st.Edges.Len() != 0 {
			t.Error("commands after a render failure ran")
		}
	}
}

func TestDrawColor(t *testing.T) {
	_, rec, err := run(t, lines("line", "0 0 0 1 1 1", "box", "0 0 0 1 1 1", "display"), WithColor(wireframe.Red))
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if !slices.Equal(rec.colors, []wireframe.RGBA{wireframe.Red, wireframe.Red}) {
		t.Errorf("colors = %v, want red twice", rec.colors)
	}

	_, rec, _ = run(t, lines("line", "0 0 0 1 1 1", "display"))
	if !slices.Equal(rec.colors, []wireframe.RGBA{wireframe.Black}) {
		t.Errorf("default colors = %v, want black", rec.colors)
	}
}

func TestTrace(t *testing.T) {
	var trace bytes.Buffer
	_, _, err := run(t, lines("# hi", "move", "1 2 3", "nope"), WithTrace(&trace))
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	want := ":# hi:\n:move:\n:1 2 3:\n:nope:\n"
	if trace.String() != want {
		t.Errorf("trace = %q, want %q", trace.String(), want)
	}
}

func TestWithResolution(t *testing.T) {
	st, _, err := run(t, lines("circle", "0 0 0 10", "torus", "0 0 0 1 5"), WithResolution(4, 8))
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if st.Edges.NumSegments() != 8 {
		t.Errorf("circle segments = %d, want 8", st.Edges.NumSegments())
	}
	if st.Polygons.NumFaces() != 2*4*4 {
		t.Errorf("torus faces = %d, want 32", st.Polygons.NumFaces())
	}
}

func TestCRLF(t *testing.T) {
	st, _, err := run(t, "line\r\n0 0 0 1 1 1\r\nscale\r\n3 3 3\r\napply\r\n")
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if d := cmp.Diff(wireframe.Pt(3, 3, 3), st.Edges.At(1), approx); d != "" {
		t.Errorf("endpoint (-want +got):\n%s", d)
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.mdl")
	if err := os.WriteFile(path, []byte(lines("line", "0 0 0 4 4 4", "display")), 0o600); err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	it := New(rec)
	if err := it.RunFile(path); err != nil {
		t.Fatalf("RunFile() = %v", err)
	}
	if it.State().Edges.NumSegments() != 1 || rec.presents != 1 {
		t.Errorf("segments = %d, presents = %d", it.State().Edges.NumSegments(), rec.presents)
	}

	err := it.RunFile(filepath.Join(t.TempDir(), "missing.mdl"))
	if !errors.Is(err, ErrSourceUnavailable) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("RunFile(missing) = %v, want ErrSourceUnavailable wrapping ErrNotExist", err)
	}
}

func TestKeywordsMatchTable(t *testing.T) {
	got := Keywords()
	if len(got) != len(commands) {
		t.Fatalf("Keywords() has %d entries, table has %d", len(got), len(commands))
	}
	var table []string
	for k := range commands {
		table = append(table, k)
	}
	sort.Strings(table)
	sorted := slices.Clone(got)
	sort.Strings(sorted)
	if !slices.Equal(sorted, table) {
		t.Errorf("Keywords() = %v, table = %v", sorted, table)
	}
}

func TestCommandErrorMessage(t *testing.T) {
	_, _, err := run(t, lines("ident", "scale", "2 2"))
	want := `script: invalid arguments: scale at line 2: "2 2"`
	if err == nil || err.Error() != want {
		t.Errorf("Error() = %q, want %q", err, want)
	}
}
