// Command wirescript runs a scene script and renders it.
//
// Usage:
//
//	wirescript [flags] [script]
//
// The script defaults to standard input ("stdin" or "-" also select it).
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/wireframe"
	"github.com/gogpu/wireframe/internal/viewer"
	"github.com/gogpu/wireframe/script"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		width      = flag.Int("width", wireframe.DefaultWidth, "canvas width")
		height     = flag.Int("height", wireframe.DefaultHeight, "canvas height")
		color      = flag.String("color", "#000000", "draw color (hex)")
		background = flag.String("background", "#ffffff", "background color (hex)")
		noCull     = flag.Bool("nocull", false, "draw back-facing polygons")
		window     = flag.Bool("window", false, "show display frames in a window")
		preview    = flag.String("preview", "", "write display frames to this image file")
		trace      = flag.Bool("trace", false, "echo every script line to stdout")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		return 2
	}
	name := "stdin"
	if flag.NArg() == 1 {
		name = flag.Arg(0)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	wireframe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	fg, err := wireframe.ParseHex(*color)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wirescript: -color %q: %v\n", *color, err)
		return 2
	}
	bg, err := wireframe.ParseHex(*background)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wirescript: -background %q: %v\n", *background, err)
		return 2
	}

	ropts := []wireframe.RendererOption{
		wireframe.WithSize(*width, *height),
		wireframe.WithBackground(bg),
		wireframe.WithCulling(!*noCull),
	}
	var win *viewer.Window
	switch {
	case *window:
		win = viewer.New(*width, *height, "wirescript: "+name)
		ropts = append(ropts, wireframe.WithPresenter(win))
	case *preview != "":
		ropts = append(ropts, wireframe.WithPresenter(wireframe.FilePresenter{Path: *preview}))
	}

	r, err := wireframe.NewSoftwareRenderer(ropts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wirescript: %v\n", err)
		return 2
	}

	sopts := []script.Option{
		script.WithColor(fg),
		script.WithDiagnostics(os.Stderr),
	}
	if *trace {
		sopts = append(sopts, script.WithTrace(os.Stdout))
	}
	it := script.New(r, sopts...)

	work := func() error { return it.RunFile(name) }
	if win != nil {
		err = win.Run(work)
	} else {
		err = work()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "wirescript: %v\n", err)
		return 1
	}
	return 0
}
