// Package viewer shows rendered frames in a desktop window.
package viewer

import (
	"errors"
	"image"
	"image/draw"
	"sync"
	"sync/atomic"

	"github.com/gogpu/wireframe"
	"github.com/hajimehoshi/ebiten/v2"
)

// Window is a wireframe.Presenter that displays the latest presented frame.
//
// Run must be called from the main goroutine; it owns the window event
// loop while the work function runs on another goroutine.
type Window struct {
	title  string
	width  int
	height int

	mu    sync.Mutex
	frame *image.RGBA
	dirty bool
	shown bool

	finished atomic.Bool
}

var _ wireframe.Presenter = (*Window)(nil)

// New creates a window of the given size. Nothing is shown until Run.
func New(width, height int, title string) *Window {
	return &Window{title: title, width: width, height: height}
}

// Present copies img as the next frame to show. It is safe to call from
// any goroutine.
func (w *Window) Present(img image.Image) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	b := img.Bounds()
	if w.frame == nil || w.frame.Bounds().Size() != b.Size() {
		w.frame = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	draw.Draw(w.frame, w.frame.Bounds(), img, b.Min, draw.Src)
	w.dirty = true
	w.shown = true
	wireframe.Logger().Debug("viewer: frame presented", "width", b.Dx(), "height", b.Dy())
	return nil
}

// Run opens the window and calls work on a separate goroutine. The window
// stays open after work returns until it is closed or Escape or Q is
// pressed; if work never presented a frame the window closes as soon as
// work returns. Run returns work's error.
func (w *Window) Run(work func() error) error {
	errc := make(chan error, 1)
	go func() {
		errc <- work()
		w.finished.Store(true)
	}()

	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetTPS(30)
	if err := ebiten.RunGame(&game{w: w}); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return <-errc
}

type game struct {
	w   *Window
	img *ebiten.Image
}

func (g *game) Update() error {
	if !g.w.finished.Load() {
		return nil
	}
	g.w.mu.Lock()
	shown := g.w.shown
	g.w.mu.Unlock()
	if !shown || ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.w.mu.Lock()
	if g.w.dirty {
		size := g.w.frame.Bounds().Size()
		if g.img == nil || g.img.Bounds().Size() != size {
			if g.img != nil {
				g.img.Deallocate()
			}
			g.img = ebiten.NewImage(size.X, size.Y)
		}
		g.img.WritePixels(g.w.frame.Pix)
		g.w.dirty = false
	}
	g.w.mu.Unlock()

	if g.img != nil {
		screen.DrawImage(g.img, nil)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w.width, g.w.height
}
