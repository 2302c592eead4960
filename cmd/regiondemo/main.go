// Command regiondemo animates two overlapping rectangles on the
// controlling terminal, using a damage.Grid to track and flush only the
// cells that actually changed each frame.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/creack/pty"
	"github.com/creack/termios/raw"
	"github.com/xo/terminfo"

	region "github.com/iskiselev/Graphics.Region"
	"github.com/iskiselev/Graphics.Region/damage"
)

func main() {
	frames := flag.Int("frames", 40, "number of animation frames to draw before exiting")
	frameDelay := flag.Duration("delay", 80*time.Millisecond, "delay between frames")
	flag.Parse()

	if err := run(*frames, *frameDelay); err != nil {
		fmt.Fprintln(os.Stderr, "regiondemo:", err)
		os.Exit(1)
	}
}

// run owns raw-mode setup/teardown as a single errors.Join'd return value,
// so a failure mid-animation never leaves the terminal stuck in raw mode
// without being reported.
func run(frames int, frameDelay time.Duration) (err error) {
	ti, err := terminfo.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("terminfo.LoadFromEnv: %w", err)
	}

	tios, err := raw.MakeRaw(os.Stdin.Fd())
	if err != nil {
		return fmt.Errorf("MakeRaw: %w", err)
	}
	defer func() {
		err = errors.Join(err, raw.TcSetAttr(os.Stdin.Fd(), tios))
	}()

	writeCap(ti, terminfo.CursorInvisible)
	defer writeCap(ti, terminfo.CursorNormal)

	grid, viewport := newGridForTerminal()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)
	defer signal.Stop(sigCh)

	writeCap(ti, terminfo.ClearScreen)

	for frame := 0; frame < frames; frame++ {
		select {
		case <-sigCh:
			grid, viewport = newGridForTerminal()
			writeCap(ti, terminfo.ClearScreen)
		default:
		}

		drawFrame(grid, viewport, frame)
		if flushErr := grid.Flush(os.Stdout, viewport); flushErr != nil {
			return fmt.Errorf("frame %d: %w", frame, flushErr)
		}
		time.Sleep(frameDelay)
	}
	return nil
}

// newGridForTerminal sizes a fresh grid to the controlling terminal,
// falling back to a sane default when the size can't be queried (e.g.
// stdout isn't a tty).
func newGridForTerminal() (*damage.Grid, region.Rectangle) {
	w, h := 80, 24
	if ws, err := pty.GetsizeFull(os.Stdout); err == nil && ws.Cols > 0 && ws.Rows > 0 {
		w, h = int(ws.Cols), int(ws.Rows)
	}
	return damage.NewGrid(w, h), region.Rect(0, 0, w, h)
}

// drawFrame paints two rectangles bouncing toward and through each other,
// relying on the grid's dirty tracking to minimize what actually gets
// written: only the cells covered by the previous or the current frame's
// rectangles.
func drawFrame(grid *damage.Grid, viewport region.Rectangle, frame int) {
	w, h := grid.Size()
	if frame > 0 {
		grid.Erase(bounceRect(frame-1, w, h, 0))
		grid.Erase(bounceRect(frame-1, w, h, w/3))
	}

	a := bounceRect(frame, w, h, 0)
	b := bounceRect(frame, w, h, w/3)

	red := damage.NewStyle()
	_ = red.SetColor256(damage.ComponentFG, damage.ColRed)
	blue := damage.NewStyle()
	_ = blue.SetColor256(damage.ComponentFG, damage.ColBlue)

	fillRect(grid, a, '#', red)
	fillRect(grid, b, '@', blue)
}

func fillRect(grid *damage.Grid, r region.Rectangle, ch rune, style damage.Style) {
	b := r.ToBox()
	line := make([]rune, b.X2-b.X1)
	for i := range line {
		line[i] = ch
	}
	for y := b.Y1; y < b.Y2; y++ {
		grid.WriteAt(b.X1, y, string(line), style)
	}
}

func bounceRect(frame, w, h, phase int) region.Rectangle {
	period := 2 * (w - 8)
	if period <= 0 {
		period = 1
	}
	pos := (frame + phase) % period
	if pos > period/2 {
		pos = period - pos
	}
	return region.Rect(pos, h/3, 8, h/3)
}

func writeCap(ti *terminfo.Terminfo, capIndex int) {
	if capIndex < 0 || capIndex >= len(ti.Strings) || len(ti.Strings[capIndex]) == 0 {
		return
	}
	_, _ = os.Stdout.Write(ti.Strings[capIndex])
}
