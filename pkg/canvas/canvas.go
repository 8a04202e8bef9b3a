// Package canvas implements the diary drawing surface: a raster canvas
// driven by a two-state stroke machine, with a bounded history of full
// snapshots supporting undo within one editing session.
package canvas

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"strings"
)

const (
	// Width and Height of the drawing surface in pixels.
	Width  = 800
	Height = 420

	penWidth    = 4
	eraserWidth = 40

	// historyCap bounds the undo history; the oldest snapshot is evicted.
	historyCap = 20

	dataURLPrefix = "data:image/png;base64,"
)

// Point is a canvas coordinate.
type Point struct {
	X, Y float64
}

// Tool selects pen or eraser for a stroke. The pen paints source-over at a
// fixed width; the eraser removes pixels.
type Tool struct {
	Eraser bool
	Color  color.NRGBA
}

// Pen returns a pen tool painting with c.
func Pen(c color.NRGBA) Tool {
	return Tool{Color: c}
}

// Eraser removes pixels along the stroke.
var Eraser = Tool{Eraser: true}

type state int

const (
	stateIdle state = iota
	stateStroking
)

// Engine owns one canvas surface. It is single-threaded by contract: all
// calls happen on the event goroutine driving the input.
type Engine struct {
	img     *image.NRGBA
	state   state
	tool    Tool
	last    Point
	history []string
}

// New returns an engine over a blank surface with empty history.
func New() *Engine {
	return &Engine{img: image.NewNRGBA(image.Rect(0, 0, Width, Height))}
}

// BeginStroke starts a path at p with the given tool.
func (e *Engine) BeginStroke(p Point, tool Tool) error {
	if e.state != stateIdle {
		return errors.New("canvas: stroke already in progress")
	}
	e.state = stateStroking
	e.tool = tool
	e.last = p
	return nil
}

// ExtendStroke paints the segment from the previous point to p
// immediately; there is no batching between input and pixels.
func (e *Engine) ExtendStroke(p Point) error {
	if e.state != stateStroking {
		return errors.New("canvas: no stroke in progress")
	}
	e.paintSegment(e.last, p)
	e.last = p
	return nil
}

// EndStroke finishes the stroke, snapshots the whole canvas, pushes the
// snapshot onto the bounded history, and returns it for persistence as the
// day's drawing.
func (e *Engine) EndStroke() (string, error) {
	if e.state != stateStroking {
		return "", errors.New("canvas: no stroke in progress")
	}
	e.state = stateIdle
	snap := e.Snapshot()
	e.history = append(e.history, snap)
	if len(e.history) > historyCap {
		e.history = e.history[len(e.history)-historyCap:]
	}
	return snap, nil
}

// Undo pops the newest snapshot. With one or zero snapshots it undoes to
// blank: the canvas clears and nil is returned so the caller can null out
// the persisted drawing. There is no redo; the popped snapshot is gone.
func (e *Engine) Undo() *string {
	if len(e.history) <= 1 {
		e.clearSurface()
		e.history = nil
		return nil
	}
	e.history = e.history[:len(e.history)-1]
	top := e.history[len(e.history)-1]
	if err := e.drawSnapshot(top); err != nil {
		// An undecodable snapshot of our own making should not happen;
		// fall back to a blank canvas rather than a torn one.
		e.clearSurface()
		e.history = nil
		return nil
	}
	return &top
}

// Clear wipes the canvas and empties the history. Confirming the
// destructive action is the caller's contract.
func (e *Engine) Clear() {
	e.clearSurface()
	e.history = nil
}

// Load replaces the surface with a persisted drawing. The history always
// starts empty: undo only covers strokes made in the current session.
func (e *Engine) Load(snapshot *string) error {
	e.clearSurface()
	e.history = nil
	if snapshot == nil || *snapshot == "" {
		return nil
	}
	return e.drawSnapshot(*snapshot)
}

// Snapshot encodes the surface as a base64 PNG data URL.
func (e *Engine) Snapshot() string {
	var buf bytes.Buffer
	// Encoding an in-memory NRGBA cannot fail.
	_ = png.Encode(&buf, e.img)
	return dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes())
}

// HistoryLen reports how many undo snapshots are retained.
func (e *Engine) HistoryLen() int {
	return len(e.history)
}

func (e *Engine) clearSurface() {
	for i := range e.img.Pix {
		e.img.Pix[i] = 0
	}
}

func (e *Engine) drawSnapshot(snapshot string) error {
	raw := strings.TrimPrefix(snapshot, dataURLPrefix)
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return fmt.Errorf("canvas: decode snapshot: %w", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("canvas: decode snapshot: %w", err)
	}
	e.clearSurface()
	draw.Draw(e.img, e.img.Bounds(), img, image.Point{}, draw.Over)
	return nil
}

// paintSegment stamps a round brush along the segment so the stroke gets
// round caps and joins, like a 2D context with lineCap round.
func (e *Engine) paintSegment(a, b Point) {
	radius := float64(penWidth) / 2
	if e.tool.Eraser {
		radius = float64(eraserWidth) / 2
	}
	dist := math.Hypot(b.X-a.X, b.Y-a.Y)
	steps := int(math.Ceil(dist))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		e.stamp(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t, radius)
	}
}

func (e *Engine) stamp(cx, cy, radius float64) {
	minX := int(math.Floor(cx - radius))
	maxX := int(math.Ceil(cx + radius))
	minY := int(math.Floor(cy - radius))
	maxY := int(math.Ceil(cy + radius))
	for y := minY; y <= maxY; y++ {
		if y < 0 || y >= Height {
			continue
		}
		for x := minX; x <= maxX; x++ {
			if x < 0 || x >= Width {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			if e.tool.Eraser {
				e.img.SetNRGBA(x, y, color.NRGBA{})
			} else {
				e.img.SetNRGBA(x, y, e.tool.Color)
			}
		}
	}
}
