package canvas

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"testing"
)

var ink = color.NRGBA{R: 0x33, G: 0x41, B: 0x55, A: 0xff}

func stroke(t *testing.T, e *Engine, from, to Point, tool Tool) string {
	t.Helper()
	if err := e.BeginStroke(from, tool); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := e.ExtendStroke(to); err != nil {
		t.Fatalf("extend: %v", err)
	}
	snap, err := e.EndStroke()
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	return snap
}

func TestPenPaintsPixels(t *testing.T) {
	e := New()
	stroke(t, e, Point{X: 100, Y: 100}, Point{X: 140, Y: 100}, Pen(ink))
	if got := e.img.NRGBAAt(120, 100); got != ink {
		t.Fatalf("expected ink at stroke midpoint, got %+v", got)
	}
	if got := e.img.NRGBAAt(400, 300); got.A != 0 {
		t.Fatalf("expected untouched pixel to stay transparent")
	}
}

func TestEraserRemovesPixels(t *testing.T) {
	e := New()
	stroke(t, e, Point{X: 100, Y: 100}, Point{X: 140, Y: 100}, Pen(ink))
	stroke(t, e, Point{X: 100, Y: 100}, Point{X: 140, Y: 100}, Eraser)
	if got := e.img.NRGBAAt(120, 100); got.A != 0 {
		t.Fatalf("expected erased pixel, got %+v", got)
	}
}

func TestStrokeStateMachine(t *testing.T) {
	e := New()
	if err := e.ExtendStroke(Point{}); err == nil {
		t.Fatalf("extend outside a stroke must fail")
	}
	if _, err := e.EndStroke(); err == nil {
		t.Fatalf("end outside a stroke must fail")
	}
	if err := e.BeginStroke(Point{}, Pen(ink)); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := e.BeginStroke(Point{}, Pen(ink)); err == nil {
		t.Fatalf("nested begin must fail")
	}
}

func TestUndoToBlank(t *testing.T) {
	e := New()
	stroke(t, e, Point{X: 10, Y: 10}, Point{X: 50, Y: 50}, Pen(ink))
	if e.HistoryLen() != 1 {
		t.Fatalf("expected one snapshot, got %d", e.HistoryLen())
	}

	if snap := e.Undo(); snap != nil {
		t.Fatalf("undo of the only snapshot must clear to blank")
	}
	if e.HistoryLen() != 0 {
		t.Fatalf("history must be empty after undo-to-blank")
	}
	if got := e.img.NRGBAAt(30, 30); got.A != 0 {
		t.Fatalf("canvas must be blank after undo-to-blank")
	}
}

func TestUndoRestoresPreviousSnapshot(t *testing.T) {
	e := New()
	first := stroke(t, e, Point{X: 10, Y: 10}, Point{X: 50, Y: 10}, Pen(ink))
	stroke(t, e, Point{X: 10, Y: 100}, Point{X: 50, Y: 100}, Pen(ink))

	snap := e.Undo()
	if snap == nil || *snap != first {
		t.Fatalf("undo must return the prior snapshot for persistence")
	}
	if got := e.img.NRGBAAt(30, 10); got != ink {
		t.Fatalf("first stroke must survive the undo")
	}
	if got := e.img.NRGBAAt(30, 100); got.A != 0 {
		t.Fatalf("second stroke must be gone after undo")
	}
}

func TestHistoryBound(t *testing.T) {
	e := New()
	for i := 0; i < 25; i++ {
		stroke(t, e, Point{X: float64(i * 5), Y: 10}, Point{X: float64(i*5 + 3), Y: 10}, Pen(ink))
	}
	if e.HistoryLen() != historyCap {
		t.Fatalf("expected history capped at %d, got %d", historyCap, e.HistoryLen())
	}
}

func TestLoadRoundTrip(t *testing.T) {
	e := New()
	snap := stroke(t, e, Point{X: 200, Y: 200}, Point{X: 240, Y: 200}, Pen(ink))

	fresh := New()
	if err := fresh.Load(&snap); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := fresh.img.NRGBAAt(220, 200); got != ink {
		t.Fatalf("loaded drawing lost its pixels: %+v", got)
	}
	if fresh.HistoryLen() != 0 {
		t.Fatalf("history must not be repopulated from persisted state")
	}
}

func TestLoadNilClears(t *testing.T) {
	e := New()
	stroke(t, e, Point{X: 10, Y: 10}, Point{X: 20, Y: 10}, Pen(ink))
	if err := e.Load(nil); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := e.img.NRGBAAt(15, 10); got.A != 0 {
		t.Fatalf("load(nil) must leave a blank canvas")
	}
}

func TestExportDimensionsAndBackground(t *testing.T) {
	e := New()
	stroke(t, e, Point{X: 100, Y: 100}, Point{X: 120, Y: 100}, Pen(ink))

	var buf bytes.Buffer
	if err := e.Export(&buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != Width*2 || bounds.Dy() != Height*2 {
		t.Fatalf("expected 2x export, got %dx%d", bounds.Dx(), bounds.Dy())
	}
	r, g, b, a := img.At(0, 0).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Fatalf("expected white background, got %v", img.At(0, 0))
	}
}

func TestExportFileNaming(t *testing.T) {
	e := New()
	dir := t.TempDir()
	path, err := e.ExportFile(dir, "성장일기", "2025-01-10")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if want := "성장일기_2025-01-10.png"; path != dir+string(os.PathSeparator)+want {
		t.Fatalf("unexpected path %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("exported file missing: %v", err)
	}
}
