package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

const exportScale = 2

// Export writes the drawing as a PNG at 2x pixel density over a white
// background.
func (e *Engine) Export(w io.Writer) error {
	out := image.NewNRGBA(image.Rect(0, 0, Width*exportScale, Height*exportScale))
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	for y := 0; y < Height*exportScale; y++ {
		for x := 0; x < Width*exportScale; x++ {
			src := e.img.NRGBAAt(x/exportScale, y/exportScale)
			if src.A == 0 {
				out.SetNRGBA(x, y, white)
				continue
			}
			out.SetNRGBA(x, y, src)
		}
	}
	if err := png.Encode(w, out); err != nil {
		return fmt.Errorf("canvas: encode export: %w", err)
	}
	return nil
}

// ExportFile writes the drawing to dir as <label>_<date>.png. The file is
// written to a temporary name first so a failed export leaves no partial
// file behind.
func (e *Engine) ExportFile(dir, label, date string) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", label, date))
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("canvas: create export: %w", err)
	}
	if err := e.Export(f); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("canvas: close export: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("canvas: finalize export: %w", err)
	}
	return path, nil
}
