package ghelper

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

var pixel = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()

// RenderRoundedRect returns an anti-aliased rounded panel drawn with gg.
func RenderRoundedRect(w, h, radius int, fill, stroke color.RGBA, strokeW float64) *ebiten.Image {
	dc := gg.NewContext(max(w, 1), max(h, 1))
	dc.SetColor(fill)
	dc.DrawRoundedRectangle(strokeW/2, strokeW/2, float64(w)-strokeW, float64(h)-strokeW, float64(radius))
	dc.FillPreserve()
	dc.SetColor(stroke)
	dc.SetLineWidth(strokeW)
	dc.Stroke()
	return ebiten.NewImageFromImage(dc.Image())
}

// DrawRect fills r on screen with c.
func DrawRect(screen *ebiten.Image, r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(pixel, op)
}

// DrawRectStroke draws an outline of r, thickness clamped to half the short side.
func DrawRectStroke(screen *ebiten.Image, r image.Rectangle, thickness int, c color.Color) {
	if r.Empty() || thickness <= 0 {
		return
	}
	thickness = min(thickness, min(r.Dx(), r.Dy())/2)
	if thickness == 0 {
		DrawRect(screen, r, c)
		return
	}
	DrawRect(screen, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thickness), c)
	DrawRect(screen, image.Rect(r.Min.X, r.Max.Y-thickness, r.Max.X, r.Max.Y), c)
	DrawRect(screen, image.Rect(r.Min.X, r.Min.Y+thickness, r.Min.X+thickness, r.Max.Y-thickness), c)
	DrawRect(screen, image.Rect(r.Max.X-thickness, r.Min.Y+thickness, r.Max.X, r.Max.Y-thickness), c)
}
