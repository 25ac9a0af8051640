package ghelper

import (
	"image"
	"math"
	"strings"

	"blokus/ui/gui/gbase"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ---- Button ----

type Button struct {
	Label string
	Rect  image.Rectangle
	Image *ebiten.Image // pre-rendered rounded rect

	Hover   bool
	Pressed bool

	scale         float64
	targetScale   float64
	offsetY       float64
	targetOffsetY float64
}

func NewButton(label string, r image.Rectangle, theme gbase.Palette) *Button {
	b := &Button{Label: label, Rect: r, scale: 1, targetScale: 1}
	b.Restyle(theme)
	return b
}

// Restyle re-renders the face after a theme switch.
func (b *Button) Restyle(theme gbase.Palette) {
	b.Image = RenderRoundedRect(b.Rect.Dx(), b.Rect.Dy(), 16, theme.ButtonFill, theme.ButtonStroke, 3)
}

func (b *Button) Contains(px, py int) bool {
	return image.Pt(px, py).In(b.Rect)
}

// HandleInput returns true when a press that started inside is released inside.
func (b *Button) HandleInput(px, py int, justClicked, justReleased bool) bool {
	inside := b.Contains(px, py)
	b.Hover = inside

	if justClicked && inside {
		b.Pressed = true
		b.targetScale = 0.96
		b.targetOffsetY = 3
	}
	if justReleased {
		clicked := b.Pressed && inside
		b.Pressed = false
		b.targetOffsetY = 0
		if clicked {
			b.targetScale = 1.03
			return true
		}
		b.targetScale = 1
	}
	if !b.Pressed {
		b.targetOffsetY = 0
		if inside {
			b.targetScale = 1.02
		} else {
			b.targetScale = 1
		}
	}
	return false
}

// UpdateAnim eases scale and offset toward their targets over dt seconds.
func (b *Button) UpdateAnim(dt float64) {
	const speed = 10.0
	t := 1 - math.Exp(-speed*dt)
	b.scale += (b.targetScale - b.scale) * t
	b.offsetY += (b.targetOffsetY - b.offsetY) * t
	if !b.Pressed && math.Abs(b.scale-1.03) < 0.005 {
		b.targetScale = 1
	}
}

func (b *Button) Draw(screen *ebiten.Image, face font.Face, theme gbase.Palette) {
	if b.Image == nil {
		return
	}
	cx := float64(b.Rect.Min.X + b.Rect.Dx()/2)
	cy := float64(b.Rect.Min.Y+b.Rect.Dy()/2) + b.offsetY

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Image.Bounds().Dx())/2, -float64(b.Image.Bounds().Dy())/2)
	op.GeoM.Scale(b.scale, b.scale)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(b.Image, op)

	bounds := text.BoundString(face, b.Label)
	text.Draw(screen, b.Label, face, int(cx)-bounds.Dx()/2, int(cy)+bounds.Dy()/2, theme.ButtonText)
}

// ---- MessageBox ----

// MessageBox is a modal with an OK button that scales in and out.
type MessageBox struct {
	Text    string
	Open    bool
	Opening bool
	Scale   float64 // 0..1
	OnClose func()

	ok image.Rectangle
}

func (mb *MessageBox) Show(msg string, onClose func()) {
	mb.Text = msg
	mb.Open = true
	mb.Opening = true
	mb.Scale = 0
	mb.OnClose = onClose
}

func (mb *MessageBox) Collapse() {
	mb.Opening = false
}

// Animate advances one tick at 60 TPS.
func (mb *MessageBox) Animate() {
	const step = 6.0 / 60.0
	if !mb.Open {
		return
	}
	if mb.Opening {
		mb.Scale = math.Min(mb.Scale+step, 1)
		return
	}
	mb.Scale -= step
	if mb.Scale <= 0 {
		mb.Scale = 0
		mb.Open = false
		if mb.OnClose != nil {
			mb.OnClose()
		}
	}
}

// HandleClick collapses the box when (px, py) hits OK.
func (mb *MessageBox) HandleClick(px, py int) bool {
	if mb.Open && mb.Opening && image.Pt(px, py).In(mb.ok) {
		mb.Collapse()
		return true
	}
	return false
}

func (mb *MessageBox) Draw(screen *ebiten.Image, face font.Face, okLabel string, theme gbase.Palette) {
	if !mb.Open {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	DrawRect(screen, screen.Bounds(), theme.ModalBg)

	lines := strings.Split(mb.Text, "\n")
	lineH := face.Metrics().Height.Ceil()
	textW := 0
	for _, l := range lines {
		textW = max(textW, text.BoundString(face, l).Dx())
	}
	mw := textW + 64
	mh := lineH*len(lines) + 120

	w := max(int(float64(mw)*mb.Scale), 6)
	h := max(int(float64(mh)*mb.Scale), 6)
	x, y := (sw-w)/2, (sh-h)/2
	panel := RenderRoundedRect(w, h, 16, theme.ButtonFill, theme.ButtonStroke, 3)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(panel, op)

	if mb.Scale < 0.85 {
		return
	}
	for i, l := range lines {
		text.Draw(screen, l, face, x+32, y+48+i*lineH, theme.MenuText)
	}
	okW, okH := 120, 44
	mb.ok = image.Rect(x+(w-okW)/2, y+h-56, x+(w-okW)/2+okW, y+h-56+okH)
	okImg := RenderRoundedRect(okW, okH, 16, theme.Accent, theme.ButtonStroke, 3)
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(mb.ok.Min.X), float64(mb.ok.Min.Y))
	screen.DrawImage(okImg, op)
	b := text.BoundString(face, okLabel)
	text.Draw(screen, okLabel, face, mb.ok.Min.X+(okW-b.Dx())/2, mb.ok.Min.Y+(okH+b.Dy())/2, theme.ButtonText)
}

// ---- Toast ----

// Toast is a one-line status message that fades out.
type Toast struct {
	Text string
	left int // ticks
}

func (t *Toast) Show(msg string) {
	t.Text = msg
	t.left = 120
}

func (t *Toast) Tick() {
	if t.left > 0 {
		t.left--
	}
}

func (t *Toast) Visible() bool {
	return t.left > 0
}

func (t *Toast) Draw(screen *ebiten.Image, face font.Face, x, y int, theme gbase.Palette) {
	if !t.Visible() {
		return
	}
	c := theme.MenuText
	if t.left < 30 { // premultiplied fade
		f := func(v uint8) uint8 { return uint8(int(v) * t.left / 30) }
		c.R, c.G, c.B, c.A = f(c.R), f(c.G), f(c.B), f(c.A)
	}
	text.Draw(screen, t.Text, face, x, y, c)
}
