package gdraw

import (
	"fmt"
	"image"
	"time"

	"blokus/ui/gui/gbase"
	"blokus/ui/gui/gctx"
	"blokus/ui/gui/ghelper"
	"blokus/ui/gui/tools/lang"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var menuLabels = []string{"menu.play", "menu.load", "menu.theme", "menu.exit"}

type GUIMenuDrawer struct {
	buttons []*ghelper.Button
	msg     ghelper.MessageBox

	// language selector square bottom-left
	langBox image.Rectangle

	mouse    mouse
	prevTime time.Time
}

func NewGUIMenuDrawer(ctx *gctx.GUIGameContext) *GUIMenuDrawer {
	md := &GUIMenuDrawer{prevTime: time.Now()}
	md.makeLayout(ctx)
	return md
}

func (md *GUIMenuDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	mx, my, justClicked, justReleased := md.mouse.poll()

	now := time.Now()
	dt := now.Sub(md.prevTime).Seconds()
	md.prevTime = now

	if md.msg.Open {
		if justClicked {
			md.msg.HandleClick(mx, my)
		}
		md.msg.Animate()
		return SceneNotChanged, nil
	}

	for i, b := range md.buttons {
		clicked := b.HandleInput(mx, my, justClicked, justReleased)
		b.UpdateAnim(dt)
		if !clicked {
			continue
		}
		ctx.Logx.Debugf("%s (%d) clicked", b.Label, i)
		switch menuLabels[i] {
		case "menu.play":
			if ctx.Builder.Board() == nil {
				if err := ctx.NewGame(); err != nil {
					return SceneNotChanged, err
				}
			}
			return ScenePlay, nil
		case "menu.load":
			msg, err := loadShapes(ctx)
			if err != nil {
				msg = err.Error()
			}
			if msg != "" {
				md.msg.Show(msg, nil)
			}
		case "menu.theme":
			ctx.SetTheme(ctx.Theme.Toggle())
			md.refreshButtons(ctx)
		case "menu.exit":
			return SceneNotChanged, gbase.ErrExit
		}
		return SceneNotChanged, nil
	}

	if justClicked && image.Pt(mx, my).In(md.langBox) {
		lw := ctx.AssetsWorker.Lang()
		next, code := lang.RU, "ru"
		if lw.GetLang() == lang.RU {
			next, code = lang.EN, "en"
		}
		if err := lw.SetLang(next); err != nil {
			ctx.Logx.Errorf("error set language: %v", err)
			return SceneNotChanged, nil
		}
		ctx.Config.Lang = code
		ctx.SaveConfig()
		md.refreshButtons(ctx)
	}
	return SceneNotChanged, nil
}

func (md *GUIMenuDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	fonts := ctx.AssetsWorker.Fonts()

	title := "BLOKUS"
	tb := text.BoundString(fonts.Bold, title)
	first := md.buttons[0].Rect
	text.Draw(screen, title, fonts.Bold, (ctx.Config.WindowW-tb.Dx())/2, first.Min.Y-40, ctx.Theme.MenuText)

	for _, b := range md.buttons {
		b.Draw(screen, fonts.Normal, ctx.Theme)
	}

	box := ghelper.RenderRoundedRect(md.langBox.Dx(), md.langBox.Dy(), 8, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 2)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(md.langBox.Min.X), float64(md.langBox.Min.Y))
	screen.DrawImage(box, op)
	label := ctx.AssetsWorker.Lang().T("menu.lang")
	lb := text.BoundString(fonts.Normal, label)
	text.Draw(screen, label, fonts.Normal, md.langBox.Min.X+(md.langBox.Dx()-lb.Dx())/2, md.langBox.Min.Y+(md.langBox.Dy()+lb.Dy())/2, ctx.Theme.ButtonText)

	md.msg.Draw(screen, fonts.Normal, ctx.AssetsWorker.Lang().T("button.ok"), ctx.Theme)

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}

func (md *GUIMenuDrawer) makeLayout(ctx *gctx.GUIGameContext) {
	// center buttons vertically
	btnW, btnH := 320, 64
	gap := 18
	n := len(menuLabels)
	totalH := n*btnH + (n-1)*gap
	startY := (ctx.Config.WindowH - totalH) / 2
	x := (ctx.Config.WindowW - btnW) / 2

	md.buttons = make([]*ghelper.Button, 0, n)
	for i, key := range menuLabels {
		y := startY + i*(btnH+gap)
		r := image.Rect(x, y, x+btnW, y+btnH)
		md.buttons = append(md.buttons, ghelper.NewButton(ctx.AssetsWorker.Lang().T(key), r, ctx.Theme))
	}

	s := 56
	md.langBox = image.Rect(20, ctx.Config.WindowH-s-20, 20+s, ctx.Config.WindowH-20)
}

// refreshButtons relabels and restyles after a language or theme switch.
func (md *GUIMenuDrawer) refreshButtons(ctx *gctx.GUIGameContext) {
	for i, b := range md.buttons {
		b.Label = ctx.AssetsWorker.Lang().T(menuLabels[i])
		b.Restyle(ctx.Theme)
	}
}
