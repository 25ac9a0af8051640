package gui

import (
	"errors"

	"blokus/src"
	"blokus/src/logx"
	"blokus/ui/gui/gbase"
	"blokus/ui/gui/gbase/gconf"
	"blokus/ui/gui/gctx"
	"blokus/ui/gui/gdraw"
	"blokus/ui/gui/ghelper"
	"blokus/ui/gui/tools/lang"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	current gdraw.Scene
	ctx     *gctx.GUIGameContext
}

// NewGUI starts on the menu scene. confPath may be empty to skip saving.
func NewGUI(b *src.GameBuilder, conf *gconf.Config, confPath string, logger logx.Logger) (*GUIProcessing, error) {
	assets, err := ghelper.NewGUIAssetsWorker(lang.LangFromString(conf.Lang))
	if err != nil {
		return nil, err
	}
	ctx := gctx.NewGUIGameContext(b, assets, conf, confPath, logger)
	return &GUIProcessing{current: gdraw.NewGUIMenuDrawer(ctx), ctx: ctx}, nil
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle("Blokus")
	err := ebiten.RunGame(gp)
	if errors.Is(err, gbase.ErrExit) {
		return nil
	}
	return err
}

func (gp *GUIProcessing) Update() error {
	next, err := gp.current.Update(gp.ctx)
	if err != nil {
		return err
	}
	gp.current = next.ToScene(gp.current, gp.ctx)
	return nil
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.current.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.ctx.Config.WindowW, gp.ctx.Config.WindowH
}
