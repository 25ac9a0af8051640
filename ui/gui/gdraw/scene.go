package gdraw

import (
	"errors"
	"fmt"

	"blokus/ui/gui/gctx"
	"blokus/ui/gui/ghelper/gdialog"

	"github.com/hajimehoshi/ebiten/v2"
)

// ---- Scene ----

type Scene interface {
	Update(ctx *gctx.GUIGameContext) (SceneType, error)
	Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image)
}

type SceneType int

const (
	SceneMenu SceneType = iota
	ScenePlay
	SceneNotChanged
)

func (t SceneType) ToScene(s Scene, ctx *gctx.GUIGameContext) Scene {
	switch t {
	case SceneMenu:
		s = NewGUIMenuDrawer(ctx)
	case ScenePlay:
		s = NewGUIPlayDrawer(ctx)
	case SceneNotChanged:
	default:
	}
	return s
}

// mouse keeps the previous button state for edge detection.
type mouse struct {
	prevDown bool
}

func (m *mouse) poll() (x, y int, justClicked, justReleased bool) {
	x, y = ebiten.CursorPosition()
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justClicked = down && !m.prevDown
	justReleased = !down && m.prevDown
	m.prevDown = down
	return
}

// loadShapes asks for a shape file, registers it and restarts the game.
// An empty message means the picker was cancelled.
func loadShapes(ctx *gctx.GUIGameContext) (string, error) {
	lw := ctx.AssetsWorker.Lang()
	path, err := gdialog.OpenShapes(lw.T("dialog.shapes"))
	if errors.Is(err, gdialog.ErrCancelled) {
		return "", nil
	} else if err != nil {
		return "", err
	}
	set, err := ctx.Config.AddShapes(path)
	if err != nil {
		ctx.Logx.Errorf("error load shapes %s: %v", path, err)
		return "", err
	}
	ctx.Logx.Infof("loaded %s from %s", set, path)
	ctx.SaveConfig()
	if err := ctx.NewGame(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %s", lw.T("play.loaded"), set), nil
}
