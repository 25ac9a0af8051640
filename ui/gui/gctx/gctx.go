package gctx

import (
	"blokus/src"
	"blokus/src/logx"
	"blokus/ui/gui/gbase"
	"blokus/ui/gui/gbase/gconf"
	"blokus/ui/gui/ghelper"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Builder      *src.GameBuilder
	AssetsWorker *ghelper.GUIAssetsWorker
	Config       *gconf.Config
	ConfigPath   string
	Theme        gbase.Palette
	Logx         logx.Logger
}

func NewGUIGameContext(b *src.GameBuilder, a *ghelper.GUIAssetsWorker, c *gconf.Config, path string, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Builder:      b,
		AssetsWorker: a,
		Config:       c,
		ConfigPath:   path,
		Theme:        gbase.PaletteFromString(c.Theme),
		Logx:         l,
	}
}

// NewGame restarts the builder from the current config.
func (ctx *GUIGameContext) NewGame() error {
	lib, err := ctx.Config.Library()
	if err != nil {
		ctx.Logx.Warnf("shape files: %v", err)
	}
	return ctx.Builder.Create(src.GameOptions{
		Board:   ctx.Config.BoardOptions(),
		Copies:  ctx.Config.Copies(),
		Library: lib,
	})
}

func (ctx *GUIGameContext) SetTheme(p gbase.Palette) {
	ctx.Theme = p
	ctx.Config.Theme = p.String()
	ctx.SaveConfig()
}

// SaveConfig writes the config back when it came from a file path.
func (ctx *GUIGameContext) SaveConfig() {
	if ctx.ConfigPath == "" {
		return
	}
	if err := ctx.Config.Save(ctx.ConfigPath); err != nil {
		ctx.Logx.Errorf("error save config: %v", err)
	}
}
