package ghelper

import (
	"image/color"

	"blokus/src/base"
	"blokus/ui/gui/ghelper/gfont"
	"blokus/ui/gui/tools/lang"
	"blokus/ui/sprites"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteSheet is a procedural sheet uploaded to the GPU.
type SpriteSheet struct {
	sheet *sprites.Sheet
	image *ebiten.Image
}

// Frame returns the sub image for variant, nil when it is outside the sheet.
func (s *SpriteSheet) Frame(variant int) *ebiten.Image {
	r, err := s.sheet.FrameRect(variant)
	if err != nil {
		return nil
	}
	return s.image.SubImage(r).(*ebiten.Image)
}

type sheetKey struct {
	mode   base.TilerMode
	cell   int
	colour color.RGBA
}

type GUIAssetsWorker struct {
	fonts  *gfont.Fonts
	lang   *lang.GUILangWorker
	sheets map[sheetKey]*SpriteSheet
}

func NewGUIAssetsWorker(l lang.LangType) (*GUIAssetsWorker, error) {
	fonts, err := gfont.LoadFonts()
	if err != nil {
		return nil, err
	}
	lw, err := lang.NewGUILangWorker(l)
	if err != nil {
		return nil, err
	}
	return &GUIAssetsWorker{fonts: fonts, lang: lw, sheets: make(map[sheetKey]*SpriteSheet)}, nil
}

// Sheet draws the sheet on first use and caches it.
func (aw *GUIAssetsWorker) Sheet(mode base.TilerMode, cell int, colour color.RGBA) (*SpriteSheet, error) {
	key := sheetKey{mode: mode, cell: max(cell, sprites.MinCell), colour: colour}
	if s, ok := aw.sheets[key]; ok {
		return s, nil
	}
	sh, err := sprites.NewSheet(key.mode, key.cell, key.colour)
	if err != nil {
		return nil, err
	}
	s := &SpriteSheet{sheet: sh, image: ebiten.NewImageFromImage(sh.Image)}
	aw.sheets[key] = s
	return s, nil
}

// DropSheets releases every cached sheet, used after a resize.
func (aw *GUIAssetsWorker) DropSheets() {
	for k, s := range aw.sheets {
		s.image.Deallocate()
		delete(aw.sheets, k)
	}
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}

func (aw *GUIAssetsWorker) Lang() *lang.GUILangWorker {
	return aw.lang
}
