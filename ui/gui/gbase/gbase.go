package gbase

import (
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	PanelW      = 300 // side panel
	Margin      = 16
	PreviewCols = 3
	PreviewRows = 2
)

// ---- Styles (palettes) ----

type Palette struct {
	Bg           color.RGBA
	BoardBg      color.RGBA
	GridLine     color.RGBA
	ButtonFill   color.RGBA
	ButtonStroke color.RGBA
	ButtonText   color.RGBA
	MenuText     color.RGBA
	Accent       color.RGBA
	Invalid      color.RGBA
	ModalBg      color.RGBA
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "dark":
		return DarkPalette
	default:
	}
	return LightPalette
}

// Toggle returns the opposite palette.
func (p Palette) Toggle() Palette {
	if p == DarkPalette {
		return LightPalette
	}
	return DarkPalette
}

var LightPalette = Palette{
	Bg:           color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
	BoardBg:      color.RGBA{0xff, 0xff, 0xff, 0xff},
	GridLine:     color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	ButtonFill:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	ButtonStroke: color.RGBA{0x88, 0x88, 0x88, 0xff},
	ButtonText:   color.RGBA{0x22, 0x22, 0x22, 0xff},
	MenuText:     color.RGBA{0x22, 0x22, 0x22, 0xff},
	Accent:       color.RGBA{0x22, 0x88, 0xcc, 0xff},
	Invalid:      color.RGBA{0xd6, 0x2b, 0x2b, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x88},
}

var DarkPalette = Palette{
	Bg:           color.RGBA{0x12, 0x12, 0x12, 0xff},
	BoardBg:      color.RGBA{0x1c, 0x1c, 0x1c, 0xff},
	GridLine:     color.RGBA{0x33, 0x33, 0x33, 0xff},
	ButtonFill:   color.RGBA{0x20, 0x20, 0x20, 0xff},
	ButtonStroke: color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	ButtonText:   color.RGBA{0xee, 0xee, 0xee, 0xff},
	MenuText:     color.RGBA{0xee, 0xee, 0xee, 0xff},
	Accent:       color.RGBA{0x2a, 0xa1, 0xd1, 0xff},
	Invalid:      color.RGBA{0xe0, 0x44, 0x44, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x99},
}
