package gfont

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Small  font.Face
	Normal font.Face
	Bold   font.Face
}

func LoadFonts() (*Fonts, error) {
	regular, err := face(goregular.TTF, 14)
	if err != nil {
		return nil, err
	}
	// for titles
	bold, err := face(gobold.TTF, 18)
	if err != nil {
		return nil, err
	}
	return &Fonts{Small: basicfont.Face7x13, Normal: regular, Bold: bold}, nil
}

func face(ttf []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
