package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Body    FontName = "body"
	Small   FontName = "small"
	Heading FontName = "heading"
	Mono    FontName = "mono"
)

// Get returns the face as a text/v2 face ready for drawing.
func (f FontName) Get() text.Face {
	if face, ok := faces[f]; ok {
		return face
	}
	face := text.NewGoXFace(getFont(f))
	faces[f] = face
	return face
}

var (
	fonts = map[FontName]font.Face{}
	faces = map[FontName]*text.GoXFace{}
)

// LoadDefaults registers the Go font family under every name the UI draws with.
func LoadDefaults() {
	LoadFontWithSize(Body, goregular.TTF, 14)
	LoadFontWithSize(Small, goregular.TTF, 11)
	LoadFontWithSize(Heading, gobold.TTF, 20)
	LoadFontWithSize(Mono, gomono.TTF, 12)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("parse font %s: %v", name, err))
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	delete(faces, name)
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
