package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// FontName identifies one of the registered text faces.
type FontName string

const (
	Body  FontName = "body"
	Title FontName = "title"
	Small FontName = "small"
)

var faces = map[FontName]font.Face{}

// Load parses ttf and registers a face of the given size under name.
// Must run before any Get for that name.
func Load(name FontName, ttf []byte, size float64) {
	parsed, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse font %s: %v", name, err))
	}
	faces[name] = truetype.NewFace(parsed, &truetype.Options{Size: size})
}

func (f FontName) Get() font.Face {
	face, ok := faces[f]
	if !ok {
		panic(fmt.Sprintf("Font %s not loaded", f))
	}
	return face
}
