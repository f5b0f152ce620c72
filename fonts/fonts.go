// Package fonts builds the text faces used across the UI from the gofont
// bytes shipped with golang.org/x/image, so the repo carries no font assets.
package fonts

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	once   sync.Once
	source *text.GoTextFaceSource
)

func load() {
	once.Do(func() {
		s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic("fonts: parse goregular: " + err.Error())
		}
		source = s
	})
}

// Title is the large face for scene headings.
func Title() text.Face {
	load()
	return &text.GoTextFace{Source: source, Size: 24}
}

// Normal is the default UI face.
func Normal() text.Face {
	load()
	return &text.GoTextFace{Source: source, Size: 12}
}

// Small is for the debug overlay and hints.
func Small() text.Face {
	load()
	return &text.GoTextFace{Source: source, Size: 10}
}
