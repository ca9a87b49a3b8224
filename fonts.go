package main

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	regularOnce sync.Once
	regularFont *truetype.Font
	regularErr  error
)

func loadRegular() (*truetype.Font, error) {
	regularOnce.Do(func() {
		regularFont, regularErr = truetype.Parse(goregular.TTF)
		if regularErr != nil {
			regularErr = fmt.Errorf("failed to parse font: %w", regularErr)
		}
	})
	return regularFont, regularErr
}

// faceCache hands out one face per point size.
type faceCache struct {
	faces map[float64]font.Face
}

func newFaceCache() *faceCache {
	return &faceCache{faces: make(map[float64]font.Face)}
}

func (fc *faceCache) face(size float64) (font.Face, error) {
	if size <= 0 {
		size = defaultFontSize
	}
	if f, ok := fc.faces[size]; ok {
		return f, nil
	}
	ttf, err := loadRegular()
	if err != nil {
		return nil, err
	}
	f := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	fc.faces[size] = f
	return f, nil
}

// canRender reports whether every rune of s has a glyph in the face.
func canRender(face font.Face, s string) bool {
	ttf, err := loadRegular()
	if err != nil {
		return false
	}
	for _, r := range s {
		if r == '\uFE0F' {
			continue
		}
		if ttf.Index(r) == 0 {
			return false
		}
	}
	return face != nil && s != ""
}
