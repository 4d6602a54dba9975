package render

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

const (
	largeFontSize = 24
	smallFontSize = 12
)

// FontSet holds the two faces the renderer draws with, both derived from the
// same TrueType file.
type FontSet struct {
	Large font.Face
	Small font.Face
}

// LoadFonts reads a TrueType file and builds the renderer's font set.
func LoadFonts(path string) (*FontSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font file: %w", err)
	}

	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", path, err)
	}

	large, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    largeFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("building large face: %w", err)
	}

	small, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    smallFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("building small face: %w", err)
	}

	return &FontSet{Large: large, Small: small}, nil
}
