// Package placeholders generates the stock wall textures so the raycaster
// runs without any art assets.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

// TextureSize is the edge length of the generated textures.
const TextureSize = 64

// ColorPalette defines the base colours of the stock materials.
var ColorPalette = struct {
	Wood      color.RGBA
	WoodGrain color.RGBA
	Brick     color.RGBA
	Mortar    color.RGBA
	Stone     color.RGBA
	StoneEdge color.RGBA
}{
	Wood:      color.RGBA{139, 90, 43, 255},
	WoodGrain: color.RGBA{101, 62, 28, 255},
	Brick:     color.RGBA{170, 40, 32, 255},
	Mortar:    color.RGBA{180, 170, 160, 255},
	Stone:     color.RGBA{60, 80, 160, 255},
	StoneEdge: color.RGBA{30, 40, 90, 255},
}

// Texture is one generated material image.
type Texture struct {
	Name  string
	Image *image.RGBA
}

// Stock returns the textures for the default materials, in tag order.
func Stock() []Texture {
	return []Texture{
		{Name: "wood", Image: CreateWood()},
		{Name: "redbrick", Image: CreateBrick()},
		{Name: "bluestone", Image: CreateStone()},
	}
}

// CreateSolid creates a single-colour texture.
func CreateSolid(col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TextureSize, TextureSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateWood draws vertical planks with darker grain lines.
func CreateWood() *image.RGBA {
	img := CreateSolid(ColorPalette.Wood)
	for x := 0; x < TextureSize; x++ {
		switch {
		case x%16 == 0:
			// Plank seam
			for y := 0; y < TextureSize; y++ {
				img.Set(x, y, Darken(ColorPalette.WoodGrain, 0.6))
			}
		case x%5 == 2:
			for y := 0; y < TextureSize; y++ {
				if (y+x*3)%11 < 7 {
					img.Set(x, y, ColorPalette.WoodGrain)
				}
			}
		}
	}
	return img
}

// CreateBrick draws offset brick rows separated by mortar.
func CreateBrick() *image.RGBA {
	const brickW, brickH = 16, 8

	img := CreateSolid(ColorPalette.Brick)
	for y := 0; y < TextureSize; y++ {
		row := y / brickH
		offset := 0
		if row%2 == 1 {
			offset = brickW / 2
		}
		for x := 0; x < TextureSize; x++ {
			if y%brickH == 0 || (x+offset)%brickW == 0 {
				img.Set(x, y, ColorPalette.Mortar)
			}
		}
	}
	return img
}

// CreateStone draws square blocks with shaded edges.
func CreateStone() *image.RGBA {
	const block = 32

	img := CreateSolid(ColorPalette.Stone)
	for y := 0; y < TextureSize; y++ {
		for x := 0; x < TextureSize; x++ {
			bx, by := x%block, y%block
			switch {
			case bx == 0 || by == 0:
				img.Set(x, y, ColorPalette.StoneEdge)
			case bx == block-1 || by == block-1:
				img.Set(x, y, Lighten(ColorPalette.Stone, 0.3))
			}
		}
	}
	return img
}

// GenerateAndSave writes every stock texture as <name>.png into dir.
func GenerateAndSave(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	var written []string
	for _, tex := range Stock() {
		path := filepath.Join(dir, tex.Name+".png")
		if err := SavePNG(tex.Image, path); err != nil {
			return written, fmt.Errorf("failed to save %s: %w", tex.Name, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
