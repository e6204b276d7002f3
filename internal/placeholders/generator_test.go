package placeholders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockTextures(t *testing.T) {
	stock := Stock()
	require.Len(t, stock, 3)

	names := []string{"wood", "redbrick", "bluestone"}
	for i, tex := range stock {
		assert.Equal(t, names[i], tex.Name)
		assert.Equal(t, image.Rect(0, 0, TextureSize, TextureSize), tex.Image.Bounds())
	}
}

func TestBrickMortarLines(t *testing.T) {
	img := CreateBrick()
	assert.Equal(t, ColorPalette.Mortar, img.RGBAAt(5, 0), "top of a brick row")
	assert.Equal(t, ColorPalette.Mortar, img.RGBAAt(0, 3), "vertical joint on even rows")
	assert.Equal(t, ColorPalette.Mortar, img.RGBAAt(8, 11), "joints are offset on odd rows")
	assert.Equal(t, ColorPalette.Brick, img.RGBAAt(5, 4))
}

func TestStoneEdges(t *testing.T) {
	img := CreateStone()
	assert.Equal(t, ColorPalette.StoneEdge, img.RGBAAt(0, 10))
	assert.Equal(t, ColorPalette.Stone, img.RGBAAt(10, 10))
	assert.Equal(t, Lighten(ColorPalette.Stone, 0.3), img.RGBAAt(31, 10))
}

func TestDarkenLighten(t *testing.T) {
	c := color.RGBA{100, 200, 50, 255}
	assert.Equal(t, color.RGBA{50, 100, 25, 255}, Darken(c, 0.5))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, Lighten(c, 1))
	assert.Equal(t, c, Lighten(c, 0))
}

func TestGenerateAndSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pics")

	paths, err := GenerateAndSave(dir)
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Equal(t, filepath.Join(dir, "redbrick.png"), paths[1])

	f, err := os.Open(paths[1])
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, TextureSize, img.Bounds().Dx())

	r, g, b, _ := img.At(5, 4).RGBA()
	assert.Equal(t, ColorPalette.Brick, color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 255})
}
