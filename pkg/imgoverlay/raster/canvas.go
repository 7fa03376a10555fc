package raster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Canvas は合成先の画像バッファを表します
// 元画像の複製を保持し、要素の描画で破壊的に更新されます
type Canvas struct {
	img *image.NRGBA
}

// NewCanvas は元画像を複製して新しいキャンバスを作成します
func NewCanvas(src image.Image) *Canvas {
	return &Canvas{img: imaging.Clone(src)}
}

// Bounds はキャンバスの境界を返します
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Width はキャンバスの幅を返します
func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height はキャンバスの高さを返します
func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// Image は内部の画像を返します
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// Paste は画像をアルファ合成で貼り付けます
func (c *Canvas) Paste(src image.Image, x, y int) {
	r := src.Bounds()
	dst := image.Rect(x, y, x+r.Dx(), y+r.Dy())
	draw.Draw(c.img, dst, src, r.Min, draw.Over)
}

// newLayer はキャンバスと同サイズの透明レイヤを作成します
func (c *Canvas) newLayer() *image.NRGBA {
	return image.NewNRGBA(c.img.Bounds())
}

// composite はレイヤ全体をアルファ合成します
func (c *Canvas) composite(layer image.Image) {
	draw.Draw(c.img, c.img.Bounds(), layer, layer.Bounds().Min, draw.Over)
}

// fillRect は矩形を指定色で塗りつぶします
func fillRect(dst *image.NRGBA, r image.Rectangle, col color.NRGBA) {
	draw.Draw(dst, r, image.NewUniform(col), image.Point{}, draw.Src)
}
