package raster

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// 装飾効果の既定パラメータ
const (
	shadowOffsetX   = 3
	shadowOffsetY   = 3
	shadowBlurSigma = 2.0
	glowBlurSigma   = 3.0
	panelBlurSigma  = 2.0
)

// glowOffsets はグローの素を重ね打ちするオフセットです
var glowOffsets = [...]image.Point{{0, 0}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

// DrawText は装飾なしのテキストを描画します
// y はテキスト上端の座標です（ベースラインではありません）
func (c *Canvas) DrawText(text string, x, y int, face font.Face, fill color.NRGBA) {
	layer := c.newLayer()
	drawString(layer, text, x, y, face, fill)
	c.composite(layer)
}

// DrawShadowText はドロップシャドウ付きのテキストを描画します
// 影はオフセット位置に描いてガウスぼかしをかけた後に合成し、
// その上に本体のテキストを重ねます
func (c *Canvas) DrawShadowText(text string, x, y int, face font.Face, fill, shadow color.NRGBA) {
	shadowLayer := c.newLayer()
	drawString(shadowLayer, text, x+shadowOffsetX, y+shadowOffsetY, face, shadow)
	c.composite(imaging.Blur(shadowLayer, shadowBlurSigma))

	textLayer := c.newLayer()
	drawString(textLayer, text, x, y, face, fill)
	c.composite(textLayer)
}

// DrawOutlinedText は縁取り付きのテキストを描画します
// 縁取りは [-width, width] の全オフセットに縁色で描き、
// 中央に本体色を重ねます
func (c *Canvas) DrawOutlinedText(text string, x, y int, face font.Face, fill, outline color.NRGBA, width int) {
	layer := c.newLayer()
	for dx := -width; dx <= width; dx++ {
		for dy := -width; dy <= width; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawString(layer, text, x+dx, y+dy, face, outline)
		}
	}
	drawString(layer, text, x, y, face, fill)
	c.composite(layer)
}

// DrawGlowText はグロー付きのテキストを描画します
// glow が nil の場合は本体のみを描画します
func (c *Canvas) DrawGlowText(text string, x, y int, face font.Face, fill color.NRGBA, glow *color.NRGBA) {
	if glow != nil {
		glowLayer := c.newLayer()
		for _, off := range glowOffsets {
			drawString(glowLayer, text, x+off.X, y+off.Y, face, *glow)
		}
		c.composite(imaging.Blur(glowLayer, glowBlurSigma))
	}

	textLayer := c.newLayer()
	drawString(textLayer, text, x, y, face, fill)
	c.composite(textLayer)
}

// DrawPanel は半透明の黒パネルを描画します
// 縁をなじませるため軽くぼかしてから合成します
func (c *Canvas) DrawPanel(x, y, width, height int, opacity uint8) {
	layer := c.newLayer()
	fillRect(layer, image.Rect(x, y, x+width, y+height), color.NRGBA{0, 0, 0, opacity})
	c.composite(imaging.Blur(layer, panelBlurSigma))
}

// DrawVerticalText は90度回転した縦書きテキストを描画します
// 一時レイヤに横書きで描画し、反時計回りに回転して貼り付けます
func (c *Canvas) DrawVerticalText(text string, x, y int, face font.Face, fill color.NRGBA) {
	width := font.MeasureString(face, text).Ceil()
	height := face.Metrics().Height.Ceil()
	if width <= 0 || height <= 0 {
		return
	}

	tmp := image.NewNRGBA(image.Rect(0, 0, width, height))
	drawString(tmp, text, 0, 0, face, fill)

	c.Paste(imaging.Rotate90(tmp), x, y)
}

// drawString はテキスト上端基準の座標でテキストを描画します
func drawString(dst *image.NRGBA, text string, x, y int, face font.Face, col color.NRGBA) {
	// Drawer の Dot はベースライン基準なのでアセント分を下げる
	baseline := y + face.Metrics().Ascent.Ceil()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(text)
}
