package raster

import (
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font/basicfont"
)

// newWhiteCanvas はテスト用の白いキャンバスを作成します
func newWhiteCanvas(width, height int) *Canvas {
	return NewCanvas(imaging.New(width, height, color.NRGBA{255, 255, 255, 255}))
}

// changedPixels は2つのキャンバス状態の差分ピクセル数を数えます
func changedPixels(c *Canvas, before []uint8) int {
	changed := 0
	after := c.Image().Pix
	for i := range after {
		if after[i] != before[i] {
			changed++
		}
	}
	return changed
}

func snapshot(c *Canvas) []uint8 {
	pix := make([]uint8, len(c.Image().Pix))
	copy(pix, c.Image().Pix)
	return pix
}

func TestNewCanvas_Dimensions(t *testing.T) {
	c := newWhiteCanvas(120, 80)

	if c.Width() != 120 || c.Height() != 80 {
		t.Errorf("canvas = %dx%d, want 120x80", c.Width(), c.Height())
	}
}

func TestDrawText(t *testing.T) {
	c := newWhiteCanvas(200, 60)
	before := snapshot(c)

	c.DrawText("HELLO", 10, 10, basicfont.Face7x13, color.NRGBA{0, 0, 0, 255})

	if changedPixels(c, before) == 0 {
		t.Error("DrawText changed no pixels")
	}
}

func TestDrawShadowText(t *testing.T) {
	c := newWhiteCanvas(200, 60)
	before := snapshot(c)

	c.DrawShadowText("HELLO", 10, 10, basicfont.Face7x13,
		color.NRGBA{255, 69, 0, 255}, color.NRGBA{0, 0, 0, 220})

	if changedPixels(c, before) == 0 {
		t.Error("DrawShadowText changed no pixels")
	}
}

func TestDrawOutlinedText(t *testing.T) {
	c := newWhiteCanvas(200, 60)
	before := snapshot(c)

	c.DrawOutlinedText("HELLO", 10, 10, basicfont.Face7x13,
		color.NRGBA{255, 255, 100, 255}, color.NRGBA{0, 0, 0, 255}, 2)

	if changedPixels(c, before) == 0 {
		t.Error("DrawOutlinedText changed no pixels")
	}
}

func TestDrawGlowText(t *testing.T) {
	c := newWhiteCanvas(200, 60)
	glow := color.NRGBA{0, 100, 150, 100}
	before := snapshot(c)

	c.DrawGlowText("HELLO", 10, 10, basicfont.Face7x13, color.NRGBA{0, 200, 255, 255}, &glow)

	if changedPixels(c, before) == 0 {
		t.Error("DrawGlowText changed no pixels")
	}
}

func TestDrawGlowText_NoGlowColor(t *testing.T) {
	// グロー色なしの場合は本体のみ描画される
	c := newWhiteCanvas(200, 60)
	before := snapshot(c)

	c.DrawGlowText("HELLO", 10, 10, basicfont.Face7x13, color.NRGBA{0, 0, 0, 255}, nil)

	if changedPixels(c, before) == 0 {
		t.Error("DrawGlowText without glow changed no pixels")
	}
}

func TestDrawPanel(t *testing.T) {
	c := newWhiteCanvas(200, 100)

	c.DrawPanel(20, 20, 100, 50, 160)

	// パネル中央は暗くなる
	center := c.Image().NRGBAAt(70, 45)
	if center.R == 255 && center.G == 255 && center.B == 255 {
		t.Error("panel center is still white")
	}

	// パネルから十分離れた場所は変化しない（ぼかしの及ばない範囲）
	corner := c.Image().NRGBAAt(195, 95)
	if corner != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("far corner changed: %v", corner)
	}
}

func TestDrawVerticalText(t *testing.T) {
	c := newWhiteCanvas(60, 200)
	before := snapshot(c)

	c.DrawVerticalText("VERTICAL", 5, 20, basicfont.Face7x13, color.NRGBA{0, 0, 0, 255})

	if changedPixels(c, before) == 0 {
		t.Fatal("DrawVerticalText changed no pixels")
	}

	// 縦書きなので、描画はX方向に細くY方向に長い帯に収まる
	// basicfontの高さ分の幅の帯の外には描画されない
	for y := 0; y < 200; y++ {
		for x := 30; x < 60; x++ {
			if c.Image().NRGBAAt(x, y) != (color.NRGBA{255, 255, 255, 255}) {
				t.Fatalf("pixel outside vertical band changed at (%d, %d)", x, y)
			}
		}
	}
}

func TestDrawQRBadge(t *testing.T) {
	c := newWhiteCanvas(200, 200)

	if err := c.DrawQRBadge("https://example.com/article", 120, 40, 40); err != nil {
		t.Fatalf("DrawQRBadge failed: %v", err)
	}

	// QRコードには必ず黒いモジュールが含まれる
	foundBlack := false
	for y := 40; y < 160 && !foundBlack; y++ {
		for x := 40; x < 160; x++ {
			px := c.Image().NRGBAAt(x, y)
			if px.R < 50 && px.G < 50 && px.B < 50 {
				foundBlack = true
				break
			}
		}
	}
	if !foundBlack {
		t.Error("no dark QR modules found in badge area")
	}
}
