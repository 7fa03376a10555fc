package preset

import (
	"fmt"

	"github.com/shinya/imgoverlay/pkg/imgoverlay/font"
	"github.com/shinya/imgoverlay/pkg/imgoverlay/layout"
	"github.com/shinya/imgoverlay/pkg/imgoverlay/style"
)

// Article は記事ヘッダレイアウトを構築します
// 半透明パネルを背景にタイトル群を左上へ、要点を左下へ配置し、
// 左端に縦書きタグ、右上に指標ブロックを置きます
func Article(cv layout.Canvas, set *font.TierSet, m layout.Metrics) (*layout.Layout, error) {
	lay := &layout.Layout{}

	// タイトルパネルとタイトル2行＋サブタイトル
	lay.Append(&layout.PanelElement{X: 20, Y: 20, Width: 500, Height: 140, Opacity: 140})

	if err := appendFixed(lay, m, "C++26 REFLECTION", font.TierTitle, 40, 35,
		style.BrightCyan, layout.DecorationGlow, style.TitleGlow); err != nil {
		return nil, err
	}
	if err := appendFixed(lay, m, "TRANSFORMS", font.TierTitle, 40, 95,
		style.White, layout.DecorationGlow, style.TitleGlow); err != nil {
		return nil, err
	}
	if err := appendFixed(lay, m, "Automotive Code Generation", font.TierSubtitle, 40, 155,
		style.LightBlue, layout.DecorationNone, ""); err != nil {
		return nil, err
	}

	// 要点パネル（左下）
	lay.Append(&layout.PanelElement{X: 20, Y: cv.Height - 120, Width: 320, Height: 100, Opacity: 140})

	points := []struct {
		text  string
		y     int
		color style.Role
	}{
		{"FROM HIGH-LEVEL C++", cv.Height - 105, style.White},
		{"TO SAFETY-CERTIFIED C", cv.Height - 75, style.Orange},
		{"AT COMPILE TIME", cv.Height - 45, style.BrightCyan},
	}
	for _, pt := range points {
		if err := appendFixed(lay, m, pt.text, font.TierAccent, 35, pt.y,
			pt.color, layout.DecorationNone, ""); err != nil {
			return nil, err
		}
	}

	// 左端の縦書きタグ
	lay.Append(&layout.VerticalTextElement{
		Text:  "ISO 26262 COMPLIANT",
		Tier:  font.TierCaption,
		Color: style.SemiWhite,
		X:     5,
		Y:     cv.Height/2 - 100,
	})

	// 右下のタグ
	if err := appendFixed(lay, m, "DRAFT STANDARD 2025", font.TierCaption, cv.Width-520, cv.Height-25,
		style.SemiWhite, layout.DecorationNone, ""); err != nil {
		return nil, err
	}

	// 右上の指標ブロック
	metricsX := cv.Width - 280
	metricsY := 30
	lay.Append(&layout.PanelElement{X: metricsX - 10, Y: metricsY - 5, Width: 270, Height: 80, Opacity: 120})

	metrics := []struct {
		text  string
		dy    int
		color style.Role
	}{
		{"ZERO RUNTIME OVERHEAD", 0, style.Orange},
		{"100% COMPILE-TIME", 25, style.BrightCyan},
		{"MISRA-C COMPLIANT OUTPUT", 50, style.White},
	}
	for _, mt := range metrics {
		if err := appendFixed(lay, m, mt.text, font.TierCaption, metricsX, metricsY+mt.dy,
			mt.color, layout.DecorationNone, ""); err != nil {
			return nil, err
		}
	}

	return lay, nil
}

// appendFixed は固定座標のテキスト要素を測定して追加します
func appendFixed(lay *layout.Layout, m layout.Metrics, text string, tier font.Tier, x, y int, color style.Role, dec layout.Decoration, secondary style.Role) error {
	width, err := m.Measure(text, tier)
	if err != nil {
		return fmt.Errorf("failed to measure label %q: %w", text, err)
	}
	lay.AppendText(layout.FixedLine(text, tier, x, y, width), color, dec, secondary, 0)
	return nil
}
