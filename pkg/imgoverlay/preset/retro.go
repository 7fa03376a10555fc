package preset

import (
	"fmt"

	"github.com/shinya/imgoverlay/pkg/imgoverlay/font"
	"github.com/shinya/imgoverlay/pkg/imgoverlay/layout"
	"github.com/shinya/imgoverlay/pkg/imgoverlay/style"
)

// Margin は左右マージン（ピクセル）です
const Margin = 40

// retroSections はレトロレイアウトの縦方向の帯数です
const retroSections = 8

// Retro は1950年代風の見出しレイアウトを構築します
// キャンバスを8つの帯に分割し、タイトル・サブタイトル・特徴・
// 効能・業種タグ・四隅バッジを上から順に配置します
func Retro(cv layout.Canvas, set *font.TierSet, m layout.Metrics) (*layout.Layout, error) {
	lay := &layout.Layout{}

	sectionH := (cv.Height - 2*Margin) / retroSections
	y := Margin

	// メインタイトル: あふれる場合は空白で2行に分割
	title, err := layout.Fit("MICROSOFT PROXY 4", font.TierHuge, set, cv, Margin, y, " ", m)
	if err != nil {
		return nil, err
	}
	lay.AppendText(title, style.BrightYellow, layout.DecorationOutline, style.OutlineBlack, 3)
	if len(title.Lines) == 2 {
		y += sectionH*2 + 20
	} else {
		y += sectionH * 2
	}

	// サブタイトル
	subtitle, err := layout.Fit("EMBEDDED TEMPLATE LIBRARY", font.TierLarge, set, cv, Margin, y, "", m)
	if err != nil {
		return nil, err
	}
	lay.AppendText(subtitle, style.White, layout.DecorationOutline, style.OutlineBlack, 2)
	y += sectionH + 10

	// 特徴の見出し
	feature, err := layout.Fit("ZERO-ALLOCATION POLYMORPHISM", font.TierMedium, set, cv, Margin, y, "", m)
	if err != nil {
		return nil, err
	}
	lay.AppendText(feature, style.ElectricBlue, layout.DecorationShadow, style.DarkShadow, 0)
	y += sectionH + 20

	// 効能: 40pxの行間で縦に並べ、2色を交互に使う
	benefits := []string{
		"40-60% FASTER CALLS",
		"ZERO HEAP ALLOCATION",
		"DETERMINISTIC TIMING",
		"SAFETY-CRITICAL READY",
	}
	for i, benefit := range benefits {
		p, err := layout.Fit(benefit, font.TierSmall, set, cv, Margin, y+i*40, "", m)
		if err != nil {
			return nil, err
		}
		color := style.HotRed
		if i%2 == 1 {
			color = style.Chrome
		}
		lay.AppendText(p, color, layout.DecorationShadow, style.DarkShadow, 0)
	}

	// 業種タグ: 下端から60px固定
	industry, err := layout.Fit("AEROSPACE • AUTOMOTIVE • MEDICAL • IoT", font.TierSmall, set, cv, Margin, cv.Height-60, "", m)
	if err != nil {
		return nil, err
	}
	lay.AppendText(industry, style.White, layout.DecorationShadow, style.DarkShadow, 0)

	// 四隅のバッジ
	corners := []struct {
		text string
		x, y int
	}{
		{"DO-178C", 30, 30},
		{"ISO 26262", cv.Width - 150, 30},
		{"pro::proxy<>", 30, cv.Height - 30},
		{"etl::array<>", cv.Width - 150, cv.Height - 30},
	}
	for _, corner := range corners {
		width, err := m.Measure(corner.text, font.TierTiny)
		if err != nil {
			return nil, fmt.Errorf("failed to measure corner badge %q: %w", corner.text, err)
		}
		p := layout.FixedLine(corner.text, font.TierTiny, corner.x, corner.y, width)
		lay.AppendText(p, style.BrightYellow, layout.DecorationOutline, style.OutlineBlack, 1)
	}

	return lay, nil
}
