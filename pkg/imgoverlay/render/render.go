package render

import (
	"fmt"
	"image/color"
	"log"

	"github.com/shinya/imgoverlay/pkg/imgoverlay/font"
	"github.com/shinya/imgoverlay/pkg/imgoverlay/layout"
	"github.com/shinya/imgoverlay/pkg/imgoverlay/raster"
	"github.com/shinya/imgoverlay/pkg/imgoverlay/style"
)

// Render はレイアウトの全要素を順に描画します
// 役割名が解決できない等の軽微な問題は警告として収集し、処理は続行します
func Render(cv *raster.Canvas, lay *layout.Layout, fonts *font.Manager, pal style.Palette) ([]string, error) {
	log.Printf("Starting to render layout, %d elements", len(lay.Elements))

	var warnings []string

	for _, elem := range lay.Elements {
		switch e := elem.(type) {
		case *layout.PanelElement:
			log.Printf("Rendering panel: x=%d, y=%d, %dx%d, opacity=%d", e.X, e.Y, e.Width, e.Height, e.Opacity)
			cv.DrawPanel(e.X, e.Y, e.Width, e.Height, e.Opacity)

		case *layout.TextElement:
			if err := renderText(cv, e, fonts, pal, &warnings); err != nil {
				return warnings, err
			}

		case *layout.VerticalTextElement:
			log.Printf("Rendering vertical text: '%s' at (%d, %d)", e.Text, e.X, e.Y)
			face, err := fonts.Face(e.Tier)
			if err != nil {
				return warnings, err
			}
			cv.DrawVerticalText(e.Text, e.X, e.Y, face, resolveColor(pal, e.Color, &warnings))

		case *layout.QRElement:
			log.Printf("Rendering QR badge: '%s' at (%d, %d), size=%d", e.Content, e.X, e.Y, e.Size)
			if err := cv.DrawQRBadge(e.Content, e.Size, e.X, e.Y); err != nil {
				return warnings, err
			}

		default:
			warnings = append(warnings, fmt.Sprintf("unknown layout element: %T", elem))
		}
	}

	return warnings, nil
}

// renderText はテキスト要素を装飾の種類に応じて描画します
func renderText(cv *raster.Canvas, e *layout.TextElement, fonts *font.Manager, pal style.Palette, warnings *[]string) error {
	face, err := fonts.Face(e.Tier)
	if err != nil {
		return err
	}

	fill := resolveColor(pal, e.Color, warnings)

	for _, line := range e.Lines {
		log.Printf("Rendering text: '%s' at (%d, %d), tier=%s, decoration=%s", line.Text, line.X, line.Y, e.Tier, e.Decoration)

		switch e.Decoration {
		case layout.DecorationShadow:
			shadow := resolveColor(pal, secondaryOrDefault(e.Secondary, style.DarkShadow), warnings)
			cv.DrawShadowText(line.Text, line.X, line.Y, face, fill, shadow)

		case layout.DecorationOutline:
			outline := resolveColor(pal, secondaryOrDefault(e.Secondary, style.OutlineBlack), warnings)
			width := e.OutlineWidth
			if width <= 0 {
				width = 1
			}
			cv.DrawOutlinedText(line.Text, line.X, line.Y, face, fill, outline, width)

		case layout.DecorationGlow:
			var glow *color.NRGBA
			if e.Secondary != "" {
				c := resolveColor(pal, e.Secondary, warnings)
				glow = &c
			}
			cv.DrawGlowText(line.Text, line.X, line.Y, face, fill, glow)

		default:
			cv.DrawText(line.Text, line.X, line.Y, face, fill)
		}
	}

	return nil
}

// secondaryOrDefault は副色の役割名を返します（未指定時は既定値）
func secondaryOrDefault(r, def style.Role) style.Role {
	if r == "" {
		return def
	}
	return r
}

// resolveColor は役割名を色に解決します
// 未定義の役割は白にフォールバックし、警告を記録します
func resolveColor(pal style.Palette, r style.Role, warnings *[]string) color.NRGBA {
	c, ok := pal.Color(r)
	if !ok {
		*warnings = append(*warnings, fmt.Sprintf("undefined color role: %q", r))
		return color.NRGBA{255, 255, 255, 255}
	}
	return c
}
