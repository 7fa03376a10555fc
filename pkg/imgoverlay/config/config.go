// Package config はTOML形式のレイアウトファイルを読み込みます
//
// 組み込みレイアウトの代わりに、ユーザー定義のパネルとラベルの並びを
// 指定できます。ラベルの配置はフィット処理（中央揃え＋縮小/分割）を
// 経由するため、組み込みレイアウトと同じ規則であふれが解決されます。
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/shinya/imgoverlay/pkg/imgoverlay/font"
	"github.com/shinya/imgoverlay/pkg/imgoverlay/layout"
	"github.com/shinya/imgoverlay/pkg/imgoverlay/style"
)

// Config はレイアウトファイル全体を表します
type Config struct {
	// Style は基準スタイル（階級セットとパレットの選択）: retro | article
	Style string `toml:"style"`
	// Margin は左右マージン（省略時 40）
	Margin int `toml:"margin"`
	// Colors は追加の色定義（役割名 → #RRGGBB[AA] または色名）
	Colors map[string]string `toml:"colors"`
	// Panels は背景パネル（ラベルより先に描画される）
	Panels []PanelSpec `toml:"panel"`
	// Labels はテキストラベル（定義順に描画される）
	Labels []LabelSpec `toml:"label"`
}

// PanelSpec は半透明パネルの定義を表します
type PanelSpec struct {
	X       int `toml:"x"`
	Y       int `toml:"y"`
	Width   int `toml:"width"`
	Height  int `toml:"height"`
	Opacity int `toml:"opacity"`
}

// LabelSpec はラベルの定義を表します
type LabelSpec struct {
	Text string `toml:"text"`
	Tier string `toml:"tier"`
	// Color は役割名または色指定（#RRGGBB等）
	Color string `toml:"color"`
	// Decoration は none | shadow | outline | glow
	Decoration string `toml:"decoration"`
	// Secondary は影・縁取り・グローの副色（省略可）
	Secondary    string `toml:"secondary"`
	OutlineWidth int    `toml:"outline_width"`
	// SplitAt を指定すると、あふれ時にこの区切りで2行に分割される
	SplitAt string `toml:"split_at"`
	Y       int    `toml:"y"`
	// X を指定すると中央揃えせず固定座標に配置される
	X *int `toml:"x"`
	// Vertical を指定すると90度回転した縦書きになる
	Vertical bool `toml:"vertical"`
}

// Load はレイアウトファイルを読み込んで解析します
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	return Parse(data)
}

// Parse はTOMLデータを解析します
func Parse(data []byte) (*Config, error) {
	cfg := &Config{Margin: 40}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse layout file: %w", err)
	}

	if len(cfg.Labels) == 0 {
		return nil, fmt.Errorf("layout file defines no labels")
	}
	for i, label := range cfg.Labels {
		if label.Text == "" {
			return nil, fmt.Errorf("label %d: text is required", i)
		}
		if label.Tier == "" {
			return nil, fmt.Errorf("label %d: tier is required", i)
		}
	}

	return cfg, nil
}

// Palette は基準パレットにユーザー定義色を重ねたパレットを返します
func (cfg *Config) Palette(base style.Palette) (style.Palette, error) {
	if len(cfg.Colors) == 0 {
		return base, nil
	}

	overrides := make(style.Palette, len(cfg.Colors))
	for name, value := range cfg.Colors {
		c, err := style.ParseColor(value)
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", name, err)
		}
		overrides[style.Role(name)] = c
	}
	return base.Merge(overrides), nil
}

// Build はレイアウト定義を解決済み要素の並びに変換します
// 直接の色指定（#RRGGBB等）は合成的な役割としてパレットに追加されます
func (cfg *Config) Build(cv layout.Canvas, set *font.TierSet, m layout.Metrics, pal style.Palette) (*layout.Layout, style.Palette, error) {
	lay := &layout.Layout{}

	for _, panel := range cfg.Panels {
		opacity := panel.Opacity
		if opacity <= 0 || opacity > 255 {
			opacity = 140
		}
		lay.Append(&layout.PanelElement{
			X: panel.X, Y: panel.Y,
			Width: panel.Width, Height: panel.Height,
			Opacity: uint8(opacity),
		})
	}

	for i, label := range cfg.Labels {
		tier := font.Tier(label.Tier)
		if !set.Contains(tier) {
			return nil, nil, fmt.Errorf("label %d: unknown tier %q", i, label.Tier)
		}

		colorName := label.Color
		if colorName == "" {
			colorName = string(style.White)
		}
		colorRole, newPal, err := resolveRole(colorName, pal)
		if err != nil {
			return nil, nil, fmt.Errorf("label %d: %w", i, err)
		}
		pal = newPal

		secondary := style.Role(label.Secondary)
		if label.Secondary != "" {
			secondary, pal, err = resolveRole(label.Secondary, pal)
			if err != nil {
				return nil, nil, fmt.Errorf("label %d: %w", i, err)
			}
		}

		if label.Vertical {
			lay.Append(&layout.VerticalTextElement{
				Text:  label.Text,
				Tier:  tier,
				Color: colorRole,
				X:     fixedX(label),
				Y:     label.Y,
			})
			continue
		}

		dec, err := parseDecoration(label.Decoration)
		if err != nil {
			return nil, nil, fmt.Errorf("label %d: %w", i, err)
		}

		var placement layout.Placement
		if label.X != nil {
			width, err := m.Measure(label.Text, tier)
			if err != nil {
				return nil, nil, fmt.Errorf("label %d: %w", i, err)
			}
			placement = layout.FixedLine(label.Text, tier, *label.X, label.Y, width)
		} else {
			placement, err = layout.Fit(label.Text, tier, set, cv, cfg.Margin, label.Y, label.SplitAt, m)
			if err != nil {
				return nil, nil, fmt.Errorf("label %d: %w", i, err)
			}
		}

		lay.AppendText(placement, colorRole, dec, secondary, label.OutlineWidth)
	}

	return lay, pal, nil
}

// resolveRole は色指定を役割名に解決します
// パレットに無い名前は色として解析し、同名の役割として登録します
func resolveRole(value string, pal style.Palette) (style.Role, style.Palette, error) {
	role := style.Role(value)
	if _, ok := pal.Color(role); ok {
		return role, pal, nil
	}

	c, err := style.ParseColor(value)
	if err != nil {
		return "", nil, fmt.Errorf("unknown color %q", value)
	}
	return role, pal.Merge(style.Palette{role: c}), nil
}

// fixedX は縦書きラベルのX座標を返します（省略時は左端寄せ）
func fixedX(label LabelSpec) int {
	if label.X != nil {
		return *label.X
	}
	return 5
}

// parseDecoration は装飾名を解析します
func parseDecoration(s string) (layout.Decoration, error) {
	switch s {
	case "", "none":
		return layout.DecorationNone, nil
	case "shadow":
		return layout.DecorationShadow, nil
	case "outline":
		return layout.DecorationOutline, nil
	case "glow":
		return layout.DecorationGlow, nil
	default:
		return layout.DecorationNone, fmt.Errorf("unknown decoration %q", s)
	}
}
