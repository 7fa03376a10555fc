package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Role は配色上の役割名を表します
type Role string

// レトロレイアウトの役割名
const (
	White        Role = "white"
	BrightYellow Role = "bright_yellow"
	ElectricBlue Role = "electric_blue"
	HotRed       Role = "hot_red"
	Chrome       Role = "chrome"
	Black        Role = "black"
	DarkShadow   Role = "dark_shadow"
	OutlineBlack Role = "outline_black"
)

// 記事ヘッダレイアウトの役割名
const (
	BrightCyan Role = "bright_cyan"
	Orange     Role = "orange"
	LightBlue  Role = "light_blue"
	SemiWhite  Role = "semi_white"
	TitleGlow  Role = "title_glow"
)

// Palette は役割名から色への対応を表します
type Palette map[Role]color.NRGBA

// Color は役割に対応する色を返します
func (p Palette) Color(r Role) (color.NRGBA, bool) {
	c, ok := p[r]
	return c, ok
}

// Merge は別のパレットの定義を上書き適用した新しいパレットを返します
func (p Palette) Merge(overrides Palette) Palette {
	merged := make(Palette, len(p)+len(overrides))
	for role, c := range p {
		merged[role] = c
	}
	for role, c := range overrides {
		merged[role] = c
	}
	return merged
}

// Retro はレトロレイアウト用のパレットを返します
func Retro() Palette {
	return Palette{
		White:        {255, 255, 255, 255},
		BrightYellow: {255, 255, 100, 255},
		ElectricBlue: {30, 144, 255, 255},
		HotRed:       {255, 69, 0, 255},
		Chrome:       {220, 220, 220, 255},
		Black:        {0, 0, 0, 255},
		DarkShadow:   {0, 0, 0, 220},
		OutlineBlack: {0, 0, 0, 255},
	}
}

// Article は記事ヘッダレイアウト用のパレットを返します
func Article() Palette {
	return Palette{
		White:      {255, 255, 255, 255},
		BrightCyan: {0, 200, 255, 255},
		Orange:     {255, 140, 0, 255},
		LightBlue:  {100, 180, 255, 255},
		DarkShadow: {0, 0, 0, 220},
		SemiWhite:  {255, 255, 255, 230},
		TitleGlow:  {0, 100, 150, 100},
	}
}

// ParseColor は色文字列を解析します
// 名前付き色と #RGB、#RRGGBB、#RRGGBBAA 形式に対応します
func ParseColor(value string) (color.NRGBA, error) {
	value = strings.TrimSpace(value)

	if c, ok := namedColors[value]; ok {
		return c, nil
	}

	if strings.HasPrefix(value, "#") {
		return parseHexColor(value)
	}

	return color.NRGBA{}, fmt.Errorf("unsupported color format: %s", value)
}

// parseHexColor は16進数色を解析します
func parseHexColor(hex string) (color.NRGBA, error) {
	hex = strings.TrimPrefix(hex, "#")

	var r, g, b uint8
	a := uint8(255)

	parse := func(s string) (uint8, error) {
		v, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid hex component %q: %w", s, err)
		}
		return uint8(v), nil
	}

	var err error
	switch len(hex) {
	case 3:
		// #RGB
		if r, err = parse(string(hex[0]) + string(hex[0])); err != nil {
			return color.NRGBA{}, err
		}
		if g, err = parse(string(hex[1]) + string(hex[1])); err != nil {
			return color.NRGBA{}, err
		}
		if b, err = parse(string(hex[2]) + string(hex[2])); err != nil {
			return color.NRGBA{}, err
		}
	case 8:
		// #RRGGBBAA
		if a, err = parse(hex[6:8]); err != nil {
			return color.NRGBA{}, err
		}
		fallthrough
	case 6:
		// #RRGGBB
		if r, err = parse(hex[0:2]); err != nil {
			return color.NRGBA{}, err
		}
		if g, err = parse(hex[2:4]); err != nil {
			return color.NRGBA{}, err
		}
		if b, err = parse(hex[4:6]); err != nil {
			return color.NRGBA{}, err
		}
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color length: %s", hex)
	}

	return color.NRGBA{r, g, b, a}, nil
}

// namedColors は名前付き色のマップです
var namedColors = map[string]color.NRGBA{
	"black":   {0, 0, 0, 255},
	"white":   {255, 255, 255, 255},
	"red":     {255, 0, 0, 255},
	"green":   {0, 255, 0, 255},
	"blue":    {0, 0, 255, 255},
	"yellow":  {255, 255, 0, 255},
	"cyan":    {0, 255, 255, 255},
	"magenta": {255, 0, 255, 255},
	"gray":    {128, 128, 128, 255},
	"grey":    {128, 128, 128, 255},
}
