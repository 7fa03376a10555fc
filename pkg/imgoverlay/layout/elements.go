package layout

import (
	"github.com/shinya/imgoverlay/pkg/imgoverlay/font"
	"github.com/shinya/imgoverlay/pkg/imgoverlay/style"
)

// Canvas は出力画像に対応する固定サイズの描画領域を表します
type Canvas struct {
	Width  int
	Height int
}

// Decoration は文字装飾の種類を表します
type Decoration int

const (
	DecorationNone Decoration = iota
	DecorationShadow
	DecorationOutline
	DecorationGlow
)

// String は装飾名を返します
func (d Decoration) String() string {
	switch d {
	case DecorationShadow:
		return "shadow"
	case DecorationOutline:
		return "outline"
	case DecorationGlow:
		return "glow"
	default:
		return "none"
	}
}

// Line は配置が確定した1行のテキストを表します
type Line struct {
	Text  string
	X     int
	Y     int
	Width int
}

// Placement はフィット処理の結果を表します
type Placement struct {
	Tier     font.Tier
	Lines    []Line
	Overflow bool // 1段階の縮小後もあふれている場合に true
}

// Element は解決済みの描画要素を表します
// 要素はレイアウト内の順序どおりに描画されます（後勝ち）
type Element interface {
	element()
}

// TextElement はテキスト要素を表します
type TextElement struct {
	Lines        []Line
	Tier         font.Tier
	Color        style.Role
	Decoration   Decoration
	Secondary    style.Role // 影・縁取り・グロー用の副色（任意）
	OutlineWidth int
}

// PanelElement は半透明の背景パネルを表します
type PanelElement struct {
	X       int
	Y       int
	Width   int
	Height  int
	Opacity uint8
}

// VerticalTextElement は90度回転した縦書きテキストを表します
type VerticalTextElement struct {
	Text  string
	Tier  font.Tier
	Color style.Role
	X     int
	Y     int
}

// QRElement はQRコードバッジを表します
type QRElement struct {
	Content string
	Size    int
	X       int
	Y       int
}

func (*TextElement) element()         {}
func (*PanelElement) element()        {}
func (*VerticalTextElement) element() {}
func (*QRElement) element()           {}

// Layout は解決済みの描画要素の並びを表します
type Layout struct {
	Elements  []Element
	Overflows []string // あふれが確定したラベルのテキスト
}

// Append は要素を末尾に追加します
func (l *Layout) Append(elem Element) {
	l.Elements = append(l.Elements, elem)
}

// AppendText はフィット結果をテキスト要素として追加し、
// あふれを記録します
func (l *Layout) AppendText(p Placement, color style.Role, dec Decoration, secondary style.Role, outlineWidth int) {
	if p.Overflow {
		l.Overflows = append(l.Overflows, p.Lines[0].Text)
	}
	l.Elements = append(l.Elements, &TextElement{
		Lines:        p.Lines,
		Tier:         p.Tier,
		Color:        color,
		Decoration:   dec,
		Secondary:    secondary,
		OutlineWidth: outlineWidth,
	})
}
