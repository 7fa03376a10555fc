package imgoverlay

import (
	"fmt"
	"sync"

	"github.com/shinya/imgoverlay/pkg/imgoverlay/config"
	"github.com/shinya/imgoverlay/pkg/imgoverlay/font"
	"github.com/shinya/imgoverlay/pkg/imgoverlay/layout"
	"github.com/shinya/imgoverlay/pkg/imgoverlay/preset"
	"github.com/shinya/imgoverlay/pkg/imgoverlay/raster"
	"github.com/shinya/imgoverlay/pkg/imgoverlay/render"
	"github.com/shinya/imgoverlay/pkg/imgoverlay/style"
)

// FontSource はフォントの供給源を表します
type FontSource = font.FontSource

// Style は組み込みレイアウトの種類を表します
type Style string

const (
	// StyleRetro は1950年代風の見出しレイアウトです
	StyleRetro Style = "retro"
	// StyleArticle は記事ヘッダレイアウトです
	StyleArticle Style = "article"
)

// Format は出力画像の形式を表します
type Format int

const (
	// FormatJPEG は品質固定のJPEG出力です（白背景に平坦化）
	FormatJPEG Format = iota
	// FormatPNG はPNG出力です
	FormatPNG
)

// Options はオーバーレイ生成のオプションを表します
type Options struct {
	Style          Style    // 既定 StyleRetro
	Format         Format   // 既定 FormatJPEG
	LayoutFile     string   // TOMLレイアウト（指定時は組み込みレイアウトより優先）
	QRContent      string   // 空でなければQRコードバッジを右下に追加
	QRSize         int      // 既定 120
	FontPaths      []string // 優先するフォントファイル
	SystemFontScan bool     // trueで起動時スキャン
}

// Diagnostics は診断情報を表します
type Diagnostics struct {
	Warnings     []string
	MissingFonts []string
	Overflows    []string // 縮小後もあふれたラベル
}

// グローバルに登録されたフォント
var (
	globalFontsMu sync.Mutex
	globalFonts   []font.FontSource
)

// RegisterFonts はフォントを登録します
// 登録されたフォントは検索パスより優先して使用されます
func RegisterFonts(fonts ...FontSource) {
	globalFontsMu.Lock()
	defer globalFontsMu.Unlock()
	globalFonts = append(globalFonts, fonts...)
}

// ClearFontCache は登録済みフォントをクリアします
func ClearFontCache() {
	globalFontsMu.Lock()
	defer globalFontsMu.Unlock()
	globalFonts = nil
}

// Annotate は元画像にスタイル付きテキストを重ねた画像を生成します
func Annotate(src []byte, opts Options) (out []byte, diag Diagnostics, err error) {
	// デフォルト値の設定
	if opts.Style == "" {
		opts.Style = StyleRetro
	}
	if opts.QRSize == 0 {
		opts.QRSize = 120
	}

	// 元画像のデコード: キャンバスサイズは元画像から確定する
	img, err := raster.Decode(src)
	if err != nil {
		return nil, Diagnostics{}, fmt.Errorf("failed to decode source image: %w", err)
	}

	bounds := img.Bounds()
	cv := layout.Canvas{Width: bounds.Dx(), Height: bounds.Dy()}

	// レイアウトファイルの読み込み（スタイル指定を上書きできる）
	var cfg *config.Config
	if opts.LayoutFile != "" {
		cfg, err = config.Load(opts.LayoutFile)
		if err != nil {
			return nil, Diagnostics{}, err
		}
		if cfg.Style != "" {
			opts.Style = Style(cfg.Style)
		}
	}

	// スタイルに応じた階級セットとパレット
	set, pal, err := styleDefaults(opts.Style)
	if err != nil {
		return nil, Diagnostics{}, err
	}

	// フォントの解決: 登録済み → 指定パス → 既定パス → システムスキャン
	mgr := font.NewManager(set)
	loadFonts(mgr, opts, &diag)

	// レイアウトの構築
	var lay *layout.Layout
	if cfg != nil {
		pal, err = cfg.Palette(pal)
		if err != nil {
			return nil, diag, err
		}
		lay, pal, err = cfg.Build(cv, set, mgr, pal)
	} else if opts.Style == StyleArticle {
		lay, err = preset.Article(cv, set, mgr)
	} else {
		lay, err = preset.Retro(cv, set, mgr)
	}
	if err != nil {
		return nil, diag, err
	}

	// QRコードバッジ（任意）
	if opts.QRContent != "" {
		lay.Append(&layout.QRElement{
			Content: opts.QRContent,
			Size:    opts.QRSize,
			X:       cv.Width - opts.QRSize - 40,
			Y:       cv.Height - opts.QRSize - 80,
		})
	}

	// 描画
	canvas := raster.NewCanvas(img)
	warnings, err := render.Render(canvas, lay, mgr, pal)
	diag.Warnings = append(diag.Warnings, warnings...)
	if err != nil {
		return nil, diag, err
	}

	diag.Overflows = append(diag.Overflows, lay.Overflows...)

	// エンコード
	switch opts.Format {
	case FormatPNG:
		out, err = canvas.EncodePNG()
	default:
		out, err = canvas.EncodeJPEG()
	}
	if err != nil {
		return nil, diag, err
	}

	return out, diag, nil
}

// styleDefaults はスタイルに応じた階級セットとパレットを返します
func styleDefaults(s Style) (*font.TierSet, style.Palette, error) {
	switch s {
	case StyleRetro:
		return font.RetroTiers(), style.Retro(), nil
	case StyleArticle:
		return font.ArticleTiers(), style.Article(), nil
	default:
		return nil, nil, fmt.Errorf("unknown style: %q", s)
	}
}

// loadFonts はフォント解決の優先順位に従ってフォントを読み込みます
func loadFonts(mgr *font.Manager, opts Options, diag *Diagnostics) {
	globalFontsMu.Lock()
	registered := make([]font.FontSource, len(globalFonts))
	copy(registered, globalFonts)
	globalFontsMu.Unlock()

	for _, src := range registered {
		if err := mgr.RegisterFonts(src); err != nil {
			diag.Warnings = append(diag.Warnings, fmt.Sprintf("registered font rejected: %v", err))
		}
	}

	if !mgr.Fallback() {
		return
	}

	if mgr.LoadSearchPaths(append(opts.FontPaths, font.DefaultSearchPaths()...)) {
		return
	}

	if opts.SystemFontScan {
		if err := mgr.ScanSystemFonts(); err != nil {
			// 警告として記録するが、処理は続行
			diag.Warnings = append(diag.Warnings, fmt.Sprintf("system font scan failed: %v", err))
		}
	}

	if mgr.Fallback() {
		diag.MissingFonts = append(diag.MissingFonts, "scalable font not found, using builtin bitmap face")
	}
}
