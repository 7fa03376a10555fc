package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"strings"

	"github.com/shinya/imgoverlay/pkg/imgoverlay"
)

func main() {
	// コマンドラインオプションの定義
	var (
		inputFile      = flag.String("in", "", "入力画像ファイル（省略時はスタイル既定の入力名）")
		outputFile     = flag.String("out", "", "出力画像ファイル（省略時はスタイル既定の出力名）")
		styleName      = flag.String("style", "retro", "レイアウトスタイル（retro、article）")
		layoutFile     = flag.String("layout", "", "TOMLレイアウトファイル（組み込みレイアウトより優先）")
		qrContent      = flag.String("qr", "", "QRコードバッジとして埋め込むURL")
		fontPath       = flag.String("font", "", "優先して使用するフォントファイル")
		systemFontScan = flag.Bool("system-font-scan", false, "システムフォントのスキャンを有効にする")
		help           = flag.Bool("help", false, "ヘルプを表示")
	)

	flag.Parse()

	if *help {
		printUsage()
		return
	}

	// スタイルの検証
	style := imgoverlay.Style(*styleName)
	if style != imgoverlay.StyleRetro && style != imgoverlay.StyleArticle {
		log.Fatalf("未知のスタイル: %s（retro または article を指定してください）", *styleName)
	}

	// 入出力ファイル名の解決（省略時はスタイル既定のペア）
	in, out := defaultFiles(style)
	if *inputFile != "" {
		in = *inputFile
	}
	if *outputFile != "" {
		out = *outputFile
	}

	// 入力ファイルの存在チェック
	if _, err := os.Stat(in); err != nil {
		fmt.Printf("エラー: 入力ファイル '%s' が見つかりません\n", in)
		return
	}

	fmt.Println("画像を読み込み、テキストオーバーレイを生成しています...")

	// オプションの設定
	opts := imgoverlay.Options{
		Style:          style,
		LayoutFile:     *layoutFile,
		QRContent:      *qrContent,
		SystemFontScan: *systemFontScan,
	}
	if *fontPath != "" {
		opts.FontPaths = []string{*fontPath}
	}
	if strings.HasSuffix(strings.ToLower(out), ".png") {
		opts.Format = imgoverlay.FormatPNG
	}

	// 画像処理の実行
	// 失敗してもエラーメッセージの表示のみで終了コードは変えない
	srcData, err := os.ReadFile(in)
	if err != nil {
		fmt.Printf("画像処理に失敗: %v\n", err)
		return
	}

	outData, diag, err := imgoverlay.Annotate(srcData, opts)
	if err != nil {
		fmt.Printf("画像処理に失敗: %v\n", err)
		return
	}

	if err := os.WriteFile(out, outData, 0644); err != nil {
		fmt.Printf("画像処理に失敗: %v\n", err)
		return
	}

	// 診断情報の表示
	if len(diag.Warnings) > 0 {
		fmt.Println("警告:")
		for _, warning := range diag.Warnings {
			fmt.Printf("  - %s\n", warning)
		}
	}

	if len(diag.MissingFonts) > 0 {
		fmt.Println("不足フォント:")
		for _, f := range diag.MissingFonts {
			fmt.Printf("  - %s\n", f)
		}
	}

	if len(diag.Overflows) > 0 {
		fmt.Println("幅に収まらなかったラベル:")
		for _, text := range diag.Overflows {
			fmt.Printf("  - %s\n", text)
		}
	}

	if cfg, _, err := image.DecodeConfig(bytes.NewReader(outData)); err == nil {
		fmt.Printf("完了: %s -> %s (%dx%d)\n", in, out, cfg.Width, cfg.Height)
	} else {
		fmt.Printf("完了: %s -> %s\n", in, out)
	}
}

// defaultFiles はスタイル既定の入出力ファイル名を返します
func defaultFiles(style imgoverlay.Style) (in, out string) {
	if style == imgoverlay.StyleArticle {
		return "automotive_visualization.jpg", "article_header_final.jpg"
	}
	return "Article_Image.jpg", "proxy4_no_overlap.jpg"
}

// printUsage は使用方法を表示します
func printUsage() {
	fmt.Print(`IMGOVERLAY - 画像テキストオーバーレイ生成ツール

使用方法:
  imgoverlay [オプション]

オプション:
  -in string
        入力画像ファイル（省略時はスタイル既定の入力名）
  -out string
        出力画像ファイル（省略時はスタイル既定の出力名）
        拡張子が .png の場合はPNG、それ以外はJPEG（品質95）で出力
  -style string
        レイアウトスタイル（デフォルト: retro）
        retro:   1950年代風の見出しレイアウト
        article: 記事ヘッダレイアウト
  -layout string
        TOMLレイアウトファイル（組み込みレイアウトより優先）
  -qr string
        QRコードバッジとして埋め込むURL
  -font string
        優先して使用するフォントファイル
  -system-font-scan
        システムフォントのスキャンを有効にする
  -help
        このヘルプを表示

例:
  imgoverlay
  imgoverlay -style article
  imgoverlay -in input.jpg -out header.png -style retro
  imgoverlay -in input.jpg -out header.jpg -layout custom.toml
  imgoverlay -in input.jpg -out header.jpg -qr https://example.com/article
`)
}
