package imgoverlay

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font/gofont/goregular"
)

// makeSourceJPEG はテスト用の単色JPEG画像を作成します
func makeSourceJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := imaging.New(width, height, color.NRGBA{40, 60, 90, 255})
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG); err != nil {
		t.Fatalf("failed to encode source image: %v", err)
	}
	return buf.Bytes()
}

func withGoregular(t *testing.T) {
	t.Helper()
	RegisterFonts(FontSource{Data: goregular.TTF})
	t.Cleanup(ClearFontCache)
}

func TestAnnotate_RetroDefaults(t *testing.T) {
	withGoregular(t)
	src := makeSourceJPEG(t, 1024, 768)

	out, diag, err := Annotate(src, Options{})
	if err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}

	// 既定はJPEG出力
	if !bytes.HasPrefix(out, []byte{0xFF, 0xD8}) {
		t.Error("Invalid JPEG header")
	}

	// 出力サイズは元画像と同じ
	img, err := imaging.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}
	if img.Bounds().Dx() != 1024 || img.Bounds().Dy() != 768 {
		t.Errorf("output size = %dx%d, want 1024x768", img.Bounds().Dx(), img.Bounds().Dy())
	}

	// スケーラブルフォント登録済みなので不足フォントの診断は出ない
	if len(diag.MissingFonts) != 0 {
		t.Errorf("MissingFonts = %v, want empty", diag.MissingFonts)
	}
}

func TestAnnotate_ArticlePNG(t *testing.T) {
	withGoregular(t)
	src := makeSourceJPEG(t, 1200, 800)

	out, _, err := Annotate(src, Options{Style: StyleArticle, Format: FormatPNG})
	if err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}

	if !bytes.HasPrefix(out, []byte{0x89, 0x50, 0x4E, 0x47}) {
		t.Error("Invalid PNG header")
	}

	img, err := imaging.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}
	if img.Bounds().Dx() != 1200 || img.Bounds().Dy() != 800 {
		t.Errorf("output size = %dx%d, want 1200x800", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestAnnotate_QRBadge(t *testing.T) {
	withGoregular(t)
	src := makeSourceJPEG(t, 1024, 768)

	out, _, err := Annotate(src, Options{
		QRContent: "https://example.com/article",
		Format:    FormatPNG,
	})
	if err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}

	// QRバッジ領域（右下）に暗いモジュールが現れる
	img, err := imaging.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}

	foundDark := false
	for y := 768 - 200; y < 768-80 && !foundDark; y++ {
		for x := 1024 - 160; x < 1024-40; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r>>8 < 50 && g>>8 < 50 && b>>8 < 50 {
				foundDark = true
				break
			}
		}
	}
	if !foundDark {
		t.Error("no dark QR modules found in badge area")
	}
}

func TestAnnotate_OverflowDiagnostics(t *testing.T) {
	// 小さいキャンバスでは縮小後もタイトルがあふれ、診断に記録される
	withGoregular(t)
	src := makeSourceJPEG(t, 240, 180)

	_, diag, err := Annotate(src, Options{})
	if err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}

	if len(diag.Overflows) == 0 {
		t.Error("Overflows is empty, want at least one overflowing label")
	}
}

func TestAnnotate_LayoutFile(t *testing.T) {
	withGoregular(t)
	src := makeSourceJPEG(t, 800, 600)

	layoutPath := filepath.Join(t.TempDir(), "layout.toml")
	content := `
style = "article"

[[panel]]
x = 20
y = 20
width = 400
height = 100
opacity = 140

[[label]]
text = "CUSTOM HEADLINE"
tier = "title"
color = "bright_cyan"
decoration = "glow"
secondary = "title_glow"
y = 40

[[label]]
text = "hand-written layout"
tier = "caption"
color = "#ffa500"
x = 40
y = 120
`
	if err := os.WriteFile(layoutPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write layout file: %v", err)
	}

	out, diag, err := Annotate(src, Options{LayoutFile: layoutPath, Format: FormatPNG})
	if err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("Annotate returned empty output")
	}
	// 定義済みの役割のみ使っているので警告は出ない
	if len(diag.Warnings) != 0 {
		t.Errorf("Warnings = %v, want empty", diag.Warnings)
	}
}

func TestAnnotate_LayoutFileNotFound(t *testing.T) {
	src := makeSourceJPEG(t, 800, 600)

	if _, _, err := Annotate(src, Options{LayoutFile: "/nonexistent/layout.toml"}); err == nil {
		t.Error("Expected error for missing layout file, but got none")
	}
}

func TestAnnotate_InvalidImage(t *testing.T) {
	if _, _, err := Annotate([]byte("not an image"), Options{}); err == nil {
		t.Error("Expected error for invalid source image, but got none")
	}
}

func TestAnnotate_UnknownStyle(t *testing.T) {
	src := makeSourceJPEG(t, 800, 600)

	if _, _, err := Annotate(src, Options{Style: Style("vaporwave")}); err == nil {
		t.Error("Expected error for unknown style, but got none")
	}
}
