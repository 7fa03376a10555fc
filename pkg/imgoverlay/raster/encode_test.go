package raster

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func TestEncodeJPEG(t *testing.T) {
	c := newWhiteCanvas(320, 240)

	data, err := c.EncodeJPEG()
	if err != nil {
		t.Fatalf("EncodeJPEG failed: %v", err)
	}

	// JPEGヘッダーの確認
	if !bytes.HasPrefix(data, []byte{0xFF, 0xD8}) {
		t.Error("Invalid JPEG header")
	}

	// 保存→再読み込みで寸法が保たれる
	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Bounds().Dx() != 320 || img.Bounds().Dy() != 240 {
		t.Errorf("decoded size = %dx%d, want 320x240", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestEncodeJPEG_FlattensAlpha(t *testing.T) {
	// 半透明のキャンバスは白背景に平坦化される
	c := NewCanvas(imaging.New(50, 50, color.NRGBA{0, 0, 0, 0}))

	data, err := c.EncodeJPEG()
	if err != nil {
		t.Fatalf("EncodeJPEG failed: %v", err)
	}

	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	// 完全透過の領域は白になる
	r, g, b, _ := img.At(25, 25).RGBA()
	if r>>8 < 250 || g>>8 < 250 || b>>8 < 250 {
		t.Errorf("transparent area = (%d, %d, %d), want near-white", r>>8, g>>8, b>>8)
	}
}

func TestEncodePNG(t *testing.T) {
	c := newWhiteCanvas(100, 100)

	data, err := c.EncodePNG()
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	// PNGヘッダーの確認
	if !bytes.HasPrefix(data, []byte{0x89, 0x50, 0x4E, 0x47}) {
		t.Error("Invalid PNG header")
	}

	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 100 {
		t.Errorf("decoded size = %dx%d, want 100x100", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestDecode_InvalidData(t *testing.T) {
	if _, err := Decode([]byte("not an image")); err == nil {
		t.Error("Expected error for invalid image data, but got none")
	}
}
