package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/disintegration/imaging"
)

// JPEGQuality はJPEG出力の品質（固定）です
const JPEGQuality = 95

// EncodeJPEG はキャンバスをJPEG形式でエンコードします
// JPEGはアルファを持たないため、白背景に平坦化してから出力します
func (c *Canvas) EncodeJPEG() ([]byte, error) {
	flat := imaging.New(c.Width(), c.Height(), color.NRGBA{255, 255, 255, 255})
	draw.Draw(flat, flat.Bounds(), c.img, c.img.Bounds().Min, draw.Over)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, flat, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodePNG はキャンバスをPNG形式でエンコードします
func (c *Canvas) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode は入力画像データをデコードします
func Decode(data []byte) (image.Image, error) {
	return imaging.Decode(bytes.NewReader(data))
}
