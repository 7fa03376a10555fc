package raster

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
)

// DrawQRBadge は指定内容のQRコードを生成して貼り付けます
func (c *Canvas) DrawQRBadge(content string, size, x, y int) error {
	pngData, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return fmt.Errorf("failed to encode QR code: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(pngData))
	if err != nil {
		return fmt.Errorf("failed to decode QR code image: %w", err)
	}

	c.Paste(img, x, y)
	return nil
}
