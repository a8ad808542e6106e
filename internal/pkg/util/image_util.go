package util

import (
	"StorySphere/internal/pkg/consts"
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
)

var ErrUnsupportedImage = errors.New("unsupported image format")

// ProcessedImage 处理后的图片数据
type ProcessedImage struct {
	Data        *bytes.Buffer
	ContentType string
	Ext         string
	Width       int
	Height      int
}

// FitImage 解码图片，超出 1000x1000 时等比缩小，PNG 保持 PNG，其余统一转 JPEG
func FitImage(r io.Reader) (*ProcessedImage, error) {
	src, format, err := image.Decode(io.LimitReader(r, consts.MaxUploadSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	b := src.Bounds()
	if b.Dx() > consts.MaxImageWidth || b.Dy() > consts.MaxImageHeight {
		src = imaging.Fit(src, consts.MaxImageWidth, consts.MaxImageHeight, imaging.Lanczos)
	}

	out := &ProcessedImage{Data: &bytes.Buffer{}, Width: src.Bounds().Dx(), Height: src.Bounds().Dy()}
	if format == "png" {
		out.ContentType, out.Ext = "image/png", ".png"
		err = imaging.Encode(out.Data, src, imaging.PNG)
	} else {
		out.ContentType, out.Ext = "image/jpeg", ".jpg"
		err = imaging.Encode(out.Data, src, imaging.JPEG, imaging.JPEGQuality(85))
	}
	if err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}

	return out, nil
}
