package utils

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// MaxPhotoBytes caps uploaded photo payloads at 8 MB.
const MaxPhotoBytes = 8 * 1024 * 1024

// maxPhotoDimension is the largest stored width or height.
const maxPhotoDimension = 1024

// jpegQuality is the compression quality for stored photos.
const jpegQuality = 85

var allowedPhotoMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// SavePhoto validates an uploaded photo, downscales it if oversized and
// writes it under dir as a JPEG with an opaque name. It returns that name,
// which callers store as the item's photo reference. The MIME type is
// sniffed from the bytes, not taken from the client.
func SavePhoto(r io.Reader, dir string) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxPhotoBytes+1))
	if err != nil {
		return "", fmt.Errorf("reading photo: %w", err)
	}
	if len(data) > MaxPhotoBytes {
		return "", fmt.Errorf("photo exceeds %d bytes", MaxPhotoBytes)
	}

	detected := http.DetectContentType(data)
	if !allowedPhotoMIME[detected] {
		return "", fmt.Errorf("unsupported photo format %s (only JPEG and PNG accepted)", detected)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decoding photo: %w", err)
	}
	img = downscale(img, maxPhotoDimension)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("encoding photo: %w", err)
	}

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("creating upload directory: %w", err)
	}
	name := uuid.New().String() + ".jpg"
	if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("writing photo: %w", err)
	}
	return name, nil
}

// downscale resizes the image so neither dimension exceeds maxDim,
// preserving aspect ratio. Returns the original if already within bounds.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if w <= maxDim && h <= maxDim {
		return img
	}

	newW, newH := w, h
	if w > h {
		newW = maxDim
		newH = int(float64(h) * float64(maxDim) / float64(w))
	} else {
		newH = maxDim
		newW = int(float64(w) * float64(maxDim) / float64(h))
	}
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
