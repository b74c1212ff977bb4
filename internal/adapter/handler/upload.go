package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// saveUploadedImage stores an image part under dir, named by product id
// and position. The MIME type decides the extension; anything outside
// jpg, png and webp is rejected.
func saveUploadedImage(dir, productID string, index int, header *multipart.FileHeader) (string, error) {
	var ext string
	switch header.Header.Get("Content-Type") {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/webp":
		ext = ".webp"
	default:
		return "", fmt.Errorf("unsupported image type, only jpg, png and webp are allowed")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded image: %w", err)
	}
	defer src.Close()

	path := filepath.Join(dir, fmt.Sprintf("%s-%d%s", productID, index, ext))
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}

	return path, nil
}
