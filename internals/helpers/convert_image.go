package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
)

/* =======================================================================
   Image → WebP
   Profile photos are re-encoded to webp before hitting disk so the
   stored tree stays small and MIME-uniform.
======================================================================= */

const (
	profileMaxWidth = 512
	profileQuality  = 80
)

// SaveImageAsWebP decodes the uploaded image, resizes it down to maxW if
// wider, encodes webp and writes it under <baseDir>/<subdir>/. Returns
// the relative URL.
func SaveImageAsWebP(fh *multipart.FileHeader, baseDir, subdir string, maxW int) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Failed to open uploaded image")
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File is not a decodable image")
	}

	if maxW > 0 && img.Bounds().Dx() > maxW {
		img = imaging.Resize(img, maxW, 0, imaging.CatmullRom)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: profileQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	dir := filepath.Join(baseDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to prepare upload directory")
	}
	name := UniqueFilename(webpName(fh.Filename))
	if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to store image")
	}
	return "/" + filepath.ToSlash(filepath.Join(subdir, name)), nil
}

// SaveProfilePhoto is the preset used by the user profile endpoint.
func SaveProfilePhoto(fh *multipart.FileHeader, baseDir string) (string, error) {
	return SaveImageAsWebP(fh, baseDir, "profiles", profileMaxWidth)
}

func webpName(original string) string {
	base := strings.TrimSuffix(original, filepath.Ext(original))
	if base == "" {
		base = "image"
	}
	return base + ".webp"
}
