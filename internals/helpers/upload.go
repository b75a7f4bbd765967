package helper

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ===============================
   Multipart upload → local tree
=================================*/

// MIME allow-lists per upload kind.
var (
	ImageMIMEs = []string{"image/jpeg", "image/png", "image/webp"}

	DocumentMIMEs = []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/vnd.ms-excel",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"application/vnd.ms-powerpoint",
		"application/vnd.openxmlformats-officedocument.presentationml.presentation",
		"text/plain",
		"image/jpeg", "image/png",
		"application/zip",
	}
)

var unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(name string) string {
	return unsafeFilenameRe.ReplaceAllString(filepath.Base(name), "_")
}

// UniqueFilename prefixes date + uuid so collisions can't happen across
// concurrent uploads of the same file name.
func UniqueFilename(original string) string {
	return fmt.Sprintf("%s-%s-%s",
		time.Now().Format("20060102"), uuid.New().String(), sanitizeFilename(original))
}

// ValidateUpload checks size and MIME type against the route's limits.
func ValidateUpload(fh *multipart.FileHeader, maxBytes int64, allowedMIMEs []string) error {
	if fh == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing file")
	}
	if fh.Size > maxBytes {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("File exceeds the %dMB limit", maxBytes/(1024*1024)))
	}
	ct := strings.ToLower(strings.TrimSpace(fh.Header.Get("Content-Type")))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	for _, m := range allowedMIMEs {
		if ct == m {
			return nil
		}
	}
	return fiber.NewError(fiber.StatusBadRequest, "File type not allowed: "+ct)
}

// SaveUpload writes the buffered upload under <baseDir>/<subdir>/ and
// returns the relative URL stored on the owning row.
func SaveUpload(c *fiber.Ctx, fh *multipart.FileHeader, baseDir, subdir string) (string, error) {
	dir := filepath.Join(baseDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to prepare upload directory")
	}
	name := UniqueFilename(fh.Filename)
	dst := filepath.Join(dir, name)
	if err := c.SaveFile(fh, dst); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to store file")
	}
	return "/" + filepath.ToSlash(filepath.Join(subdir, name)), nil
}

// ResolveUploadPath maps a stored relative URL back to the file on disk.
func ResolveUploadPath(baseDir, fileURL string) string {
	return filepath.Join(baseDir, filepath.FromSlash(strings.TrimPrefix(fileURL, "/")))
}
