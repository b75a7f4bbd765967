package helper

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: name, Header: h, Size: size}
}

func TestUniqueFilename(t *testing.T) {
	a := UniqueFilename("report.pdf")
	b := UniqueFilename("report.pdf")

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, "-report.pdf"))

	// path and shell characters are stripped
	c := UniqueFilename("../../etc/pass wd$(x).pdf")
	assert.NotContains(t, c, "/")
	assert.NotContains(t, c, " ")
	assert.NotContains(t, c, "$")
}

func TestValidateUpload(t *testing.T) {
	require.NoError(t, ValidateUpload(fileHeader("a.pdf", "application/pdf", 1024), 2048, DocumentMIMEs))

	// charset parameters on the content type are tolerated
	require.NoError(t, ValidateUpload(fileHeader("a.txt", "text/plain; charset=utf-8", 10), 2048, DocumentMIMEs))

	err := ValidateUpload(fileHeader("a.pdf", "application/pdf", 4096), 2048, DocumentMIMEs)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, err.(*fiber.Error).Code)

	err = ValidateUpload(fileHeader("a.exe", "application/x-msdownload", 10), 2048, DocumentMIMEs)
	require.Error(t, err)

	err = ValidateUpload(nil, 2048, DocumentMIMEs)
	require.Error(t, err)
}
