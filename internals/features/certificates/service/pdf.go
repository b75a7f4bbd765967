package service

import (
	"bytes"
	"fmt"
	"strings"
)

// RenderPDF writes a single-page PDF with the certificate text centered
// on A4. The file is assembled by hand: four objects plus the xref
// table, which is all a one-page text document needs.
func RenderPDF(title, studentName, courseName, code, issuedDate string) []byte {
	content := pdfContentStream(title, studentName, courseName, code, issuedDate)

	var buf bytes.Buffer
	offsets := make([]int, 0, 5)
	write := func(s string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(s)
	}

	buf.WriteString("%PDF-1.4\n")
	write("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	write("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	write("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] " +
		"/Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>\nendobj\n")
	write(fmt.Sprintf("4 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n",
		len(content), content))
	write("5 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")

	xrefAt := buf.Len()
	buf.WriteString(fmt.Sprintf("xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1))
	for _, off := range offsets {
		buf.WriteString(fmt.Sprintf("%010d 00000 n \n", off))
	}
	buf.WriteString(fmt.Sprintf(
		"trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefAt))

	return buf.Bytes()
}

func pdfContentStream(title, studentName, courseName, code, issuedDate string) string {
	lines := []struct {
		size int
		y    int
		text string
	}{
		{24, 700, title},
		{12, 650, "This certifies that"},
		{20, 610, studentName},
		{12, 570, "has successfully completed"},
		{16, 535, courseName},
		{10, 470, "Issued on " + issuedDate},
		{10, 450, "Verification code: " + code},
	}

	var b strings.Builder
	b.WriteString("BT\n")
	for _, l := range lines {
		// Rough centering for Helvetica at ~0.5em average glyph width.
		x := 297 - len(l.text)*l.size/4
		if x < 40 {
			x = 40
		}
		fmt.Fprintf(&b, "/F1 %d Tf\n1 0 0 1 %d %d Tm\n(%s) Tj\n",
			l.size, x, l.y, escapePDFText(l.text))
	}
	b.WriteString("ET")
	return b.String()
}

func escapePDFText(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
