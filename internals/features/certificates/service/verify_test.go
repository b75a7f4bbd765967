package service

import (
	"bytes"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	certModel "schoolhub_backend/internals/features/certificates/model"
)

var codeRe = regexp.MustCompile(`^CERT-[A-Z2-9]{4}-[A-Z2-9]{4}-[A-Z2-9]{4}$`)

func TestNewVerificationCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := NewVerificationCode()
		require.NoError(t, err)
		assert.Regexp(t, codeRe, code)
		assert.NotContains(t, code, "0")
		assert.NotContains(t, code, "O")
		assert.NotContains(t, code, "1")
		assert.NotContains(t, code, "I")
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}

func TestEvaluate(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	cases := []struct {
		name        string
		cert        certModel.CertificateModel
		wantValid   bool
		wantMessage string
	}{
		{
			name:        "issued and unexpired",
			cert:        certModel.CertificateModel{Status: certModel.StatusIssued, ExpiryDate: &future},
			wantValid:   true,
			wantMessage: "Certificate is valid",
		},
		{
			name:        "issued without expiry",
			cert:        certModel.CertificateModel{Status: certModel.StatusIssued},
			wantValid:   true,
			wantMessage: "Certificate is valid",
		},
		{
			name:        "expired by date",
			cert:        certModel.CertificateModel{Status: certModel.StatusIssued, ExpiryDate: &past},
			wantValid:   false,
			wantMessage: "Certificate has expired",
		},
		{
			name:        "expired by status",
			cert:        certModel.CertificateModel{Status: certModel.StatusExpired},
			wantValid:   false,
			wantMessage: "Certificate has expired",
		},
		{
			name:        "revoked",
			cert:        certModel.CertificateModel{Status: certModel.StatusRevoked},
			wantValid:   false,
			wantMessage: "Certificate has been revoked",
		},
		{
			name:        "revoked and expired reports expiry first",
			cert:        certModel.CertificateModel{Status: certModel.StatusRevoked, ExpiryDate: &past},
			wantValid:   false,
			wantMessage: "Certificate has expired",
		},
		{
			name:        "pending",
			cert:        certModel.CertificateModel{Status: certModel.StatusPending},
			wantValid:   false,
			wantMessage: "Certificate is pending issuance",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(&tc.cert, now)
			assert.Equal(t, tc.wantValid, got.Valid)
			assert.Equal(t, tc.wantMessage, got.Message)
		})
	}
}

func TestRenderPDF(t *testing.T) {
	pdf := RenderPDF("Certificate of Completion", "Jane Doe", "Calculus I",
		"CERT-AAAA-BBBB-CCCC", "31 August 2026")

	require.True(t, bytes.HasPrefix(pdf, []byte("%PDF-1.4")))
	assert.True(t, bytes.HasSuffix(bytes.TrimRight(pdf, "\n"), []byte("%%EOF")))
	assert.Contains(t, string(pdf), "Jane Doe")
	assert.Contains(t, string(pdf), "CERT-AAAA-BBBB-CCCC")
	assert.Contains(t, string(pdf), "Calculus I")
}

func TestRenderPDFEscapesDelimiters(t *testing.T) {
	pdf := RenderPDF("Award (2026)", `Team \ One`, "Course)", "CERT-XXXX-XXXX-XXXX", "1 May 2026")
	s := string(pdf)
	assert.Contains(t, s, `Award \(2026\)`)
	assert.Contains(t, s, `Team \\ One`)
	assert.Contains(t, s, `Course\)`)
}
