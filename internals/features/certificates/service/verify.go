package service

import (
	"crypto/rand"
	"fmt"
	"time"

	certModel "schoolhub_backend/internals/features/certificates/model"
)

// codeAlphabet drops ambiguous characters (0/O, 1/I) since the codes
// are read out loud and typed by hand.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewVerificationCode mints a `CERT-XXXX-XXXX-XXXX` code.
func NewVerificationCode() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = codeAlphabet[int(buf[i])%len(codeAlphabet)]
	}
	return fmt.Sprintf("CERT-%s-%s-%s", buf[0:4], buf[4:8], buf[8:12]), nil
}

// VerifyResult is the public answer for a verification code lookup.
type VerifyResult struct {
	Valid   bool   `json:"valid"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message"`
}

// Evaluate ranks the certificate's problems: expiry wins over
// revocation, revocation over pending. Only the first match is
// reported.
func Evaluate(cert *certModel.CertificateModel, now time.Time) VerifyResult {
	expired := cert.Status == certModel.StatusExpired ||
		(cert.ExpiryDate != nil && cert.ExpiryDate.Before(now))

	switch {
	case expired:
		return VerifyResult{Valid: false, Status: certModel.StatusExpired, Message: "Certificate has expired"}
	case cert.Status == certModel.StatusRevoked:
		return VerifyResult{Valid: false, Status: certModel.StatusRevoked, Message: "Certificate has been revoked"}
	case cert.Status == certModel.StatusPending:
		return VerifyResult{Valid: false, Status: certModel.StatusPending, Message: "Certificate is pending issuance"}
	default:
		return VerifyResult{Valid: true, Status: certModel.StatusIssued, Message: "Certificate is valid"}
	}
}
