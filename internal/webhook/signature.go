// Package webhook verifies and ingests provider webhook deliveries,
// translating the loosely shaped JSON payloads into tracker events.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

var ErrBadSignature = errors.New("webhook signature mismatch")

// VerifySignature checks the hex encoded HMAC-SHA256 of the raw request
// body. The digest is computed over the exact bytes received, before
// any JSON decoding.
func VerifySignature(secret string, body []byte, signature string) error {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	if len(signature) != len(expected) {
		return ErrBadSignature
	}
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return ErrBadSignature
	}
	return nil
}
