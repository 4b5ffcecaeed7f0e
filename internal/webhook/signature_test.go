package webhook_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ricepay/tracker/internal/webhook"
)

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"id":"evt-1"}`)

	tt := []struct {
		name      string
		signature string

		expectedErr error
	}{
		{
			name:      "valid signature",
			signature: signBody("whsec_test", body),
		},
		{
			name:        "wrong secret",
			signature:   signBody("whsec_other", body),
			expectedErr: webhook.ErrBadSignature,
		},
		{
			name:        "truncated signature",
			signature:   signBody("whsec_test", body)[:32],
			expectedErr: webhook.ErrBadSignature,
		},
		{
			name:        "empty signature",
			signature:   "",
			expectedErr: webhook.ErrBadSignature,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			err := webhook.VerifySignature("whsec_test", body, tc.signature)

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestVerifySignatureCoversRawBytes(t *testing.T) {
	// The digest must be over the body as received; re-encoding the JSON
	// with different whitespace must not verify.
	body := []byte(`{"id": "evt-1"}`)
	reEncoded := []byte(`{"id":"evt-1"}`)

	signature := signBody("whsec_test", body)

	require.NoError(t, webhook.VerifySignature("whsec_test", body, signature))
	require.ErrorIs(t, webhook.VerifySignature("whsec_test", reEncoded, signature), webhook.ErrBadSignature)
}
