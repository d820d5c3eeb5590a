package auth

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
)

// VerifyPaystackSignature checks the x-paystack-signature header against the
// raw webhook body. Paystack signs the exact byte payload with
// HMAC-SHA512(secret, body) and sends the hex digest; verification must run
// over the unparsed body, since re-serialized JSON would not match byte for
// byte. The comparison is constant time.
// https://paystack.com/docs/payments/webhooks/#verify-event-origin
func VerifyPaystackSignature(secret string, body []byte, signature string) error {
	if signature == "" {
		return fmt.Errorf("signature header is missing")
	}

	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	expected := mac.Sum(nil)

	received, err := hex.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("signature is not valid hex")
	}

	if !hmac.Equal(expected, received) {
		return fmt.Errorf("invalid signature: data integrity check failed")
	}
	return nil
}

// SignPaystackPayload produces the hex signature a provider would attach to
// the given body. Used by tests and local tooling.
func SignPaystackPayload(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
