package auth

import (
	"strings"
	"testing"
)

func TestVerifyPaystackSignature(t *testing.T) {
	secret := "sk_test_secret"
	body := []byte(`{"event":"charge.success","data":{"reference":"pay_123","status":"success","id":999}}`)

	t.Run("valid signature", func(t *testing.T) {
		sig := SignPaystackPayload(secret, body)
		if err := VerifyPaystackSignature(secret, body, sig); err != nil {
			t.Errorf("expected valid signature, got error: %v", err)
		}
	})

	t.Run("missing signature", func(t *testing.T) {
		if err := VerifyPaystackSignature(secret, body, ""); err == nil {
			t.Error("expected error for missing signature")
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		sig := SignPaystackPayload("some-other-secret", body)
		if err := VerifyPaystackSignature(secret, body, sig); err == nil {
			t.Error("expected error for signature produced with wrong secret")
		}
	})

	t.Run("tampered body", func(t *testing.T) {
		sig := SignPaystackPayload(secret, body)
		tampered := []byte(strings.Replace(string(body), "pay_123", "pay_999", 1))
		if err := VerifyPaystackSignature(secret, tampered, sig); err == nil {
			t.Error("expected error for tampered body")
		}
	})

	t.Run("re-serialized body does not verify", func(t *testing.T) {
		sig := SignPaystackPayload(secret, body)
		// Same JSON value, different byte layout.
		reserialized := []byte(`{"data":{"id":999,"reference":"pay_123","status":"success"},"event":"charge.success"}`)
		if err := VerifyPaystackSignature(secret, reserialized, sig); err == nil {
			t.Error("expected error when verifying a re-serialized body")
		}
	})

	t.Run("non-hex signature", func(t *testing.T) {
		if err := VerifyPaystackSignature(secret, body, "not-hex!!"); err == nil {
			t.Error("expected error for non-hex signature")
		}
	})
}
