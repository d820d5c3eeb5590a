package handlers

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/creator-marketplace/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type stubProcessor struct {
	mu     sync.Mutex
	err    error
	bodies [][]byte
	sigs   []string
}

func (s *stubProcessor) ProcessWebhook(ctx context.Context, body []byte, signature string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bodies = append(s.bodies, append([]byte{}, body...))
	s.sigs = append(s.sigs, signature)
	return s.err
}

func webhookTestApp(proc *stubProcessor) *fiber.App {
	app := fiber.New()
	h := NewWebhookHandler(proc, zap.NewNop())
	app.Post("/api/v1/webhooks/paystack", h.HandlePaystack)
	return app
}

func TestHandlePaystackAck(t *testing.T) {
	proc := &stubProcessor{}
	app := webhookTestApp(proc)

	body := []byte(`{"event":"charge.success","data":{"id":1,"reference":"pay_x","status":"success"}}`)
	req := httptest.NewRequest("POST", "/api/v1/webhooks/paystack", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-paystack-signature", "deadbeef")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}

	ack, _ := io.ReadAll(resp.Body)
	if string(ack) != `{"received":true}` {
		t.Errorf("body = %s, want {\"received\":true}", ack)
	}

	// The handler must hand the raw bytes through unmodified.
	if len(proc.bodies) != 1 || !bytes.Equal(proc.bodies[0], body) {
		t.Errorf("processor received altered body: %s", proc.bodies)
	}
	if proc.sigs[0] != "deadbeef" {
		t.Errorf("signature = %q, want deadbeef", proc.sigs[0])
	}
}

func TestHandlePaystackStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"signature failure", services.ErrUnauthorized, fiber.StatusUnauthorized},
		{"malformed event", services.ErrMalformedEvent, fiber.StatusInternalServerError},
		{"store failure", context.DeadlineExceeded, fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := webhookTestApp(&stubProcessor{err: tc.err})

			req := httptest.NewRequest("POST", "/api/v1/webhooks/paystack", bytes.NewReader([]byte(`{}`)))
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tc.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tc.want)
			}
		})
	}
}
