// Package auth decides whether a claimed member action is covered by a
// signature from one of the member's active keys.
package auth

import (
	"context"

	"go.opentelemetry.io/otel"

	"github.com/campuschat/server/core"
)

var tracer = otel.Tracer("auth")

type service struct {
	key core.KeyService
}

// NewService creates a new auth service
func NewService(key core.KeyService) core.AuthService {
	return &service{key}
}

// Authorized reports whether the signature over the payload validates
// against any of the member's active keys. Empty payload or signature
// short-circuits to false without touching the key store. Evaluation
// stops at the first matching key.
func (s *service) Authorized(ctx context.Context, memberID uint, payload string, signature string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.Authorized")
	defer span.End()

	if payload == "" || signature == "" {
		return false, nil
	}

	keys, err := s.key.GetActiveKeys(ctx, memberID)
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	for _, key := range keys {
		if core.VerifySignature(payload, signature, key.KeyText) {
			return true, nil
		}
	}

	return false, nil
}
