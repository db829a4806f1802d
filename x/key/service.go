package key

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/pkg/errors"

	"github.com/campuschat/server/core"
	"github.com/campuschat/server/x/util"
)

const (
	tokenLength   = 30
	tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// attempts before giving up on a token collision
	maxTokenRetries = 3
)

type service struct {
	repository Repository
	member     core.MemberService
	mail       core.MailSender
	config     util.Config
}

// NewService creates a new key service
func NewService(repository Repository, member core.MemberService, mail core.MailSender, config util.Config) core.KeyService {
	return &service{repository, member, mail, config}
}

// Register stores a new inactive public key for the member. When email
// confirmations are enabled a confirmation token is issued and mailed
// to the member's derived address. The debug auto-activate shortcut
// only applies while confirmations are disabled.
func (s *service) Register(ctx context.Context, lrzID string, keyText string) (core.PublicKey, error) {
	ctx, span := tracer.Start(ctx, "Key.Service.Register")
	defer span.End()

	member, err := s.member.GetByLrzID(ctx, lrzID)
	if err != nil {
		span.RecordError(err)
		return core.PublicKey{}, err
	}

	created, err := s.repository.Create(ctx, core.PublicKey{
		MemberID: member.ID,
		KeyText:  keyText,
	})
	if err != nil {
		span.RecordError(err)
		return core.PublicKey{}, err
	}

	if s.config.Chat.EmailConfirmationsEnabled {
		confirmation, err := s.IssueConfirmation(ctx, created)
		if err != nil {
			span.RecordError(err)
			return core.PublicKey{}, err
		}

		confirmationURL := fmt.Sprintf("%s/keys/confirm/%s", s.config.Chat.SiteURL, confirmation.Token)
		err = s.mail.SendConfirmation(ctx, member.Email(s.config.Chat.EmailDomain), confirmationURL, confirmation.Token)
		if err != nil {
			// delivery is fire-and-forget, the confirmation stays valid
			slog.ErrorContext(ctx, fmt.Sprintf("failed to send confirmation mail: %v", err), slog.String("module", "key"))
		}

		return created, nil
	}

	if s.config.Chat.DebugAutoActivateKeys {
		activated, err := s.repository.Activate(ctx, created.ID)
		if err != nil {
			span.RecordError(err)
			return core.PublicKey{}, err
		}
		return activated, nil
	}

	return created, nil
}

// IssueConfirmation creates a fresh confirmation token for the key.
// Token uniqueness is enforced by the storage layer; collisions are
// retried with a new token.
func (s *service) IssueConfirmation(ctx context.Context, key core.PublicKey) (core.PublicKeyConfirmation, error) {
	ctx, span := tracer.Start(ctx, "Key.Service.IssueConfirmation")
	defer span.End()

	for i := 0; i < maxTokenRetries; i++ {
		token, err := randomToken()
		if err != nil {
			span.RecordError(err)
			return core.PublicKeyConfirmation{}, err
		}

		confirmation, err := s.repository.CreateConfirmation(ctx, core.PublicKeyConfirmation{
			Token:       token,
			PublicKeyID: key.ID,
		})
		if err != nil {
			if errors.As(err, &core.ErrorAlreadyExists{}) {
				continue
			}
			span.RecordError(err)
			return core.PublicKeyConfirmation{}, err
		}

		return confirmation, nil
	}

	return core.PublicKeyConfirmation{}, errors.New("failed to generate a unique confirmation token")
}

// IsExpired reports whether the confirmation is past the configured
// window. Exactly at the window is still valid.
func (s *service) IsExpired(confirmation core.PublicKeyConfirmation, now time.Time) bool {
	window := time.Duration(s.config.Chat.ConfirmationExpirationHours) * time.Hour
	return now.Sub(confirmation.CDate) > window
}

// Lookup resolves a confirmation token. Expired confirmations are
// deleted on discovery and reported as not found, indistinguishable
// from tokens that never existed.
func (s *service) Lookup(ctx context.Context, token string) (core.PublicKeyConfirmation, error) {
	ctx, span := tracer.Start(ctx, "Key.Service.Lookup")
	defer span.End()

	confirmation, err := s.repository.GetConfirmation(ctx, token)
	if err != nil {
		span.RecordError(err)
		return core.PublicKeyConfirmation{}, err
	}

	if s.IsExpired(confirmation, time.Now()) {
		err = s.repository.DeleteConfirmation(ctx, token)
		if err != nil {
			// best-effort cleanup, the token is unusable either way
			slog.ErrorContext(ctx, fmt.Sprintf("failed to delete expired confirmation: %v", err), slog.String("module", "key"))
		}
		return core.PublicKeyConfirmation{}, core.NewErrorNotFound()
	}

	return confirmation, nil
}

// Confirm consumes the token and activates its key, at most once.
func (s *service) Confirm(ctx context.Context, token string) (core.PublicKey, error) {
	ctx, span := tracer.Start(ctx, "Key.Service.Confirm")
	defer span.End()

	_, err := s.Lookup(ctx, token)
	if err != nil {
		span.RecordError(err)
		return core.PublicKey{}, err
	}

	key, err := s.repository.ConsumeConfirmation(ctx, token)
	if err != nil {
		span.RecordError(err)
		return core.PublicKey{}, err
	}

	return key, nil
}

func (s *service) GetActiveKeys(ctx context.Context, memberID uint) ([]core.PublicKey, error) {
	ctx, span := tracer.Start(ctx, "Key.Service.GetActiveKeys")
	defer span.End()

	return s.repository.GetActiveByMember(ctx, memberID)
}

func (s *service) GetAllKeys(ctx context.Context, memberID uint) ([]core.PublicKey, error) {
	ctx, span := tracer.Start(ctx, "Key.Service.GetAllKeys")
	defer span.End()

	return s.repository.GetByMember(ctx, memberID)
}

func randomToken() (string, error) {
	buf := make([]byte, tokenLength)
	max := big.NewInt(int64(len(tokenAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random bytes")
		}
		buf[i] = tokenAlphabet[n.Int64()]
	}
	return string(buf), nil
}
