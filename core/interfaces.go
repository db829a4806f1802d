//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"
	"time"
)

type KeyService interface {
	Register(ctx context.Context, lrzID string, keyText string) (PublicKey, error)
	IssueConfirmation(ctx context.Context, key PublicKey) (PublicKeyConfirmation, error)
	Confirm(ctx context.Context, token string) (PublicKey, error)
	Lookup(ctx context.Context, token string) (PublicKeyConfirmation, error)
	GetActiveKeys(ctx context.Context, memberID uint) ([]PublicKey, error)
	GetAllKeys(ctx context.Context, memberID uint) ([]PublicKey, error)
	IsExpired(confirmation PublicKeyConfirmation, now time.Time) bool
}

type AuthService interface {
	Authorized(ctx context.Context, memberID uint, payload string, signature string) (bool, error)
}

type MemberService interface {
	Register(ctx context.Context, member Member) (Member, error)
	Get(ctx context.Context, id uint) (Member, error)
	GetByLrzID(ctx context.Context, lrzID string) (Member, error)
	List(ctx context.Context) ([]Member, error)
	GetOrCreateBot(ctx context.Context) (Member, error)
	AddRegistrationID(ctx context.Context, id uint, registrationID string) (Member, error)
	RemoveRegistrationID(ctx context.Context, id uint, registrationID string) (Member, error)
}

type MessageService interface {
	Post(ctx context.Context, roomID string, member Member, text string, signature string) (Message, error)
	PostSystemMessage(ctx context.Context, roomID string, text string) (Message, error)
	Validate(ctx context.Context, message *Message) (bool, error)
	Get(ctx context.Context, id string) (Message, error)
	GetByRoom(ctx context.Context, roomID string) ([]Message, error)
	Count(ctx context.Context) (int64, error)
	CleanExpired(ctx context.Context, olderThan time.Time) (int64, error)
}

type RoomService interface {
	Create(ctx context.Context, name string) (ChatRoom, error)
	Get(ctx context.Context, id string) (ChatRoom, error)
	List(ctx context.Context) ([]ChatRoom, error)
	Join(ctx context.Context, roomID string, member Member) (ChatRoom, error)
	Leave(ctx context.Context, roomID string, member Member) (ChatRoom, error)
}

type NotificationService interface {
	Dispatch(ctx context.Context, message Message)
}

type MailSender interface {
	SendConfirmation(ctx context.Context, to string, confirmationURL string, token string) error
}
