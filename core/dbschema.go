package core

import (
	"time"

	"github.com/lib/pq"
)

// Member is a registered chat participant
// mutable
type Member struct {
	ID              uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	LrzID           string         `json:"lrz_id" gorm:"type:varchar(7);uniqueIndex"`
	FirstName       string         `json:"first_name" gorm:"type:varchar(30)"`
	LastName        string         `json:"last_name" gorm:"type:varchar(30)"`
	RegistrationIDs pq.StringArray `json:"registration_ids" gorm:"type:text[]"`
	CDate           time.Time      `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

// Email returns the member's mail address derived from the LRZ ID.
func (m Member) Email(domain string) string {
	return m.LrzID + "@" + domain
}

// PublicKey is an RSA public key owned by a member.
// Only keys with Active set take part in signature validation.
type PublicKey struct {
	ID       uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	MemberID uint      `json:"member_id" gorm:"index;->;<-:create"`
	KeyText  string    `json:"key_text" gorm:"type:text"`
	Active   bool      `json:"active" gorm:"type:boolean;default:false"`
	CDate    time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

// PublicKeyConfirmation is a one-time token bound to a not-yet-active key.
// Consumed on use, dropped on expiry.
type PublicKeyConfirmation struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Token       string    `json:"token" gorm:"type:char(30);uniqueIndex"`
	PublicKeyID uint      `json:"public_key_id" gorm:"index;->;<-:create"`
	CDate       time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

// ChatRoom is a named room with a member set
// mutable
type ChatRoom struct {
	ID      string    `json:"id" gorm:"primaryKey;type:char(20)"`
	Name    string    `json:"name" gorm:"type:varchar(100)"`
	Members []Member  `json:"members,omitempty" gorm:"many2many:chat_room_members;"`
	CDate   time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

// Message is a chat message
// immutable except for the Valid flag, which only the trust engine writes
type Message struct {
	ID         string    `json:"id" gorm:"primaryKey;type:char(20)"`
	Text       string    `json:"text" gorm:"type:text"`
	Signature  string    `json:"signature" gorm:"type:text"`
	Valid      bool      `json:"valid" gorm:"type:boolean;default:false"`
	MemberID   uint      `json:"-" gorm:"index;->;<-:create"`
	Member     Member    `json:"member"`
	ChatRoomID string    `json:"chat_room_id" gorm:"index;type:char(20);->;<-:create"`
	CDate      time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}
