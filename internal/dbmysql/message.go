package dbmysql

import (
	"time"
)

// Message is a direct message between two users. Sender, recipient, content
// and sent time never change after creation; ReadAt is nullable and stays
// null until a future read-receipt feature writes it.
type Message struct {
	ID          uint       `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	SenderID    uint       `gorm:"column:sender_id;index;not null" json:"sender_id"`
	Sender      User       `gorm:"foreignKey:SenderID" json:"-"`
	RecipientID uint       `gorm:"column:recipient_id;index;not null" json:"recipient_id"`
	Recipient   User       `gorm:"foreignKey:RecipientID" json:"-"`
	Content     string     `gorm:"column:content;type:text" json:"content"`
	SentAt      time.Time  `gorm:"column:sent_at" json:"sent_at"`
	ReadAt      *time.Time `gorm:"column:read_at" json:"read_at,omitempty"`
}
