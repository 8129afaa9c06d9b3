package message

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gomessenger/internal/dbmysql"
)

// MessageRepository exposes the exact message predicates the service needs.
type MessageRepository interface {
	Save(ctx context.Context, msg *dbmysql.Message) error
	ByID(ctx context.Context, id uint) (*dbmysql.Message, error)
	// Between returns every message exchanged between the two users, ordered
	// ascending by sent time with insertion order breaking ties.
	Between(ctx context.Context, userID, peerID uint) ([]*dbmysql.Message, error)
	// DeleteOwned deletes the message only if senderID owns it, in a single
	// conditional statement; it reports the number of rows removed.
	DeleteOwned(ctx context.Context, id, senderID uint) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Save(ctx context.Context, msg *dbmysql.Message) error {
	result := r.db.WithContext(ctx).Create(msg)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("message insert affected no rows")
	}
	return nil
}

func (r *messageRepository) ByID(ctx context.Context, id uint) (*dbmysql.Message, error) {
	var msg dbmysql.Message
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&msg).Error
	if err != nil {
		return nil, err
	}

	return &msg, nil
}

func (r *messageRepository) Between(ctx context.Context, userID, peerID uint) ([]*dbmysql.Message, error) {
	var messages []*dbmysql.Message
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Recipient").
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID, peerID, peerID, userID).
		Order("sent_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) DeleteOwned(ctx context.Context, id, senderID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND sender_id = ?", id, senderID).
		Delete(&dbmysql.Message{})
	return result.RowsAffected, result.Error
}
