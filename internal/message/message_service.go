package message

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"gomessenger/internal/common"
	"gomessenger/internal/dbmysql"
	"gomessenger/internal/user"
)

// MessageView is the wire projection of a message, with both usernames
// resolved.
type MessageView struct {
	ID                uint       `json:"id"`
	SenderID          uint       `json:"sender_id"`
	SenderUsername    string     `json:"sender_username"`
	RecipientID       uint       `json:"recipient_id"`
	RecipientUsername string     `json:"recipient_username"`
	Content           string     `json:"content"`
	SentAt            time.Time  `json:"sent_at"`
	ReadAt            *time.Time `json:"read_at,omitempty"`
}

// MessageService owns the message lifecycle. Every operation takes the
// authenticated caller id as an explicit argument; nothing is read from
// ambient state.
type MessageService interface {
	GetMessagesForChat(ctx context.Context, callerID, peerID uint) ([]*MessageView, error)
	SendMessage(ctx context.Context, callerID, recipientID uint, content string) (*MessageView, error)
	DeleteMessage(ctx context.Context, callerID, messageID uint) error
}

type messageService struct {
	messageRepo MessageRepository
	userRepo    user.UserRepository
}

func NewMessageService(messageRepo MessageRepository, userRepo user.UserRepository) MessageService {
	return &messageService{messageRepo: messageRepo, userRepo: userRepo}
}

// GetMessagesForChat performs no existence checks on either id: an unknown
// peer and an empty conversation look the same.
func (s *messageService) GetMessagesForChat(ctx context.Context, callerID, peerID uint) ([]*MessageView, error) {
	log.Printf("GetMessagesForChat, (callerID: %d, peerID: %d)", callerID, peerID)

	messages, err := s.messageRepo.Between(ctx, callerID, peerID)
	if err != nil {
		return nil, err
	}

	views := make([]*MessageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, &MessageView{
			ID:                m.ID,
			SenderID:          m.SenderID,
			SenderUsername:    m.Sender.Username,
			RecipientID:       m.RecipientID,
			RecipientUsername: m.Recipient.Username,
			Content:           m.Content,
			SentAt:            m.SentAt,
			ReadAt:            m.ReadAt,
		})
	}
	return views, nil
}

func (s *messageService) SendMessage(ctx context.Context, callerID, recipientID uint, content string) (*MessageView, error) {
	log.Printf("SendMessage, (callerID: %d, recipientID: %d)", callerID, recipientID)

	sender, err := s.userRepo.ByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.BadRequest("Sender with id %d does not exist", callerID)
		}
		return nil, err
	}

	recipient, err := s.userRepo.ByID(ctx, recipientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.BadRequest("Recipient with id %d does not exist", recipientID)
		}
		return nil, err
	}

	msg := &dbmysql.Message{
		SenderID:    sender.ID,
		RecipientID: recipient.ID,
		Content:     content,
		SentAt:      time.Now().UTC(),
	}

	if err := s.messageRepo.Save(ctx, msg); err != nil {
		return nil, common.Internal("failed to store message")
	}

	return &MessageView{
		ID:                msg.ID,
		SenderID:          msg.SenderID,
		SenderUsername:    sender.Username,
		RecipientID:       msg.RecipientID,
		RecipientUsername: recipient.Username,
		Content:           msg.Content,
		SentAt:            msg.SentAt,
	}, nil
}

// DeleteMessage enforces the ownership invariant: only the sender may delete.
// The delete itself is a single conditional statement on (id, sender_id) so
// the ownership check cannot race a concurrent mutation.
func (s *messageService) DeleteMessage(ctx context.Context, callerID, messageID uint) error {
	log.Printf("DeleteMessage, (callerID: %d, messageID: %d)", callerID, messageID)

	msg, err := s.messageRepo.ByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NotFound("Message with id %d not found", messageID)
		}
		return err
	}

	if msg.SenderID != callerID {
		log.Printf("You can only delete your sent messages!")
		return common.BadRequest("You can only delete your sent messages!")
	}

	rows, err := s.messageRepo.DeleteOwned(ctx, messageID, callerID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return common.Internal("failed to delete message")
	}
	return nil
}
