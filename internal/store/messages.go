package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/model"
)

// SaveContactMessage stores msg with a fresh id and timestamp.
func (s *Store) SaveContactMessage(ctx context.Context, msg model.ContactMessage) (model.ContactRecord, error) {
	rec := model.ContactRecord{
		ContactMessage: msg,
		ID:             uuid.NewString(),
		CreatedAt:      s.now(),
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_messages (id, name, email, subject, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Name, rec.Email, rec.Subject, rec.Message, rec.CreatedAt)
	if err != nil {
		return model.ContactRecord{}, fmt.Errorf("insert contact message: %w", err)
	}
	return rec, nil
}

// ListContactMessages returns the newest messages first.
func (s *Store) ListContactMessages(ctx context.Context, limit int) ([]model.ContactRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, subject, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query contact messages: %w", err)
	}
	defer rows.Close()

	messages := []model.ContactRecord{}
	for rows.Next() {
		var m model.ContactRecord
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// DeleteContactMessage removes one message. It returns ErrNotFound when no
// row matched.
func (s *Store) DeleteContactMessage(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM contact_messages WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete contact message %s: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete contact message %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
