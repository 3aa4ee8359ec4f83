package messages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/dbx"
	"github.com/dmitrijs2005/gophchat/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectMessage = `
	SELECT m.id, m.sender_id, s.username, m.receiver_id, r.username,
	       m.encrypted_content, m.sent_at, m.is_read, m.is_edited
	FROM messages m
	JOIN users s ON s.id = m.sender_id
	JOIN users r ON r.id = m.receiver_id
`

type scanner interface {
	Scan(dest ...any) error
}

func scanMessage(s scanner) (*models.Message, error) {
	m := &models.Message{}
	err := s.Scan(&m.ID, &m.SenderID, &m.SenderUsername, &m.ReceiverID, &m.ReceiverUsername,
		&m.EncryptedContent, &m.SentAt, &m.IsRead, &m.IsEdited)
	return m, err
}

func (r *PostgresRepository) Create(ctx context.Context, senderID, receiverID int64, encryptedContent string) (*models.Message, error) {
	query := `
		INSERT INTO messages (sender_id, receiver_id, encrypted_content)
		VALUES ($1, $2, $3)
		RETURNING id, sent_at
	`
	m := &models.Message{SenderID: senderID, ReceiverID: receiverID, EncryptedContent: encryptedContent}
	if err := r.db.QueryRowContext(ctx, query, senderID, receiverID, encryptedContent).Scan(&m.ID, &m.SentAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	m, err := scanMessage(r.db.QueryRowContext(ctx, selectMessage+` WHERE m.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) ListReceived(ctx context.Context, userID int64) ([]*models.Message, error) {
	return r.list(ctx, selectMessage+` WHERE m.receiver_id = $1 ORDER BY m.sent_at DESC, m.id DESC`, userID)
}

func (r *PostgresRepository) ListSent(ctx context.Context, userID int64) ([]*models.Message, error) {
	return r.list(ctx, selectMessage+` WHERE m.sender_id = $1 ORDER BY m.sent_at DESC, m.id DESC`, userID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, userID int64) ([]*models.Message, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) UpdateContent(ctx context.Context, id, senderID int64, encryptedContent string) (bool, error) {
	return r.exec(ctx, `
		UPDATE messages SET encrypted_content = $3, is_edited = TRUE
		WHERE id = $1 AND sender_id = $2
	`, id, senderID, encryptedContent)
}

func (r *PostgresRepository) Delete(ctx context.Context, id, senderID int64) (bool, error) {
	return r.exec(ctx, `DELETE FROM messages WHERE id = $1 AND sender_id = $2`, id, senderID)
}

func (r *PostgresRepository) MarkRead(ctx context.Context, id, receiverID int64) (bool, error) {
	return r.exec(ctx, `
		UPDATE messages SET is_read = TRUE
		WHERE id = $1 AND receiver_id = $2 AND NOT is_read
	`, id, receiverID)
}

func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresRepository) UnreadCounts(ctx context.Context, receiverID int64) (map[int64]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT sender_id, COUNT(*)
		FROM messages
		WHERE receiver_id = $1 AND NOT is_read
		GROUP BY sender_id
	`, receiverID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var sender int64
		var n int
		if err := rows.Scan(&sender, &n); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		counts[sender] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return counts, nil
}
