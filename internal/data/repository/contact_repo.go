package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sunainscent-api/internal/data/entity"
	"sunainscent-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ContactFilter struct {
	IsRead *bool
	Search string
	Offset int
	Limit  int
}

type ContactRepository interface {
	Create(ctx context.Context, msg *entity.ContactMessage) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error)
	FindAll(ctx context.Context, filter ContactFilter) ([]*entity.ContactMessage, error)
	FindRecent(ctx context.Context, limit int) ([]*entity.ContactMessage, error)
	Update(ctx context.Context, msg *entity.ContactMessage) error
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context, unreadOnly bool) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

type contactRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewContactRepository(db database.PgxIface, log *zap.Logger) ContactRepository {
	return &contactRepository{
		db:  db,
		log: log.With(zap.String("repository", "contact")),
	}
}

const contactColumns = `id, name, email, phone, subject, message, is_read, admin_notes, created_at`

func scanContact(row pgx.Row) (*entity.ContactMessage, error) {
	var msg entity.ContactMessage
	err := row.Scan(
		&msg.ID,
		&msg.Name,
		&msg.Email,
		&msg.Phone,
		&msg.Subject,
		&msg.Message,
		&msg.IsRead,
		&msg.AdminNotes,
		&msg.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *contactRepository) scanContacts(rows pgx.Rows) ([]*entity.ContactMessage, error) {
	defer rows.Close()

	var messages []*entity.ContactMessage
	for rows.Next() {
		msg, err := scanContact(rows)
		if err != nil {
			r.log.Error("Failed to scan contact row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return messages, nil
}

func (r *contactRepository) Create(ctx context.Context, msg *entity.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, phone, subject, message,
		                              is_read, admin_notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Phone,
		msg.Subject,
		msg.Message,
		msg.IsRead,
		msg.AdminNotes,
		msg.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create contact message", zap.Error(err))
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	return nil
}

func (r *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	msg, err := scanContact(r.db.QueryRow(ctx, `SELECT `+contactColumns+` FROM contact_messages WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find contact message", zap.Error(err), zap.String("message_id", id.String()))
		return nil, fmt.Errorf("failed to find contact message: %w", err)
	}
	return msg, nil
}

func (r *contactRepository) FindAll(ctx context.Context, filter ContactFilter) ([]*entity.ContactMessage, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + contactColumns + ` FROM contact_messages WHERE TRUE`)

	args := []interface{}{}
	argCount := 1

	if filter.IsRead != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND is_read = $%d", argCount))
		args = append(args, *filter.IsRead)
		argCount++
	}

	if filter.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(` AND (name ILIKE $%[1]d ESCAPE '\'
			OR email ILIKE $%[1]d ESCAPE '\'
			OR subject ILIKE $%[1]d ESCAPE '\'
			OR message ILIKE $%[1]d ESCAPE '\')`, argCount))
		args = append(args, containsPattern(filter.Search))
		argCount++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find contact messages", zap.Error(err))
		return nil, fmt.Errorf("failed to find contact messages: %w", err)
	}

	return r.scanContacts(rows)
}

func (r *contactRepository) FindRecent(ctx context.Context, limit int) ([]*entity.ContactMessage, error) {
	return r.FindAll(ctx, ContactFilter{Limit: limit})
}

func (r *contactRepository) Update(ctx context.Context, msg *entity.ContactMessage) error {
	result, err := r.db.Exec(ctx,
		`UPDATE contact_messages SET is_read = $2, admin_notes = $3 WHERE id = $1`,
		msg.ID, msg.IsRead, msg.AdminNotes)
	if err != nil {
		r.log.Error("Failed to update contact message", zap.Error(err), zap.String("message_id", msg.ID.String()))
		return fmt.Errorf("failed to update contact message: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("contact message %s: %w", msg.ID, pgx.ErrNoRows)
	}
	return nil
}

func (r *contactRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `UPDATE contact_messages SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to mark message read", zap.Error(err), zap.String("message_id", id.String()))
		return fmt.Errorf("failed to mark message read: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("contact message %s: %w", id, pgx.ErrNoRows)
	}
	return nil
}

// MarkAllRead returns how many messages flipped from unread to read.
func (r *contactRepository) MarkAllRead(ctx context.Context) (int64, error) {
	result, err := r.db.Exec(ctx, `UPDATE contact_messages SET is_read = TRUE WHERE NOT is_read`)
	if err != nil {
		r.log.Error("Failed to mark all messages read", zap.Error(err))
		return 0, fmt.Errorf("failed to mark all messages read: %w", err)
	}
	return result.RowsAffected(), nil
}

func (r *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete contact message", zap.Error(err), zap.String("message_id", id.String()))
		return fmt.Errorf("failed to delete contact message: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("contact message %s: %w", id, pgx.ErrNoRows)
	}
	return nil
}

func (r *contactRepository) Count(ctx context.Context, unreadOnly bool) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages WHERE NOT $1 OR NOT is_read`, unreadOnly).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count contact messages", zap.Error(err))
		return 0, fmt.Errorf("failed to count contact messages: %w", err)
	}
	return total, nil
}

func (r *contactRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages WHERE created_at >= $1`, since).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count recent contact messages", zap.Error(err))
		return 0, fmt.Errorf("failed to count contact messages: %w", err)
	}
	return total, nil
}
