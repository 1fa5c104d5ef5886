package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sunainscent-api/internal/data/entity"
	"sunainscent-api/internal/data/repository"
	"sunainscent-api/internal/dto/request"
	"sunainscent-api/internal/dto/response"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ContactService interface {
	SubmitMessage(ctx context.Context, req *request.ContactRequest) (*response.ContactSubmitted, error)
	GetMessages(ctx context.Context, query request.ContactListQuery) ([]response.ContactResponse, error)
	GetMessageByID(ctx context.Context, messageID string) (*response.ContactResponse, error)
	UpdateMessage(ctx context.Context, messageID string, req *request.ContactUpdateRequest) (*response.ContactResponse, error)
	DeleteMessage(ctx context.Context, messageID string) error
	MarkRead(ctx context.Context, messageID string) error
	MarkAllRead(ctx context.Context) (*response.MarkAllReadResponse, error)
	GetStats(ctx context.Context) (*response.ContactStats, error)
}

type contactService struct {
	repo repository.ContactRepository
	now  func() time.Time
	log  *zap.Logger
}

func NewContactService(repo repository.ContactRepository, log *zap.Logger) ContactService {
	return &contactService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
		log:  log.With(zap.String("service", "contact")),
	}
}

func (s *contactService) SubmitMessage(ctx context.Context, req *request.ContactRequest) (*response.ContactSubmitted, error) {
	msg := &entity.ContactMessage{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: s.now(),
		},
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("submit message: %w", err)
	}

	s.log.Info("Contact message received", zap.String("message_id", msg.ID.String()))
	return &response.ContactSubmitted{ID: msg.ID.String()}, nil
}

func (s *contactService) GetMessages(ctx context.Context, query request.ContactListQuery) ([]response.ContactResponse, error) {
	messages, err := s.repo.FindAll(ctx, repository.ContactFilter{
		IsRead: query.IsRead,
		Search: query.Search,
		Offset: query.Offset(),
		Limit:  query.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("get messages: %w", err)
	}
	return response.ContactsToResponse(messages), nil
}

func (s *contactService) GetMessageByID(ctx context.Context, messageID string) (*response.ContactResponse, error) {
	id, err := parseID("message", messageID)
	if err != nil {
		return nil, err
	}

	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	}
	if msg == nil {
		return nil, notFound("contact message")
	}

	resp := response.ContactToResponse(msg)
	return &resp, nil
}

func (s *contactService) UpdateMessage(ctx context.Context, messageID string, req *request.ContactUpdateRequest) (*response.ContactResponse, error) {
	id, err := parseID("message", messageID)
	if err != nil {
		return nil, err
	}

	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	}
	if msg == nil {
		return nil, notFound("contact message")
	}

	if req.IsRead != nil {
		msg.IsRead = *req.IsRead
	}
	if req.AdminNotes != nil {
		msg.AdminNotes = req.AdminNotes
	}

	if err := s.repo.Update(ctx, msg); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound("contact message")
		}
		return nil, fmt.Errorf("update message: %w", err)
	}

	resp := response.ContactToResponse(msg)
	return &resp, nil
}

func (s *contactService) DeleteMessage(ctx context.Context, messageID string) error {
	id, err := parseID("message", messageID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notFound("contact message")
		}
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}

func (s *contactService) MarkRead(ctx context.Context, messageID string) error {
	id, err := parseID("message", messageID)
	if err != nil {
		return err
	}

	if err := s.repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notFound("contact message")
		}
		return fmt.Errorf("mark message read: %w", err)
	}
	return nil
}

func (s *contactService) MarkAllRead(ctx context.Context) (*response.MarkAllReadResponse, error) {
	modified, err := s.repo.MarkAllRead(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark all read: %w", err)
	}

	s.log.Info("Contact messages marked read", zap.Int64("modified", modified))
	return &response.MarkAllReadResponse{ModifiedCount: modified}, nil
}

func (s *contactService) GetStats(ctx context.Context) (*response.ContactStats, error) {
	w := windowsAt(s.now())
	var (
		stats response.ContactStats
		err   error
	)

	if stats.TotalMessages, err = s.repo.Count(ctx, false); err != nil {
		return nil, fmt.Errorf("contact stats: %w", err)
	}
	if stats.UnreadMessages, err = s.repo.Count(ctx, true); err != nil {
		return nil, fmt.Errorf("contact stats: %w", err)
	}
	if stats.MessagesToday, err = s.repo.CountSince(ctx, w.today); err != nil {
		return nil, fmt.Errorf("contact stats: %w", err)
	}
	if stats.MessagesThisWeek, err = s.repo.CountSince(ctx, w.week); err != nil {
		return nil, fmt.Errorf("contact stats: %w", err)
	}

	return &stats, nil
}
