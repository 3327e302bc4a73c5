package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cthulhu-engineer/goit-cs-hw-06/internal/domain/models"
	apperrors "github.com/cthulhu-engineer/goit-cs-hw-06/pkg/errors"
)

// List limits. Callers asking for nothing get the default page; callers
// asking for more than the cap get the cap.
const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// MessageStore is the persistence seam used by MessageService
type MessageStore interface {
	Insert(ctx context.Context, msg *models.Message) error
	List(ctx context.Context, limit int64) ([]models.Message, error)
	GetByID(ctx context.Context, id string) (*models.Message, error)
	Count(ctx context.Context) (int64, error)
}

// MessageService decodes, validates and persists message submissions
type MessageService struct {
	store MessageStore
}

// NewMessageService creates a new MessageService
func NewMessageService(store MessageStore) *MessageService {
	return &MessageService{store: store}
}

// Ingest decodes a raw urlencoded datagram payload and stores the result.
// Percent escapes and '+' are decoded exactly as a browser form encodes them.
func (s *MessageService) Ingest(ctx context.Context, payload []byte) (*models.Message, error) {
	if len(payload) == 0 {
		return nil, apperrors.NewValidationError("payload", "empty payload")
	}

	raw := string(payload)

	// Every pair must carry '='. A bare token would otherwise slip through
	// url.ParseQuery as a key with an empty value.
	for _, pair := range strings.Split(raw, "&") {
		if pair != "" && !strings.Contains(pair, "=") {
			return nil, apperrors.NewValidationError("payload", fmt.Sprintf("malformed pair %q", pair))
		}
	}

	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, apperrors.NewValidationError("payload", err.Error())
	}

	return s.Submit(ctx, values)
}

// Submit validates decoded form values and stores them with the receive time
func (s *MessageService) Submit(ctx context.Context, values url.Values) (*models.Message, error) {
	msg := models.MessageFromForm(values)
	if msg.IsEmpty() {
		return nil, apperrors.NewValidationError("form", "no form fields submitted")
	}

	msg.Date = time.Now()
	if err := s.store.Insert(ctx, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// List returns stored messages, newest first. A non-positive limit falls back
// to DefaultListLimit and anything above MaxListLimit is clamped.
func (s *MessageService) List(ctx context.Context, limit int64) ([]models.Message, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return s.store.List(ctx, limit)
}

// Get returns a single message by ID
func (s *MessageService) Get(ctx context.Context, id string) (*models.Message, error) {
	if id == "" {
		return nil, apperrors.NewValidationError("id", "message ID is required")
	}
	return s.store.GetByID(ctx, id)
}

// Count returns the number of stored messages
func (s *MessageService) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}
