package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cthulhu-engineer/goit-cs-hw-06/internal/domain/models"
	"github.com/cthulhu-engineer/goit-cs-hw-06/internal/infrastructure/database"
	apperrors "github.com/cthulhu-engineer/goit-cs-hw-06/pkg/errors"
)

const collectionMessages = "messages"

// MessageRepository persists messages in the messages collection
type MessageRepository struct {
	coll *mongo.Collection
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *database.MongoConnection) *MessageRepository {
	return &MessageRepository{coll: db.Collection(collectionMessages)}
}

// Insert stores a message. A missing ID or Date is filled in before writing
// so every stored document carries both.
func (r *MessageRepository) Insert(ctx context.Context, msg *models.Message) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.Date.IsZero() {
		msg.Date = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// List returns up to limit messages, newest first
func (r *MessageRepository) List(ctx context.Context, limit int64) ([]models.Message, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer cursor.Close(ctx)

	messages := []models.Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return messages, nil
}

// GetByID returns a single message by its ID
func (r *MessageRepository) GetByID(ctx context.Context, id string) (*models.Message, error) {
	var msg models.Message
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&msg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFoundError("message", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load message %s: %w", id, err)
	}
	return &msg, nil
}

// Count returns the number of stored messages
func (r *MessageRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return n, nil
}
